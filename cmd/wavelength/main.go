// Command wavelength converts accelerating voltages read from standard input,
// one per line, into relativistically uncorrected electron wavelengths.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/wehnelt/physics"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	constants := physics.Default()
	out := bufio.NewWriter(stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(stdin)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		u, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: invalid voltage %q\n", line, text)
			return 1
		}
		lambda, err := constants.Wavelength(u)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", line, err)
			return 1
		}
		fmt.Fprintf(out, "%.3g\n", lambda)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "read stdin: %v\n", err)
		return 1
	}

	return 0
}
