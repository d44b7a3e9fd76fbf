package compress

import (
	"fmt"
	"strings"
)

// Kind identifies a compression algorithm.
type Kind uint8

const (
	KindNone Kind = 0x1 // KindNone writes data unchanged.
	KindZstd Kind = 0x2 // KindZstd represents Zstandard compression.
	KindS2   Kind = 0x3 // KindS2 represents S2 compression.
	KindLZ4  Kind = 0x4 // KindLZ4 represents LZ4 compression.
)

var kindNames = map[Kind]string{
	KindNone: "none",
	KindZstd: "zstd",
	KindS2:   "s2",
	KindLZ4:  "lz4",
}

var kindExtensions = map[Kind]string{
	KindNone: "",
	KindZstd: ".zst",
	KindS2:   ".s2",
	KindLZ4:  ".lz4",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Extension returns the conventional file suffix of the kind, empty for KindNone.
func (k Kind) Extension() string {
	return kindExtensions[k]
}

// ParseKind returns the kind for a case-insensitive algorithm name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown compression %q (want none, zstd, s2 or lz4)", name)
}

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns the compressed payload. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original payload, or an error for corrupted input
	// or input produced by another algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression operation.
type Stats struct {
	// Kind identifies the compression algorithm used.
	Kind Kind
	// OriginalSize is the size of input data before compression.
	OriginalSize int64
	// CompressedSize is the size of data after compression.
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec for the given kind.
//
// Parameters:
//   - kind: Compression algorithm (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified kind
//   - error: Invalid compression kind error
func CreateCodec(kind Kind, target string) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCompressor(), nil
	case KindZstd:
		return NewZstdCompressor(), nil
	case KindS2:
		return NewS2Compressor(), nil
	case KindLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, kind)
	}
}

var builtinCodecs = map[Kind]Codec{
	KindNone: NewNoOpCompressor(),
	KindZstd: NewZstdCompressor(),
	KindS2:   NewS2Compressor(),
	KindLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given kind.
func GetCodec(kind Kind) (Codec, error) {
	if codec, ok := builtinCodecs[kind]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression kind: %s", kind)
}

// CompressWithStats compresses data with codec and reports the sizes.
func CompressWithStats(kind Kind, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(kind)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", kind, err)
	}

	return out, Stats{
		Kind:           kind,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(out)),
	}, nil
}
