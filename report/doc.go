// Package report formats analysis results as text and as JSON documents.
//
// Summary prints the per-group results the way a lab notebook would list them;
// Table dumps the derived measurement columns. Document is the machine-readable
// form, written to a file through one of the compress codecs.
package report
