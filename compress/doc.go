// Package compress provides the codecs used to archive analysis reports.
//
// A report is written once and read rarely, so every codec produces the
// standard container of its algorithm and the archive can be opened with the
// usual command-line tools:
//   - None: No compression, the report is written as plain JSON
//   - Zstd: Zstandard frames (.zst), best compression ratio
//   - S2: S2 stream format (.s2), fast with good compression
//   - LZ4: LZ4 frame format (.lz4), fastest decompression
//
// # Usage
//
//	kind, err := compress.ParseKind("zstd")
//	if err != nil {
//	    return err
//	}
//	codec, err := compress.GetCodec(kind)
//	if err != nil {
//	    return err
//	}
//	archived, err := codec.Compress(reportJSON)
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. The Zstd codec
// draws its encoder and decoder from sync.Pool instances.
package compress
