// Package ril extracts header and metadata information from PNG files.
//
// ril walks the chunk stream of a PNG file and decodes the chunks that
// describe the image rather than its pixels. It never inflates image data.
//
// # Quick Start
//
// Reading metadata from a PNG file:
//
//	img, err := ril.Open("photo.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%dx%d, %d-bit %s\n", img.Width, img.Height, img.BitDepth, img.ColorType)
//	if img.Gamma != nil {
//		fmt.Printf("gamma %.5f\n", *img.Gamma)
//	}
//
// Parsing bytes that are already in memory:
//
//	img, err := ril.Parse(data)
//
// # Decoded Chunks
//
//   - IHDR: width, height, bit depth, color type, compression, filter and
//     interlace methods (mandatory)
//   - tEXt: keyword/value pairs, merged across all tEXt chunks
//   - tIME: last modification time, as "M/D/YYYY H:MM:SS"
//   - gAMA: display gamma
//
// Every other chunk is framed and listed in ImageDescriptor.ChunkTypes but
// not interpreted. Optional fields stay nil when their chunk is absent.
//
// # Error Handling
//
// Parsing is all or nothing. Any failure returns an error wrapping one of
// the typed errors below and no descriptor:
//
//   - *InvalidSignatureError: the file does not start with the PNG signature
//   - *TruncatedChunkError: the file ends inside a chunk record
//   - *MissingChunkError: there is no IHDR chunk
//   - *MalformedChunkError: a decoded chunk is too short or undecodable
//   - *InvalidColorTypeError: the IHDR color type is not 0, 2, 3, 4 or 6
//   - *ChecksumMismatchError: a chunk CRC is wrong (only with WithCRCValidation)
//
// Use errors.As to inspect them.
//
// # Concurrency
//
// Parse keeps no state between calls and may be used from any number of
// goroutines. ParseMany and OpenMany parse batches in parallel:
//
//	images, err := ril.OpenMany(ctx, paths)
package ril
