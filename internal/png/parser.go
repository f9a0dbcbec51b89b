// Package png assembles an ImageDescriptor from a PNG datastream.
//
// The chunk decoders for IHDR, tEXt, tIME and gAMA register themselves with
// internal/registry on package initialization; Parse frames the datastream
// and runs the decoder of every registered type that is present.
package png

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/textenc"
	"github.com/blakeanedved/ril/internal/types"
)

// Config holds per-parse settings.
type Config struct {
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger

	// Verifier checks chunk CRCs. Nil skips verification.
	Verifier chunk.Verifier

	// Text decodes tEXt keywords and values. Nil means lossy UTF-8.
	Text textenc.Decoder

	// StrictText rejects tEXt keywords outside the 1-79 byte range.
	StrictText bool
}

// Parse parses the complete contents of a PNG file.
//
// The first 8 bytes must be the PNG signature and an IHDR chunk must be
// present. Recognized optional chunks are decoded when present and left nil
// otherwise. Any failure aborts the parse; no partial descriptor is returned.
func Parse(data []byte, path string, cfg Config) (*types.ImageDescriptor, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if path != "" {
		logger = logger.With("path", path)
	}

	if len(data) < len(chunk.Signature) || string(data[:len(chunk.Signature)]) != chunk.Signature {
		return nil, &types.InvalidSignatureError{
			Path: path,
			Got:  bytes.Clone(data[:min(len(data), len(chunk.Signature))]),
		}
	}

	table, err := chunk.Frame(data[len(chunk.Signature):], chunk.Options{
		Verifier: cfg.Verifier,
		Path:     path,
		Base:     int64(len(chunk.Signature)),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("framed chunks", "types", table.Types(), "count", table.Len())

	if !table.Has(types.ChunkIHDR) {
		return nil, &types.MissingChunkError{Path: path, Type: types.ChunkIHDR}
	}

	img := &types.ImageDescriptor{
		ChunkTypes: slices.Clone(table.Types()),
	}
	opts := registry.Options{
		Text:       cfg.Text,
		Logger:     logger,
		Path:       path,
		StrictText: cfg.StrictText,
	}

	if err := decode(types.ChunkIHDR, table, img, opts); err != nil {
		return nil, err
	}

	for _, chunkType := range table.Types() {
		if chunkType == types.ChunkIHDR {
			continue
		}
		if err := decode(chunkType, table, img, opts); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// decode runs the registered decoder for chunkType, if any.
func decode(chunkType string, table *types.ChunkTable, img *types.ImageDescriptor, opts registry.Options) error {
	d := registry.Get(chunkType)
	if d == nil {
		return nil
	}
	if err := d.Decode(table.Get(chunkType), img, opts); err != nil {
		return fmt.Errorf("decode %s: %w", chunkType, err)
	}
	return nil
}

// withPath fills in the path of decoder errors created without one.
func withPath(err error, path string) error {
	var (
		malformed *types.MalformedChunkError
		color     *types.InvalidColorTypeError
	)
	switch {
	case errors.As(err, &malformed):
		malformed.Path = path
	case errors.As(err, &color):
		color.Path = path
	}
	return err
}
