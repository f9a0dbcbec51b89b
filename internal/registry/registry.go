// Package registry manages the decoders for recognized PNG chunk types.
package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/blakeanedved/ril/internal/textenc"
	"github.com/blakeanedved/ril/internal/types"
)

// Options carries per-parse settings to decoders.
type Options struct {
	// Text decodes tEXt keywords and values.
	Text textenc.Decoder

	// Logger receives debug records. Never nil when passed by the parser.
	Logger *slog.Logger

	// Path is used in error messages only.
	Path string

	// StrictText rejects tEXt keywords outside the 1-79 byte range.
	StrictText bool
}

// Decoder is the interface all chunk decoders implement.
type Decoder interface {
	// Decode interprets every chunk of its type, in file order, and stores
	// the result in img. It is only called when at least one chunk exists.
	Decode(chunks []types.RawChunk, img *types.ImageDescriptor, opts Options) error
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(chunks []types.RawChunk, img *types.ImageDescriptor, opts Options) error

// Decode calls f.
func (f DecoderFunc) Decode(chunks []types.RawChunk, img *types.ImageDescriptor, opts Options) error {
	return f(chunks, img, opts)
}

var (
	mu       sync.RWMutex
	decoders = make(map[string]Decoder)
)

// Register registers a decoder for a chunk type. The tag is matched exactly.
// This is called by decoder packages during initialization (init functions).
func Register(chunkType string, d Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[chunkType] = d
}

// Get returns the decoder for a chunk type.
// Returns nil if no decoder is registered for the type.
func Get(chunkType string) Decoder {
	mu.RLock()
	defer mu.RUnlock()
	return decoders[chunkType]
}

// Types returns the registered chunk types in sorted order.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(decoders))
	for t := range decoders {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
