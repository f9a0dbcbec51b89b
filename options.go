package ril

import (
	"log/slog"

	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/png"
	"github.com/blakeanedved/ril/internal/textenc"
)

// Option configures behavior when parsing PNG files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	img, err := ril.Open("photo.png",
//	    ril.WithCRCValidation(),
//	    ril.WithLogger(slog.Default()),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse.
type parseOptions struct {
	logger     *slog.Logger    // Debug observer (nil = discard)
	verifier   chunk.Verifier  // Chunk integrity check (nil = skip)
	text       textenc.Decoder // tEXt byte decoding
	strictText bool            // Enforce 1-79 byte keywords
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		logger:     nil,
		verifier:   nil,
		text:       textenc.Lossy,
		strictText: false,
	}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *parseOptions) config() png.Config {
	return png.Config{
		Logger:     o.logger,
		Verifier:   o.verifier,
		Text:       o.text,
		StrictText: o.strictText,
	}
}

// WithLogger sends debug records about the parse to logger.
//
// The records name the chunk types found and the decoded header and
// metadata fields. By default nothing is logged.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	img, err := ril.Parse(data, ril.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		o.logger = logger
	}
}

// WithChunkVerifier runs v on every chunk as it is framed.
//
// An error from v aborts the parse and is returned as-is.
func WithChunkVerifier(v ChunkVerifier) Option {
	return func(o *parseOptions) {
		o.verifier = v
	}
}

// WithCRCValidation checks each chunk's stored CRC-32.
//
// By default the CRC is read and discarded. With validation enabled a
// mismatch fails the parse with *ChecksumMismatchError.
func WithCRCValidation() Option {
	return WithChunkVerifier(chunk.CRC32Verifier{})
}

// WithLatin1Text decodes tEXt keywords and values as ISO 8859-1, the
// character set the PNG format specifies for them.
//
// By default they are decoded as UTF-8 with invalid sequences replaced by
// U+FFFD.
func WithLatin1Text() Option {
	return func(o *parseOptions) {
		o.text = textenc.Latin1
	}
}

// WithStrictText rejects tEXt keywords that are empty or longer than 79
// bytes with *MalformedChunkError.
func WithStrictText() Option {
	return func(o *parseOptions) {
		o.strictText = true
	}
}
