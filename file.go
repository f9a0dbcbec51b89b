package ril

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/blakeanedved/ril/internal/png"
)

// Parse parses the complete contents of a PNG file held in memory.
//
// Parse checks the signature, frames every chunk, decodes the mandatory IHDR
// chunk and the optional tEXt, tIME and gAMA chunks. Optional fields of the
// returned descriptor are nil when the matching chunk is absent.
//
// Any problem aborts the parse; the returned error wraps one of the typed
// errors in this package:
//
//	img, err := ril.Parse(data)
//	var missing *ril.MissingChunkError
//	if errors.As(err, &missing) {
//		// not a usable PNG
//	}
//
// Parse does not retain data and is safe to call concurrently.
func Parse(data []byte, opts ...Option) (*ImageDescriptor, error) {
	return parse(data, "", applyOptions(opts))
}

func parse(data []byte, path string, options *parseOptions) (*ImageDescriptor, error) {
	img, err := png.Parse(data, path, options.config())
	if err != nil {
		return nil, fmt.Errorf("parse PNG: %w", err)
	}
	return img, nil
}

// ReadFile reads the whole file at path into memory.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return data, nil
}

// Open reads a PNG file from disk and parses it.
//
// Errors carry the path, so messages read like
// "parse PNG: photo.png: missing required IHDR chunk".
//
// Example:
//
//	img, err := ril.Open("photo.png")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%dx%d %s\n", img.Width, img.Height, img.ColorType)
func Open(path string, opts ...Option) (*ImageDescriptor, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path, applyOptions(opts))
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
// Parsing itself never blocks, so there is nothing to interrupt once the
// file has been read.
func OpenContext(ctx context.Context, path string, opts ...Option) (*ImageDescriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// ParseMany parses multiple in-memory PNG files concurrently.
//
// Buffers are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input buffers.
//
// If any buffer fails to parse, or ctx is cancelled, no results are
// returned; the error names the index of the failing buffer.
func ParseMany(ctx context.Context, buffers [][]byte, opts ...Option) ([]*ImageDescriptor, error) {
	options := applyOptions(opts)
	return runMany(ctx, len(buffers), func(i int) (*ImageDescriptor, error) {
		img, err := parse(buffers[i], "", options)
		if err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		return img, nil
	})
}

// OpenMany opens and parses multiple PNG files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	images, err := ril.OpenMany(ctx, paths, ril.WithCRCValidation())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, img := range images {
//		fmt.Printf("%s: %dx%d\n", paths[i], img.Width, img.Height)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*ImageDescriptor, error) {
	// Open errors already name the path
	return runMany(ctx, len(paths), func(i int) (*ImageDescriptor, error) {
		return Open(paths[i], opts...)
	})
}

// runMany runs fn for indexes [0, n) with bounded parallelism.
func runMany(ctx context.Context, n int, fn func(i int) (*ImageDescriptor, error)) ([]*ImageDescriptor, error) {
	if n == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*ImageDescriptor, n)

	for i := range n {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			img, err := fn(i)
			if err != nil {
				return err
			}

			results[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
