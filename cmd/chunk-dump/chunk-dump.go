package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/blakeanedved/ril"
	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/registry"
	"github.com/blakeanedved/ril/internal/types"
)

// Lists every chunk record of a PNG file, including ones the library ignores.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chunk-dump <file.png>")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := ril.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := dumpChunks(os.Stdout, path, data); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// dumpChunks writes one line per chunk record in data to w.
func dumpChunks(w io.Writer, path string, data []byte) error {
	if len(data) < len(chunk.Signature) || string(data[:len(chunk.Signature)]) != chunk.Signature {
		return fmt.Errorf("%s is not a PNG file", path)
	}

	decoded := registry.Types()
	verifier := chunk.CRC32Verifier{}

	return chunk.Walk(data[len(chunk.Signature):], chunk.Options{
		Path: path,
		Base: int64(len(chunk.Signature)),
	}, func(rec chunk.Record) error {
		status := "ok"
		if err := verifier.Verify(rec); err != nil {
			status = "BAD CRC"
		}

		kind := "ancillary"
		if types.IsCritical(rec.Type) {
			kind = "critical"
		}

		handling := "skipped"
		if slices.Contains(decoded, rec.Type) {
			handling = "decoded"
		}

		_, err := fmt.Fprintf(w, "%s (size: %d, offset: %d, crc: %08x %s, %s, %s)\n",
			rec.Type, rec.Length, rec.Offset, rec.CRC, status, kind, handling)
		return err
	})
}
