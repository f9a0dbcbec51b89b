package ril_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/blakeanedved/ril/internal/chunk"
)

type testChunk struct {
	typ  string
	data []byte
}

// ihdrRGB is a 640x480 8-bit truecolor header payload.
var ihdrRGB = []byte{
	0x00, 0x00, 0x02, 0x80,
	0x00, 0x00, 0x01, 0xE0,
	0x08, 0x02, 0x00, 0x00, 0x00,
}

// createPNG builds a PNG datastream from the given chunks.
func createPNG(t testing.TB, chunks ...testChunk) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w := chunk.NewWriter(buf)
	if err := w.WriteSignature(); err != nil {
		t.Fatal(err)
	}
	for _, c := range chunks {
		if err := w.WriteChunk(c.typ, c.data); err != nil {
			t.Fatalf("write %s: %v", c.typ, err)
		}
	}
	return buf.Bytes()
}

// createSimplePNG creates a small but complete PNG with every decoded chunk.
func createSimplePNG(t testing.TB) []byte {
	t.Helper()

	return createPNG(t,
		testChunk{"IHDR", ihdrRGB},
		testChunk{"gAMA", []byte{0x00, 0x00, 0xB1, 0x8F}},
		testChunk{"tEXt", []byte("Author\x00Jane Doe")},
		testChunk{"tIME", []byte{0x07, 0xE8, 12, 25, 9, 5, 3}},
		testChunk{"IDAT", []byte{0x78, 0x9C, 0x63, 0x00, 0x00}},
		testChunk{"IEND", nil},
	)
}

// writeTempPNG writes data to a file in a per-test directory.
func writeTempPNG(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	writeFile(t, path, data)
	return path
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
