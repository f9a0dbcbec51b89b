package png

import (
	"bytes"
	"testing"

	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/types"
)

type testChunk struct {
	typ  string
	data []byte
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

func ihdr(h types.ImageHeader) testChunk {
	return testChunk{types.ChunkIHDR, EncodeHeader(h)}
}

func iend() testChunk {
	return testChunk{"IEND", nil}
}

var rgbHeader = types.ImageHeader{
	Width:     640,
	Height:    480,
	BitDepth:  8,
	ColorType: types.ColorTruecolor,
}
