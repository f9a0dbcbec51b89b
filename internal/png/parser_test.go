package png

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/blakeanedved/ril/internal/chunk"
	"github.com/blakeanedved/ril/internal/types"
)

func TestParse_MinimalHeaderOnly(t *testing.T) {
	data := createPNG(t, ihdr(rgbHeader))

	img, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if img.ColorType != types.ColorTruecolor {
		t.Errorf("ColorType = %v, want Truecolor", img.ColorType)
	}
	if img.Width != 640 || img.Height != 480 || img.BitDepth != 8 {
		t.Errorf("header = %dx%d@%d, want 640x480@8", img.Width, img.Height, img.BitDepth)
	}
	if img.Text != nil {
		t.Errorf("Text = %v, want nil", img.Text)
	}
	if img.LastModified != nil {
		t.Errorf("LastModified = %q, want nil", *img.LastModified)
	}
	if img.Gamma != nil {
		t.Errorf("Gamma = %v, want nil", *img.Gamma)
	}
}

func TestParse_AllChunks(t *testing.T) {
	data := createPNG(t,
		ihdr(rgbHeader),
		testChunk{"gAMA", []byte{0x00, 0x00, 0xC3, 0x50}},
		testChunk{"tEXt", []byte("Author\x00Jane")},
		testChunk{"tIME", []byte{0x07, 0xE8, 12, 25, 9, 5, 3}},
		testChunk{"IDAT", []byte{0x78, 0x9C}},
		testChunk{"tEXt", []byte("Title\x00Sunset")},
		iend(),
	)

	img, err := Parse(data, "all.png", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	lastModified := "12/25/2024 9:05:03"
	gamma := 0.5
	want := &types.ImageDescriptor{
		ImageHeader:  rgbHeader,
		Text:         map[string]string{"Author": "Jane", "Title": "Sunset"},
		LastModified: &lastModified,
		Gamma:        &gamma,
		ChunkTypes:   []string{"IHDR", "gAMA", "tEXt", "tIME", "IDAT", "IEND"},
	}
	if diff := cmp.Diff(want, img); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_HeaderNotFirst(t *testing.T) {
	data := createPNG(t,
		testChunk{"tEXt", []byte("k\x00v")},
		ihdr(rgbHeader),
	)

	img, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if img.Width != 640 || img.Text["k"] != "v" {
		t.Errorf("unexpected descriptor: %+v", img)
	}
}

func TestParse_FirstHeaderWins(t *testing.T) {
	second := rgbHeader
	second.Width = 1

	data := createPNG(t, ihdr(rgbHeader), ihdr(second))

	img, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if img.Width != 640 {
		t.Errorf("Width = %d, want 640 (first IHDR)", img.Width)
	}
}

func TestParse_InvalidSignature(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte{0x89, 'P', 'N'}},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F'}},
		{"one byte off", append([]byte("\x89PNG\r\n\x1a\x0b"), make([]byte, 25)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, "x.png", Config{})
			var sigErr *types.InvalidSignatureError
			if !errors.As(err, &sigErr) {
				t.Fatalf("expected InvalidSignatureError, got %v", err)
			}
			if len(sigErr.Got) > 8 {
				t.Errorf("Got holds %d bytes, want at most 8", len(sigErr.Got))
			}
		})
	}
}

func TestParse_MissingHeader(t *testing.T) {
	tests := []struct {
		name   string
		chunks []testChunk
	}{
		{"no chunks", nil},
		{"only IEND", []testChunk{iend()}},
		{"metadata without header", []testChunk{
			{"tEXt", []byte("Author\x00Jane")},
			{"tIME", []byte{0x07, 0xE8, 12, 25, 9, 5, 3}},
			{"gAMA", []byte{0, 0, 0xC3, 0x50}},
			iend(),
		}},
		{"lowercase ihdr", []testChunk{{"ihdr", EncodeHeader(rgbHeader)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(createPNG(t, tt.chunks...), "", Config{})
			var missing *types.MissingChunkError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingChunkError, got %v", err)
			}
			if missing.Type != types.ChunkIHDR {
				t.Errorf("MissingChunkError.Type = %q, want IHDR", missing.Type)
			}
		})
	}
}

func TestParse_Truncated(t *testing.T) {
	data := createPNG(t, ihdr(rgbHeader), iend())

	_, err := Parse(data[:len(data)-2], "cut.png", Config{})
	var tc *types.TruncatedChunkError
	if !errors.As(err, &tc) {
		t.Fatalf("expected TruncatedChunkError, got %v", err)
	}
	if tc.Type != "IEND" || tc.What != "chunk CRC" {
		t.Errorf("truncation = %s/%s, want IEND/chunk CRC", tc.Type, tc.What)
	}
}

func TestParse_DecoderFailures(t *testing.T) {
	badColor := EncodeHeader(rgbHeader)
	badColor[9] = 5

	tests := []struct {
		name   string
		chunks []testChunk
		check  func(t *testing.T, err error)
	}{
		{
			name:   "invalid color type",
			chunks: []testChunk{{"IHDR", badColor}},
			check: func(t *testing.T, err error) {
				var e *types.InvalidColorTypeError
				if !errors.As(err, &e) || e.Value != 5 || e.Path != "bad.png" {
					t.Errorf("expected InvalidColorTypeError{5, bad.png}, got %v", err)
				}
			},
		},
		{
			name:   "short header",
			chunks: []testChunk{{"IHDR", make([]byte, 12)}},
			check:  expectMalformed(types.ChunkIHDR),
		},
		{
			name:   "short timestamp",
			chunks: []testChunk{ihdr(rgbHeader), {"tIME", []byte{0x07}}},
			check:  expectMalformed(types.ChunkTIME),
		},
		{
			name:   "short gamma",
			chunks: []testChunk{ihdr(rgbHeader), {"gAMA", []byte{0, 0, 1}}},
			check:  expectMalformed(types.ChunkGAMA),
		},
		{
			name:   "unterminated text keyword",
			chunks: []testChunk{ihdr(rgbHeader), {"tEXt", []byte("Author")}},
			check:  expectMalformed(types.ChunkTEXt),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Parse(createPNG(t, tt.chunks...), "bad.png", Config{})
			if err == nil {
				t.Fatal("expected error")
			}
			if img != nil {
				t.Error("no partial descriptor may be returned on failure")
			}
			tt.check(t, err)
		})
	}
}

func expectMalformed(chunkType string) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		t.Helper()
		var e *types.MalformedChunkError
		if !errors.As(err, &e) {
			t.Fatalf("expected MalformedChunkError, got %v", err)
		}
		if e.Type != chunkType {
			t.Errorf("MalformedChunkError.Type = %q, want %q", e.Type, chunkType)
		}
		if e.Path != "bad.png" {
			t.Errorf("MalformedChunkError.Path = %q, want bad.png", e.Path)
		}
	}
}

func TestParse_TextTagIsCaseSensitive(t *testing.T) {
	data := createPNG(t,
		ihdr(rgbHeader),
		testChunk{"tEXT", []byte("Author\x00Jane")},
	)

	img, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if img.Text != nil {
		t.Errorf("tEXT must not be decoded as tEXt, got %v", img.Text)
	}
}

func TestParse_UnknownChunksIgnored(t *testing.T) {
	data := createPNG(t,
		ihdr(rgbHeader),
		testChunk{"iCCP", []byte("profile\x00\x00junk")},
		testChunk{"eXIf", []byte{0x4D, 0x4D}},
		testChunk{"iTXt", []byte("k\x00\x00\x00\x00\x00v")},
		testChunk{"pHYs", make([]byte, 9)},
	)

	img, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if img.Text != nil || img.Gamma != nil || img.LastModified != nil {
		t.Errorf("unknown chunks should not populate optional fields: %+v", img)
	}
}

func TestParse_Idempotent(t *testing.T) {
	data := createPNG(t,
		ihdr(rgbHeader),
		testChunk{"tEXt", []byte("Author\x00Jane\x00Software\x00ril")},
		testChunk{"tIME", []byte{0x07, 0xE8, 12, 25, 9, 5, 3}},
		testChunk{"gAMA", []byte{0x00, 0x00, 0xB1, 0x8F}},
		iend(),
	)
	orig := bytes.Clone(data)

	first, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("first Parse failed: %v", err)
	}
	second, err := Parse(data, "", Config{})
	if err != nil {
		t.Fatalf("second Parse failed: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("parses differ (-first +second):\n%s", diff)
	}
	if !bytes.Equal(data, orig) {
		t.Error("Parse must not modify its input")
	}
}

func TestParse_Verifier(t *testing.T) {
	data := createPNG(t, ihdr(rgbHeader), iend())
	data[len(data)-1] ^= 0xFF // corrupt IEND CRC

	if _, err := Parse(data, "", Config{}); err != nil {
		t.Fatalf("CRC must be ignored by default: %v", err)
	}

	_, err := Parse(data, "crc.png", Config{Verifier: chunk.CRC32Verifier{}})
	var mismatch *types.ChecksumMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected ChecksumMismatchError, got %v", err)
	}
	if mismatch.Type != "IEND" || mismatch.Path != "crc.png" {
		t.Errorf("mismatch = %s in %s, want IEND in crc.png", mismatch.Type, mismatch.Path)
	}
}

func TestParse_Logger(t *testing.T) {
	data := createPNG(t,
		ihdr(rgbHeader),
		testChunk{"tEXt", []byte("Author\x00Jane")},
	)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Parse(data, "log.png", Config{Logger: logger}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out := logs.String()
	for _, want := range []string{"framed chunks", "decoded IHDR", "width=640", "key=Author", "path=log.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	data := createPNG(b,
		ihdr(rgbHeader),
		testChunk{"tEXt", []byte("Author\x00Jane")},
		testChunk{"tIME", []byte{0x07, 0xE8, 12, 25, 9, 5, 3}},
		testChunk{"gAMA", []byte{0x00, 0x00, 0xC3, 0x50}},
		testChunk{"IDAT", make([]byte, 4096)},
		iend(),
	)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := Parse(data, "", Config{}); err != nil {
			b.Fatal(err)
		}
	}
}
