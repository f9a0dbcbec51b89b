package types

// Chunk type tags decoded by this library.
const (
	ChunkIHDR = "IHDR"
	ChunkTEXt = "tEXt"
	ChunkTIME = "tIME"
	ChunkGAMA = "gAMA"
)

// RawChunk is one chunk record as it appears in the file, minus its type tag
// and CRC. Length always equals len(Data).
type RawChunk struct {
	Data   []byte
	Length uint32
}

// IsCritical reports whether a chunk type is critical, i.e. its first letter
// is upper case. The library does not enforce the convention.
func IsCritical(chunkType string) bool {
	return len(chunkType) > 0 && chunkType[0] >= 'A' && chunkType[0] <= 'Z'
}

// ChunkTable groups raw chunks by type tag. Chunks of the same type keep
// file order; Types returns the distinct tags in first-seen order.
type ChunkTable struct {
	chunks map[string][]RawChunk
	order  []string
}

// NewChunkTable returns an empty table.
func NewChunkTable() *ChunkTable {
	return &ChunkTable{chunks: make(map[string][]RawChunk)}
}

// Add appends a chunk under its type tag.
func (t *ChunkTable) Add(chunkType string, c RawChunk) {
	if _, ok := t.chunks[chunkType]; !ok {
		t.order = append(t.order, chunkType)
	}
	t.chunks[chunkType] = append(t.chunks[chunkType], c)
}

// Get returns every chunk of the given type in file order, or nil.
func (t *ChunkTable) Get(chunkType string) []RawChunk {
	return t.chunks[chunkType]
}

// Has reports whether at least one chunk of the given type exists.
func (t *ChunkTable) Has(chunkType string) bool {
	return len(t.chunks[chunkType]) > 0
}

// Types returns the distinct chunk types in first-seen order.
//
// The returned slice should not be modified.
func (t *ChunkTable) Types() []string {
	return t.order
}

// Len returns the total number of chunks in the table.
func (t *ChunkTable) Len() int {
	n := 0
	for _, cs := range t.chunks {
		n += len(cs)
	}
	return n
}
