package source

type (
	// FileID uniquely identifies an input within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about an input.
	FileFlags uint8
)

const (
	// FileVirtual marks input added from memory (stdin, -e text, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks input whose UTF-8 byte order mark was stripped on load.
	FileHadBOM
)

// File captures metadata and content for a single input text.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in an input.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
