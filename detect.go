package eq2svg

import "path/filepath"

// Filetype classifies a supported input format.
type Filetype int

// Supported input file types.
const (
	FiletypeUnknown Filetype = iota
	FiletypeCSV
	FiletypeMarkdown
)

// String returns a human-readable name for the filetype.
func (f Filetype) String() string {
	switch f {
	case FiletypeCSV:
		return "csv"
	case FiletypeMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Detect classifies a path by its file extension. The match is
// case-sensitive: ".CSV" is unknown. Unknown is terminal; callers must
// not attempt to parse such files.
func Detect(path string) Filetype {
	switch filepath.Ext(path) {
	case ".csv":
		return FiletypeCSV
	case ".md", ".markdown":
		return FiletypeMarkdown
	default:
		return FiletypeUnknown
	}
}
