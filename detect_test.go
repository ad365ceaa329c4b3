package eq2svg_test

import (
	"testing"

	eq2svg "github.com/alnah/go-eq2svg"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want eq2svg.Filetype
	}{
		{
			name: "csv extension",
			path: "equations.csv",
			want: eq2svg.FiletypeCSV,
		},
		{
			name: "md extension",
			path: "notes.md",
			want: eq2svg.FiletypeMarkdown,
		},
		{
			name: "markdown extension",
			path: "notes.markdown",
			want: eq2svg.FiletypeMarkdown,
		},
		{
			name: "nested path keeps last extension",
			path: "dir/sub/archive.tar.csv",
			want: eq2svg.FiletypeCSV,
		},
		{
			name: "uppercase extension is unknown (case-sensitive match)",
			path: "equations.CSV",
			want: eq2svg.FiletypeUnknown,
		},
		{
			name: "mixed case md is unknown",
			path: "notes.Md",
			want: eq2svg.FiletypeUnknown,
		},
		{
			name: "txt extension is unknown",
			path: "equations.txt",
			want: eq2svg.FiletypeUnknown,
		},
		{
			name: "no extension is unknown",
			path: "equations",
			want: eq2svg.FiletypeUnknown,
		},
		{
			name: "empty path is unknown",
			path: "",
			want: eq2svg.FiletypeUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := eq2svg.Detect(tt.path)
			if got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFiletypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ft   eq2svg.Filetype
		want string
	}{
		{eq2svg.FiletypeCSV, "csv"},
		{eq2svg.FiletypeMarkdown, "markdown"},
		{eq2svg.FiletypeUnknown, "unknown"},
	}

	for _, tt := range tests {
		tt := tt
		if got := tt.ft.String(); got != tt.want {
			t.Errorf("Filetype(%d).String() = %q, want %q", tt.ft, got, tt.want)
		}
	}
}
