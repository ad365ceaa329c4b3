package eq2svg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// GalleryFileName is the HTML file written into the output directory.
const GalleryFileName = "gallery.html"

// galleryTemplate wraps goldmark's fragment output in a complete HTML5
// document.
const galleryTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Equations</title>
</head>
<body>
%s
</body>
</html>`

// galleryMarkdown is the goldmark instance for gallery generation.
// Unsafe rendering is not needed: the generated Markdown contains only
// headings and image references.
var galleryMarkdown = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithXHTML(),
	),
)

// WriteGallery generates {outputDir}/gallery.html listing the SVG of every
// active equation. It assumes the batch rendered successfully, so each
// active equation has a {name}.svg beside the gallery.
func WriteGallery(outputDir string, equations []Equation) error {
	var md strings.Builder
	md.WriteString("# Equations\n")
	for _, eq := range equations {
		if !eq.Active {
			continue
		}
		fmt.Fprintf(&md, "\n## %s\n\n![%s](%s.svg)\n", eq.Name, eq.Name, eq.Name)
	}

	var buf bytes.Buffer
	if err := galleryMarkdown.Convert([]byte(md.String()), &buf); err != nil {
		return fmt.Errorf("%w: %v", ErrGalleryRender, err)
	}

	page := fmt.Sprintf(galleryTemplate, buf.String())
	path := filepath.Join(outputDir, GalleryFileName)
	if err := os.WriteFile(path, []byte(page), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrGalleryRender, err)
	}
	return nil
}
