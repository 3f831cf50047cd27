package converter

// pdf.go — PDF → Markdown via text-layer extraction with ledongthuc/pdf.
// Only the embedded text layer is read; scanned image-only PDFs come back
// empty rather than failing.

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// convertPDF is the formatFn for .pdf files. Pages are separated by a
// horizontal rule so page boundaries survive into the Markdown.
func convertPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	// Font cache shared across pages; GetPlainText needs resolved fonts.
	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("extract text from page %d of %s: %w", i, path, err)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}

	return strings.Join(pages, "\n\n---\n\n"), nil
}
