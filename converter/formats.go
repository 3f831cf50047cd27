package converter

// formats.go — per-extension format dispatch.
//
// Each supported extension maps to a formatFn. Text-based formats are read
// here and handed to the matching render helper; binary formats (docx, xlsx,
// pdf, images) open the file themselves.

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// formatFn converts one local file to Markdown.
type formatFn func(path string) (string, error)

// formatTable routes files to format converters by extension.
type formatTable struct {
	htmlConverter *md.Converter
	byExt         map[string]formatFn
}

func newFormatTable() *formatTable {
	t := &formatTable{
		htmlConverter: md.NewConverter("", true, nil),
	}
	t.byExt = map[string]formatFn{
		".html": t.convertHTMLFile,
		".htm":  t.convertHTMLFile,
		".csv":  convertCSVFile,
		".json": convertJSONFile,
		".xml":  convertXMLFile,
		".txt":  readVerbatim,
		".md":   readVerbatim,
		".docx": convertDOCX,
		".xlsx": convertWorkbook,
		".xls":  convertWorkbook,
		".pdf":  convertPDF,
		".png":  convertImage,
		".jpg":  convertImage,
		".jpeg": convertImage,
	}
	return t
}

func (t *formatTable) supports(path string) bool {
	_, ok := t.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// extensions returns the supported extensions without the leading dot.
func (t *formatTable) extensions() []string {
	out := make([]string, 0, len(t.byExt))
	for ext := range t.byExt {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

func (t *formatTable) convertFile(path string) (string, error) {
	fn, ok := t.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported format: %s", filepath.Base(path))
	}
	return fn(path)
}

// convertURL fetches rawURL and converts the body. The Content-Type header
// decides the treatment: HTML is cleaned and converted, everything else is
// passed through as text.
func (t *formatTable) convertURL(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", rawURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", rawURL, err)
	}

	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "text/html") || ct == "" {
		return t.convertHTML(string(body))
	}
	return string(body), nil
}

// --- format converters -------------------------------------------------------

func (t *formatTable) convertHTMLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return t.convertHTML(string(data))
}

// convertHTML cleans the document and renders it as Markdown. If either step
// fails the raw HTML is returned fenced, so the caller still gets content.
func (t *formatTable) convertHTML(html string) (string, error) {
	cleaned, err := cleanHTML(html)
	if err != nil {
		cleaned = html
	}
	out, err := t.htmlConverter.ConvertString(cleaned)
	if err != nil {
		return fmt.Sprintf("```html\n%s\n```", html), nil
	}
	return out, nil
}

func readVerbatim(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func convertCSVFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	r := csv.NewReader(strings.NewReader(string(data)))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Sprintf("```csv\n%s\n```", string(data)), nil
	}
	return renderMarkdownTable(records), nil
}

func convertJSONFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Sprintf("```json\n%s\n```", string(data)), nil
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("```json\n%s\n```", string(data)), nil
	}
	return fmt.Sprintf("```json\n%s\n```", string(pretty)), nil
}

func convertXMLFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return fmt.Sprintf("```xml\n%s\n```", string(data)), nil
}
