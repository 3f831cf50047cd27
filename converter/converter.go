// Package converter is the conversion delegate: it accepts a local file path
// or an http/https URL and returns the document rendered as Markdown. Format
// parsing is delegated to libraries (html-to-markdown, ledongthuc/pdf,
// excelize); this package owns routing, limits, and the glue between them.
package converter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"
)

// Options configures a Converter.
type Options struct {
	// MaxFileBytes rejects local files larger than this. Zero means no limit.
	MaxFileBytes int64
	// FetchTimeout bounds HTTP fetches of URL sources.
	FetchTimeout time.Duration
}

// Converter converts local files and URLs to Markdown.
type Converter struct {
	formats  *formatTable
	client   *http.Client
	maxBytes int64
}

// New creates a Converter with the given options.
func New(opts Options) *Converter {
	return &Converter{
		formats:  newFormatTable(),
		client:   &http.Client{Timeout: opts.FetchTimeout},
		maxBytes: opts.MaxFileBytes,
	}
}

// IsURL reports whether source should be fetched over HTTP rather than read
// from the local filesystem.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Convert routes source to ConvertURL or ConvertFile. file:// URIs are
// resolved to local paths.
func (c *Converter) Convert(ctx context.Context, source string) (string, error) {
	if IsURL(source) {
		return c.ConvertURL(ctx, source)
	}
	if u, err := url.Parse(source); err == nil && u.Scheme == "file" {
		return c.ConvertFile(ctx, u.Path)
	}
	return c.ConvertFile(ctx, source)
}

// ConvertFile converts a local file to Markdown.
func (c *Converter) ConvertFile(_ context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("source not found: %s", path)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source is a directory: %s", path)
	}
	if c.maxBytes > 0 && info.Size() > c.maxBytes {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), c.maxBytes)
	}
	return c.formats.convertFile(path)
}

// ConvertURL fetches an http/https URL and converts the response to Markdown.
// HTML responses are cleaned and converted; anything served as plain text or
// Markdown passes through unchanged.
func (c *Converter) ConvertURL(ctx context.Context, rawURL string) (string, error) {
	return c.formats.convertURL(ctx, c.client, rawURL)
}

// CanConvert reports whether the file extension is a supported format.
func (c *Converter) CanConvert(path string) bool {
	return c.formats.supports(path)
}

// SupportedFormats returns the supported extensions without the leading dot,
// sorted.
func (c *Converter) SupportedFormats() []string {
	fmts := c.formats.extensions()
	sort.Strings(fmts)
	return fmts
}

// Info returns a Markdown summary of supported formats and active limits,
// served by the get_conversion_info tool.
func (c *Converter) Info() string {
	limit := "unlimited"
	if c.maxBytes > 0 {
		limit = fmt.Sprintf("%d MB", c.maxBytes>>20)
	}
	ocr := "not available (tesseract not on PATH)"
	if ocrAvailable() {
		ocr = "available"
	}
	return fmt.Sprintf(`# docmd Conversion Info

## Supported Formats
%s

## Configuration
- Max file size: %s
- URL fetch timeout: %s
- Image OCR: %s`,
		"- "+strings.Join(c.SupportedFormats(), "\n- "),
		limit,
		c.client.Timeout,
		ocr,
	)
}
