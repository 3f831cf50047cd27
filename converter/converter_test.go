package converter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestConverter() *Converter {
	return New(Options{MaxFileBytes: 50 << 20, FetchTimeout: 5 * time.Second})
}

// ---- ConvertFile -----------------------------------------------------------

func TestConvertFile_HTML(t *testing.T) {
	path := writeTempFile(t, "page.html",
		`<html><body><h1>Hello</h1><p>World</p></body></html>`)
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "Hello")
	assertContains(t, out, "World")
}

func TestConvertFile_CSV(t *testing.T) {
	path := writeTempFile(t, "data.csv", "A,B\n1,2\n")
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "| A | B |")
	assertContains(t, out, "| 1 | 2 |")
}

func TestConvertFile_JSON(t *testing.T) {
	path := writeTempFile(t, "data.json", `{"key":"value"}`)
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "```json")
	assertContains(t, out, `"key"`)
}

func TestConvertFile_Markdown_Passthrough(t *testing.T) {
	path := writeTempFile(t, "notes.md", "# Already markdown\n")
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	if out != "# Already markdown\n" {
		t.Errorf("markdown should pass through unchanged, got %q", out)
	}
}

func TestConvertFile_DOCX(t *testing.T) {
	path := makeDocx(t,
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>`+
			`<w:r><w:t>Document Title</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Body text.</w:t></w:r></w:p>`)
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "# Document Title")
	assertContains(t, out, "Body text.")
}

func TestConvertFile_XLSX(t *testing.T) {
	path := makeXLSX(t, "Inventory", [][]string{
		{"Product", "Price"},
		{"Widget", "9.99"},
	})
	out, err := newTestConverter().ConvertFile(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "## Inventory")
	assertContains(t, out, "Widget")
}

func TestConvertFile_NotFound(t *testing.T) {
	_, err := newTestConverter().ConvertFile(context.Background(), "/no/such/file.html")
	assertErr(t, err)
	assertContains(t, err.Error(), "source not found")
}

func TestConvertFile_Directory(t *testing.T) {
	_, err := newTestConverter().ConvertFile(context.Background(), t.TempDir())
	assertErr(t, err)
}

func TestConvertFile_UnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "archive.tar", "not convertible")
	_, err := newTestConverter().ConvertFile(context.Background(), path)
	assertErr(t, err)
	assertContains(t, err.Error(), "unsupported format")
}

func TestConvertFile_TooLarge(t *testing.T) {
	path := writeTempFile(t, "big.txt", "xx")
	conv := New(Options{MaxFileBytes: 1})
	_, err := conv.ConvertFile(context.Background(), path)
	assertErr(t, err)
	assertContains(t, err.Error(), "file too large")
}

// ---- Convert routing -------------------------------------------------------

func TestConvert_LocalPath(t *testing.T) {
	path := writeTempFile(t, "plain.txt", "local text")
	out, err := newTestConverter().Convert(context.Background(), path)
	assertNoErr(t, err)
	assertContains(t, out, "local text")
}

func TestConvert_FileScheme(t *testing.T) {
	path := writeTempFile(t, "page.html", `<p>via file URI</p>`)
	out, err := newTestConverter().Convert(context.Background(), "file://"+path)
	assertNoErr(t, err)
	assertContains(t, out, "via file URI")
}

// ---- ConvertURL ------------------------------------------------------------

func TestConvertURL_HTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h2>Remote Page</h2></body></html>`))
	}))
	defer srv.Close()

	out, err := newTestConverter().Convert(context.Background(), srv.URL)
	assertNoErr(t, err)
	assertContains(t, out, "Remote Page")
}

func TestConvertURL_PlainTextPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("plain body"))
	}))
	defer srv.Close()

	out, err := newTestConverter().ConvertURL(context.Background(), srv.URL)
	assertNoErr(t, err)
	if out != "plain body" {
		t.Errorf("got %q, want passthrough of plain body", out)
	}
}

func TestConvertURL_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestConverter().ConvertURL(context.Background(), srv.URL+"/missing")
	assertErr(t, err)
	assertContains(t, err.Error(), "HTTP 404")
}

func TestConvertURL_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestConverter().ConvertURL(context.Background(), url)
	assertErr(t, err)
}

// ---- Info ------------------------------------------------------------------

func TestInfo_ListsFormats(t *testing.T) {
	out := newTestConverter().Info()
	for _, f := range []string{"html", "csv", "json", "docx", "xlsx", "pdf"} {
		assertContains(t, out, f)
	}
	assertContains(t, out, "50 MB")
}

func TestSupportedFormats_Sorted(t *testing.T) {
	fmts := newTestConverter().SupportedFormats()
	for i := 1; i < len(fmts); i++ {
		if fmts[i-1] > fmts[i] {
			t.Fatalf("formats not sorted: %v", fmts)
		}
	}
}
