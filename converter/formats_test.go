package converter

import "testing"

func TestRenderMarkdownTable_Empty(t *testing.T) {
	if got := renderMarkdownTable(nil); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderMarkdownTable_RaggedRowsPadded(t *testing.T) {
	out := renderMarkdownTable([][]string{
		{"A", "B", "C"},
		{"1"},
	})
	assertContains(t, out, "| A | B | C |")
	assertContains(t, out, "| 1 |  |  |")
}

func TestRenderMarkdownTable_EscapesPipes(t *testing.T) {
	out := renderMarkdownTable([][]string{
		{"cmd"},
		{"a|b"},
	})
	assertContains(t, out, `a\|b`)
}

func TestConvertCSVFile_RaggedRows(t *testing.T) {
	path := writeTempFile(t, "ragged.csv", "A,B,C\n1,2\n")
	out, err := convertCSVFile(path)
	assertNoErr(t, err)
	assertContains(t, out, "| A | B | C |")
}

func TestConvertJSONFile_InvalidFallsBackToFence(t *testing.T) {
	path := writeTempFile(t, "bad.json", "{not json")
	out, err := convertJSONFile(path)
	assertNoErr(t, err)
	assertContains(t, out, "```json")
	assertContains(t, out, "{not json")
}

func TestConvertXMLFile_Fenced(t *testing.T) {
	path := writeTempFile(t, "doc.xml", "<root><a/></root>")
	out, err := convertXMLFile(path)
	assertNoErr(t, err)
	assertContains(t, out, "```xml")
	assertContains(t, out, "<root>")
}

func TestFormatTable_Supports(t *testing.T) {
	ft := newFormatTable()
	for _, tc := range []struct {
		path string
		want bool
	}{
		{"report.PDF", true},
		{"page.html", true},
		{"sheet.xls", true},
		{"photo.jpeg", true},
		{"archive.zip", false},
		{"noext", false},
	} {
		if got := ft.supports(tc.path); got != tc.want {
			t.Errorf("supports(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
