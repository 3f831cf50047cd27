package converter

// docx.go — DOCX → Markdown.
//
// A .docx is a ZIP with the body at word/document.xml. The OOXML is
// stream-parsed with encoding/xml, tracking paragraph, run, and table state
// to emit headings, lists, bold/italic runs, and tables.

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// convertDOCX is the formatFn for .docx files.
func convertDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml in %s: %w", path, err)
		}
		defer rc.Close()
		return renderDocumentXML(rc)
	}
	return "", fmt.Errorf("word/document.xml not found in %s", path)
}

type docxState struct {
	out   strings.Builder
	stack []string // open element names, for ancestor checks

	paraStyle string
	listLevel int // -1 when the paragraph is not a list item
	paraText  strings.Builder

	runBold   bool
	runItalic bool
	runText   strings.Builder

	inTable  bool
	tableRow []string
	table    [][]string
	inCell   bool
	cellText strings.Builder
}

func (s *docxState) inside(name string) bool {
	for _, e := range s.stack {
		if e == name {
			return true
		}
	}
	return false
}

func renderDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	s := &docxState{listLevel: -1}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			s.stack = append(s.stack, t.Name.Local)
			s.open(t)
		case xml.EndElement:
			s.close(t.Name.Local)
			if len(s.stack) > 0 {
				s.stack = s.stack[:len(s.stack)-1]
			}
		case xml.CharData:
			if s.inCell {
				s.cellText.Write(t)
			} else if s.inside("r") {
				s.runText.Write(t)
			}
		}
	}
	return s.out.String(), nil
}

func (s *docxState) open(t xml.StartElement) {
	switch t.Name.Local {
	case "tbl":
		s.inTable = true
		s.table = nil
	case "tr":
		s.tableRow = nil
	case "tc":
		s.inCell = true
		s.cellText.Reset()
	case "p":
		s.paraStyle = ""
		s.listLevel = -1
		s.paraText.Reset()
	case "pStyle":
		if s.inside("pPr") {
			s.paraStyle = xmlAttr(t, "val")
		}
	case "numPr":
		if s.inside("pPr") {
			s.listLevel = 0
		}
	case "ilvl":
		if s.inside("numPr") {
			if n, err := strconv.Atoi(xmlAttr(t, "val")); err == nil {
				s.listLevel = n
			}
		}
	case "r":
		s.runBold = false
		s.runItalic = false
		s.runText.Reset()
	case "b":
		if s.inside("rPr") && xmlAttr(t, "val") != "0" {
			s.runBold = true
		}
	case "i":
		if s.inside("rPr") && xmlAttr(t, "val") != "0" {
			s.runItalic = true
		}
	case "br":
		if s.inside("r") {
			s.runText.WriteByte('\n')
		}
	}
}

func (s *docxState) close(local string) {
	switch local {
	case "r":
		if !s.inCell {
			s.paraText.WriteString(inlineWrap(s.runText.String(), s.runBold, s.runItalic))
		}
	case "p":
		if text := strings.TrimSpace(s.paraText.String()); text != "" && !s.inCell {
			s.out.WriteString(paragraphMarkdown(text, s.paraStyle, s.listLevel))
		}
	case "tc":
		if s.inTable {
			s.tableRow = append(s.tableRow, strings.TrimSpace(s.cellText.String()))
			s.inCell = false
		}
	case "tr":
		if s.inTable {
			s.table = append(s.table, s.tableRow)
		}
	case "tbl":
		if s.inTable {
			s.out.WriteString(renderMarkdownTable(s.table))
			s.out.WriteByte('\n')
			s.inTable = false
		}
	}
}

// paragraphMarkdown renders one paragraph, mapping Word heading styles to #
// levels and numbering properties to list items.
func paragraphMarkdown(text, style string, listLevel int) string {
	if lvl := headingLevel(style); lvl > 0 {
		return strings.Repeat("#", lvl) + " " + text + "\n\n"
	}
	if listLevel >= 0 {
		return strings.Repeat("  ", listLevel) + "- " + text + "\n"
	}
	return text + "\n\n"
}

func headingLevel(style string) int {
	if !strings.HasPrefix(style, "Heading") {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(style, "Heading"))
	if err != nil || n < 1 || n > 6 {
		return 0
	}
	return n
}

func inlineWrap(text string, bold, italic bool) string {
	if text == "" {
		return text
	}
	switch {
	case bold && italic:
		return "***" + text + "***"
	case bold:
		return "**" + text + "**"
	case italic:
		return "*" + text + "*"
	}
	return text
}

func xmlAttr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
