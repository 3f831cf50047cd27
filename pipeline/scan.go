package pipeline

// scan.go — folder scanning for the convert_html_to_markdown tool. Single
// pass, best effort; files appearing or vanishing mid-scan are not handled.

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ScanEntry is one candidate HTML file found in a folder.
type ScanEntry struct {
	Path        string
	HasMarkdown bool // a same-base-name .md already exists alongside
}

// ScanFolder lists .html/.htm files in dir, marking those that already have a
// converted .md sibling. Returns a directory-not-found error when dir does
// not exist or is not a directory.
func ScanFolder(dir string) ([]ScanEntry, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	mdStems := make(map[string]bool)
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".md") {
			mdStems[stem(e.Name())] = true
		}
	}

	var out []ScanEntry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".html" && ext != ".htm" {
			continue
		}
		out = append(out, ScanEntry{
			Path:        filepath.Join(dir, e.Name()),
			HasMarkdown: mdStems[stem(e.Name())],
		})
	}
	return out, nil
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// RunFolder scans dir and converts every HTML file lacking a Markdown
// counterpart, writing outputs into dir itself. Already-converted files are
// reported as skipped. An empty or fully-converted folder yields an empty
// summary, not an error.
func (r *Runner) RunFolder(ctx context.Context, dir string) (*Summary, error) {
	dir = stripQuotes(dir)
	entries, err := ScanFolder(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	var pending []string
	for _, e := range entries {
		if e.HasMarkdown {
			r.log.Debug("skipping converted file", "path", e.Path)
			summary.add(SourceResult{Source: e.Path, Status: StatusSkipped})
			continue
		}
		pending = append(pending, e.Path)
	}

	if len(pending) == 0 {
		r.log.Info("no new HTML files to convert", "dir", dir)
		return summary, nil
	}

	converted, err := r.Run(ctx, pending, dir)
	if err != nil {
		return nil, err
	}
	for _, res := range converted.Results {
		summary.add(res)
	}
	return summary, nil
}
