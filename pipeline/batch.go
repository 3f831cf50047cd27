// Package pipeline runs conversion batches: it resolves output paths, invokes
// the conversion delegate per source, writes Markdown files, and collects a
// per-source summary. Sources are processed sequentially; a failing source is
// recorded and never aborts the rest of the batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/iljaas/docmd/converter"
	"github.com/iljaas/docmd/logging"
)

// Delegate is the conversion capability the pipeline drives. *converter.Converter
// satisfies it; tests substitute fakes.
type Delegate interface {
	Convert(ctx context.Context, source string) (string, error)
}

// Result statuses.
const (
	StatusConverted = "converted"
	StatusSkipped   = "skipped"
	StatusError     = "error"
)

// SourceResult is the outcome for one source in a batch.
type SourceResult struct {
	Source     string `json:"source"`
	Status     string `json:"status"`
	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Summary is returned to the MCP client after a batch completes.
type Summary struct {
	Converted int            `json:"converted"`
	Skipped   int            `json:"skipped"`
	Failed    int            `json:"failed"`
	Results   []SourceResult `json:"results"`
}

func (s *Summary) add(r SourceResult) {
	switch r.Status {
	case StatusConverted:
		s.Converted++
	case StatusSkipped:
		s.Skipped++
	case StatusError:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// Runner executes conversion batches.
type Runner struct {
	delegate  Delegate
	outputDir string // fallback for URL sources when the request names none
	log       logging.Logger
}

// NewRunner creates a Runner writing URL-source output to defaultOutputDir
// when a request does not specify one.
func NewRunner(d Delegate, defaultOutputDir string, log logging.Logger) *Runner {
	return &Runner{delegate: d, outputDir: defaultOutputDir, log: log}
}

// Run converts sources in order and writes one .md file per success.
// outputDir may be empty: local sources then write next to themselves, URL
// sources into the runner's default directory. An empty source list is a
// request-level error.
func (r *Runner) Run(ctx context.Context, sources []string, outputDir string) (*Summary, error) {
	if len(sources) == 0 {
		return nil, errors.New("sources must not be empty")
	}

	summary := &Summary{}
	for i, raw := range sources {
		source := stripQuotes(raw)
		r.log.Info("converting source", "source", source, "index", i+1, "total", len(sources))

		outPath := r.outputPathFor(source, outputDir)
		markdown, err := r.delegate.Convert(ctx, source)
		if err == nil {
			err = writeMarkdown(outPath, markdown)
		}
		if err != nil {
			r.log.Error(err, "source failed", "source", source)
			summary.add(SourceResult{Source: source, Status: StatusError, Error: err.Error()})
			continue
		}
		summary.add(SourceResult{Source: source, Status: StatusConverted, OutputPath: outPath})
	}
	return summary, nil
}

// outputPathFor resolves where the Markdown for source lands.
func (r *Runner) outputPathFor(source, outputDir string) string {
	dir := outputDir
	if dir == "" {
		if converter.IsURL(source) {
			dir = r.outputDir
		} else {
			dir = filepath.Dir(source)
		}
	}
	return filepath.Join(dir, baseName(source)+".md")
}

// baseName returns the source's file name without extension. For URLs the
// last path segment is used; a URL with no usable segment becomes "index".
func baseName(source string) string {
	name := source
	if converter.IsURL(source) {
		if u, err := url.Parse(source); err == nil {
			name = path.Base(u.Path)
		}
	}
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == "/" {
		return "index"
	}
	return name
}

// writeMarkdown writes content to dest, creating parent directories.
func writeMarkdown(dest, content string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// stripQuotes drops surrounding single or double quotes that clients often
// paste around paths.
func stripQuotes(s string) string {
	return strings.Trim(s, `"'`)
}
