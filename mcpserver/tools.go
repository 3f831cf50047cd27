package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/iljaas/docmd/converter"
	"github.com/iljaas/docmd/logging"
	"github.com/iljaas/docmd/pipeline"
)

// Tool argument keys, shared between schema definitions and argument
// extraction so a typo in one place is caught by the other.
const (
	argSources   = "sources"
	argOutputDir = "output_dir"
	argFolder    = "folder"
)

// Tools holds the handlers behind the registered MCP tools.
type Tools struct {
	Runner    *pipeline.Runner
	Converter *converter.Converter
	Log       logging.Logger
}

// Register binds the tool definitions to their handlers.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("convert_to_markdown",
			mcp.WithDescription("Convert one or more documents to Markdown and save them as .md files. "+
				"Sources may be absolute file paths or http/https URLs. "+
				"Supported formats: HTML, HTM, CSV, JSON, XML, TXT, MD, DOCX, XLSX, XLS, PDF, PNG, JPG, JPEG. "+
				"A failing source is reported in the summary and does not abort the batch."),
			mcp.WithArray(argSources,
				mcp.Required(),
				mcp.Description("Ordered list of absolute file paths or URLs to convert"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithString(argOutputDir,
				mcp.Description("Directory the .md files are written to. Defaults to each "+
					"source file's own directory, or the configured output directory for URL sources."),
			),
		),
		t.ConvertToMarkdown,
	)

	s.AddTool(
		mcp.NewTool("convert_html_to_markdown",
			mcp.WithDescription("Convert every HTML file in a folder to Markdown, skipping files "+
				"that already have a same-named .md next to them. Outputs are written into the folder itself."),
			mcp.WithString(argFolder,
				mcp.Required(),
				mcp.Description("Absolute path of the folder to scan for .html files"),
			),
		),
		t.ConvertHTMLFolder,
	)

	s.AddTool(
		mcp.NewTool("get_conversion_info",
			mcp.WithDescription("Return supported file formats and the active conversion configuration."),
		),
		t.ConversionInfo,
	)
}

// ConvertToMarkdown handles the convert_to_markdown tool.
func (t *Tools) ConvertToMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sources, err := stringSliceArg(req, argSources)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	outputDir := req.GetString(argOutputDir, "")

	summary, err := t.Runner.Run(ctx, sources, outputDir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return summaryResult(summary)
}

// ConvertHTMLFolder handles the convert_html_to_markdown tool.
func (t *Tools) ConvertHTMLFolder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder, err := req.RequireString(argFolder)
	if err != nil {
		return mcp.NewToolResultError(argFolder + " is required"), nil
	}

	summary, err := t.Runner.RunFolder(ctx, folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return summaryResult(summary)
}

// ConversionInfo handles the get_conversion_info tool.
func (t *Tools) ConversionInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(t.Converter.Info()), nil
}

// stringSliceArg extracts a required non-empty []string argument.
func stringSliceArg(req mcp.CallToolRequest, key string) ([]string, error) {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%s must be a non-empty array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, fmt.Errorf("%s must contain only non-empty strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}

func summaryResult(summary *pipeline.Summary) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
