package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/iljaas/docmd/config"
	"github.com/iljaas/docmd/converter"
	"github.com/iljaas/docmd/logging"
	"github.com/iljaas/docmd/mcpserver"
	"github.com/iljaas/docmd/pipeline"
)

func main() {
	root := &cobra.Command{
		Use:   "docmd",
		Short: "Document-to-Markdown MCP server",
	}

	root.PersistentFlags().String("output-dir", "", "default output directory for URL sources")
	root.PersistentFlags().Int64("max-file-bytes", config.DefaultMaxFileBytes, "maximum accepted source file size in bytes")
	root.PersistentFlags().Duration("fetch-timeout", 30*time.Second, "timeout for fetching URL sources")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	config.Init(root)

	root.AddCommand(&cobra.Command{
		Use:   "conversion",
		Short: "Start the conversion MCP server on stdio",
		RunE:  runConversion,
	})

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func runConversion(cmd *cobra.Command, args []string) error {
	logger := logging.New(config.LogLevel())

	conv := converter.New(converter.Options{
		MaxFileBytes: config.MaxFileBytes(),
		FetchTimeout: config.FetchTimeout(),
	})
	runner := pipeline.NewRunner(conv, config.OutputDir(), logger.WithName("pipeline"))
	srv := mcpserver.New(runner, conv, logger.WithName("mcp"))

	logger.Info("starting MCP server",
		"transport", "stdio",
		"output_dir", config.OutputDir(),
		"max_file_bytes", config.MaxFileBytes(),
	)
	return srv.ServeStdio()
}
