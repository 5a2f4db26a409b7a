package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-portfolio/internal/scaffold"
	"github.com/goliatone/go-portfolio/pkg/augment"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render"
	"github.com/goliatone/go-portfolio/pkg/renderers/classic"
	"github.com/goliatone/go-portfolio/pkg/site"
)

func main() {
	var (
		input     = flag.String("input", "portfolio.json", "portfolio document path (JSON or YAML)")
		templates = flag.String("templates", ".", "directory containing the page templates")
		output    = flag.String("output", ".", "directory the rendered pages are written to")
		icons     = flag.String("icons", ".", "directory svg_path references resolve against")
		markdown  = flag.String("markdown", "", "comma-separated document keys rendered from markdown to <key>_html")
		sanitize  = flag.Bool("sanitize-icons", false, "run inlined SVG markup through the icon sanitizer")
		initMode  = flag.Bool("init", false, "interactively scaffold a new portfolio.json and exit")
		logLevel  = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := newLogger(*logLevel)
	ctx := context.Background()

	if *initMode {
		if err := scaffold.New(nil, classic.TemplatesFS()).Run(ctx, *output); err != nil {
			logger.Error("scaffold failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Starter portfolio written to %s\n", *output)
		return
	}

	augmentOptions := []augment.Option{
		augment.WithIconFS(os.DirFS(*icons)),
	}
	if *sanitize {
		augmentOptions = append(augmentOptions, augment.WithIconSanitizer())
	}
	if fields := splitFields(*markdown); len(fields) > 0 {
		augmentOptions = append(augmentOptions, augment.WithMarkdownFields(fields...))
	}

	renderer, err := classic.New(classic.WithTemplatesDir(*templates))
	if err != nil {
		logger.Error("configure renderer", "error", err)
		os.Exit(1)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	gen := site.New(
		site.WithAugmenter(augment.New(augmentOptions...)),
		site.WithRegistry(registry),
	)

	result, err := gen.Run(ctx, site.Request{
		Source:    portfolio.SourceFromFile(*input),
		OutputDir: *output,
	})
	if err != nil {
		logger.Error("generate site", "error", err)
		os.Exit(1)
	}

	for _, path := range result.Paths {
		logger.Debug("wrote page", "path", path)
	}
	fmt.Println("HTML files generated successfully!")
}

func splitFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
