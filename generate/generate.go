// Package generate orchestrates a manifest-to-source run: it loads a
// declaration manifest, builds the namespace, renders it and writes the
// result through an output sink.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sharpgen/sharpgen/manifest"
	"github.com/sharpgen/sharpgen/sink"
)

var validate = validator.New()

// Config holds the configuration for one generation run.
type Config struct {
	// Manifest is the path of the YAML declaration manifest.
	Manifest string `validate:"required"`

	// OutDir is the directory generated files are written to.
	// Defaults to the current directory.
	OutDir string

	// FileName is the output file name. When empty it is derived from
	// the manifest's namespace, lowercased with dots replaced by
	// underscores ("Acme.Models" writes acme_models.cs).
	FileName string

	// Formatted applies the cosmetic brace formatter to the output.
	Formatted bool

	// Sink overrides the output destination. When nil a filesystem
	// sink rooted at OutDir is used.
	Sink sink.OutputSink `validate:"-"`

	// Logger receives run progress. Defaults to slog.Default().
	Logger *slog.Logger `validate:"-"`
}

// Result summarizes a completed run.
type Result struct {
	// Files lists the written file paths, relative to the sink root.
	Files []string

	// Bytes is the total rendered size.
	Bytes int
}

func (cfg Config) withDefaults() Config {
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// Run executes one generation run.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	doc, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, err
	}
	nb, err := doc.Builder()
	if err != nil {
		return nil, fmt.Errorf("assemble %s: %w", cfg.Manifest, err)
	}
	src, err := nb.ToSourceCode(cfg.Formatted)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", cfg.Manifest, err)
	}

	out := cfg.Sink
	if out == nil {
		out = sink.NewFilesystemSink(cfg.OutDir)
	}

	name := cfg.FileName
	if name == "" {
		name = deriveFileName(doc.Namespace)
	}
	if err := out.WriteFile(ctx, name, []byte(src)); err != nil {
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	cfg.Logger.InfoContext(ctx, "wrote generated source",
		"manifest", cfg.Manifest,
		"file", name,
		"bytes", len(src),
		"formatted", cfg.Formatted)

	return &Result{Files: []string{name}, Bytes: len(src)}, nil
}

// Check validates a manifest without writing output: it loads the
// document, assembles the builders and runs a full build.
func Check(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	doc, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return err
	}
	nb, err := doc.Builder()
	if err != nil {
		return fmt.Errorf("assemble %s: %w", cfg.Manifest, err)
	}
	if _, err := nb.Build(); err != nil {
		return fmt.Errorf("build %s: %w", cfg.Manifest, err)
	}
	return nil
}

// deriveFileName maps a namespace to a file name: lowercased, dots
// replaced with underscores, .cs suffix.
func deriveFileName(namespace string) string {
	name := strings.ToLower(namespace)
	name = strings.ReplaceAll(name, ".", "_")
	return name + ".cs"
}
