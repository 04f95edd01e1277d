package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sharpgen/sharpgen/generate"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate C# source from a declaration manifest."`
	Check   CheckCmd   `cmd:"" help:"Validate a manifest without writing output."`

	Verbose bool `help:"Enable debug logging." short:"v"`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Manifest string `arg:"" help:"Path of the YAML declaration manifest."`
	Out      string `help:"Output directory." short:"o" default:"."`
	Name     string `help:"Output file name (default: derived from the namespace)."`
	Raw      bool   `help:"Skip cosmetic formatting of the output."`
}

func (c *GenCmd) Run(logger *slog.Logger) error {
	res, err := generate.Run(context.Background(), generate.Config{
		Manifest:  c.Manifest,
		OutDir:    c.Out,
		FileName:  c.Name,
		Formatted: !c.Raw,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	for _, f := range res.Files {
		fmt.Println(f)
	}
	return nil
}

type CheckCmd struct {
	Manifest string `arg:"" help:"Path of the YAML declaration manifest."`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	if err := generate.Check(generate.Config{Manifest: c.Manifest, Logger: logger}); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sharpgen"),
		kong.Description("Generate C# source files from declaration manifests."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.Bind(logger)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
