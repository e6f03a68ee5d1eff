// Package main is the entry point for the markstorm editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/markstorm/internal/app"
	"github.com/dshills/markstorm/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, file := parseFlags()

	editor, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer editor.Close()

	ui, err := tui.New(editor, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal UI: %v\n", err)
		return 1
	}
	ui.SetSavePath(file)

	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.DisablePlugins, "no-plugins", false, "Disable the Lua plugin runtime")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the configuration file on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Markstorm - selection-aware markdown formatting editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: markstorm [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  markstorm                   Open with an empty document\n")
		fmt.Fprintf(os.Stderr, "  markstorm notes.md          Open a markdown file\n")
		fmt.Fprintf(os.Stderr, "  markstorm -c cfg.toml -watch notes.md\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Markstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	var file string
	if args := flag.Args(); len(args) > 0 {
		file = args[0]
	}
	opts.File = file

	return opts, file
}
