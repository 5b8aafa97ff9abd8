package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pwgen/internal/config"
	"pwgen/internal/generator"
	"pwgen/internal/telemetry"
	"pwgen/internal/ui"
)

// options holds the parsed CLI flags. Zero values mean "use config".
type options struct {
	length    int
	mode      string
	history   int
	print     int
	logFile   string
	listModes bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.IntVar(&o.length, "length", 0, "password length (default from config, 12)")
	fs.StringVar(&o.mode, "mode", "", "generation mode: letters, letters-digits, full, readable")
	fs.IntVar(&o.history, "history", 0, "number of passwords kept in history")
	fs.IntVar(&o.print, "print", 0, "print N passwords to stdout and exit instead of starting the UI")
	fs.StringVar(&o.logFile, "log", "", "write debug logs to this file")
	fs.BoolVar(&o.listModes, "list-modes", false, "list generation modes and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: pwgen [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Generate random passwords interactively, or with -print from scripts.\n")
		fmt.Fprintf(fs.Output(), "Settings are read from $%s or ~/%s.\n\n", config.PathEnv, config.DefaultPath)
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	err := fs.Parse(args)
	return o, err
}

// apply overlays explicit flags on cfg.
func (o options) apply(cfg *config.Config) {
	if o.length != 0 {
		cfg.Length = o.length
	}
	if o.mode != "" {
		cfg.Mode = generator.Mode(o.mode)
	}
	if o.history != 0 {
		cfg.HistorySize = o.history
	}
}

func newLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}

func listModes(w io.Writer) {
	for _, m := range generator.Modes() {
		desc, _ := generator.Describe(m)
		fmt.Fprintf(w, "%-16s %s\n", m, desc)
	}
}

// printPasswords writes n passwords, one per line.
func printPasswords(w io.Writer, gen *generator.Generator, cfg config.Config, n int) error {
	for range n {
		pw, err := gen.Generate(cfg.Length, cfg.Mode)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, pw)
	}
	return nil
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("pwgen", flag.ContinueOnError)
	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if opts.listModes {
		listModes(stdout)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	gen := generator.New(generator.WithCapacity(cfg.HistorySize))
	if opts.print > 0 {
		return printPasswords(stdout, gen, cfg, opts.print)
	}

	ctx := context.Background()
	tracer, err := telemetry.NewTracer(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", "endpoint", cfg.OTLPEndpoint, "err", err)
		tracer = nil
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown", "err", err)
		}
	}()

	if !ui.ClipboardSupported() {
		logger.Warn("no clipboard backend found; copy will fail")
	}
	logger.Info("starting", "length", cfg.Length, "mode", cfg.Mode, "history", cfg.HistorySize)

	model := ui.NewAppModel(ui.Deps{
		Generator: gen,
		Clipboard: ui.SystemClipboard{},
		Tracer:    tracer,
		Logger:    logger,
		Length:    cfg.Length,
		MaxLength: cfg.MaxLength,
		Mode:      cfg.Mode,
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
