package main

// This is an interpreter for a small calculator language with functions.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/letung3105/fncalc/internal/calc"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "fncalc",
		Usage:     "A calculator with variables and functions",
		ArgsUsage: "[script]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Read settings from this YAML file",
				Value:   defaultConfigPath(),
			},
			&cli.StringFlag{
				Name:    "eval",
				Aliases: []string{"e"},
				Usage:   "Evaluate one statement and exit",
			},
			&cli.BoolFlag{
				Name:    "dump-ast",
				Aliases: []string{"d"},
				Usage:   "Print the syntax tree of every statement before evaluating it",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Color error messages even when not writing to a terminal",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Don't color error messages",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log what the interpreter does",
			},
		},
		Action: func(c *cli.Context) error {
			return runApp(c, stdin, stdout, stderr)
		},
	}
}

func runApp(c *cli.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	if c.NArg() > 1 {
		return cli.Exit("Usage: fncalc [script]", 64)
	}

	cfg, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cli.Exit(err.Error(), 64)
	}
	switch {
	case c.Bool("no-color"):
		cfg.Color = new(bool)
	case c.Bool("color"):
		force := true
		cfg.Color = &force
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}

	logger := newLogger(cfg.Verbose, stderr)
	defer logger.Sync()

	reporter := newReporter(cfg.Color, stderr)
	s := &session{
		parser:      calc.NewParser(logger.Named("parser")),
		interpreter: calc.NewInterpreter(logger.Named("interpreter")),
		reporter:    reporter,
		out:         stdout,
		dumpAST:     c.Bool("dump-ast"),
	}

	if !s.preload(cfg.Preload) {
		logger.Warn("preload failed", zap.Int("lines", len(cfg.Preload)))
		return exitOnError(s)
	}

	switch {
	case c.IsSet("eval"):
		s.run(c.String("eval"))
		return exitOnError(s)
	case c.NArg() == 1:
		return runFile(c.Args().First(), s)
	}
	return runPrompt(stdin, cfg.Prompt, s)
}

// Run the interpreter in REPL mode
func runPrompt(stdin io.Reader, prompt string, s *session) error {
	in := bufio.NewScanner(stdin)
	in.Split(bufio.ScanLines)
	for {
		fmt.Fprint(s.out, prompt)
		if !in.Scan() {
			break
		}
		if strings.TrimSpace(in.Text()) != "" {
			s.run(in.Text())
		}
		s.reporter.Reset()
	}
	return in.Err()
}

// Run the given file as script, one statement per line. Blank lines and
// lines starting with '#' are skipped. The first failing line stops the
// script.
func runFile(fpath string, s *session) error {
	bytes, err := os.ReadFile(fpath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, line := range strings.Split(string(bytes), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !s.run(line) {
			break
		}
	}
	return exitOnError(s)
}

// newReporter picks the error reporter for the color setting: nil leaves the
// decision to terminal detection.
func newReporter(colored *bool, stderr io.Writer) calc.Reporter {
	switch {
	case colored == nil:
		return calc.NewColorReporter(stderr, false)
	case *colored:
		return calc.NewColorReporter(stderr, true)
	}
	return calc.NewSimpleReporter(stderr)
}

func exitOnError(s *session) error {
	if status := s.exitStatus(); status != 0 {
		return cli.Exit("", status)
	}
	return nil
}

func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	encoderCfg := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core)
}
