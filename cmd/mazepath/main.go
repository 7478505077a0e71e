// Command mazepath finds the cheapest route through a character maze where
// turning costs more than moving, and counts the cells that lie on any
// cheapest route.
//
//	mazepath [options] <maze-file|->
//
// Input may be plain text, gzip or zstd; the format is detected from its
// first bytes. Exit status is 0 on success (including "no path"), 1 when the
// maze or configuration is invalid, and 2 on a usage error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/maze"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options holds everything parsed from the command line.
type options struct {
	configFile  string
	move        int
	turn        int
	facing      string
	raw         bool
	noEnumerate bool
	render      bool
	format      string
	verbose     bool
	printConfig bool
	input       string

	set map[string]bool // flags given explicitly
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process: it parses args, solves and writes the
// report, and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if opts.printConfig {
		if err := cfg.Encode(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitError
		}
		return exitOK
	}
	if opts.input == "" {
		fmt.Fprintln(stderr, "error: maze file required (use - for stdin)")
		return exitUsage
	}

	runID := ulid.Make()
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", runID.String())

	rep, err := solve(opts, cfg, stdin, stdout, logger)
	if err != nil {
		logger.Error("solve failed", "input", opts.input, "err", err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	rep.RunID = runID.String()
	logger.Info("solved", "input", opts.input, "found", rep.Found, "cost", rep.Cost, "tiles", rep.Tiles)

	if err := rep.write(stdout, opts.format); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

// parseFlags parses args into options. Errors have already been reported on stderr.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := config.Default()
	opts := options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("mazepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&opts.move, "move", def.MoveCost, "Cost of one step forward")
	fs.IntVar(&opts.turn, "turn", def.TurnCost, "Cost of one 90° turn")
	fs.StringVar(&opts.facing, "facing", def.StartFacing, "Initial facing: north, east, south, west")
	fs.BoolVar(&opts.raw, "raw", false, "Search the unreduced cell graph (no pruning, no enumeration)")
	fs.BoolVar(&opts.noEnumerate, "no-enumerate", false, "Skip collecting every cheapest-route cell")
	fs.BoolVar(&opts.render, "render", false, "Draw the maze with route cells highlighted")
	fs.StringVar(&opts.format, "format", formatText, "Report format: text or yaml")
	fs.BoolVar(&opts.verbose, "v", false, "Log pipeline stages")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration as YAML and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mazepath [options] <maze-file|->\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch fs.NArg() {
	case 0:
	case 1:
		opts.input = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "error: expected one maze file, got %d\n", fs.NArg())
		fs.Usage()
		return options{}, errUsage
	}
	if opts.format != formatText && opts.format != formatYAML {
		fmt.Fprintf(stderr, "error: unknown format %q\n", opts.format)
		return options{}, errUsage
	}

	return opts, nil
}

var errUsage = errors.New("usage")

// loadConfig reads the config file, if any, then applies explicit flags on top.
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return config.Config{}, err
		}
	}
	if opts.set["move"] {
		cfg.MoveCost = opts.move
	}
	if opts.set["turn"] {
		cfg.TurnCost = opts.turn
	}
	if opts.set["facing"] {
		cfg.StartFacing = opts.facing
	}
	if opts.noEnumerate {
		cfg.Enumerate = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// solve reads the maze and runs the requested search.
func solve(opts options, cfg config.Config, stdin io.Reader, stdout io.Writer, logger *slog.Logger) (*report, error) {
	in, err := openInput(opts.input, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	m, err := maze.Parse(in, cfg.MazeOptions()...)
	if err != nil {
		return nil, err
	}

	solveOpts := append(cfg.SolveOptions(), maze.WithLogger(logger))
	var sol *maze.Solution
	mode := modeReduced
	if opts.raw {
		mode = modeRaw
		sol, err = maze.SolveRaw(m, solveOpts...)
	} else {
		sol, err = maze.Solve(m, solveOpts...)
	}
	if err != nil {
		return nil, err
	}

	rep := newReport(opts.input, mode, sol)
	if opts.render && opts.format == formatText {
		rep.draw(stdout, m, sol)
	}
	return rep, nil
}
