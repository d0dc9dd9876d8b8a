// chipsplit calculates fair per-player poker chip distributions. The
// calculate command searches denominations and allocations; distribute takes
// the denominations as fixed and only searches allocations.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cardfelt/chipsplit/chips"
	"github.com/cardfelt/chipsplit/config"
	"github.com/cardfelt/chipsplit/report"
	"github.com/cardfelt/chipsplit/shell"
	"github.com/cardfelt/chipsplit/solver"
)

func usage(w io.Writer) {
	io.WriteString(w, "usage: chipsplit [-v] [-cpuprofile file] <command> [args]\n\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "calculate <config.yaml> [flags] - search denominations and allocations\n")
	io.WriteString(w, "    -custom-values 0.25,0.5,1 - replace the standard denomination catalog\n")
	io.WriteString(w, "    -tolerance 0.25 - close-enough window in dollars\n")
	io.WriteString(w, "    -threads n - worker count (default: all CPUs)\n")
	io.WriteString(w, "distribute <config.yaml> [flags] - allocate with the config's fixed values\n")
	io.WriteString(w, "create-example [-o file] [-with-values] [-force] - write an example config\n")
	io.WriteString(w, "shell - interactive mode\n")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	verbose := false
	cpuprofile := ""
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch {
		case args[0] == "-v" || args[0] == "--verbose":
			verbose = true
			args = args[1:]
		case args[0] == "-cpuprofile" && len(args) > 1:
			cpuprofile = args[1]
			args = args[2:]
		default:
			usage(os.Stderr)
			return 1
		}
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if len(args) == 0 {
		usage(os.Stderr)
		return 1
	}
	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			log.Error().Err(err).Msg("could not create CPU profile")
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("could not start CPU profile")
			return 1
		}
		defer pprof.StopCPUProfile()
	}
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "calculate":
		err = runSolve(rest, true)
	case "distribute":
		err = runSolve(rest, false)
	case "create-example":
		err = runCreateExample(rest)
	case "shell":
		err = runShell()
	case "help":
		usage(os.Stdout)
		return 0
	default:
		usage(os.Stderr)
		return 1
	}
	if err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("command failed")
		return 1
	}
	return 0
}

func runSolve(args []string, calculate bool) error {
	if len(args) == 0 {
		return fmt.Errorf("missing config file argument")
	}
	path, args := args[0], args[1:]

	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	customValues := fs.String("custom-values", "", "comma-separated denominations replacing the standard catalog")
	tolerance := fs.Float64("tolerance", 0, "close-enough window in dollars")
	threads := fs.Int("threads", 0, "worker count (default: all CPUs)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	set, err := cfg.ChipSet()
	if err != nil {
		return err
	}
	log.Info().
		Str("config", path).
		Int("players", cfg.NumPlayers).
		Float64("buyIn", cfg.BuyInPerPerson).
		Int("totalChips", set.TotalChips()).
		Int("colors", set.NumColors()).
		Msg("loaded game config")

	opts := solver.Options{Tolerance: cfg.ToleranceCents(), Threads: *threads}
	if *tolerance > 0 {
		opts.Tolerance = chips.FromDollars(*tolerance)
	}
	sv := solver.New(set, cfg.NumPlayers, opts)

	var res *chips.DistributionResult
	if calculate {
		catalog := chips.DefaultCatalog()
		if *customValues != "" {
			catalog, err = parseCatalog(*customValues)
			if err != nil {
				return err
			}
		}
		res, err = sv.Calculate(context.Background(), catalog, cfg.BuyInCents())
	} else {
		var assignment chips.ValueAssignment
		assignment, err = cfg.FixedValues()
		if err != nil {
			return err
		}
		res, err = sv.Distribute(context.Background(), assignment, cfg.BuyInCents())
	}
	if err != nil {
		return err
	}
	fmt.Println(report.Render(res))
	return nil
}

func parseCatalog(s string) (chips.Catalog, error) {
	parts := strings.Split(s, ",")
	values := make([]chips.Cents, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad custom value %q: %w", p, err)
		}
		values = append(values, chips.FromDollars(f))
	}
	return chips.NewCatalog(values)
}

func runCreateExample(args []string) error {
	fs := flag.NewFlagSet("create-example", flag.ContinueOnError)
	output := fs.String("o", "chipsplit_example.yaml", "output file name")
	withValues := fs.Bool("with-values", false, "include fixed chip values (distribute mode)")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.WriteExample(*output, *withValues, *force); err != nil {
		return err
	}
	mode := "calculate"
	if *withValues {
		mode = "distribute"
	}
	fmt.Printf("Example configuration created at: %s\n", *output)
	fmt.Printf("Edit it and run:\n  chipsplit %s %s\n", mode, *output)
	return nil
}

func runShell() error {
	sh, err := shell.New()
	if err != nil {
		return err
	}
	sh.Run()
	return nil
}
