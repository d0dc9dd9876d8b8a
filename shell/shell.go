// Package shell implements the interactive mode: load a game config, tweak
// buy-in, players, tolerance, or threads, and re-run the solver without
// restarting the program.
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cardfelt/chipsplit/chips"
	"github.com/cardfelt/chipsplit/config"
	"github.com/cardfelt/chipsplit/report"
	"github.com/cardfelt/chipsplit/solver"
)

type Shell struct {
	rl      *readline.Instance
	cfg     *config.GameConfig
	cfgPath string
	threads int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path/to/config.yaml> - load a game config\n")
	io.WriteString(w, "show - print the loaded config\n")
	io.WriteString(w, "set <buyin|players|tolerance|threads> <value>\n")
	io.WriteString(w, "calculate - search denominations and allocations\n")
	io.WriteString(w, "distribute - allocate using the config's fixed values\n")
	io.WriteString(w, "exit - quit\n")
}

func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "chipsplit> ",
		HistoryFile:         "/tmp/readline-chipsplit.tmp",
		EOFPrompt:           "exit",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &Shell{rl: rl}, nil
}

func (s *Shell) Run() {
	defer s.rl.Close()
	usage(s.rl.Stderr())
	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := s.execute(line); err != nil {
			showMessage("error: "+err.Error(), s.rl.Stderr())
		}
	}
}

func (s *Shell) execute(line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		usage(s.rl.Stderr())
		return nil
	case "load":
		if len(fields) != 2 {
			return fmt.Errorf("usage: load <path/to/config.yaml>")
		}
		cfg, err := config.Load(fields[1])
		if err != nil {
			return err
		}
		s.cfg = cfg
		s.cfgPath = fields[1]
		showMessage("loaded "+s.cfgPath, s.rl.Stderr())
		return nil
	case "show":
		return s.show()
	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set <buyin|players|tolerance|threads> <value>")
		}
		return s.applySet(fields[1], fields[2])
	case "calculate":
		return s.solve(true)
	case "distribute":
		return s.solve(false)
	}
	return fmt.Errorf("unknown command %s (try help)", fields[0])
}

func (s *Shell) applySet(key, value string) error {
	if s.cfg == nil && key != "threads" {
		return fmt.Errorf("load a config first")
	}
	switch key {
	case "buyin":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("buyin must be a positive number")
		}
		s.cfg.BuyInPerPerson = f
	case "players":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("players must be a positive integer")
		}
		s.cfg.NumPlayers = n
	case "tolerance":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("tolerance must be a non-negative number")
		}
		s.cfg.Tolerance = f
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("threads must be a non-negative integer")
		}
		s.threads = n
	default:
		return fmt.Errorf("unknown setting %s", key)
	}
	return nil
}

func (s *Shell) show() error {
	if s.cfg == nil {
		return fmt.Errorf("no config loaded")
	}
	var ss strings.Builder
	fmt.Fprintf(&ss, "config: %s\n", s.cfgPath)
	fmt.Fprintf(&ss, "buy-in per player: $%.2f\n", s.cfg.BuyInPerPerson)
	fmt.Fprintf(&ss, "players: %d\n", s.cfg.NumPlayers)
	if s.cfg.Tolerance > 0 {
		fmt.Fprintf(&ss, "tolerance: $%.2f\n", s.cfg.Tolerance)
	}
	set, err := s.cfg.ChipSet()
	if err != nil {
		return err
	}
	for _, color := range set.Colors() {
		fmt.Fprintf(&ss, "  %s: %d chips", color, set.Count(color))
		if cc := s.cfg.ChipColors[color]; cc.Value != nil {
			fmt.Fprintf(&ss, " @ $%.2f", *cc.Value)
		}
		ss.WriteString("\n")
	}
	showMessage(ss.String(), s.rl.Stderr())
	return nil
}

func (s *Shell) solve(calculate bool) error {
	if s.cfg == nil {
		return fmt.Errorf("load a config first")
	}
	set, err := s.cfg.ChipSet()
	if err != nil {
		return err
	}
	sv := solver.New(set, s.cfg.NumPlayers, solver.Options{
		Tolerance: s.cfg.ToleranceCents(),
		Threads:   s.threads,
	})
	var res *chips.DistributionResult
	if calculate {
		res, err = sv.Calculate(context.Background(), chips.DefaultCatalog(), s.cfg.BuyInCents())
	} else {
		assignment, aerr := s.cfg.FixedValues()
		if aerr != nil {
			return aerr
		}
		res, err = sv.Distribute(context.Background(), assignment, s.cfg.BuyInCents())
	}
	if err != nil {
		return err
	}
	showMessage(report.Render(res), s.rl.Stdout())
	return nil
}
