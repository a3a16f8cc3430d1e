package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/log"
	"fitness-tracker/internal/service"
	"fitness-tracker/internal/tui"
)

// errRejected signals that some packages failed; details are already logged
var errRejected = errors.New("some workout packages were rejected")

type options struct {
	configPath  string
	interactive bool
	debug       bool
	init        bool
}

func main() {
	opts := parseFlags(os.Args[1:])

	err := run(opts, os.Stdout)
	log.Sync()
	if errors.Is(err, errRejected) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("fitness-tracker", flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a JSON workout batch (default: built-in sample batch)")
	fs.BoolVar(&opts.interactive, "tui", false, "browse results in the interactive terminal UI")
	fs.BoolVar(&opts.debug, "debug", false, "enable development logging")
	fs.BoolVar(&opts.init, "init", false, "write an example batch file to -config (default "+config.DefaultFileName+") and exit")
	_ = fs.Parse(args)
	return opts
}

func run(opts options, stdout io.Writer) error {
	if opts.init {
		path := opts.configPath
		if path == "" {
			path = config.DefaultFileName
		}
		err := config.CreateExample(path)
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Fprintf(stdout, "Batch file %s already exists, leaving it unchanged\n", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Fprintf(stdout, "Example batch written to %s\n", path)
		return nil
	}

	// Load configuration
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.interactive {
		cfg.Display.Interactive = true
	}
	if opts.debug {
		cfg.Log.Debug = true
	}

	// The TUI owns the terminal, so logs are dropped there
	if cfg.Display.Interactive {
		log.InitNop()
	} else if err := log.Init(cfg.Log.Debug); err != nil {
		return err
	}

	session := service.NewSessionService(log.GetSugaredLogger()).Process(cfg.Packages)

	if cfg.Display.Interactive {
		p := tea.NewProgram(tui.NewApp(session, cfg.Display), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	if err := session.WriteMessages(stdout); err != nil {
		return err
	}

	if session.Err() != nil {
		return errRejected
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		return &cfg, nil
	}

	cfg, err := config.Load(path)
	if errors.Is(err, config.ErrNoConfig) {
		return nil, fmt.Errorf("no batch file at %s (create one with -init -config %s)", path, path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
