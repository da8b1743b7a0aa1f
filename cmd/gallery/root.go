package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	dark       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gallery",
		Short:         "Interactive gallery of animated widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML settings file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (overrides the settings file)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of discarding them")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Start with the dark palette")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the gallery (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags)
		},
	}
}

func runGallery(cmd *cobra.Command, flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("gallery needs an interactive terminal")
	}

	cfg, err := config.LoadOptional(flags.configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(cfg, flags)
	if err != nil {
		return err
	}
	defer closeLog()

	errors.SetHandler(&errors.LogHandler{Logger: log})

	sched := animation.NewScheduler(animation.SystemClock{})
	g := newGallery(sched, cfg, log, flags.dark)
	defer g.dispose()

	log.Info().Str("config", flags.configPath).Msg("gallery starting")
	_, err = tea.NewProgram(g, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}

func openLogger(cfg *config.Config, flags *rootFlags) (zerolog.Logger, func(), error) {
	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.logFile == "" {
		return logging.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logging.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logging.New(logging.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: io.Writer(f)})
	if err != nil {
		_ = f.Close()
		return logging.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	return log, func() { _ = f.Close() }, nil
}
