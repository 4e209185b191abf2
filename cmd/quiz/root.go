package main

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/spf13/cobra"
)

// rootOptions carries the global flags and the application built from them.
type rootOptions struct {
	configFile string
	logLevel   string

	app *application
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Show and grade multiple-choice question banks",
		Long: `quiz loads a question bank from a YAML or JSON file and either prints
its questions or grades a selection of choices for one of them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initialize(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is ./quiz.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newShowCmd(opts),
		newGradeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// initialize loads configuration, sets up logging and wires the application.
func (o *rootOptions) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	l, err := logger.SetupWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	o.app, err = newApplication(cfg, l)
	if err != nil {
		return err
	}
	return nil
}

func (o *rootOptions) application() (*application, error) {
	if o.app == nil {
		return nil, errors.New("application not initialized")
	}
	return o.app, nil
}
