// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/ah-csv/internal/config"
	"fjacquet/ah-csv/internal/container"
	"fjacquet/ah-csv/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ah-csv",
		Short: "Convert Albert Heijn invoices and receipts to categorized CSV.",
		Long: `ah-csv reads Albert Heijn online order invoices and in-store receipts (PDF),
classifies every product into a grocery category and exports CSV.
Imported documents are kept in a local ledger for spending reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to ah-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer == nil {
				return
			}
			if err := appContainer.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close ledger")
			}
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// ConfigFile overrides the config.yaml search when set.
	ConfigFile string
	// LogLevel overrides log.level when set.
	LogLevel string
	// CSVDelimiter overrides csv.delimiter when set.
	CSVDelimiter string

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default searches $HOME/.ah-csv, .ah-csv and .)")
	Cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&CSVDelimiter, "csv-delimiter", "", "CSV delimiter character")
}

func initialize(cmd *cobra.Command) error {
	if _, err := config.LoadEnv(); err != nil {
		Log.WithError(err).Warn("Error loading .env file")
	}

	cfg, err := config.InitializeConfigFile(ConfigFile)
	if err != nil {
		return err
	}
	if LogLevel != "" {
		cfg.Log.Level = LogLevel
	}
	if CSVDelimiter != "" {
		cfg.CSV.Delimiter = CSVDelimiter
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	Log = config.ConfigureLoggingFromConfig(cfg)

	c, err := container.NewContainer(cfg, container.WithLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	appContainer = c
	return nil
}

// GetContainer returns the container built before the running command.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer installs c as the application container. Tests use it to run
// commands against a prepared container.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// RequireContainer returns the container or an error when the root pre-run
// did not execute.
func RequireContainer() (*container.Container, error) {
	if appContainer == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	return appContainer, nil
}

// Context returns the command context, or a background context when the
// command runs outside Execute.
func Context(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
