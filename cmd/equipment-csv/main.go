// Package main provides the CLI entrypoint for equipment-csv.
//
// equipment-csv converts an equipment JSON document into a flat CSV file:
//
//	equipment-csv <input.json> <output.csv>
//
// The process exits with status 0 on success and 1 on any failure.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"equipment-csv/internal/config"
	"equipment-csv/internal/convert"
	"equipment-csv/internal/log"
)

const usage = "Usage: equipment-csv <input.json> <output.csv>"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs(), config.DotEnvFile))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, fs afero.Fs, dotEnvPath string) int {
	cfg, err := config.Load(dotEnvPath)
	if err != nil {
		log.NewCliLogger(stdout, stderr, nil, false).Error("Error loading configuration: " + err.Error())
		return 1
	}

	var logFile io.Writer

	if cfg.LogFile != "" {
		f, err := fs.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.NewCliLogger(stdout, stderr, nil, false).Error("Error opening log file: " + err.Error())
			return 1
		}
		defer f.Close()

		logFile = f
	}

	logger := log.NewCliLogger(stdout, stderr, logFile, cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded", zap.Stringer("config", cfg))

	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(fs, logger)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}

	return 0
}

func newRootCommand(fs afero.Fs, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "equipment-csv <input.json> <output.csv>",
		Short: "Convert an equipment JSON document into a CSV file",
		// Positional arguments only: "--help" and friends are file names.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 || args[0] == "" || args[1] == "" {
				return errUsage
			}

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			conv, err := convert.New(fs, logger)
			if err != nil {
				return err
			}

			_, err = conv.Run(args[0], args[1])

			return err
		},
	}
}
