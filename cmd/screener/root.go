package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/patterns"
	"github.com/jonathan/resume-screener/internal/prompts"
	"github.com/jonathan/resume-screener/internal/screening"
)

const (
	app = "screener"

	outputJSON = "json"
	outputText = "text"
)

// cli carries state shared by all subcommands once the configuration is loaded.
type cli struct {
	v       *viper.Viper
	cfgFile string
	output  string

	cfg    *config.Config
	logger *zap.Logger
	svc    *screening.Service
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	root := &cobra.Command{
		Use:               app,
		Short:             "Heuristic resume screening service",
		Long:              "screener parses resumes, scores them against job descriptions and generates interview questions, over HTTP or from the command line.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "a config file (default is screener.yaml in current directory)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.BoolP("json-logs", "j", false, "json format for logging")
	pf.StringVarP(&c.output, "output", "o", outputJSON, "result format: json or text")

	_ = c.v.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = c.v.BindPFlag("log_json", pf.Lookup("json-logs"))

	root.AddCommand(
		newServeCmd(c),
		newParseCmd(c),
		newScoreCmd(c),
		newQuestionsCmd(c),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration, builds the logger and the screening service.
func (c *cli) setup(_ *cobra.Command, _ []string) error {
	if c.output != outputJSON && c.output != outputText {
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.output, outputJSON, outputText)
	}

	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	c.logger = logger

	if err := prompts.Check(); err != nil {
		return err
	}

	lib := patterns.Default()
	if cfg.PatternsFile != "" {
		lib, err = patterns.LoadFile(cfg.PatternsFile)
		if err != nil {
			return err
		}
		logger.Info("loaded pattern library", zap.String("file", cfg.PatternsFile))
	}

	c.svc = screening.New(lib, logger)
	return nil
}

// write prints v as indented JSON, or through the text printer when text output is selected.
func (c *cli) write(cmd *cobra.Command, v any, text func(*observability.Printer)) error {
	if c.output == outputText {
		text(observability.NewPrinter(cmd.OutOrStdout()))
		return nil
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
