package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gregtusar/datagen/internal/config"
	"github.com/gregtusar/datagen/internal/output"
	"github.com/gregtusar/datagen/pkg/generator"
	"github.com/gregtusar/datagen/pkg/refdata"
)

type options struct {
	cfgFile   string
	ticks     int64
	outputDir string
	logLevel  string
}

// app is the state shared by the generating commands for one invocation.
type app struct {
	cfg    *config.Config
	logger logrus.FieldLogger
	gen    *generator.Generator
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "datagen",
		Short: "Synthetic US Treasury market data generator",
		Long: `Generates prices, five-level order books, trades and inquiries for a set of
Treasury CUSIPs. Prices are written in 32nds with eighths ("99-16+").`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return a.run(true, true, true)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.Int64Var(&opts.ticks, "ticks", 0, "number of ticks to generate (default 1000)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory for generated files (default .)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (default info)")

	rootCmd.AddCommand(
		newGenerateCmd(opts, "orderbook", "Generate prices and order books", true, false, false),
		newGenerateCmd(opts, "trades", "Generate trades", false, true, false),
		newGenerateCmd(opts, "inquiries", "Generate inquiries", false, false, true),
		newPriceCmd(),
		newBondsCmd(),
	)
	return rootCmd
}

func newGenerateCmd(opts *options, use, short string, books, trades, inquiries bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			return a.run(books, trades, inquiries)
		},
	}
}

func (o *options) setup(cmd *cobra.Command) (*app, error) {
	// Only flags the user set override config; unset flags must not mask file values.
	v := viper.New()
	flags := cmd.Flags()
	if flags.Changed("ticks") {
		v.Set("generator.ticks", o.ticks)
	}
	if flags.Changed("output-dir") {
		v.Set("output.dir", o.outputDir)
	}
	if flags.Changed("log-level") {
		v.Set("logging.level", o.logLevel)
	}

	cfg, err := config.LoadWith(v, o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg.Logging, cmd).WithField("run_id", uuid.NewString())
	return &app{
		cfg:    cfg,
		logger: logger,
		gen:    generator.New(logger),
	}, nil
}

func newLogger(cfg config.LoggingConfig, cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.WithError(err).Error("Invalid log level, using INFO")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// run generates the selected outputs. Files are only replaced when every
// selected output was generated successfully.
func (a *app) run(books, trades, inquiries bool) error {
	gc := a.cfg.Generator
	a.warnUnknown(gc.Instruments)

	var files output.Set
	if err := a.generate(&files, books, trades, inquiries); err != nil {
		files.Abort()
		a.logger.WithError(err).Error("Generation failed")
		return err
	}
	if err := files.Commit(); err != nil {
		a.logger.WithError(err).Error("Failed to write output files")
		return err
	}
	a.logger.WithField("dir", a.cfg.Output.Dir).Info("Generation complete")
	return nil
}

func (a *app) generate(files *output.Set, books, trades, inquiries bool) error {
	gc := a.cfg.Generator
	out := a.cfg.Output

	if books {
		a.logger.Info("Generating orderbooks...")
		prices, err := files.Create(out.Path(out.Prices))
		if err != nil {
			return err
		}
		book, err := files.Create(out.Path(out.OrderBook))
		if err != nil {
			return err
		}
		if _, err := a.gen.WriteOrderBooks(prices, book, gc.Instruments, gc.Ticks); err != nil {
			return fmt.Errorf("order books: %w", err)
		}
	}

	if trades {
		a.logger.Info("Generating trades...")
		f, err := files.Create(out.Path(out.Trades))
		if err != nil {
			return err
		}
		if _, err := a.gen.WriteTrades(f, gc.Instruments, gc.TradeSeed, gc.IDLength); err != nil {
			return fmt.Errorf("trades: %w", err)
		}
	}

	if inquiries {
		a.logger.Info("Generating inquiries...")
		f, err := files.Create(out.Path(out.Inquiries))
		if err != nil {
			return err
		}
		if _, err := a.gen.WriteInquiries(f, gc.Instruments, gc.InquirySeed, gc.IDLength); err != nil {
			return fmt.Errorf("inquiries: %w", err)
		}
	}
	return nil
}

func (a *app) warnUnknown(ids []string) {
	for _, id := range ids {
		if _, ok := refdata.Lookup(id); !ok {
			a.logger.WithField("instrument", id).Warn("Instrument not in reference data")
		}
	}
}
