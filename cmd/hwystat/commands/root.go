// Package commands implements the hwystat command tree.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/hwystat/hwy"
	"github.com/ajroetker/hwystat/internal/config"
	"github.com/ajroetker/hwystat/internal/logging"
)

// app carries the state shared by one command tree.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config

	restoreWidth func()
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "hwystat",
		Short: "NaN-aware lane-parallel statistics",
		Long: `hwystat computes descriptive statistics, pairwise statistics, moving
averages and transcendental transforms over numeric series.

Input is read from the named file, or from stdin when the file is "-" or
omitted. Values are separated by whitespace or commas; "NaN" marks a
missing value and is skipped by every statistic.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/hwystat/hwystat.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-file", "", "also write logs to this file")
	flags.Bool("bias", false, "use population (biased) variance and covariance")
	flags.Int("width", 0, "lane-group width in bytes (8, 16, 32, 64); 0 keeps the default")
	flags.Int("precision", 10, "significant digits in text output")
	flags.String("format", "text", "output format: text or json")
	flags.Int("workers", 0, "parallel workers for multi-file commands; 0 means GOMAXPROCS")
	if err := config.BindFlags(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newDescribeCommand(a),
		newPairCommand(a),
		newTransformCommand(a),
		newEMACommand(a),
		newInfoCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logging.Init(cfg.LogLevel, cfg.LogFile, cmd.ErrOrStderr()); err != nil {
		return err
	}
	if cfg.Width != 0 {
		a.restoreWidth = hwy.ForceWidth(cfg.Width)
	}
	logging.Debugf("dispatch level %s, width %d bytes", hwy.CurrentName(), hwy.CurrentWidth())
	return nil
}

// run adapts fn to cobra's RunE and undoes setup once fn returns.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if a.restoreWidth != nil {
				a.restoreWidth()
				a.restoreWidth = nil
			}
		}()
		return fn(cmd, args)
	}
}
