package commands

import (
	"github.com/spf13/cobra"

	"github.com/ajroetker/hwystat/hwy/contrib/stats"
	"github.com/ajroetker/hwystat/internal/logging"
)

func newPairCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pair [file]",
		Short: "Covariance, correlation, beta and dot product of two columns",
		Long: `Read two columns x and y, one row per line, and print their
covariance, Pearson correlation, the slope of y regressed on x, and the
mean of x·y. A row is skipped when x·y is NaN.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			x, y, err := readColumns(in)
			if err != nil {
				return err
			}
			logging.Debugf("pair: read %d rows from %s", len(x), name)

			p := stats.Pair(x, y, a.cfg.Bias)
			return a.writeFields(cmd.OutOrStdout(), []field{
				{"count", p.Count},
				{"covar", p.Covar},
				{"corr", p.Corr},
				{"beta", p.Beta},
				{"dot", p.Dot},
			})
		}),
	}
}
