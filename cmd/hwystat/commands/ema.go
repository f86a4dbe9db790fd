package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwystat/hwy/contrib/stats"
	"github.com/ajroetker/hwystat/internal/logging"
)

func newEMACommand(a *app) *cobra.Command {
	var window, end int
	cmd := &cobra.Command{
		Use:   "ema [file]",
		Short: "Exponential moving average",
		Long: `Seed with the mean of the first --window values, then smooth the
values up to --end (default: all) with β = 2/(window+1).`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if window < 1 {
				return fmt.Errorf("window must be positive, got %d", window)
			}
			in, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := readSeries(in)
			if err != nil {
				return err
			}
			k := end
			if k <= 0 {
				k = len(data)
			}
			logging.Debugf("ema: %d values from %s, window %d, end %d", len(data), name, window, k)

			return a.writeFields(cmd.OutOrStdout(), []field{
				{"ema", stats.EMA(data, window, k)},
			})
		}),
	}
	cmd.Flags().IntVarP(&window, "window", "n", 10, "seed window length")
	cmd.Flags().IntVar(&end, "end", 0, "stop before this index (0 means the end of the input)")
	return cmd
}
