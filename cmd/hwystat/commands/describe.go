package commands

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/hwystat/hwy/contrib/stats"
	"github.com/ajroetker/hwystat/hwy/contrib/workerpool"
	"github.com/ajroetker/hwystat/internal/logging"
)

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file...]",
		Short: "Summarize one or more series",
		Long: `Print count, valid count, sum, mean, variance, standard deviation,
minimum, maximum, their indices, skewness and kurtosis of each series.

With several files, each file is one series and the files are summarized
in parallel on --workers workers.`,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if len(args) <= 1 {
				data, err := a.loadSeries(cmd, args)
				if err != nil {
					return err
				}
				return a.writeFields(cmd.OutOrStdout(), summaryFields(stats.Describe(data, a.cfg.Bias)))
			}

			if i := slices.Index(args, "-"); i >= 0 && slices.Contains(args[i+1:], "-") {
				return errors.New("stdin (-) may be named only once")
			}

			pool := workerpool.New(a.cfg.Workers)
			defer pool.Close()

			series, err := a.loadAll(cmd, args, pool.NumWorkers())
			if err != nil {
				return err
			}
			logging.Debugf("describe: %d series on %d workers", len(series), pool.NumWorkers())

			for i, s := range stats.DescribeAll(pool, series, a.cfg.Bias) {
				fields := append([]field{{"file", args[i]}}, summaryFields(s)...)
				if err := a.writeFields(cmd.OutOrStdout(), fields); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func (a *app) loadSeries(cmd *cobra.Command, args []string) ([]float64, error) {
	in, name, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := readSeries(in)
	if err != nil {
		return nil, err
	}
	logging.Debugf("read %d values from %s", len(data), name)
	return data, nil
}

// loadAll reads each path as one series, at most limit files at a time.
func (a *app) loadAll(cmd *cobra.Command, paths []string, limit int) ([][]float64, error) {
	series := make([][]float64, len(paths))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, path := range paths {
		g.Go(func() error {
			data, err := a.loadSeries(cmd, []string{path})
			if err != nil {
				return err
			}
			series[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

func summaryFields(s stats.Summary) []field {
	return []field{
		{"count", s.Count},
		{"valid", s.Valid},
		{"sum", s.Sum},
		{"mean", s.Mean},
		{"var", s.Var},
		{"std", s.Std},
		{"min", s.Min},
		{"max", s.Max},
		{"argmin", s.ArgMin},
		{"argmax", s.ArgMax},
		{"skew", s.Skew},
		{"kurt", s.Kurt},
	}
}
