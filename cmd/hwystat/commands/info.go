package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwystat/hwy"
)

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show dispatch information",
		Long: `Print the detected instruction set, the lane-group width in use and
the resulting number of float64 lanes.`,
		Args: cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			return a.writeFields(cmd.OutOrStdout(), []field{
				{"level", hwy.CurrentName()},
				{"width", hwy.CurrentWidth()},
				{"lanes", hwy.MaxLanes[float64]()},
				{"fma", hwy.HasFMA()},
				{"nosimd", hwy.NoSimdEnv()},
				{"arch", runtime.GOOS + "/" + runtime.GOARCH},
			})
		}),
	}
}
