package commands

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	hmath "github.com/ajroetker/hwystat/hwy/contrib/math"
	"github.com/ajroetker/hwystat/internal/logging"
)

// transforms maps function names to slice kernels; pow is handled apart
// because it takes a base.
var transforms = map[string]func(in, out []float64){
	"exp":   hmath.Exp,
	"exp2":  hmath.Exp2,
	"log":   hmath.Log,
	"log2":  hmath.Log2,
	"log10": hmath.Log10,
}

func transformNames() []string {
	names := []string{"pow"}
	for name := range transforms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func newTransformCommand(a *app) *cobra.Command {
	var fn string
	var base float64
	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "Apply a transcendental function to every value",
		Long: fmt.Sprintf(`Apply --func to every value and print the results, one per line.

Functions: %s. pow computes base^x for --base.`, strings.Join(transformNames(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			kernel, ok := transforms[fn]
			switch {
			case fn == "pow":
				if !(base > 0) || math.IsInf(base, 0) {
					return fmt.Errorf("base must be positive and finite, got %v", base)
				}
				kernel = func(in, out []float64) { hmath.Pow(base, in, out) }
			case !ok:
				return fmt.Errorf("unknown function %q (want one of %s)", fn, strings.Join(transformNames(), ", "))
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
			logging.Debugf("transform: %s over %d values from %s", fn, len(data), name)

			out := make([]float64, len(data))
			kernel(data, out)
			return a.writeValues(cmd.OutOrStdout(), out)
		}),
	}
	cmd.Flags().StringVarP(&fn, "func", "f", "exp", "function to apply")
	cmd.Flags().Float64Var(&base, "base", math.E, "base for pow")
	return cmd
}
