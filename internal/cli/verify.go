package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/algorithm"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [catalog.yaml]",
		Short: "Check algorithm orders against the rotation engine",
		Long: `Apply each algorithm in a catalog repeatedly until the cube returns to
solved and compare the count with the expected order.

Without an argument the built-in catalog is checked. A catalog looks like:

  algorithms:
    - name: sexy-move
      moves: "R U R' U'"
      order: 6`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger(cmd.ErrOrStderr())
			out := cmd.OutOrStdout()

			catalog := algorithm.Default()
			if len(args) == 1 {
				c, err := algorithm.LoadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to load catalog: %w", err)
				}
				catalog = c
			}

			failed := 0
			for _, res := range catalog.CheckAll() {
				status := "ok"
				switch {
				case res.Err != nil:
					status = "error: " + res.Err.Error()
					failed++
				case !res.OK():
					status = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "%-20s expected %4d  actual %4d  %s\n", res.Name, res.Expected, res.Actual, status)
				log.Debug("algorithm checked", "name", res.Name, "order", res.Actual)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d algorithms failed", failed, len(catalog.Algorithms))
			}
			return nil
		},
	}
}
