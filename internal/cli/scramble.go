package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

func newScrambleCmd(a *app) *cobra.Command {
	var (
		steps int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Long: `Generate a random scramble from the solved cube. Consecutive moves never
turn the same face. Use --seed to reproduce a scramble.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("steps must not be negative, got %d", steps)
			}

			log := a.logger(cmd.ErrOrStderr())
			out := cmd.OutOrStdout()

			state, moves := scramblerFor(seed).Scramble(cube.New(), steps)
			log.Info("scramble generated", "steps", steps, "seed", seed)

			fmt.Fprintf(out, "Scramble: %s\n\n", notation.FormatSequence(moves))
			fmt.Fprint(out, newNetRenderer(out, a.plain).Render(state))
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", a.cfg.ScrambleSteps, "Number of scramble moves")
	cmd.Flags().Uint64Var(&seed, "seed", a.cfg.Seed, "Scramble seed (0 for random)")

	return cmd
}
