package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

type applyOptions struct {
	strict   bool
	scramble int
	seed     uint64
	describe bool
}

func newApplyCmd(a *app) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply [moves...]",
		Short: "Apply moves to a solved cube and print the result",
		Long: `Apply a sequence of moves to a solved cube and print the unfolded net.

Moves may be given as separate arguments or as one quoted string:
  cubesim apply R U "R'" "U'"
  cubesim apply "F R U' R' U' R U R' F'"

Unknown tokens are skipped with a warning unless --strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, a, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", a.cfg.Strict, "Fail on unknown move tokens")
	cmd.Flags().IntVar(&opts.scramble, "scramble", 0, "Scramble this many moves before applying")
	cmd.Flags().Uint64Var(&opts.seed, "seed", a.cfg.Seed, "Scramble seed (0 for random)")
	cmd.Flags().BoolVar(&opts.describe, "describe", false, "Print a plain-language description of each move")

	return cmd
}

func runApply(cmd *cobra.Command, a *app, opts *applyOptions, args []string) error {
	log := a.logger(cmd.ErrOrStderr())
	out := cmd.OutOrStdout()
	tokens := strings.Fields(strings.Join(args, " "))

	var moves []types.Move
	if opts.strict {
		parsed, err := notation.ParseSequence(strings.Join(tokens, " "))
		if err != nil {
			return fmt.Errorf("invalid move: %w", err)
		}
		moves = parsed
	} else {
		var skipped []string
		moves, skipped = notation.ParseLenient(tokens)
		for _, tok := range skipped {
			log.Warn("skipping unknown move", "token", tok)
		}
	}

	state := cube.New()
	if opts.scramble > 0 {
		var scramble []types.Move
		state, scramble = scramblerFor(opts.seed).Scramble(state, opts.scramble)
		fmt.Fprintf(out, "Scramble: %s\n", notation.FormatSequence(scramble))
	}

	state = cube.ApplyMoves(state, moves)
	log.Debug("moves applied", "count", len(moves))

	fmt.Fprintf(out, "Moves: %s\n", notation.FormatSequence(moves))
	if opts.describe && len(moves) > 0 {
		fmt.Fprintf(out, "       %s\n", notation.DescribeSequence(moves))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, newNetRenderer(out, a.plain).Render(state))
	fmt.Fprintf(out, "\nSolved: %v\n", state.IsSolved())

	return nil
}

func scramblerFor(seed uint64) *cube.Scrambler {
	if seed == 0 {
		return cube.NewScrambler(nil)
	}
	return cube.NewSeededScrambler(seed)
}
