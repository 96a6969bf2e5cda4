package cli

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/choicekit/profile"
	"github.com/katalvlaran/choicekit/voting"
)

// positionalRules maps flag values to the positional scoring rules.
var positionalRules = map[string]voting.Rule{
	"plurality":  voting.Plurality,
	"borda":      voting.Borda,
	"veto":       voting.Veto,
	"k-approval": voting.KApproval,
	"harmonic":   voting.Harmonic,
}

// voteOpts holds the command-line flags for the vote command.
type voteOpts struct {
	rule       string
	k          int
	seed       int64 // <0 means deterministic tie-break
	lottery    bool
	oneIndexed bool
}

// newVoteCmd creates the vote command.
func newVoteCmd() *cobra.Command {
	opts := voteOpts{rule: "plurality", k: 1, seed: -1}

	cmd := &cobra.Command{
		Use:   "vote <instance.toml>",
		Short: "Run a voting rule on a TOML instance",
		Long: `Run a voting rule on the [election] ballots of a TOML instance.

Positional rules print the winning set; --lottery prints the full
probability distribution instead. STV and Copeland print a single
winner resolved by the tie-break policy.

Examples:
  choicekit vote election.toml --rule borda
  choicekit vote election.toml --rule k-approval --k 2
  choicekit vote election.toml --rule plurality --lottery
  choicekit vote election.toml --rule stv --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			if inst.Election == nil {
				return fmt.Errorf("%s: no [election] table", args[0])
			}
			out, err := runVote(inst.Election, opts, loggerFromContext(c.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.rule, "rule", opts.rule, "voting rule: plurality, borda, veto, k-approval, harmonic, stv or copeland")
	cmd.Flags().IntVar(&opts.k, "k", opts.k, "approval cutoff for k-approval")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed for random tie-breaking (negative = lowest index wins)")
	cmd.Flags().BoolVar(&opts.lottery, "lottery", false, "print the score lottery instead of the winning set")
	cmd.Flags().BoolVar(&opts.oneIndexed, "one-indexed", false, "report 1-based indices")

	return cmd
}

// tieBreak maps the seed flag to a policy and rand source.
func tieBreak(seed int64) (profile.TieBreak, *rand.Rand) {
	if seed < 0 {
		return profile.TieBreakFirst, nil
	}

	return profile.TieBreakRandom, rand.New(rand.NewSource(seed))
}

// runVote executes the selected rule and renders its result.
func runVote(e *electionInstance, opts voteOpts, logger *charmlog.Logger) (string, error) {
	p, err := profile.OrdinalFromRankMatrix(e.Ballots)
	if err != nil {
		return "", fmt.Errorf("ballots: %w", err)
	}

	policy, rng := tieBreak(opts.seed)
	vopts := voting.Options{K: opts.k, OneIndexed: opts.oneIndexed}

	if rule, ok := positionalRules[opts.rule]; ok {
		if opts.lottery {
			probs, err := voting.Lottery(rule, p, vopts)
			if err != nil {
				return "", err
			}

			return formatFloats(probs) + "\n", nil
		}

		scores, err := voting.Score(rule, p, vopts)
		if err != nil {
			return "", err
		}
		logger.Debugf("%s scores: %s", rule, formatFloats(scores))

		winners, err := voting.Winners(rule, p, vopts)
		if err != nil {
			return "", err
		}

		return formatInts(winners) + "\n", nil
	}

	switch opts.rule {
	case "stv":
		w, err := voting.STV(p, policy, rng, vopts)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d\n", w), nil

	case "copeland":
		scores, err := voting.CopelandScore(p, vopts)
		if err != nil {
			return "", err
		}
		logger.Debugf("copeland scores: %s", formatFloats(scores))

		w, err := voting.CopelandWinner(p, policy, rng, vopts)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%d\n", w), nil
	}

	known := make([]string, 0, len(positionalRules)+2)
	for name := range positionalRules {
		known = append(known, name)
	}
	known = append(known, "stv", "copeland")
	sort.Strings(known)

	return "", fmt.Errorf("unknown voting rule %q (want one of %s)", opts.rule, strings.Join(known, ", "))
}
