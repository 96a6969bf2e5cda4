package cli

import (
	"fmt"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/choicekit/distortion"
	"github.com/katalvlaran/choicekit/profile"
	"github.com/katalvlaran/choicekit/voting"
)

// distortOpts holds the command-line flags for the distort command.
type distortOpts struct {
	rule string // optional positional rule to evaluate against the values
	k    int
}

// newDistortCmd creates the distort command. Without --rule it prints
// the instance-optimal distortion bound of the ballots; with --rule it
// evaluates the realized distortion of that rule's winning set against
// the cardinal values.
func newDistortCmd() *cobra.Command {
	var opts distortOpts

	cmd := &cobra.Command{
		Use:   "distort <instance.toml>",
		Short: "Compute distortion bounds for a TOML election instance",
		Long: `Compute distortion bounds for the [election] table of a TOML instance.

Examples:
  choicekit distort election.toml                   # instance-optimal bound (LP)
  choicekit distort election.toml --rule plurality  # realized distortion, needs values`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			if inst.Election == nil {
				return fmt.Errorf("%s: no [election] table", args[0])
			}
			out, err := runDistort(inst.Election, opts, loggerFromContext(c.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.rule, "rule", "", "positional rule to evaluate (empty = instance-optimal bound)")
	cmd.Flags().IntVar(&opts.k, "k", 1, "approval cutoff for k-approval")

	return cmd
}

// runDistort computes either the LP bound or a rule's realized ratio.
func runDistort(e *electionInstance, opts distortOpts, logger *charmlog.Logger) (string, error) {
	p, err := profile.OrdinalFromRankMatrix(e.Ballots)
	if err != nil {
		return "", fmt.Errorf("ballots: %w", err)
	}

	if opts.rule == "" {
		d, pHat, err := distortion.OptimalLP(p)
		if err != nil {
			return "", err
		}
		logger.Debugf("witness vector: %s", formatFloats(pHat))

		return strconv.FormatFloat(d, 'g', -1, 64) + "\n", nil
	}

	rule, ok := positionalRules[opts.rule]
	if !ok {
		return "", fmt.Errorf("unknown positional rule %q", opts.rule)
	}
	if len(e.Values) == 0 {
		return "", fmt.Errorf("--rule needs a values matrix in the [election] table")
	}

	v, err := profile.ValuationFromMatrix(e.Values)
	if err != nil {
		return "", fmt.Errorf("values: %w", err)
	}
	winners, err := voting.Winners(rule, p, voting.Options{K: opts.k})
	if err != nil {
		return "", err
	}
	logger.Infof("%s winners: %s", rule, formatInts(winners))

	d, err := distortion.Distortion(winners, v, distortion.Options{})
	if err != nil {
		return "", err
	}

	return strconv.FormatFloat(d, 'g', -1, 64) + "\n", nil
}
