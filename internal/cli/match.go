package cli

import (
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/choicekit/matching"
)

// matchOpts holds the command-line flags for the match command.
type matchOpts struct {
	rule       string // galeshapley or optimal
	proposers  int    // proposing side for galeshapley
	oneIndexed bool
}

// newMatchCmd creates the match command. Deferred acceptance reads the
// rank matrices (and optional capacities); the optimal rule reads the
// utility matrices and maximizes total welfare over stable matchings.
func newMatchCmd() *cobra.Command {
	opts := matchOpts{rule: "galeshapley", proposers: 1}

	cmd := &cobra.Command{
		Use:   "match <instance.toml>",
		Short: "Run a two-sided matching rule on a TOML instance",
		Long: `Run a two-sided matching rule on a TOML instance.

Examples:
  choicekit match hospitals.toml                      # side-1-optimal deferred acceptance
  choicekit match hospitals.toml --proposers 2        # side-2-optimal
  choicekit match marriage.toml --rule optimal        # egalitarian stable matching`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			if inst.Matching == nil {
				return fmt.Errorf("%s: no [matching] table", args[0])
			}
			out, err := runMatch(inst.Matching, opts, loggerFromContext(c.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.rule, "rule", opts.rule, "matching rule: galeshapley or optimal")
	cmd.Flags().IntVar(&opts.proposers, "proposers", opts.proposers, "proposing side for galeshapley (1 or 2)")
	cmd.Flags().BoolVar(&opts.oneIndexed, "one-indexed", false, "report 1-based indices")

	return cmd
}

// runMatch executes the selected rule and renders one "side1 side2"
// pair per line.
func runMatch(m *matchingInstance, opts matchOpts, logger *charmlog.Logger) (string, error) {
	var pairs []matching.Pair

	switch opts.rule {
	case "galeshapley":
		side1, side2, err := m.ordinals()
		if err != nil {
			return "", err
		}
		caps := m.Capacities
		if len(caps) == 0 {
			caps = make([]int, side2.Agents())
			for i := range caps {
				caps[i] = 1
			}
		}
		orientation := matching.ProposeSide1
		switch opts.proposers {
		case 1:
		case 2:
			orientation = matching.ProposeSide2
		default:
			return "", fmt.Errorf("proposers must be 1 or 2, got %d", opts.proposers)
		}
		pairs, err = matching.GaleShapley(side1, side2, caps, matching.GSOptions{
			Orientation: orientation,
			OneIndexed:  opts.oneIndexed,
		})
		if err != nil {
			return "", err
		}
		logger.Debugf("deferred acceptance, side %d proposing", opts.proposers)

	case "optimal":
		val1, val2, err := m.valuations()
		if err != nil {
			return "", err
		}
		pairs, err = matching.Optimal(val1, val2, matching.OptimalOptions{})
		if err != nil {
			return "", err
		}
		logger.Infof("total welfare %g", matching.Value(pairs, val1, val2))
		if opts.oneIndexed {
			for i := range pairs {
				pairs[i].M++
				pairs[i].W++
			}
		}

	default:
		return "", fmt.Errorf("unknown matching rule %q (want galeshapley or optimal)", opts.rule)
	}

	logger.Infof("matched %d pairs", len(pairs))

	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b, "%d %d\n", p.M, p.W)
	}

	return b.String(), nil
}
