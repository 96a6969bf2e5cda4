package cli

import (
	"fmt"
	"math/rand"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/choicekit/allocation"
	"github.com/katalvlaran/choicekit/profile"
)

// allocateOpts holds the command-line flags for the allocate command.
type allocateOpts struct {
	rule       string
	seed       int64
	sample     bool
	oneIndexed bool
}

// newAllocateCmd creates the allocate command.
func newAllocateCmd() *cobra.Command {
	opts := allocateOpts{rule: "serial", seed: -1}

	cmd := &cobra.Command{
		Use:   "allocate <instance.toml>",
		Short: "Run a one-sided allocation rule on a TOML instance",
		Long: `Run a one-sided allocation rule on the [allocation] preferences of a
TOML instance.

serial and random-serial print one item index per agent (-1 when an
agent exhausts its acceptable items). probabilistic prints the
bistochastic share matrix, one agent per row; with --sample it instead
decomposes the matrix and draws one discrete assignment.

Examples:
  choicekit allocate goods.toml
  choicekit allocate goods.toml --rule random-serial --seed 7
  choicekit allocate goods.toml --rule probabilistic
  choicekit allocate goods.toml --rule probabilistic --sample --seed 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}
			if inst.Allocation == nil {
				return fmt.Errorf("%s: no [allocation] table", args[0])
			}
			out, err := runAllocate(inst.Allocation, opts, loggerFromContext(c.Context()))
			if err != nil {
				return err
			}
			fmt.Fprint(c.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.rule, "rule", opts.rule, "allocation rule: serial, random-serial or probabilistic")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "seed for the randomized rules")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "draw one assignment from the probabilistic shares")
	cmd.Flags().BoolVar(&opts.oneIndexed, "one-indexed", false, "report 1-based indices")

	return cmd
}

// runAllocate executes the selected rule and renders its result.
func runAllocate(a *allocationInstance, opts allocateOpts, logger *charmlog.Logger) (string, error) {
	p, err := profile.OrdinalFromRankMatrix(a.Preferences)
	if err != nil {
		return "", fmt.Errorf("preferences: %w", err)
	}

	var rng *rand.Rand
	if opts.seed >= 0 {
		rng = rand.New(rand.NewSource(opts.seed))
	}
	aopts := allocation.Options{OneIndexed: opts.oneIndexed}

	switch opts.rule {
	case "serial":
		order := a.Order
		if len(order) == 0 {
			order = make([]int, p.Agents())
			for i := range order {
				order[i] = i
			}
		}
		out, err := allocation.SerialDictatorship(p, order, aopts)
		if err != nil {
			return "", err
		}

		return formatInts(out) + "\n", nil

	case "random-serial":
		if rng == nil {
			return "", fmt.Errorf("random-serial requires --seed")
		}
		out, err := allocation.RandomSerialDictatorship(p, rng, aopts)
		if err != nil {
			return "", err
		}

		return formatInts(out) + "\n", nil

	case "probabilistic":
		shares, err := allocation.ProbabilisticSerial(p, aopts)
		if err != nil {
			return "", err
		}
		if !opts.sample {
			var b strings.Builder
			for _, row := range shares {
				b.WriteString(formatFloats(row))
				b.WriteByte('\n')
			}

			return b.String(), nil
		}

		if rng == nil {
			return "", fmt.Errorf("--sample requires --seed")
		}
		components, err := allocation.BirkhoffVonNeumann(shares, aopts)
		if err != nil {
			return "", err
		}
		logger.Debugf("decomposed into %d assignments", len(components))
		out, err := allocation.SampleAssignment(components, rng)
		if err != nil {
			return "", err
		}

		return formatInts(out) + "\n", nil
	}

	return "", fmt.Errorf("unknown allocation rule %q (want serial, random-serial or probabilistic)", opts.rule)
}
