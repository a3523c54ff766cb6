package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combinat/bitmask"
	"github.com/katalvlaran/combinat/combinations"
	"github.com/katalvlaran/combinat/permutations"
	"github.com/katalvlaran/combinat/product"
)

var errNoSecond = errors.New("cli: product needs a second sequence (--second or the input file's second table)")

// enumOpts holds the flags shared by every enumeration command.
type enumOpts struct {
	input string // TOML element file, used when no positional args
	max   int    // stop after this many results; 0 means no cap
}

func (o *enumOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "TOML file with an elements table")
	cmd.Flags().IntVarP(&o.max, "max", "m", 0, "emit at most this many results (0 = all)")
}

// capped reports whether emission should stop after count results.
func (o *enumOpts) capped(count int) bool {
	return o.max > 0 && count >= o.max
}

// newCombCmd streams all k-element subsets of the given elements.
func newCombCmd() *cobra.Command {
	var opts enumOpts
	var k int

	cmd := &cobra.Command{
		Use:   "comb [elements...]",
		Short: "Enumerate k-element subsets in lexicographic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			elems, err := resolveElements(args, opts.input)
			if err != nil {
				return err
			}
			gen, err := combinations.New(elems, k)
			if err != nil {
				return err
			}
			logger.Debugf("enumerating C(%d,%d) = %s subsets", len(elems), k,
				combinations.Count(len(elems), k))

			prog := newProgress(logger)
			count := 0
			for view, ok := gen.Next(); ok && !opts.capped(count); view, ok = gen.Next() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(view, " "))
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d combinations", count))

			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&k, "size", "k", 2, "subset size")

	return cmd
}

// newPermCmd streams all full orderings of the given elements.
func newPermCmd() *cobra.Command {
	var opts enumOpts

	cmd := &cobra.Command{
		Use:   "perm [elements...]",
		Short: "Enumerate all orderings in lexicographic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			elems, err := resolveElements(args, opts.input)
			if err != nil {
				return err
			}
			gen := permutations.New(elems)
			logger.Debugf("enumerating %d! = %s permutations", len(elems),
				permutations.Count(len(elems)))

			prog := newProgress(logger)
			count := 0
			for view, ok := gen.Next(); ok && !opts.capped(count); view, ok = gen.Next() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(view, " "))
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d permutations", count))

			return nil
		},
	}
	opts.register(cmd)

	return cmd
}

// newKPermCmd streams all k-length ordered arrangements.
func newKPermCmd() *cobra.Command {
	var opts enumOpts
	var k int

	cmd := &cobra.Command{
		Use:   "kperm [elements...]",
		Short: "Enumerate k-length ordered arrangements",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			elems, err := resolveElements(args, opts.input)
			if err != nil {
				return err
			}
			gen, err := permutations.NewK(elems, k)
			if err != nil {
				return err
			}
			logger.Debugf("enumerating P(%d,%d) = %s arrangements", len(elems), k,
				permutations.KCount(len(elems), k))

			prog := newProgress(logger)
			count := 0
			for view, ok := gen.Next(); ok && !opts.capped(count); view, ok = gen.Next() {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(view, " "))
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d arrangements", count))

			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&k, "size", "k", 2, "arrangement size")

	return cmd
}

// newGosperCmd streams n-bit masks with exactly k bits set.
func newGosperCmd() *cobra.Command {
	var max, n, k int
	var indices bool

	cmd := &cobra.Command{
		Use:   "gosper",
		Short: "Enumerate n-bit masks with exactly k bits set (Gosper's hack)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			gen := bitmask.NewCombinations(n, k)
			if !gen.Valid() {
				logger.Warnf("parameters n=%d k=%d outside the uint64 universe; nothing to enumerate", n, k)
			}

			prog := newProgress(logger)
			count := 0
			for mask, ok := gen.Next(); ok && (max == 0 || count < max); mask, ok = gen.Next() {
				if indices {
					cols := lo.Map(bitmask.Indices(mask), func(pos int, _ int) string {
						return strconv.Itoa(pos)
					})
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(cols, ","))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%0*b\n", n, mask)
				}
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d masks", count))

			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "bits", "n", 5, "universe width in bits (max 63)")
	cmd.Flags().IntVarP(&k, "size", "k", 2, "set-bit count per mask")
	cmd.Flags().IntVarP(&max, "max", "m", 0, "emit at most this many results (0 = all)")
	cmd.Flags().BoolVar(&indices, "indices", false, "print set-bit positions instead of binary masks")

	return cmd
}

// newPowerSetCmd streams every subset of the given elements with its
// membership mask.
func newPowerSetCmd() *cobra.Command {
	var opts enumOpts

	cmd := &cobra.Command{
		Use:   "powerset [elements...]",
		Short: "Enumerate all 2^n subsets with their membership masks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			elems, err := resolveElements(args, opts.input)
			if err != nil {
				return err
			}
			gen := bitmask.NewPowerSetOf(elems)
			if !gen.Valid() {
				logger.Warnf("%d elements exceed the uint64 universe; nothing to enumerate", len(elems))
			}

			prog := newProgress(logger)
			count := 0
			for mask, ok := gen.Next(); ok && !opts.capped(count); mask, ok = gen.Next() {
				fmt.Fprintf(cmd.OutOrStdout(), "%0*b\t%s\n", len(elems), mask,
					strings.Join(bitmask.Subset(elems, mask), " "))
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d subsets", count))

			return nil
		},
	}
	opts.register(cmd)

	return cmd
}

// newProductCmd streams the Cartesian product of two sequences. The first
// comes from positional args or the input file's elements table, the
// second from --second or the input file's second table.
func newProductCmd() *cobra.Command {
	var opts enumOpts
	var second []string

	cmd := &cobra.Command{
		Use:   "product [elements...]",
		Short: "Enumerate the Cartesian product of two sequences",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			first := args
			if opts.input != "" {
				in, err := loadInput(opts.input)
				if err != nil {
					return err
				}
				if len(first) == 0 {
					first = in.Elements
				}
				if len(second) == 0 {
					second = in.Second
				}
			}
			if len(first) == 0 {
				return errNoElements
			}
			if len(second) == 0 {
				return errNoSecond
			}

			gen := product.New(first, second)
			logger.Debugf("enumerating %d x %d pairs", len(first), len(second))

			prog := newProgress(logger)
			count := 0
			for pair, ok := gen.Next(); ok && !opts.capped(count); pair, ok = gen.Next() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pair.First, pair.Second)
				count++
			}
			prog.done(fmt.Sprintf("Enumerated %d pairs", count))

			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().StringSliceVarP(&second, "second", "s", nil, "second sequence (comma separated)")

	return cmd
}
