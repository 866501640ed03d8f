package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/slicex"
	"github.com/msto63/libutils/foundation/utils/stringx"
)

func newConcatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "concat parts...",
		Short: "Join words with single spaces",
		Long: `Appends each part followed by a space, without doubling a space a
part already ends with. The result keeps its trailing space.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), stringx.ConcatSpaced(args))
			return nil
		},
	}
}

func newLongestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "longest words...",
		Short: "Find the longest word",
		Long: `Prints the longest word and its length in bytes. On a tie the first
word wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			word, ok := slicex.Longest(args)
			if !ok {
				fmt.Fprintln(out, "The list is empty.")
				return nil
			}
			fmt.Fprintf(out, "The longest word is: %s\n", word)
			fmt.Fprintf(out, "Length: %d\n", slicex.LongestLen(args))
			return nil
		},
	}
}

func newPickCmd(a *app) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "pick items...",
		Short: "Pick a random item",
		Long: `Prints a uniformly chosen item and its 1-based position. A non-zero
--seed makes the choice repeatable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				item  string
				index int
				ok    bool
			)
			if seed != 0 {
				item, index, ok = slicex.RandomChoiceWith(slicex.NewSeededChooser(seed), args)
			} else {
				item, index, ok = slicex.RandomChoice(args)
			}
			if !ok {
				return nil
			}

			a.logger.Debug("item picked", mdwlog.Fields{"index": index, "of": len(args)})
			fmt.Fprintf(cmd.OutOrStdout(), "%s (#%d)\n", item, index+1)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	return cmd
}
