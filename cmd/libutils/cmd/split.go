package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/filex"
	"github.com/msto63/libutils/foundation/utils/slicex"
	"github.com/msto63/libutils/foundation/utils/stringx"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		flag      string
		file      string
		quote     bool
		skipBlank bool
	)

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Extract the text between pairs of flag characters",
		Long: `Prints every segment that sits between the first and second flag,
the third and fourth, and so on, one per line. Text after an unpaired
final flag is dropped.

The text comes from the arguments, from --file, or from stdin.

Examples:
  libutils split "The §quick§ brown §fox§"
  libutils split --flag '|' "a|b|c|d|e"
  libutils split --skip-blank "§§ and § §"
  libutils split -f notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.flagRune(flag, "split")
			if err != nil {
				return err
			}
			text, err := inputText(cmd, args, file)
			if err != nil {
				return err
			}

			count, paired := stringx.CountFlags(text, r)
			a.logger.Debug("splitting text", mdwlog.Fields{"flags": count, "bytes": len(text)})
			if !paired {
				a.logger.Warn("unpaired flag, trailing text dropped", mdwlog.Int("flags", count))
			}

			segments := stringx.SplitFlagged(text, r)
			if skipBlank {
				segments = slicex.Filter(segments, func(s string) bool { return !stringx.IsBlank(s) })
			}
			if quote {
				segments = slicex.Map(segments, strconv.Quote)
			}
			out := cmd.OutOrStdout()
			for _, s := range segments {
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flag, "flag", "", "flag character (default from config)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the text from a file")
	cmd.Flags().BoolVarP(&quote, "quote", "q", false, "print segments as quoted strings")
	cmd.Flags().BoolVarP(&skipBlank, "skip-blank", "s", false, "omit segments that are empty or only whitespace")
	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	var flag string

	cmd := &cobra.Command{
		Use:   "join parts...",
		Short: "Wrap every second part in flag characters",
		Long: `Concatenates the parts, wrapping the 2nd, 4th, ... part in the flag
character on both sides. The output of join can be read back with split.

Examples:
  libutils join "The " quick " brown " fox`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.flagRune(flag, "join")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.JoinFlagged(args, r))
			return nil
		},
	}

	cmd.Flags().StringVar(&flag, "flag", "", "flag character (default from config)")
	return cmd
}

// flagRune returns override as a rune, or the configured flag when empty
func (a *app) flagRune(override, operation string) (rune, error) {
	if override == "" {
		return a.cfg.FlagRune(), nil
	}
	if utf8.RuneCountInString(override) != 1 {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleStringx, operation, override, "a single flag character")
	}
	r, _ := utf8.DecodeRuneInString(override)
	return r, nil
}

// inputText returns the arguments joined by spaces, the file contents, or
// stdin, in that order of preference
func inputText(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		return filex.ReadString(file)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerrors.OperationFailed(mdwerrors.ModuleStringx, "read_stdin", err)
		}
		return string(data), nil
	}
}
