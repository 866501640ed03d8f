package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/libutils/foundation/core/errors"
	"github.com/msto63/libutils/foundation/utils/inputx"
)

var askKinds = []string{"int", "number", "string", "char", "bool"}

func newAskCmd(a *app) *cobra.Command {
	var (
		prompt   string
		min, max int64
		wait     bool
	)

	cmd := &cobra.Command{
		Use:   "ask {int|number|string|char|bool}",
		Short: "Run a typed prompt",
		Long: `Asks until the answer has the requested type and prints it.

Kinds:
  int     - integer between --min and --max
  number  - any decimal number
  string  - one line of text
  char    - first character of a non-empty line
  bool    - yes/y/true/t or no/n/false/f

Examples:
  libutils ask int --min 1 --max 3 --prompt "Choose: "
  libutils ask bool --prompt "Continue? "`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: askKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.prompter(cmd)
			ctx := cmd.Context()

			var (
				result interface{}
				err    error
			)
			switch args[0] {
			case "int":
				result, err = p.IntInRange(ctx, prompt, min, max)
			case "number":
				result, err = inputx.Number[float64](ctx, p, prompt)
			case "string":
				result, err = p.String(ctx, prompt)
			case "char":
				var r rune
				r, err = p.Char(ctx, prompt)
				result = string(r)
			case "bool":
				result, err = p.Bool(ctx, prompt)
			default:
				return mdwerrors.InvalidInput(mdwerrors.ModuleInputx, "ask", args[0], "one of "+strings.Join(askKinds, ", "))
			}
			if err != nil {
				a.logger.LogError(err)
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			if wait {
				return p.WaitForEnter(ctx)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "> ", "prompt text")
	cmd.Flags().Int64Var(&min, "min", 1, "smallest accepted integer")
	cmd.Flags().Int64Var(&max, "max", 10, "largest accepted integer")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait for Enter after printing the answer")
	return cmd
}
