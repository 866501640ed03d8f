package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/libutils/foundation/core/log"
	"github.com/msto63/libutils/foundation/utils/inputx"
	"github.com/msto63/libutils/internal/tui"
)

var activities = []string{"Activity 1", "Activity 2", "Activity 3"}

const menuPrompt = "Please select an activity"

func newMenuCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Activity selection demo",
		Long: `Shows three activities and prints the line that belongs to the
chosen one.

Navigation:
  ↑/k, ↓/j  - move
  Enter     - choose
  Esc       - cancel

With --plain the activities are numbered and the choice is typed in.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "numbered prompt instead of the interactive menu")
	return cmd
}

func (a *app) runMenu(cmd *cobra.Command, plain bool) error {
	var (
		choice int
		err    error
	)
	if plain {
		choice, err = a.plainMenu(cmd)
	} else {
		choice, err = tui.Select(cmd.Context(), menuPrompt, activities,
			tui.WithInput(cmd.InOrStdin()),
			tui.WithOutput(cmd.OutOrStdout()),
		)
	}
	if err != nil {
		a.logger.LogError(err)
		return err
	}

	a.logger.Debug("activity chosen", mdwlog.Int("choice", choice))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nYou chose choice # %d.\n\n", choice)
	if line, ok := activityLine(choice); ok {
		fmt.Fprintln(out, line)
	} else {
		fmt.Fprintln(out, inputx.MsgNotAllowed)
	}
	return nil
}

func (a *app) plainMenu(cmd *cobra.Command) (int, error) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, menuPrompt)
	for i, item := range activities {
		fmt.Fprintf(out, "  %d) %s\n", i+1, item)
	}

	n, err := a.prompter(cmd).IntInRange(cmd.Context(), "> ", 1, int64(len(activities)))
	return int(n), err
}

func activityLine(choice int) (string, bool) {
	switch choice {
	case 1:
		return "11111111111", true
	case 2:
		return "22222222222", true
	case 3:
		return "33333333333", true
	default:
		return "", false
	}
}
