package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/zpick/internal/shell"
)

func (a *App) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "shell <bash|zsh|fish>",
		Short:     "쉘 통합 함수(zp)를 출력한다",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), shell.Widget(args[0]))
			return nil
		},
	}
}
