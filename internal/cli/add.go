package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/zoxide"
)

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: "경로 방문을 zoxide 데이터베이스에 기록한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}

			adapter := zoxide.NewAdapter(a.Commander, cfg.ZoxideBin)
			if err := adapter.Add(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("cli.add: %w", err)
			}
			return nil
		},
	}
}
