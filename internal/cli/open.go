package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/zpick/internal/command"
	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/logging"
	"github.com/hbjs97/zpick/internal/zoxide"
)

func (a *App) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "on-select 명령으로 경로를 열고 방문을 기록한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOpen(cmd, args[0])
		},
	}
}

// runOpen은 피커의 선택 동작을 스크립트에서 쓸 수 있게 노출한 것이다.
func (a *App) runOpen(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	if err := command.Run(a.Commander, cfg.CommandOnSelect, path); err != nil {
		return fmt.Errorf("cli.open: %w", err)
	}

	adapter := zoxide.NewAdapter(a.Commander, cfg.ZoxideBin)
	if err := adapter.Add(cmd.Context(), path); err != nil {
		logging.Error(fmt.Sprintf("cli.open: zoxide add 실패: %v", err))
	}
	return nil
}
