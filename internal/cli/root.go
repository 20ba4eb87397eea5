package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hbjs97/zpick/internal/cmdexec"
	"github.com/hbjs97/zpick/internal/command"
	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/logging"
	"github.com/hbjs97/zpick/internal/tui"
	"github.com/hbjs97/zpick/internal/zoxide"
)

// App은 CLI 전역 의존성을 묶는다. 테스트에서 FakeCommander를 주입한다.
type App struct {
	Commander cmdexec.Commander
	CfgPath   string
}

// NewRootCmd는 zpick CLI의 루트 명령을 생성한다.
// 루트 자체는 대화형 피커를 실행한다.
func (a *App) NewRootCmd() *cobra.Command {
	var verbose bool
	var printOnly bool

	cmd := &cobra.Command{
		Use:          "zpick",
		Short:        "zoxide 랭킹 기반 디렉토리 피커",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPick(cmd, printOnly)
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "상세 출력")
	cmd.Flags().BoolVar(&printOnly, "print", false, "선택된 경로만 출력 (on-select 명령 생략)")

	cmd.AddCommand(
		a.newQueryCmd(),
		a.newAddCmd(),
		a.newOpenCmd(),
		a.newDoctorCmd(),
		a.newShellCmd(),
	)
	return cmd
}

// runPick은 피커를 실행하고 선택 결과를 처리한다.
// 선택된 경로는 stdout으로 출력되고, print 모드가 아니면
// on-select 명령 실행과 zoxide add 피드백이 이어진다.
func (a *App) runPick(cmd *cobra.Command, printOnly bool) error {
	ctx := cmd.Context()

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	adapter := zoxide.NewAdapter(a.Commander, cfg.ZoxideBin)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates, err := config.Watch(watchCtx, a.CfgPath)
	if err != nil {
		// 설정 감시 실패는 치명적이지 않다
		logging.Debug(fmt.Sprintf("cli.pick: 설정 감시 비활성: %v", err))
		updates = nil
	}

	selection, err := tui.Run(ctx, adapter, cfg, updates)
	if err != nil {
		return err
	}

	if !printOnly {
		if err := command.Run(a.Commander, cfg.CommandOnSelect, selection); err != nil {
			return fmt.Errorf("cli.pick: %w", err)
		}
		// 선택 피드백 실패는 로그만 남긴다. 랭킹 갱신이 안 될 뿐이다
		if err := adapter.Add(ctx, selection); err != nil {
			logging.Error(fmt.Sprintf("cli.pick: zoxide add 실패: %v", err))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), selection)
	return nil
}
