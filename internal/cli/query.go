package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/pathutil"
	"github.com/hbjs97/zpick/internal/zoxide"
)

func (a *App) newQueryCmd() *cobra.Command {
	var limit int
	var score bool
	var tilde bool

	cmd := &cobra.Command{
		Use:   "query <words...>",
		Short: "zoxide 랭킹 순으로 매칭 디렉토리를 출력한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuery(cmd, strings.Join(args, " "), limit, score, tilde)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "최대 결과 수 (기본: 설정의 max_results)")
	cmd.Flags().BoolVar(&score, "score", false, "점수 포함 테이블 출력")
	cmd.Flags().BoolVar(&tilde, "tilde", false, "홈 디렉토리를 ~로 축약")
	return cmd
}

// runQuery는 비대화형 조회다. 결과 없음은 에러가 아니다 (빈 출력).
func (a *App) runQuery(cmd *cobra.Command, query string, limit int, score, tilde bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if limit <= 0 {
		limit = cfg.MaxResults
	}

	adapter := zoxide.NewAdapter(a.Commander, cfg.ZoxideBin)
	out := cmd.OutOrStdout()

	if score {
		entries, err := adapter.QueryScored(cmd.Context(), query, limit)
		if err != nil {
			return fmt.Errorf("cli.query: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(out)
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Score", "Path"})
		for _, e := range entries {
			path := e.Path
			if tilde {
				path = pathutil.DisplayHome(path)
			}
			tw.AppendRow(table.Row{fmt.Sprintf("%.1f", e.Score), path})
		}
		tw.Render()
		return nil
	}

	paths, err := adapter.Query(cmd.Context(), query, limit)
	if err != nil {
		return fmt.Errorf("cli.query: %w", err)
	}
	for _, p := range paths {
		if tilde {
			p = pathutil.DisplayHome(p)
		}
		fmt.Fprintln(out, p)
	}
	return nil
}
