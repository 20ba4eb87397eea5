package doctor

import (
	"context"
	"fmt"

	"github.com/hbjs97/zpick/internal/cmdexec"
	"github.com/hbjs97/zpick/internal/command"
	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/zoxide"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckZoxide는 zoxide 바이너리 존재와 버전을 확인한다.
func CheckZoxide(ctx context.Context, cmd cmdexec.Commander, bin string) DiagResult {
	z := zoxide.NewAdapter(cmd, bin)
	version, err := z.Version(ctx)
	if err != nil {
		return DiagResult{
			Name:    "zoxide",
			Status:  StatusFail,
			Message: "zoxide 없음",
			Fix:     "설치: https://github.com/ajeetdsouza/zoxide",
		}
	}
	return DiagResult{
		Name:    "zoxide",
		Status:  StatusOK,
		Message: version,
	}
}

// CheckConfig는 설정 파일 파싱 상태를 확인한다. 파일 없음은 정상(기본값 동작)이다.
func CheckConfig(path string) DiagResult {
	cfg, err := config.Load(path)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: fmt.Sprintf("설정 파싱 실패: %v", err),
			Fix:     fmt.Sprintf("%s 내용 확인", path),
		}
	}
	if cfg.MaxResults == config.DefaultMaxResults && cfg.CommandOnSelect == command.DefaultTemplate {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: "기본 설정 사용 중",
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("max_results=%d, command_on_select=%q", cfg.MaxResults, cfg.CommandOnSelect),
	}
}

// CheckTemplate는 command_on_select 템플릿이 포맷 가능한지 확인한다.
func CheckTemplate(path string) DiagResult {
	cfg, err := config.Load(path)
	if err != nil {
		// 파싱 실패는 CheckConfig가 보고한다
		return DiagResult{Name: "command_on_select", Status: StatusWarn, Message: "설정 로드 실패로 생략"}
	}
	if _, err := command.Format(cfg.CommandOnSelect, "/tmp/sample"); err != nil {
		return DiagResult{
			Name:    "command_on_select",
			Status:  StatusFail,
			Message: fmt.Sprintf("템플릿 오류: %v", err),
			Fix:     "자리표시자는 {}, 리터럴 중괄호는 {{와 }} 사용",
		}
	}
	return DiagResult{
		Name:    "command_on_select",
		Status:  StatusOK,
		Message: fmt.Sprintf("%q 포맷 가능", cfg.CommandOnSelect),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath string) []DiagResult {
	cfg, _ := config.Load(cfgPath)
	bin := zoxide.DefaultBin
	if cfg != nil {
		bin = cfg.ZoxideBin
	}

	var results []DiagResult
	results = append(results, CheckZoxide(ctx, cmd, bin))
	results = append(results, CheckConfig(cfgPath))
	results = append(results, CheckTemplate(cfgPath))
	return results
}
