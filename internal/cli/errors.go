package cli

import (
	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/tui"
	"github.com/hbjs97/zpick/internal/zoxide"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrCanceled는 피커가 선택 없이 종료되었을 때의 sentinel error다.
	ErrCanceled = tui.ErrCanceled
	// ErrNotInstalled는 zoxide 바이너리를 찾을 수 없을 때의 sentinel error다.
	ErrNotInstalled = zoxide.ErrNotInstalled
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
