// Package pathutil는 경로 표시용 유틸리티를 제공한다.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Display는 home 아래의 경로를 ~ 표기로 줄인다.
// home 자체는 "~", 하위 경로는 "~/rest", 그 외는 입력 그대로 반환한다.
// 경로 경계 기준으로만 매칭한다 (/home/user와 /home/userx는 무관).
func Display(path, home string) string {
	if path == "" || home == "" {
		return path
	}

	cleaned := filepath.Clean(path)
	home = filepath.Clean(home)

	if cleaned == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(cleaned, home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return cleaned
}

// DisplayHome은 현재 사용자의 홈 디렉토리 기준으로 Display를 적용한다.
// 홈 디렉토리 확인 실패 시 입력 그대로 반환한다 (graceful).
func DisplayHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return Display(path, home)
}
