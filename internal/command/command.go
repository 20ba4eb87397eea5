// Package command는 선택 시 실행할 명령 템플릿을 다룬다.
// 템플릿의 {} 자리표시자에 shell-quote된 경로를 치환한다.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/zpick/internal/cmdexec"
	"github.com/kballard/go-shellquote"
)

// ErrBadTemplate는 명령 템플릿이 잘못되었을 때의 sentinel error다.
var ErrBadTemplate = errors.New("malformed command template")

// DefaultTemplate는 기본 on-select 명령이다.
const DefaultTemplate = "xdg-open"

// Format은 템플릿의 {} 자리를 shell-quote된 path로 치환한 명령 문자열을 반환한다.
// {{와 }}는 리터럴 중괄호 이스케이프다. 짝 없는 { 또는 }는 에러.
// 자리표시자가 하나도 없으면 quote된 경로를 끝에 덧붙인다.
func Format(template, path string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("command.Format: %w: 빈 템플릿", ErrBadTemplate)
	}

	quoted := shellquote.Join(path)

	var b strings.Builder
	substituted := false
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteString(quoted)
				substituted = true
				i++
				continue
			}
			return "", fmt.Errorf("command.Format: %w: 짝 없는 '{' (위치 %d)", ErrBadTemplate, i)
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("command.Format: %w: 짝 없는 '}' (위치 %d)", ErrBadTemplate, i)
		default:
			b.WriteByte(template[i])
		}
	}

	if !substituted {
		b.WriteByte(' ')
		b.WriteString(quoted)
	}
	return b.String(), nil
}

// Run은 템플릿을 path로 포맷한 뒤 `sh -c`로 분리 실행한다.
// 작업 디렉토리는 선택된 경로다.
func Run(cmd cmdexec.Commander, template, path string) error {
	line, err := Format(template, path)
	if err != nil {
		return err
	}
	if err := cmd.Detach(path, "sh", "-c", line); err != nil {
		return fmt.Errorf("command.Run: %w", err)
	}
	return nil
}
