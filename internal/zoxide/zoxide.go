package zoxide

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hbjs97/zpick/internal/cmdexec"
)

// ErrNotInstalled는 zoxide 바이너리를 찾을 수 없을 때의 sentinel error다.
var ErrNotInstalled = errors.New("zoxide not installed")

// DefaultBin은 기본 zoxide 바이너리 이름이다.
const DefaultBin = "zoxide"

// Entry는 --score 조회 결과의 한 항목이다.
type Entry struct {
	Score float64
	Path  string
}

// Adapter는 zoxide CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
	bin string
}

// NewAdapter는 새 zoxide Adapter를 생성한다. bin이 빈 문자열이면 DefaultBin을 쓴다.
func NewAdapter(cmd cmdexec.Commander, bin string) *Adapter {
	if bin == "" {
		bin = DefaultBin
	}
	return &Adapter{cmd: cmd, bin: bin}
}

// Query는 `zoxide query <words...> --list`를 실행하여 랭킹 순 경로 목록을 반환한다.
// query는 공백 기준으로 단어 분리되어 개별 인자로 전달된다.
// limit가 양수면 결과를 limit개로 자른다. 순서는 zoxide 랭킹 그대로 유지한다.
func (a *Adapter) Query(ctx context.Context, query string, limit int) ([]string, error) {
	args := append([]string{"query"}, strings.Fields(query)...)
	args = append(args, "--list")

	out, err := a.cmd.Run(ctx, a.bin, args...)
	if err != nil {
		return nil, a.wrap("Query", out, err)
	}

	paths := splitLines(string(out))
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths, nil
}

// QueryScored는 `zoxide query <words...> --list --score`를 실행하여
// 점수가 포함된 항목 목록을 반환한다. 파싱 불가능한 줄은 건너뛴다.
func (a *Adapter) QueryScored(ctx context.Context, query string, limit int) ([]Entry, error) {
	args := append([]string{"query"}, strings.Fields(query)...)
	args = append(args, "--list", "--score")

	out, err := a.cmd.Run(ctx, a.bin, args...)
	if err != nil {
		return nil, a.wrap("QueryScored", out, err)
	}

	var entries []Entry
	for _, line := range splitLines(string(out)) {
		entry, ok := parseScored(line)
		if !ok {
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}

// Add는 `zoxide add <path>`로 방문 기록을 갱신한다.
func (a *Adapter) Add(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("zoxide.Add: 빈 경로")
	}
	out, err := a.cmd.Run(ctx, a.bin, "add", path)
	if err != nil {
		return a.wrap("Add", out, err)
	}
	return nil
}

// Remove는 `zoxide remove <path>`로 항목을 데이터베이스에서 제거한다.
func (a *Adapter) Remove(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("zoxide.Remove: 빈 경로")
	}
	out, err := a.cmd.Run(ctx, a.bin, "remove", path)
	if err != nil {
		return a.wrap("Remove", out, err)
	}
	return nil
}

// Version은 `zoxide --version` 출력을 공백 제거 후 반환한다.
func (a *Adapter) Version(ctx context.Context) (string, error) {
	out, err := a.cmd.Run(ctx, a.bin, "--version")
	if err != nil {
		return "", a.wrap("Version", out, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// wrap은 실행 에러를 zoxide 패키지 에러로 감싼다.
// 바이너리 없음은 ErrNotInstalled로 판정하고, 그 외에는 출력을 포함해 래핑한다.
func (a *Adapter) wrap(op string, out []byte, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("zoxide.%s: %w", op, ErrNotInstalled)
	}
	msg := strings.TrimSpace(string(out))
	if msg != "" {
		return fmt.Errorf("zoxide.%s: %w: %s", op, err, msg)
	}
	return fmt.Errorf("zoxide.%s: %w", op, err)
}

// splitLines는 개행 단위로 자르고 빈 줄을 버린다.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseScored는 "   12.5 /path/with spaces" 형식의 줄을 파싱한다.
// 경로에 공백이 포함될 수 있으므로 첫 공백까지만 점수로 취급한다.
func parseScored(line string) (Entry, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return Entry{}, false
	}
	score, err := strconv.ParseFloat(trimmed[:i], 64)
	if err != nil {
		return Entry{}, false
	}
	path := strings.TrimLeft(trimmed[i:], " \t")
	if path == "" {
		return Entry{}, false
	}
	return Entry{Score: score, Path: path}, true
}
