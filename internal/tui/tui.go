// Package tui는 zoxide 검색 결과를 선택하는 대화형 피커를 제공한다.
// 입력마다 zoxide를 재조회하고, enter로 선택된 경로를 반환한다.
// 렌더링은 stderr로 나가므로 command substitution 안에서 쓸 수 있다.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hbjs97/zpick/internal/config"
	"github.com/hbjs97/zpick/internal/logging"
	"github.com/hbjs97/zpick/internal/pathutil"
	"github.com/hbjs97/zpick/internal/zoxide"
)

// ErrCanceled는 사용자가 선택 없이 피커를 종료했을 때의 sentinel error다.
var ErrCanceled = errors.New("picker canceled")

// Querier는 피커가 필요로 하는 zoxide 연산이다. *zoxide.Adapter가 구현한다.
type Querier interface {
	Query(ctx context.Context, query string, limit int) ([]string, error)
	QueryScored(ctx context.Context, query string, limit int) ([]zoxide.Entry, error)
	Remove(ctx context.Context, path string) error
}

// Result는 목록의 한 항목이다. 점수는 show_scores일 때만 채워진다.
type Result struct {
	Path  string
	Score float64
}

type resultsMsg struct {
	query   string
	results []Result
}

type errMsg struct {
	query string
	err   error
}

type configMsg struct {
	cfg *config.Config
}

type removedMsg struct {
	path string
}

// Model은 피커의 bubbletea 모델이다.
type Model struct {
	ctx     context.Context
	querier Querier
	cfg     *config.Config
	updates <-chan *config.Config
	styles  *Styles
	home    string

	input    textinput.Model
	results  []Result
	selected int
	width    int
	height   int

	err          error
	notInstalled bool
	selection    string
	canceled     bool
}

// New는 피커 모델을 생성한다. updates는 nil일 수 있다 (설정 감시 없음).
func New(ctx context.Context, querier Querier, cfg *config.Config, updates <-chan *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "디렉토리 검색어 입력..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Prompt = "> "

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	return &Model{
		ctx:     ctx,
		querier: querier,
		cfg:     cfg,
		updates: updates,
		styles:  DefaultStyles(),
		home:    home,
		input:   ti,
		width:   80,
		height:  24,
	}
}

// Selection은 선택된 경로를 반환한다. 취소 시 빈 문자열.
func (m *Model) Selection() string { return m.selection }

// Canceled는 선택 없이 종료되었는지 반환한다.
func (m *Model) Canceled() bool { return m.canceled }

// Init은 커서 깜빡임과 설정 감시를 시작한다.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForConfig())
}

// Update는 메시지를 처리한다.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultsMsg:
		// 지연 도착한 이전 질의 결과는 버린다
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = msg.results
		m.err = nil
		m.notInstalled = false
		if m.selected >= len(m.results) {
			m.selected = 0
		}
		return m, nil

	case errMsg:
		if msg.query != m.input.Value() {
			return m, nil
		}
		m.results = nil
		m.selected = 0
		m.err = msg.err
		m.notInstalled = errors.Is(msg.err, zoxide.ErrNotInstalled)
		logging.Error(fmt.Sprintf("tui: 조회 실패: %v", msg.err))
		return m, nil

	case configMsg:
		if msg.cfg != nil {
			m.cfg = msg.cfg
			logging.Debug("tui: 설정 갱신 반영")
		}
		return m, tea.Batch(m.queryCmd(m.input.Value()), m.waitForConfig())

	case removedMsg:
		logging.Debug(fmt.Sprintf("tui: 항목 제거: %s", msg.path))
		return m, m.queryCmd(m.input.Value())
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.queryCmd(m.input.Value()))
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.results) == 0 {
			return m, nil
		}
		m.selection = m.results[m.selected].Path
		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil

	case tea.KeyCtrlX:
		if len(m.results) == 0 {
			return m, nil
		}
		return m, m.removeCmd(m.results[m.selected].Path)
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.queryCmd(m.input.Value()))
	}
	return m, cmd
}

// queryCmd는 현재 질의로 zoxide를 비동기 조회하는 tea.Cmd를 만든다.
// 빈 질의는 조회 없이 결과를 비운다.
func (m *Model) queryCmd(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" {
		return func() tea.Msg {
			return resultsMsg{query: query}
		}
	}

	limit := m.cfg.MaxResults
	scored := m.cfg.ShowScores
	return func() tea.Msg {
		if scored {
			entries, err := m.querier.QueryScored(m.ctx, query, limit)
			if err != nil {
				return errMsg{query: query, err: err}
			}
			results := make([]Result, 0, len(entries))
			for _, e := range entries {
				results = append(results, Result{Path: e.Path, Score: e.Score})
			}
			return resultsMsg{query: query, results: results}
		}

		paths, err := m.querier.Query(m.ctx, query, limit)
		if err != nil {
			return errMsg{query: query, err: err}
		}
		results := make([]Result, 0, len(paths))
		for _, p := range paths {
			results = append(results, Result{Path: p})
		}
		return resultsMsg{query: query, results: results}
	}
}

func (m *Model) removeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.querier.Remove(m.ctx, path); err != nil {
			return errMsg{query: m.input.Value(), err: err}
		}
		return removedMsg{path: path}
	}
}

func (m *Model) waitForConfig() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	updates := m.updates
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configMsg{cfg: cfg}
	}
}

// View는 입력줄, 결과 목록, 상태줄을 렌더링한다.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("zpick"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.notInstalled:
		b.WriteString(m.styles.Error.Render("zoxide를 찾을 수 없습니다"))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("설치: https://github.com/ajeetdsouza/zoxide"))
	case m.err != nil:
		b.WriteString(m.styles.Muted.Render("결과 없음"))
	case strings.TrimSpace(m.input.Value()) == "":
		b.WriteString(m.styles.Muted.Render("입력한 검색어로 자주 가는 디렉토리를 찾습니다"))
	case len(m.results) == 0:
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("'%s' 결과 없음 — 다른 검색어를 시도하세요", m.input.Value())))
	default:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter 선택 · esc 취소 · ctrl+x 항목 제거"))
	return b.String()
}

func (m *Model) renderResults() string {
	visible := m.height - 7
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.results) {
		end = len(m.results)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.results[i]

		indicator := "  "
		style := m.styles.Normal
		if i == m.selected {
			indicator = "> "
			style = m.styles.Selected
		}

		line := indicator + style.Render(pathutil.Display(r.Path, m.home))
		if m.cfg.ShowScores {
			line += " " + m.styles.Score.Render(fmt.Sprintf("(%.1f)", r.Score))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// Run은 피커를 실행하여 선택된 경로를 반환한다.
// TUI는 stderr에 렌더링되고, 취소 시 ErrCanceled를 반환한다.
func Run(ctx context.Context, querier Querier, cfg *config.Config, updates <-chan *config.Config) (string, error) {
	m := New(ctx, querier, cfg, updates)
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))

	// 피커가 stderr를 점유하는 동안 로그의 콘솔 출력을 막는다.
	logging.SetQuiet(true)
	defer logging.SetQuiet(false)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui.Run: %w", err)
	}

	result, ok := final.(*Model)
	if !ok || result.Canceled() || result.Selection() == "" {
		return "", ErrCanceled
	}
	return result.Selection(), nil
}
