// Package logging은 파일 기반 로그를 제공한다.
// 피커 TUI가 터미널을 점유하므로 콘솔 대신 ~/.config/zpick/zpick.log에 기록한다.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var logfile *os.File
var verbose bool
var quiet bool

// Init은 로그 파일을 연다. 실패해도 동작은 계속한다 (로그만 유실).
func Init() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".config", "zpick")
	_ = os.MkdirAll(dir, 0o755)
	f, err := os.OpenFile(filepath.Join(dir, "zpick.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logfile = f
	log.SetOutput(f)
}

// Close는 로그 파일을 닫는다.
func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

// SetVerbose는 디버그 출력의 stderr 노출 여부를 토글한다.
func SetVerbose(v bool) { verbose = v }

// SetQuiet는 stderr 출력을 차단한다. 피커 TUI가 stderr에 화면을
// 그리는 동안 로그가 프레임을 깨지 않도록 실행 전후로 토글한다.
// 파일 기록은 계속된다.
func SetQuiet(q bool) { quiet = q }

// Error는 에러를 로그 파일에 기록하고, quiet가 아니면 stderr에도 출력한다.
func Error(msg string) {
	if !quiet {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	emit("[ERROR] " + msg)
}

// Warn은 경고를 기록한다. verbose이고 quiet가 아닐 때만 stderr에도 출력한다.
func Warn(msg string) {
	if verbose && !quiet {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	emit("[WARN] " + msg)
}

// Debug는 verbose일 때만 기록한다.
func Debug(msg string) {
	if !verbose {
		return
	}
	if !quiet {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	emit("[DEBUG] " + msg)
}

func emit(msg string) {
	if logfile == nil {
		return
	}
	log.Println(msg)
}
