package shell

// Widget은 피커를 실행하고 선택된 디렉토리로 cd하는 셸 함수 스니펫을 반환한다.
// 피커 TUI는 stderr에 렌더링되므로 command substitution 안에서 동작한다.
func Widget(shellType string) string {
	switch shellType {
	case "fish":
		return `# zpick shell integration (fish)
function zp
    set -l dir (zpick --print $argv)
    and test -n "$dir"
    and cd "$dir"
end
`
	default: // bash, zsh, sh
		return `# zpick shell integration (` + shellName(shellType) + `)
zp() {
  local dir
  dir="$(zpick --print "$@")" && [ -n "$dir" ] && cd "$dir"
}
`
	}
}

func shellName(shellType string) string {
	if shellType == "" {
		return "sh"
	}
	return shellType
}
