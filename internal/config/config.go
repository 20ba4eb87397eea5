package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/hbjs97/zpick/internal/command"
	"github.com/hbjs97/zpick/internal/logging"
	"github.com/hbjs97/zpick/internal/zoxide"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config error")

// DefaultMaxResults는 max_results의 기본값이다.
const DefaultMaxResults = 10

// Config는 zpick 설정 파일의 최상위 구조체다.
type Config struct {
	MaxResults      int    `toml:"max_results"`
	CommandOnSelect string `toml:"command_on_select"`
	ZoxideBin       string `toml:"zoxide_bin"`
	ShowScores      bool   `toml:"show_scores"`
}

// Default는 기본 설정을 반환한다.
func Default() *Config {
	return &Config{
		MaxResults:      DefaultMaxResults,
		CommandOnSelect: command.DefaultTemplate,
		ZoxideBin:       zoxide.DefaultBin,
	}
}

// DefaultPath는 기본 설정 파일 경로(~/.config/zpick/config.toml)를 반환한다.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "zpick", "config.toml")
	}
	return filepath.Join(home, ".config", "zpick", "config.toml")
}

// rawConfig는 개별 값의 타입 오류를 파일 전체 거부로 키우지 않기 위한
// 중간 단계다. 각 키는 Primitive로 받아 키 단위로 디코딩한다.
type rawConfig struct {
	MaxResults      toml.Primitive `toml:"max_results"`
	CommandOnSelect toml.Primitive `toml:"command_on_select"`
	ZoxideBin       toml.Primitive `toml:"zoxide_bin"`
	ShowScores      toml.Primitive `toml:"show_scores"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 — zpick은 무설정으로 동작해야 한다.
// 잘못된 개별 값(타입 불일치, max_results <= 0)은 경고 후 기본값으로
// 대체한다. ErrConfig는 TOML 문법 오류에만 쓴다.
func Load(path string) (*Config, error) {
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}

	cfg := Default()
	decodeValue(meta, "max_results", raw.MaxResults, &cfg.MaxResults)
	decodeValue(meta, "command_on_select", raw.CommandOnSelect, &cfg.CommandOnSelect)
	decodeValue(meta, "zoxide_bin", raw.ZoxideBin, &cfg.ZoxideBin)
	decodeValue(meta, "show_scores", raw.ShowScores, &cfg.ShowScores)

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logging.Debug(fmt.Sprintf("config: 알 수 없는 키 무시: %v", undecoded))
	}
	cfg.normalize()
	return cfg, nil
}

// decodeValue는 정의된 키 하나를 디코딩한다. 타입이 맞지 않으면
// 경고 후 dst의 기본값을 유지한다.
func decodeValue[T any](meta toml.MetaData, key string, prim toml.Primitive, dst *T) {
	if !meta.IsDefined(key) {
		return
	}
	var v T
	if err := meta.PrimitiveDecode(prim, &v); err != nil {
		logging.Warn(fmt.Sprintf("config: %s 값 무효, 기본값 사용: %v", key, err))
		return
	}
	*dst = v
}

// normalize는 잘못된 개별 값을 기본값으로 교체한다. 파일 전체를 거부하지 않는다.
func (c *Config) normalize() {
	if c.MaxResults <= 0 {
		logging.Warn(fmt.Sprintf("config: max_results=%d 무효, 기본값 %d 사용", c.MaxResults, DefaultMaxResults))
		c.MaxResults = DefaultMaxResults
	}
	if c.CommandOnSelect == "" {
		c.CommandOnSelect = command.DefaultTemplate
	}
	if c.ZoxideBin == "" {
		c.ZoxideBin = zoxide.DefaultBin
	}
}
