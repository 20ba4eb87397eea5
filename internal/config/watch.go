package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hbjs97/zpick/internal/logging"
)

// Watch는 설정 파일 변경을 감시하여 갱신된 Config를 채널로 전달한다.
// 에디터의 rename 저장을 잡기 위해 파일이 아닌 디렉토리를 감시한다.
// 변경된 파일이 파싱 불가능하면 이전 값을 유지한다 (채널로 보내지 않음).
// ctx 취소 시 watcher와 채널이 닫힌다.
func Watch(ctx context.Context, path string) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config.Watch: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config.Watch: %w", err)
	}

	updates := make(chan *Config, 1)
	target := filepath.Clean(path)

	go func() {
		defer close(updates)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logging.Warn(fmt.Sprintf("config: 변경된 설정 무시: %v", err))
					continue
				}
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn(fmt.Sprintf("config: watcher 오류: %v", err))
			}
		}
	}()

	return updates, nil
}
