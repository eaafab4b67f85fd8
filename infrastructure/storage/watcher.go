package storage

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 100 * time.Millisecond

// ChangeHandler recebe as chaves alteradas por outro processo
type ChangeHandler func(keys []string)

type watcher struct {
	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	doneCh    chan struct{}
	stopOnce  sync.Once
}

// Watch observa o arquivo e chama onChange quando outro processo o altera.
// As escritas feitas por esta instância são ignoradas. Não bloqueia.
func (s *FileStorage) Watch(ctx context.Context, onChange ChangeHandler) error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()

	if s.watcher != nil {
		return nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// o diretório é observado porque o rename substitui o inode do arquivo
	if err := fsWatcher.Add(filepath.Dir(s.path)); err != nil {
		fsWatcher.Close()
		return err
	}

	w := &watcher{
		fsWatcher: fsWatcher,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	s.watcher = w

	go s.watchLoop(ctx, w, onChange)

	logrus.WithField("path", s.path).Info("storage: watching for external changes")
	return nil
}

// Close encerra o watcher, se houver
func (s *FileStorage) Close() error {
	s.watchMu.Lock()
	w := s.watcher
	s.watcher = nil
	s.watchMu.Unlock()

	if w == nil {
		return nil
	}

	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh

	return w.fsWatcher.Close()
}

func (s *FileStorage) watchLoop(ctx context.Context, w *watcher, onChange ChangeHandler) {
	defer close(w.doneCh)

	var (
		pending bool
		timer   = time.NewTimer(watchDebounce)
	)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			pending = true
			timer.Reset(watchDebounce)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("storage: watcher error")

		case <-timer.C:
			pending = false

			changed, err := s.reload()
			if err != nil {
				logrus.WithError(err).WithField("path", s.path).Warn("storage: failed to reload after external change")
				continue
			}
			if len(changed) == 0 {
				continue
			}

			logrus.WithField("keys", changed).Debug("storage: external change detected")
			onChange(changed)
		}
	}
}
