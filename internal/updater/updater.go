package updater

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"rfidpos/internal/config"
	"rfidpos/internal/domain"
)

type VersionStore interface {
	Get(ctx context.Context) (*domain.Version, error)
	Set(ctx context.Context, version string) error
}

type HTTPClient interface {
	Get(url string, headers http.Header) (statusCode int, respBody []byte, respHeaders http.Header, err error)
	Head(url string) (statusCode int, respHeaders http.Header, err error)
}

// Notifier gets the restart notice once a new build is on disk. The terminal
// shows it before the next prompt.
type Notifier interface {
	Notify(msg string)
}

// Service polls the release URL and downloads a new build when the remote
// file is more recent than the installed version. It never restarts anything
// itself, the operator decides when.
type Service struct {
	cfg      *config.Config
	versions VersionStore
	client   HTTPClient
	notifier Notifier
}

func New(cfg *config.Config, versions VersionStore, client HTTPClient, notifier Notifier) *Service {
	return &Service{
		cfg:      cfg,
		versions: versions,
		client:   client,
		notifier: notifier,
	}
}

func (s *Service) Start(ctx context.Context) {
	if !s.cfg.AutoUpdate || s.cfg.UpdateURL == "" {
		return
	}

	ticker := time.NewTicker(s.cfg.UpdateInterval)
	defer ticker.Stop()

	s.checkOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.checkOnce(ctx)
		}
	}
}

// checkOnce compares the remote Last-Modified header against the installed
// version and downloads when the remote is newer.
func (s *Service) checkOnce(ctx context.Context) {
	status, headers, err := s.client.Head(s.cfg.UpdateURL)
	if err != nil || status != http.StatusOK {
		zap.L().Warn("update check failed", zap.Int("status", status), zap.Error(err))
		return
	}

	modified, err := http.ParseTime(headers.Get("Last-Modified"))
	if err != nil {
		zap.L().Warn("release has no usable Last-Modified header", zap.Error(err))
		return
	}

	installed, err := s.versions.Get(ctx)
	if err != nil {
		return
	}
	if installed != nil && !modified.After(installed.ExecutedOn) {
		return
	}

	s.download(ctx, modified)
}

func (s *Service) download(ctx context.Context, modified time.Time) {
	status, body, _, err := s.client.Get(s.cfg.UpdateURL, nil)
	if err != nil || status != http.StatusOK {
		zap.L().Error("update download failed", zap.Int("status", status), zap.Error(err))
		return
	}

	name := fmt.Sprintf("rfidpos-%s", modified.Format("20060102"))
	if err := os.WriteFile(name, body, 0o755); err != nil {
		zap.L().Error("can't write downloaded build", zap.Error(err))
		return
	}

	version := modified.Format("2006.01.02")
	if err := s.versions.Set(ctx, version); err != nil {
		zap.L().Error("can't record new version", zap.Error(err))
		return
	}

	zap.L().Info("new build downloaded", zap.String("version", version), zap.String("file", name))
	s.notifier.Notify("A new build was downloaded. Restart the terminal to apply it.")
}
