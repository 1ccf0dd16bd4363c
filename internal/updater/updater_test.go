package updater

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rfidpos/internal/config"
	"rfidpos/internal/domain"
)

const releaseURL = "https://example.com/rfidpos"

type mocks struct {
	versions *MockVersionStore
	client   *MockHTTPClient
	notifier *MockNotifier
}

func setup(t *testing.T) (*Service, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	m := mocks{
		versions: NewMockVersionStore(ctrl),
		client:   NewMockHTTPClient(ctrl),
		notifier: NewMockNotifier(ctrl),
	}
	cfg := &config.Config{AutoUpdate: true, UpdateURL: releaseURL, UpdateInterval: time.Hour}
	return New(cfg, m.versions, m.client, m.notifier), m
}

func lastModified(ts time.Time) http.Header {
	headers := http.Header{}
	headers.Set("Last-Modified", ts.UTC().Format(http.TimeFormat))
	return headers
}

func TestCheckDownloadsNewerBuild(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	remote := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	m.client.EXPECT().Head(releaseURL).Return(http.StatusOK, lastModified(remote), nil)
	m.versions.EXPECT().Get(ctx).Return(&domain.Version{
		Version:    "2.1",
		ExecutedOn: remote.Add(-24 * time.Hour),
	}, nil)
	m.client.EXPECT().Get(releaseURL, nil).Return(http.StatusOK, []byte("new build"), nil, nil)
	m.versions.EXPECT().Set(ctx, "2026.08.20").Return(nil)
	m.notifier.EXPECT().Notify("A new build was downloaded. Restart the terminal to apply it.")

	svc.checkOnce(ctx)

	data, err := os.ReadFile("rfidpos-20260820")
	assert.NoError(t, err)
	assert.Equal(t, "new build", string(data))
}

func TestCheckSkipsWhenUpToDate(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	remote := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	m.client.EXPECT().Head(releaseURL).Return(http.StatusOK, lastModified(remote), nil)
	m.versions.EXPECT().Get(ctx).Return(&domain.Version{
		Version:    "2026.08.21",
		ExecutedOn: remote.Add(24 * time.Hour),
	}, nil)

	svc.checkOnce(ctx)
}

func TestCheckDownloadsOnFreshDatabase(t *testing.T) {
	svc, m := setup(t)
	ctx := context.Background()
	remote := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	m.client.EXPECT().Head(releaseURL).Return(http.StatusOK, lastModified(remote), nil)
	m.versions.EXPECT().Get(ctx).Return(nil, nil)
	m.client.EXPECT().Get(releaseURL, nil).Return(http.StatusOK, []byte("new build"), nil, nil)
	m.versions.EXPECT().Set(ctx, "2026.08.20").Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any())

	svc.checkOnce(ctx)
}

func TestCheckIgnoresFailedHead(t *testing.T) {
	svc, m := setup(t)

	m.client.EXPECT().Head(releaseURL).Return(http.StatusNotFound, nil, nil)

	svc.checkOnce(context.Background())
}

func TestCheckIgnoresMissingLastModified(t *testing.T) {
	svc, m := setup(t)

	m.client.EXPECT().Head(releaseURL).Return(http.StatusOK, http.Header{}, nil)

	svc.checkOnce(context.Background())
}

func TestStartIsANoopWhenDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	svc := New(&config.Config{AutoUpdate: false}, NewMockVersionStore(ctrl), NewMockHTTPClient(ctrl), NewMockNotifier(ctrl))
	svc.Start(context.Background())
}
