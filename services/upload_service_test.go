package services_test

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"werkstatt/errors"
	"werkstatt/infrastructure/storage"
	"werkstatt/mocks"
	"werkstatt/observability"
	"werkstatt/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pngHeader is enough for content sniffing to recognise a PNG.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func pngOfSize(size int) []byte {
	return append(append([]byte{}, pngHeader...), make([]byte, size-len(pngHeader))...)
}

func newUploadService(t *testing.T, maxBytes int64) (*services.UploadService, *storage.UploadStore, *observability.MonitoringManager) {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	store, err := storage.NewUploadStore(t.TempDir(), log)
	require.NoError(t, err)
	monitoring := observability.NewMonitoringManager(log, nil)
	return services.NewUploadService(store, maxBytes, "/uploads/", monitoring, log), store, monitoring
}

func TestUploadService_Upload(t *testing.T) {
	req := require.New(t)
	svc, store, monitoring := newUploadService(t, 1024)

	// When
	res, err := svc.Upload(bytes.NewReader(pngOfSize(600)), 600)

	// Then the file is stored under a generated name
	req.NoError(err)
	req.Equal("image/png", res.MIME)
	req.True(strings.HasPrefix(res.URL, "/uploads/"))
	req.True(strings.HasSuffix(res.URL, ".png"))
	content, err := os.ReadFile(filepath.Join(store.Dir(), strings.TrimPrefix(res.URL, "/uploads/")))
	req.NoError(err)
	req.Len(content, 600)
	req.Equal(uint64(1), monitoring.Snapshot().Uploads)
}

func TestUploadService_Rejections(t *testing.T) {
	t.Run("declared size above the limit", func(t *testing.T) {
		svc, _, _ := newUploadService(t, 100)
		_, err := svc.Upload(bytes.NewReader(pngOfSize(50)), 101)
		require.ErrorIs(t, err, errors.ErrUploadTooLarge)
	})

	t.Run("actual size above the limit is removed", func(t *testing.T) {
		req := require.New(t)
		svc, store, monitoring := newUploadService(t, 100)

		_, err := svc.Upload(bytes.NewReader(pngOfSize(300)), -1)

		req.ErrorIs(err, errors.ErrUploadTooLarge)
		entries, err := os.ReadDir(store.Dir())
		req.NoError(err)
		req.Empty(entries)
		req.Zero(monitoring.Snapshot().Uploads)
	})

	t.Run("content is not an image", func(t *testing.T) {
		svc, _, _ := newUploadService(t, 1024)
		_, err := svc.Upload(strings.NewReader("#!/bin/sh\necho hallo\n"), 22)
		require.ErrorIs(t, err, errors.ErrUnsupportedMedia)
	})
}

func TestUploadService_StoreFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIUploadStore(ctrl)
	svc := services.NewUploadService(store, 1024, "/uploads/", nil, slog.New(slog.DiscardHandler))
	boom := stderrors.New("disk full")

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	_, err := svc.Upload(bytes.NewReader(pngOfSize(64)), 64)

	req.ErrorIs(err, boom)
}
