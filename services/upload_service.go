//go:generate go run go.uber.org/mock/mockgen -source=upload_service.go -destination=../mocks/mock_upload_service.go -package=mocks
package services

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"werkstatt/domain/mimetypes"
	"werkstatt/errors"
	"werkstatt/infrastructure/storage"
	"werkstatt/observability"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const sniffLength = 512

type IUploadService interface {
	Upload(r io.Reader, declaredSize int64) (UploadResult, error)
}

type UploadResult struct {
	URL  string `json:"url"`
	MIME string `json:"mime"`
}

// UploadService accepts post pictures: the content is sniffed, never trusted from the client.
type UploadService struct {
	store      storage.IUploadStore
	maxBytes   int64
	urlPrefix  string
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewUploadService(store storage.IUploadStore, maxBytes int64, urlPrefix string,
	monitoring *observability.MonitoringManager, log *slog.Logger) *UploadService {
	return &UploadService{store: store, maxBytes: maxBytes, urlPrefix: urlPrefix, monitoring: monitoring, log: log}
}

func (s *UploadService) Upload(r io.Reader, declaredSize int64) (UploadResult, error) {
	if declaredSize > s.maxBytes {
		s.monitoring.IncrUpload("too_large")
		return UploadResult{}, errors.ErrUploadTooLarge
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(r, head)
	if err != nil && !stderrors.Is(err, io.ErrUnexpectedEOF) && !stderrors.Is(err, io.EOF) {
		return UploadResult{}, err
	}
	head = head[:n]

	detected := mimetype.Detect(head).String()
	mt, ext, ok := mimetypes.AllowedImage(detected)
	if !ok {
		s.monitoring.IncrUpload("unsupported")
		s.log.Debug("Upload rejected", "mime", detected)
		return UploadResult{}, errors.ErrUnsupportedMedia
	}

	name := uuid.NewString() + ext
	body := io.MultiReader(bytes.NewReader(head), r)
	written, err := s.store.Save(name, io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return UploadResult{}, err
	}
	if written > s.maxBytes {
		if err = s.store.Delete(name); err != nil {
			s.log.Warn("Unable to delete oversized upload", "name", name, "error", err)
		}
		s.monitoring.IncrUpload("too_large")
		return UploadResult{}, errors.ErrUploadTooLarge
	}

	s.monitoring.IncrUpload("ok")
	s.log.Debug("Upload stored", "name", name, "mime", mt, "bytes", written)
	return UploadResult{URL: s.urlPrefix + name, MIME: string(mt)}, nil
}
