package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"coachdata/internal/domain"
	"coachdata/internal/storage"
	"coachdata/internal/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidContentType = errors.New("invalid or missing video content type")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
	ErrDownloadURLError   = errors.New("failed to generate download URL")
	ErrVideoNotFound      = errors.New("video record not found")
)

// UploadURLResponse carries the presigned URL and the object key the
// client must report back when confirming the upload.
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// VideoService manages recorded set videos: the bytes go to object
// storage via presigned URLs, the measurement metadata becomes an
// immutable VideoRecord in the store.
type VideoService struct {
	store       *store.Store
	fileStorage storage.FileStorage
}

// NewVideoService creates a new instance of VideoService.
func NewVideoService(s *store.Store, fileStorage storage.FileStorage) *VideoService {
	return &VideoService{store: s, fileStorage: fileStorage}
}

// RequestUploadURL generates a presigned PUT URL for a new set video.
func (vs *VideoService) RequestUploadURL(ctx context.Context, clientID, contentType string) (*UploadURLResponse, error) {
	if contentType == "" || !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return nil, ErrInvalidContentType
	}

	fileExtension := "mp4"
	if parts := strings.Split(contentType, "/"); len(parts) == 2 && parts[1] != "" {
		fileExtension = parts[1]
	}
	objectKey := path.Join("videos", clientID, fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := vs.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmUpload records the measurement metadata for an uploaded video.
func (vs *VideoService) ConfirmUpload(ctx context.Context, record domain.VideoRecord) (domain.VideoRecord, *store.Commit) {
	return vs.store.AddVideoRecord(record)
}

// DownloadURL generates a presigned GET URL for a stored video record.
func (vs *VideoService) DownloadURL(ctx context.Context, videoRecordID string) (string, error) {
	var record domain.VideoRecord
	found := false
	for _, v := range vs.store.VideoRecords() {
		if v.ID == videoRecordID {
			record = v
			found = true
			break
		}
	}
	if !found {
		return "", ErrVideoNotFound
	}

	url, err := vs.fileStorage.GeneratePresignedDownloadURL(ctx, record.VideoRef, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}

// Delete removes the video record and, best-effort, its stored object.
// A failed object delete is logged; the metadata removal still proceeds.
func (vs *VideoService) Delete(ctx context.Context, videoRecordID string) *store.Commit {
	for _, v := range vs.store.VideoRecords() {
		if v.ID == videoRecordID {
			if err := vs.fileStorage.DeleteObject(ctx, v.VideoRef); err != nil {
				log.WithError(err).WithField("key", v.VideoRef).Warn("failed to delete video object")
			}
			break
		}
	}
	return vs.store.DeleteVideoRecord(videoRecordID)
}
