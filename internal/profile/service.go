package profile

import (
	"context"
	"log/slog"

	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/platform/image"
	"github.com/haileyart/portfolio/internal/platform/storage"
	"github.com/haileyart/portfolio/pkg/pointer"
)

// Transcoder normalizes raw image bytes per the platform image contract.
type Transcoder interface {
	Transcode(data []byte) ([]byte, error)
}

type Service struct {
	repo       Repository
	objects    storage.ObjectStore
	transcoder Transcoder
	logger     *slog.Logger
}

func NewService(repo Repository, objects storage.ObjectStore, transcoder Transcoder, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		objects:    objects,
		transcoder: transcoder,
		logger:     logger,
	}
}

// Get returns the profile row, or (nil, nil) when none has been created yet.
func (service *Service) Get(ctx context.Context) (*Profile, error) {
	return service.repo.GetFirst(ctx)
}

// Update upserts the singleton profile. An empty description or absent image
// keeps the existing value, so partial updates never erase the other field.
// When a new portrait is uploaded, the previous blob is deleted best-effort
// after the replacement is stored.
func (service *Service) Update(ctx context.Context, input Input) (*Profile, error) {
	existing, err := service.repo.GetFirst(ctx)
	if err != nil {
		return nil, err
	}

	var imageURL, description *string
	if existing != nil {
		imageURL = existing.ImageURL
		description = existing.Description
	}

	if input.Description != "" {
		description = pointer.To(input.Description)
	}

	if input.Image != nil && len(input.Image.Data) > 0 {
		normalized, err := service.transcoder.Transcode(input.Image.Data)
		if err != nil {
			return nil, apperr.ImageProcessing(err)
		}

		key := image.Key(constants.FolderProfile, input.Image.Filename)
		newURL, err := service.objects.Put(ctx, key, normalized, "image/jpeg")
		if err != nil {
			return nil, apperr.ImageProcessing(err)
		}

		service.deleteBlob(ctx, imageURL)
		imageURL = pointer.To(newURL)
	}

	if existing == nil {
		created := &Profile{ImageURL: imageURL, Description: description}
		if err := service.repo.Create(ctx, created); err != nil {
			return nil, err
		}
		service.logger.Info("profile_created", slog.String("profile_id", created.ID))
		return created, nil
	}

	existing.ImageURL = imageURL
	existing.Description = description
	if err := service.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	service.logger.Info("profile_updated", slog.String("profile_id", existing.ID))
	return existing, nil
}

// deleteBlob removes the blob backing blobURL, logging failures without
// surfacing them.
func (service *Service) deleteBlob(ctx context.Context, blobURL *string) {
	if blobURL == nil || *blobURL == "" {
		return
	}

	key, err := storage.KeyFromURL(*blobURL)
	if err != nil {
		service.logger.Warn("profile_blob_key_unparseable", slog.String("url", *blobURL))
		return
	}

	if err := service.objects.Delete(ctx, key); err != nil {
		service.logger.Error("profile_blob_delete_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
