package artwork

import (
	"context"
	"log/slog"

	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/platform/image"
	"github.com/haileyart/portfolio/internal/platform/storage"
	"github.com/haileyart/portfolio/internal/platform/validate"
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

func (service *Service) List(ctx context.Context, filter Filter) ([]*Artwork, error) {
	return service.repo.List(ctx, filter)
}

func (service *Service) Get(ctx context.Context, id string) (*Artwork, error) {
	return service.repo.Get(ctx, id)
}

func (service *Service) GetArtistPick(ctx context.Context) (*Artwork, error) {
	return service.repo.GetArtistPick(ctx)
}

func (service *Service) GetCollectionPick(ctx context.Context, collection string) (*Artwork, error) {
	return service.repo.GetCollectionPick(ctx, collection)
}

// Create validates input, pushes the normalized image to the object store,
// and inserts the record. The repository clears competing picks atomically
// with the insert.
func (service *Service) Create(ctx context.Context, input Input) (*Artwork, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Custom(FieldImage, input.Image == nil || len(input.Image.Data) == 0, "An image file is required")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	imageURL, _, err := service.storeImage(ctx, constants.FolderArtworks, input.Image)
	if err != nil {
		return nil, err
	}

	artwork := input.toArtwork(imageURL)
	if err := service.repo.Create(ctx, artwork); err != nil {
		return nil, err
	}

	service.logger.Info("artwork_created",
		slog.String("artwork_id", artwork.ID),
		slog.String("title", artwork.Title),
		slog.Bool("artist_pick", artwork.IsArtistPick),
	)
	return artwork, nil
}

// Update rewrites the record's fields. When a replacement image is supplied,
// the old blob is deleted only after the new one is stored; blob deletion
// failures are logged and do not fail the update.
func (service *Service) Update(ctx context.Context, id string, input Input) (*Artwork, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	imageURL := existing.ImageURL
	if input.Image != nil && len(input.Image.Data) > 0 {
		newURL, _, err := service.storeImage(ctx, constants.FolderArtworks, input.Image)
		if err != nil {
			return nil, err
		}
		service.deleteBlob(ctx, existing.ImageURL)
		imageURL = newURL
	}

	artwork := input.toArtwork(imageURL)
	artwork.ID = id
	if err := service.repo.Update(ctx, artwork); err != nil {
		return nil, err
	}

	service.logger.Info("artwork_updated", slog.String("artwork_id", id))
	return artwork, nil
}

// Delete removes the record and its blob. Blob deletion is best-effort: a
// storage failure is logged but never blocks removing the record.
func (service *Service) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	artwork, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key, keyErr := storage.KeyFromURL(artwork.ImageURL)
	if keyErr != nil {
		service.logger.Warn("artwork_blob_key_unparseable",
			slog.String("artwork_id", id),
			slog.String("image_url", artwork.ImageURL),
		)
	} else if err := service.objects.Delete(ctx, key); err != nil {
		service.logger.Error("blob_delete_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	service.logger.Info("artwork_deleted", slog.String("artwork_id", id))
	return &DeleteResult{
		Success:         true,
		ID:              id,
		DeletedImageKey: key,
		ImageURL:        artwork.ImageURL,
	}, nil
}

// storeImage runs the upload through the transcoder and object store,
// returning the public URL and store key.
func (service *Service) storeImage(ctx context.Context, folder string, upload *ImageUpload) (string, string, error) {
	encoded, err := service.transcoder.Transcode(upload.Data)
	if err != nil {
		return "", "", apperr.ImageProcessing(err)
	}

	key := image.Key(folder, upload.Filename)
	url, err := service.objects.Put(ctx, key, encoded, "image/jpeg")
	if err != nil {
		return "", "", apperr.ImageProcessing(err)
	}

	return url, key, nil
}

// deleteBlob removes a stored image by its public URL, logging failures.
func (service *Service) deleteBlob(ctx context.Context, blobURL string) {
	key, err := storage.KeyFromURL(blobURL)
	if err != nil {
		service.logger.Warn("blob_key_unparseable", slog.String("url", blobURL))
		return
	}

	if err := service.objects.Delete(ctx, key); err != nil {
		service.logger.Error("blob_delete_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// toArtwork maps input fields onto a fresh record with the given image URL.
func (input Input) toArtwork(imageURL string) *Artwork {
	var description *string
	if input.Description != "" {
		d := input.Description
		description = &d
	}

	return &Artwork{
		Title:            input.Title,
		Description:      description,
		ImageURL:         imageURL,
		Collection:       input.Collection,
		Medium:           input.Medium,
		Dimensions:       input.Dimensions,
		IsArtistPick:     input.IsArtistPick,
		IsCollectionPick: input.IsCollectionPick,
		ViewOrder:        input.ViewOrder,
	}
}
