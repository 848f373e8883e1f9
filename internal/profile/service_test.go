package profile_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/storage"
	"github.com/haileyart/portfolio/internal/profile"
)

type stubTranscoder struct {
	fail error
}

func (s stubTranscoder) Transcode(data []byte) ([]byte, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return data, nil
}

func newService(t *testing.T) (*profile.Service, *storage.MemoryStore) {
	t.Helper()
	blobs := storage.NewMemoryStore("https://blobs.test")
	return profile.NewService(profile.NewMemoryRepository(), blobs, stubTranscoder{}, slog.Default()), blobs
}

func portrait() *profile.ImageUpload {
	return portraitNamed("portrait.png")
}

func portraitNamed(name string) *profile.ImageUpload {
	return &profile.ImageUpload{Filename: name, Data: []byte("portrait-bytes")}
}

func TestGet_NoProfileIsNil(t *testing.T) {
	service, _ := newService(t)

	result, err := service.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestUpdate_CreatesWhenMissing(t *testing.T) {
	service, blobs := newService(t)
	ctx := context.Background()

	created, err := service.Update(ctx, profile.Input{Description: "Oil painter based in Lisbon"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Oil painter based in Lisbon", *created.Description)
	assert.Nil(t, created.ImageURL)
	assert.Equal(t, 0, blobs.Len())

	fetched, err := service.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestUpdate_EmptyFieldsRetainExistingValues(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	first, err := service.Update(ctx, profile.Input{Description: "Original bio", Image: portrait()})
	require.NoError(t, err)
	require.NotNil(t, first.ImageURL)

	// Description-only update keeps the portrait.
	second, err := service.Update(ctx, profile.Input{Description: "Revised bio"})
	require.NoError(t, err)
	assert.Equal(t, *first.ImageURL, *second.ImageURL)
	assert.Equal(t, "Revised bio", *second.Description)

	// Image-only update keeps the description.
	third, err := service.Update(ctx, profile.Input{Image: portraitNamed("updated.png")})
	require.NoError(t, err)
	assert.Equal(t, "Revised bio", *third.Description)
	assert.NotEqual(t, *second.ImageURL, *third.ImageURL)
}

func TestUpdate_ReplacingPortraitDeletesOldBlob(t *testing.T) {
	service, blobs := newService(t)
	ctx := context.Background()

	first, err := service.Update(ctx, profile.Input{Image: portraitNamed("first.png")})
	require.NoError(t, err)

	oldKey, err := storage.KeyFromURL(*first.ImageURL)
	require.NoError(t, err)
	require.True(t, blobs.Has(oldKey))

	second, err := service.Update(ctx, profile.Input{Image: portraitNamed("second.png")})
	require.NoError(t, err)

	assert.False(t, blobs.Has(oldKey))
	newKey, err := storage.KeyFromURL(*second.ImageURL)
	require.NoError(t, err)
	assert.True(t, blobs.Has(newKey))
	assert.Equal(t, 1, blobs.Len())
}

func TestUpdate_PortraitKeyUsesProfileFolder(t *testing.T) {
	service, _ := newService(t)

	created, err := service.Update(context.Background(), profile.Input{Image: portrait()})
	require.NoError(t, err)
	assert.Regexp(t, `^https://blobs\.test/profile/\d+-portrait\.jpg$`, *created.ImageURL)
}

func TestUpdate_TranscodeFailure(t *testing.T) {
	blobs := storage.NewMemoryStore("https://blobs.test")
	service := profile.NewService(
		profile.NewMemoryRepository(), blobs, stubTranscoder{fail: errors.New("corrupt")}, slog.Default(),
	)

	_, err := service.Update(context.Background(), profile.Input{Image: portrait()})
	require.Error(t, err)
	assert.Equal(t, "IMAGE_PROCESSING_ERROR", apperr.As(err).Code)
	assert.Equal(t, 0, blobs.Len())
}
