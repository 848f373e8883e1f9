package artwork_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haileyart/portfolio/internal/artwork"
	"github.com/haileyart/portfolio/internal/platform/apperr"
	"github.com/haileyart/portfolio/internal/platform/storage"
	"github.com/haileyart/portfolio/pkg/pointer"
)

// stubTranscoder passes bytes through unchanged, optionally failing.
type stubTranscoder struct {
	fail error
}

func (s stubTranscoder) Transcode(data []byte) ([]byte, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	return data, nil
}

type fixture struct {
	service *artwork.Service
	repo    *artwork.MemoryRepository
	blobs   *storage.MemoryStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := artwork.NewMemoryRepository()

	// Deterministic, strictly increasing clock so createdAt ordering is stable.
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.SetClock(func() time.Time {
		current = current.Add(time.Minute)
		return current
	})

	blobs := storage.NewMemoryStore("https://blobs.test")
	service := artwork.NewService(repo, blobs, stubTranscoder{}, slog.Default())

	return &fixture{service: service, repo: repo, blobs: blobs}
}

func upload(name string) *artwork.ImageUpload {
	return &artwork.ImageUpload{Filename: name, Data: []byte("image-bytes")}
}

func input(title, collection string) artwork.Input {
	return artwork.Input{
		Title:      title,
		Collection: collection,
		Image:      upload(title + ".jpg"),
	}
}

func TestCreate_RequiresTitleAndImage(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input artwork.Input
		field string
	}{
		{"missing_title", artwork.Input{Image: upload("a.jpg")}, "title"},
		{"missing_image", artwork.Input{Title: "Untitled"}, "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Create(ctx, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}

	// Nothing was stored by the failed creates.
	assert.Equal(t, 0, fx.blobs.Len())
}

func TestCreate_AssignsIDAndStoresBlob(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, input("Harbor Study", "2024"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Regexp(t, `^https://blobs\.test/artworks/\d+-harbor-study\.jpg$`, created.ImageURL)
	assert.Equal(t, 1, fx.blobs.Len())

	fetched, err := fx.service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
}

func TestCreate_TranscodeFailureLeavesNoRecord(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	failing := artwork.NewService(fx.repo, fx.blobs, stubTranscoder{fail: errors.New("corrupt")}, slog.Default())

	_, err := failing.Create(ctx, input("Broken", ""))
	require.Error(t, err)
	assert.Equal(t, "IMAGE_PROCESSING_ERROR", apperr.As(err).Code)

	artworks, err := fx.service.List(ctx, artwork.Filter{})
	require.NoError(t, err)
	assert.Empty(t, artworks)
	assert.Equal(t, 0, fx.blobs.Len())
}

func TestArtistPick_SingletonAcrossCreates(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first := input("First", "")
	first.IsArtistPick = true
	a, err := fx.service.Create(ctx, first)
	require.NoError(t, err)

	second := input("Second", "")
	second.IsArtistPick = true
	b, err := fx.service.Create(ctx, second)
	require.NoError(t, err)

	pick, err := fx.service.GetArtistPick(ctx)
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.Equal(t, b.ID, pick.ID)

	demoted, err := fx.service.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsArtistPick)
}

func TestCollectionPick_IndependentAcrossCollections(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	in2024 := input("A", "2024")
	in2024.IsCollectionPick = true
	a, err := fx.service.Create(ctx, in2024)
	require.NoError(t, err)

	in2025 := input("B", "2025")
	in2025.IsCollectionPick = true
	b, err := fx.service.Create(ctx, in2025)
	require.NoError(t, err)

	// Picks in different collections coexist.
	pick2024, err := fx.service.GetCollectionPick(ctx, "2024")
	require.NoError(t, err)
	require.NotNil(t, pick2024)
	assert.Equal(t, a.ID, pick2024.ID)

	pick2025, err := fx.service.GetCollectionPick(ctx, "2025")
	require.NoError(t, err)
	require.NotNil(t, pick2025)
	assert.Equal(t, b.ID, pick2025.ID)

	// A new pick in 2024 demotes only the 2024 holder.
	replacement := input("C", "2024")
	replacement.IsCollectionPick = true
	c, err := fx.service.Create(ctx, replacement)
	require.NoError(t, err)

	pick2024, err = fx.service.GetCollectionPick(ctx, "2024")
	require.NoError(t, err)
	assert.Equal(t, c.ID, pick2024.ID)

	pick2025, err = fx.service.GetCollectionPick(ctx, "2025")
	require.NoError(t, err)
	assert.Equal(t, b.ID, pick2025.ID)
}

func TestUpdate_PickClearingExcludesSelf(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	in := input("Keeper", "")
	in.IsArtistPick = true
	created, err := fx.service.Create(ctx, in)
	require.NoError(t, err)

	// Re-asserting the pick on the same record must not demote it.
	update := artwork.Input{Title: "Keeper", IsArtistPick: true}
	updated, err := fx.service.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.True(t, updated.IsArtistPick)

	pick, err := fx.service.GetArtistPick(ctx)
	require.NoError(t, err)
	require.NotNil(t, pick)
	assert.Equal(t, created.ID, pick.ID)
}

func TestList_TotalOrder(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	// Created in time order: older first. viewOrder overrides recency.
	noOrder, err := fx.service.Create(ctx, input("No Order", "2024"))
	require.NoError(t, err)

	withOrder := input("Ordered Five", "2024")
	withOrder.ViewOrder = pointer.To(5)
	five, err := fx.service.Create(ctx, withOrder)
	require.NoError(t, err)

	newest, err := fx.service.Create(ctx, input("Newest No Order", "2024"))
	require.NoError(t, err)

	withLower := input("Ordered Two", "2024")
	withLower.ViewOrder = pointer.To(2)
	two, err := fx.service.Create(ctx, withLower)
	require.NoError(t, err)

	listed, err := fx.service.List(ctx, artwork.Filter{Collection: pointer.To("2024")})
	require.NoError(t, err)
	require.Len(t, listed, 4)

	// Non-null viewOrder ascending first, then null viewOrder by createdAt desc.
	assert.Equal(t, two.ID, listed[0].ID)
	assert.Equal(t, five.ID, listed[1].ID)
	assert.Equal(t, newest.ID, listed[2].ID)
	assert.Equal(t, noOrder.ID, listed[3].ID)
}

func TestList_CollectionFilter(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.service.Create(ctx, input("In", "2024"))
	require.NoError(t, err)
	_, err = fx.service.Create(ctx, input("Out", "2025"))
	require.NoError(t, err)

	listed, err := fx.service.List(ctx, artwork.Filter{Collection: pointer.To("2024")})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "In", listed[0].Title)
}

func TestUpdate_ReplacesImageAndDeletesOldBlob(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, input("Original", ""))
	require.NoError(t, err)

	oldKey, err := storage.KeyFromURL(created.ImageURL)
	require.NoError(t, err)
	require.True(t, fx.blobs.Has(oldKey))

	update := artwork.Input{Title: "Original", Image: upload("replacement.png")}
	updated, err := fx.service.Update(ctx, created.ID, update)
	require.NoError(t, err)

	assert.NotEqual(t, created.ImageURL, updated.ImageURL)
	assert.False(t, fx.blobs.Has(oldKey))

	newKey, err := storage.KeyFromURL(updated.ImageURL)
	require.NoError(t, err)
	assert.True(t, fx.blobs.Has(newKey))
}

func TestUpdate_WithoutImageKeepsExistingURL(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, input("Stable", ""))
	require.NoError(t, err)

	updated, err := fx.service.Update(ctx, created.ID, artwork.Input{Title: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 1, fx.blobs.Len())
}

func TestUpdate_NotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.Update(context.Background(), "missing-id", artwork.Input{Title: "X"})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDelete_RemovesRecordAndBlob(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, input("Doomed", ""))
	require.NoError(t, err)

	key, err := storage.KeyFromURL(created.ImageURL)
	require.NoError(t, err)

	result, err := fx.service.Delete(ctx, created.ID)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, key, result.DeletedImageKey)
	assert.Equal(t, created.ImageURL, result.ImageURL)
	assert.False(t, fx.blobs.Has(key))

	_, err = fx.service.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDelete_BlobFailureDoesNotBlockRecordDelete(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	created, err := fx.service.Create(ctx, input("Stubborn", ""))
	require.NoError(t, err)

	fx.blobs.FailDelete = errors.New("storage outage")

	result, err := fx.service.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = fx.service.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDelete_NotFound(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.Delete(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetArtistPick_NoneIsNil(t *testing.T) {
	fx := newFixture(t)

	pick, err := fx.service.GetArtistPick(context.Background())
	require.NoError(t, err)
	assert.Nil(t, pick)
}
