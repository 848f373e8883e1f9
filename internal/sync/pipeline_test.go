package sync_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	stdimage "image"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haileyart/portfolio/internal/artwork"
	"github.com/haileyart/portfolio/internal/platform/image"
	"github.com/haileyart/portfolio/internal/profile"
	"github.com/haileyart/portfolio/internal/sync"
	"github.com/haileyart/portfolio/pkg/pointer"
)

// pngBytes renders a small solid-color PNG for the test image server.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 60, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/harbor.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write(pngBytes(t, 64, 48))
	})
	mux.HandleFunc("/dunes.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write(pngBytes(t, 48, 64))
	})
	mux.HandleFunc("/portrait.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write(pngBytes(t, 32, 32))
	})
	mux.HandleFunc("/missing.png", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

type fixture struct {
	pipeline *sync.Pipeline
	artworks *artwork.MemoryRepository
	profiles *profile.MemoryRepository
	dataDir  string
	server   *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	artworks := artwork.NewMemoryRepository()
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	artworks.SetClock(func() time.Time {
		current = current.Add(time.Minute)
		return current
	})

	profiles := profile.NewMemoryRepository()
	profiles.SetClock(func() time.Time { return current })

	server := newImageServer(t)
	dataDir := t.TempDir()

	pipeline := sync.NewPipeline(
		sync.NewStoreSource(artworks, profiles),
		server.Client(),
		image.Processor{},
		dataDir,
		slog.Default(),
	)

	return &fixture{
		pipeline: pipeline,
		artworks: artworks,
		profiles: profiles,
		dataDir:  dataDir,
		server:   server,
	}
}

func (fx *fixture) seedArtwork(t *testing.T, title, collection, imageFile string, pick bool) *artwork.Artwork {
	t.Helper()

	a := &artwork.Artwork{
		Title:        title,
		ImageURL:     fx.server.URL + "/" + imageFile,
		Collection:   collection,
		IsArtistPick: pick,
	}
	require.NoError(t, fx.artworks.Create(context.Background(), a))
	return a
}

func readFile(t *testing.T, dataDir, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dataDir, name))
	require.NoError(t, err)
	return data
}

func TestRun_PublishesAllDocuments(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.seedArtwork(t, "Harbor Study", "2024", "harbor.png", true)
	fx.seedArtwork(t, "Dunes", "2024", "dunes.png", false)
	require.NoError(t, fx.profiles.Create(ctx, &profile.Profile{
		ImageURL:    pointer.To(fx.server.URL + "/portrait.png"),
		Description: pointer.To("Painter"),
	}))

	summary, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Artworks)
	assert.Equal(t, 1, summary.Collections)
	assert.True(t, summary.ProfileFound)
	assert.Equal(t, "Harbor Study", summary.ArtistPickTitle)

	var exported []sync.ExportedArtwork
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "artworks.json"), &exported))
	require.Len(t, exported, 2)

	for _, item := range exported {
		assert.Regexp(t, `^/data/images/[a-z0-9.-]+\.jpg$`, item.LocalImagePath)

		mirrored := filepath.Join(fx.dataDir, "images", filepath.Base(item.LocalImagePath))
		info, err := os.Stat(mirrored)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	var collections []sync.Collection
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "collections.json"), &collections))
	require.Len(t, collections, 1)
	assert.Equal(t, "2024", collections[0].Name)
	assert.Equal(t, 2, collections[0].Count)
	assert.NotEmpty(t, collections[0].Thumbnail)

	var pick *sync.ExportedArtwork
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "artist-pick.json"), &pick))
	require.NotNil(t, pick)
	assert.Equal(t, "Harbor Study", pick.Title)

	var prof *sync.ExportedProfile
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "profile.json"), &prof))
	require.NotNil(t, prof)
	require.NotNil(t, prof.LocalImagePath)
	assert.Equal(t, "/data/images/portrait.jpg", *prof.LocalImagePath)

	portrait, err := os.Stat(filepath.Join(fx.dataDir, "images", "portrait.jpg"))
	require.NoError(t, err)
	assert.Positive(t, portrait.Size())

	var routes sync.Routes
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "routes.json"), &routes))
	assert.Len(t, routes.ArtworkIDs, 2)
	assert.Equal(t, []string{"2024"}, routes.CollectionNames)
}

func TestRun_EmptyStorePublishesEmptyDocuments(t *testing.T) {
	fx := newFixture(t)

	summary, err := fx.pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.Artworks)
	assert.False(t, summary.ProfileFound)

	assert.Equal(t, "[]\n", string(readFile(t, fx.dataDir, "artworks.json")))
	assert.Equal(t, "[]\n", string(readFile(t, fx.dataDir, "collections.json")))
	assert.Equal(t, "null\n", string(readFile(t, fx.dataDir, "profile.json")))
	assert.Equal(t, "null\n", string(readFile(t, fx.dataDir, "artist-pick.json")))
}

func TestRun_IsIdempotent(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.seedArtwork(t, "Harbor Study", "2024", "harbor.png", true)
	fx.seedArtwork(t, "Dunes", "", "dunes.png", false)

	_, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)

	first := map[string][]byte{}
	files := []string{"artworks.json", "collections.json", "profile.json", "artist-pick.json", "routes.json"}
	for _, name := range files {
		first[name] = readFile(t, fx.dataDir, name)
	}

	_, err = fx.pipeline.Run(ctx)
	require.NoError(t, err)

	for _, name := range files {
		assert.Equal(t, first[name], readFile(t, fx.dataDir, name), name)
	}
}

func TestRun_BrokenImageDoesNotAbort(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.seedArtwork(t, "Lost", "2024", "missing.png", false)

	summary, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Artworks)

	// The artwork ships without a local path rather than being dropped.
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "artworks.json"), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "Lost", raw[0]["title"])
	assert.NotContains(t, raw[0], "localImagePath")
}

func TestRun_ProfilePortraitMirrorFailureIsNonFatal(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.profiles.Create(ctx, &profile.Profile{
		ImageURL:    pointer.To(fx.server.URL + "/missing.png"),
		Description: pointer.To("Painter"),
	}))

	summary, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)
	assert.True(t, summary.ProfileFound)

	// The profile still publishes, with an explicit null local path.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "profile.json"), &raw))
	assert.Contains(t, raw, "localImagePath")
	assert.Nil(t, raw["localImagePath"])
	assert.Equal(t, "Painter", raw["description"])
}

func TestRun_ProfileWithoutPortraitHasNullLocalPath(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	require.NoError(t, fx.profiles.Create(ctx, &profile.Profile{Description: pointer.To("Painter")}))

	_, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)

	var prof *sync.ExportedProfile
	require.NoError(t, json.Unmarshal(readFile(t, fx.dataDir, "profile.json"), &prof))
	require.NotNil(t, prof)
	assert.Nil(t, prof.LocalImagePath)
	assert.Nil(t, prof.ImageURL)
}

type failingSource struct{}

func (failingSource) ListArtworksForExport(context.Context) ([]*artwork.Artwork, error) {
	return nil, errors.New("store unavailable")
}

func (failingSource) GetProfile(context.Context) (*profile.Profile, error) {
	return nil, nil
}

func TestRun_SourceFailureLeavesOutputUntouched(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	fx.seedArtwork(t, "Kept", "2024", "harbor.png", false)
	_, err := fx.pipeline.Run(ctx)
	require.NoError(t, err)

	before := readFile(t, fx.dataDir, "artworks.json")

	broken := sync.NewPipeline(failingSource{}, fx.server.Client(), image.Processor{}, fx.dataDir, slog.Default())
	_, err = broken.Run(ctx)
	require.Error(t, err)

	assert.Equal(t, before, readFile(t, fx.dataDir, "artworks.json"))
}
