// Package sync exports the content store to a static-site data directory:
// five JSON documents plus locally mirrored, re-encoded images. The pipeline
// runs behind the admin sync endpoint and as a standalone batch command.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/haileyart/portfolio/internal/artwork"
	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/profile"
)

// Source supplies the content to export.
type Source interface {
	ListArtworksForExport(ctx context.Context) ([]*artwork.Artwork, error)
	// GetProfile returns (nil, nil) when no profile has been created.
	GetProfile(ctx context.Context) (*profile.Profile, error)
}

// Transcoder normalizes downloaded image bytes per the platform image contract.
type Transcoder interface {
	Transcode(data []byte) ([]byte, error)
}

// storeSource adapts the artwork and profile repositories to [Source].
type storeSource struct {
	artworks artwork.Repository
	profiles profile.Repository
}

// NewStoreSource builds a [Source] backed by the two repositories.
func NewStoreSource(artworks artwork.Repository, profiles profile.Repository) Source {
	return &storeSource{artworks: artworks, profiles: profiles}
}

func (s *storeSource) ListArtworksForExport(ctx context.Context) ([]*artwork.Artwork, error) {
	return s.artworks.ListForExport(ctx)
}

func (s *storeSource) GetProfile(ctx context.Context) (*profile.Profile, error) {
	return s.profiles.GetFirst(ctx)
}

// Summary reports what a completed run produced.
type Summary struct {
	Artworks     int
	Collections  int
	ProfileFound bool
	// ArtistPickTitle is empty when no artwork is flagged.
	ArtistPickTitle string
}

// Pipeline fetches content, mirrors images into the data directory, and
// publishes the static-site JSON documents.
type Pipeline struct {
	source     Source
	client     *http.Client
	transcoder Transcoder
	dataDir    string
	logger     *slog.Logger
}

func NewPipeline(source Source, client *http.Client, transcoder Transcoder, dataDir string, logger *slog.Logger) *Pipeline {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Pipeline{
		source:     source,
		client:     client,
		transcoder: transcoder,
		dataDir:    dataDir,
		logger:     logger,
	}
}

// Run executes one full export. A content-store failure aborts the run and
// leaves any previously published output untouched; per-image mirror
// failures are logged and the affected artwork ships without a local path.
func (pipeline *Pipeline) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	artworks, err := pipeline.source.ListArtworksForExport(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching artworks: %w", err)
	}

	prof, err := pipeline.source.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(pipeline.dataDir, constants.ImagesSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("creating images directory: %w", err)
	}

	exported := pipeline.mirrorAll(ctx, artworks)
	exportedProfile := pipeline.exportProfile(ctx, prof)
	collections := buildCollections(exported)
	pick := artistPick(exported)
	routes := buildRoutes(exported, collections)

	if err := pipeline.publishAll(exported, collections, exportedProfile, pick, routes); err != nil {
		return nil, err
	}

	summary := &Summary{
		Artworks:     len(exported),
		Collections:  len(collections),
		ProfileFound: prof != nil,
	}
	if pick != nil {
		summary.ArtistPickTitle = pick.Title
	}

	pipeline.logger.Info("sync_completed",
		slog.Int("artworks", summary.Artworks),
		slog.Int("collections", summary.Collections),
		slog.Bool("profile", summary.ProfileFound),
		slog.Duration("elapsed", time.Since(started)),
	)
	return summary, nil
}

// mirrorAll downloads and re-encodes every artwork image. Failures are
// non-fatal: the artwork is exported with an empty local path.
func (pipeline *Pipeline) mirrorAll(ctx context.Context, artworks []*artwork.Artwork) []ExportedArtwork {
	exported := make([]ExportedArtwork, 0, len(artworks))

	for _, item := range artworks {
		localPath, err := pipeline.mirror(ctx, item.ImageURL)
		if err != nil {
			pipeline.logger.Warn("image_mirror_failed",
				slog.String("artwork_id", item.ID),
				slog.String("url", item.ImageURL),
				slog.String("error", err.Error()),
			)
			localPath = ""
		}
		exported = append(exported, exportArtwork(item, localPath))
	}

	return exported
}

// exportProfile mirrors the profile portrait the same way artwork images are
// mirrored. A failed mirror is non-fatal and leaves the local path null.
func (pipeline *Pipeline) exportProfile(ctx context.Context, prof *profile.Profile) *ExportedProfile {
	if prof == nil {
		return nil
	}

	exported := &ExportedProfile{
		ID:          prof.ID,
		ImageURL:    prof.ImageURL,
		Description: prof.Description,
		UpdatedAt:   prof.UpdatedAt,
	}

	if prof.ImageURL == nil || *prof.ImageURL == "" {
		return exported
	}

	localPath, err := pipeline.mirror(ctx, *prof.ImageURL)
	if err != nil {
		pipeline.logger.Warn("image_mirror_failed",
			slog.String("profile_id", prof.ID),
			slog.String("url", *prof.ImageURL),
			slog.String("error", err.Error()),
		)
		return exported
	}

	exported.LocalImagePath = &localPath
	return exported
}
