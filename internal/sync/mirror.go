package sync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/haileyart/portfolio/internal/platform/constants"
	"github.com/haileyart/portfolio/internal/platform/image"
	"github.com/haileyart/portfolio/internal/platform/storage"
)

// maxDownloadBytes caps a single source image download.
const maxDownloadBytes = 64 << 20

// mirror downloads one source image, re-encodes it, and writes it into the
// data directory's images folder. It returns the public path the static site
// serves the file under.
func (pipeline *Pipeline) mirror(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", fmt.Errorf("artwork has no image URL")
	}

	// The local name is derived from the blob key's trailing segment, so
	// re-runs over an unchanged store always produce the same file.
	remoteName := storage.FilenameFromURL(imageURL)
	if remoteName == "" {
		return "", fmt.Errorf("cannot derive a filename from %q", imageURL)
	}
	name := image.NormalizeName(remoteName)

	raw, err := pipeline.download(ctx, imageURL)
	if err != nil {
		return "", err
	}

	encoded, err := pipeline.transcoder.Transcode(raw)
	if err != nil {
		return "", fmt.Errorf("transcoding %q: %w", imageURL, err)
	}

	target := filepath.Join(pipeline.dataDir, constants.ImagesSubdir, name)
	if err := writeFileAtomic(target, encoded); err != nil {
		return "", err
	}

	return constants.PublicImagePrefix + name, nil
}

func (pipeline *Pipeline) download(ctx context.Context, imageURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %q: %w", imageURL, err)
	}

	response, err := pipeline.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("downloading %q: %w", imageURL, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %q: status %d", imageURL, response.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(response.Body, maxDownloadBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", imageURL, err)
	}
	return raw, nil
}
