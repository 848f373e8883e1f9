package sync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haileyart/portfolio/internal/platform/constants"
)

// publishAll writes the five static-site documents. Each file is written
// atomically so a crashed run never leaves a half-written document behind.
func (pipeline *Pipeline) publishAll(
	artworks []ExportedArtwork,
	collections []Collection,
	prof *ExportedProfile,
	pick *ExportedArtwork,
	routes Routes,
) error {
	documents := []struct {
		file    string
		payload any
	}{
		{constants.FileArtworks, artworks},
		{constants.FileCollections, collections},
		{constants.FileProfile, prof},
		{constants.FileArtistPick, pick},
		{constants.FileRoutes, routes},
	}

	for _, document := range documents {
		if err := pipeline.publishJSON(document.file, document.payload); err != nil {
			return err
		}
	}
	return nil
}

func (pipeline *Pipeline) publishJSON(file string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", file, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(filepath.Join(pipeline.dataDir, file), data); err != nil {
		return fmt.Errorf("writing %s: %w", file, err)
	}
	return nil
}

// writeFileAtomic writes data to a temporary file in the target's directory
// and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".publish-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
