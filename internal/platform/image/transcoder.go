// Copyright (c) 2026 Hailey Portfolio. All rights reserved.

/*
Package image normalizes uploaded and mirrored artwork images.

Every image entering the system passes through the same contract:

  - Auto-rotate using embedded EXIF orientation metadata.
  - Box-fit resize so neither dimension exceeds 1200px, never upscaling.
  - Encode to JPEG at quality 82.

Source images may be JPEG, PNG, GIF, or WebP (legacy blobs from earlier
iterations of the portfolio); output is always JPEG.
*/
package image

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	// Register the WebP decoder for legacy stored images.
	_ "golang.org/x/image/webp"

	"github.com/haileyart/portfolio/pkg/sanitize"
)

const (
	// MaxDimension is the bounding box applied to both axes.
	MaxDimension = 1200

	// Quality is the JPEG encoding quality.
	Quality = 82

	// Ext is the extension of the normalized format.
	Ext = ".jpg"
)

// Processor implements the transcoding contract using disintegration/imaging.
//
// The zero value is ready to use.
type Processor struct{}

// Transcode decodes raw image bytes, applies EXIF auto-orientation, fits the
// image into the MaxDimension box without enlarging smaller images, and
// re-encodes as JPEG.
func (Processor) Transcode(data []byte) ([]byte, error) {
	decoded, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("image: decode failed: %w", err)
	}

	// Fit scales down only; images already inside the box pass through.
	fitted := imaging.Fit(decoded, MaxDimension, MaxDimension, imaging.Lanczos)

	var out bytes.Buffer
	if err := imaging.Encode(&out, fitted, imaging.JPEG, imaging.JPEGQuality(Quality)); err != nil {
		return nil, fmt.Errorf("image: encode failed: %w", err)
	}

	return out.Bytes(), nil
}

// Key derives the object-store key for a fresh upload:
// "{folder}/{unix-millis}-{sanitized-name}.jpg".
func Key(folder, originalName string) string {
	base := strings.TrimSuffix(originalName, path.Ext(originalName))
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), sanitize.Filename(base), Ext)
}

// NormalizeName swaps a file name's extension for the normalized format's.
// Used by the sync pipeline when deriving local mirror names from remote URLs.
func NormalizeName(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename)) + Ext
}
