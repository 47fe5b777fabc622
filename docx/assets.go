package docx

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jclermont/figura/model"

	// Media parts are frequently BMP, TIFF, or WebP, which the standard
	// library cannot decode. Register decoders for dimension probing.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// emuPerPixel converts pixels at 96 DPI to English Metric Units.
const emuPerPixel = 9525

// ResolveAssets reads the media parts referenced by the blocks' images,
// assigns content-hash asset IDs in place, and returns the asset table
// in first-appearance order. When dir is non-empty the media files are
// also written there, named by asset ID.
//
// Missing media is never fatal: the image keeps an empty asset ID and a
// warning is returned instead.
func (r *Reader) ResolveAssets(blocks []model.Block, dir string) ([]model.Asset, []string, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating assets directory: %w", err)
		}
	}

	var assets []model.Asset
	var warnings []string
	seen := make(map[string]bool)

	for bi := range blocks {
		for ii := range blocks[bi].Images {
			img := &blocks[bi].Images[ii]

			if img.MediaPath == "" {
				warnings = append(warnings,
					fmt.Sprintf("image %d in block %d has no media relationship", img.IndexInBlock, img.BlockPosition))
				continue
			}

			data, err := r.getFileContent("word/" + img.MediaPath)
			if err != nil {
				warnings = append(warnings,
					fmt.Sprintf("media part %s not found in archive", img.MediaPath))
				continue
			}

			sum := sha256.Sum256(data)
			hash := hex.EncodeToString(sum[:])
			img.AssetID = "img_" + hash[:12]

			if img.WidthEMU == 0 {
				img.WidthEMU, img.HeightEMU = probeDimensionsEMU(data)
			}

			if seen[img.AssetID] {
				continue
			}
			seen[img.AssetID] = true

			ext := strings.ToLower(path.Ext(img.MediaPath))
			name := img.AssetID + ext
			asset := model.Asset{
				AssetID: img.AssetID,
				SHA256:  hash,
			}

			if dir != "" {
				if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
					return nil, nil, fmt.Errorf("writing asset %s: %w", name, err)
				}
				asset.Filename = path.Join(filepath.Base(dir), name)
			} else {
				asset.Filename = path.Join("media", name)
			}

			assets = append(assets, asset)
		}
	}

	return assets, warnings, nil
}

// probeDimensionsEMU decodes the image header to recover pixel
// dimensions when the drawing carried no extent, converting at 96 DPI.
// Unknown formats yield zero.
func probeDimensionsEMU(data []byte) (int64, int64) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return int64(cfg.Width) * emuPerPixel, int64(cfg.Height) * emuPerPixel
}
