package favicon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"

	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// writeFileAtomic writes data to a uniquely named temp file next to path and
// renames it into place, so readers never see a half-written asset.
func writeFileAtomic(path string, data []byte) error {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("failed to generate temp name: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+id.String()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", filepath.Base(path), err)
	}
	return nil
}

// writePNG encodes img with level and writes it atomically to path.
func writePNG(path string, img image.Image, level png.CompressionLevel) error {
	var buf bytes.Buffer
	if err := imaging.EncodePNG(&buf, img, level); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
