package exporter

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gonewx/gpart/internal/particle"
)

// ErrTextureNotFound is returned when no file for a texture name exists.
var ErrTextureNotFound = errors.New("texture not found")

// textureExtensions are tried in order when resolving a texture name.
var textureExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// TextureSource resolves a texture name to a decoded image.
type TextureSource interface {
	OpenTexture(name string) (image.Image, error)
}

// DirTextureSource looks textures up as <Dir>/<name>.<ext>.
type DirTextureSource struct {
	Dir string
}

// OpenTexture decodes the first existing file for name.
func (s DirTextureSource) OpenTexture(name string) (image.Image, error) {
	if err := particle.CheckName(name); err != nil {
		return nil, err
	}
	for _, ext := range textureExtensions {
		path := filepath.Join(s.Dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrTextureNotFound, name, s.Dir)
}

// PNGTextureExporter writes textures as <dir>/<name>.png.
type PNGTextureExporter struct {
	Source TextureSource
}

// NewPNGTextureExporter reads textures from dir.
func NewPNGTextureExporter(dir string) *PNGTextureExporter {
	return &PNGTextureExporter{Source: DirTextureSource{Dir: dir}}
}

// ExportTexture decodes the texture and encodes it as PNG. The output file is
// only created once encoding has succeeded.
func (x *PNGTextureExporter) ExportTexture(name, dir string) error {
	if err := particle.CheckName(name); err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	img, err := x.Source.OpenTexture(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode texture %q: %w", name, err)
	}
	path := filepath.Join(dir, name+".png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write texture %s: %w", path, err)
	}
	return nil
}
