// Package exporter turns a particle effect definition into a .gpart document.
//
// Translation is split into pure per-module translators and value codecs.
// Exporter assembles their results into one tree, encodes it, and writes the
// file. Any module read failure aborts the export before anything is
// written; only texture export failures are tolerated.
package exporter

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// TextureExporter copies a renderer's main texture next to the document.
type TextureExporter interface {
	ExportTexture(name, dir string) error
}

// Exporter builds and writes .gpart documents.
type Exporter struct {
	// Extension is appended to the effect name to form the file name.
	Extension string

	// Now stamps metadata.exportDate.
	Now func() time.Time

	// Textures, when set, receives the renderer texture of every export.
	Textures TextureExporter
}

// New creates an Exporter with the default extension and the wall clock.
func New() *Exporter {
	return &Exporter{
		Extension: gpart.Extension,
		Now:       time.Now,
	}
}

// moduleStep reads one module of the source into doc.
type moduleStep struct {
	key string
	run func(src particle.Source, doc *gpart.Document) error
}

// moduleSteps lists the modules in document order.
var moduleSteps = []moduleStep{
	{"system", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.System, err = TranslateMain(src)
		return err
	}},
	{"emission", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.Emission, err = TranslateEmission(src)
		return err
	}},
	{"shape", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.Shape, err = TranslateShape(src)
		return err
	}},
	{"velocityOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.VelocityOverLifetime, err = TranslateVelocityOverLifetime(src)
		return err
	}},
	{"limitVelocityOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.LimitVelocityOverLifetime, err = TranslateLimitVelocityOverLifetime(src)
		return err
	}},
	{"forceOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.ForceOverLifetime, err = TranslateForceOverLifetime(src)
		return err
	}},
	{"colorOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.ColorOverLifetime, err = TranslateColorOverLifetime(src)
		return err
	}},
	{"sizeOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.SizeOverLifetime, err = TranslateSizeOverLifetime(src)
		return err
	}},
	{"rotationOverLifetime", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.RotationOverLifetime, err = TranslateRotationOverLifetime(src)
		return err
	}},
	{"noise", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.Noise, err = TranslateNoise(src)
		return err
	}},
	{"collision", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.Collision, err = TranslateCollision(src)
		return err
	}},
	{"textureSheetAnimation", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.TextureSheetAnimation, err = TranslateTextureSheetAnimation(src)
		return err
	}},
	{"renderer", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.Renderer, err = TranslateRenderer(src)
		if err == nil && doc.Renderer == nil {
			log.Printf("[Exporter] %s has no renderer, renderer section omitted", src.Name())
		}
		return err
	}},
	{"subEmitters", func(src particle.Source, doc *gpart.Document) (err error) {
		doc.SubEmitters, err = TranslateSubEmitters(src)
		return err
	}},
}

// Build translates every module of src into a fresh document without
// touching the file system.
func (e *Exporter) Build(src particle.Source) (*gpart.Document, error) {
	if src == nil {
		return nil, &ExportError{Kind: ErrNoSelection}
	}

	doc := &gpart.Document{Metadata: e.metadata(src.Name())}
	for _, step := range moduleSteps {
		if err := step.run(src, doc); err != nil {
			return nil, &ExportError{Kind: ErrModuleRead, Module: step.key, Err: err}
		}
	}
	return doc, nil
}

// Encode builds and encodes src, returning the document bytes.
func (e *Exporter) Encode(src particle.Source) ([]byte, error) {
	doc, err := e.Build(src)
	if err != nil {
		return nil, err
	}
	data, err := gpart.Marshal(doc)
	if err != nil {
		return nil, &ExportError{Kind: ErrEncode, Err: err}
	}
	return data, nil
}

// Export writes src to <dir>/<name><ext> and returns the file path.
//
// The directory is created if missing and an existing file is overwritten.
// Nothing is written unless every module was read and encoded successfully
// and the effect name is a plain file name.
func (e *Exporter) Export(src particle.Source, dir string) (string, error) {
	doc, err := e.Build(src)
	if err != nil {
		return "", err
	}
	data, err := gpart.Marshal(doc)
	if err != nil {
		return "", &ExportError{Kind: ErrEncode, Err: err}
	}

	if err := particle.CheckName(doc.Metadata.Name); err != nil {
		return "", &ExportError{Kind: ErrIO, Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &ExportError{Kind: ErrIO, Path: dir, Err: err}
	}
	path := filepath.Join(dir, doc.Metadata.Name+e.extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &ExportError{Kind: ErrIO, Path: path, Err: err}
	}
	log.Printf("[Exporter] Exported %s to %s (%d bytes)", doc.Metadata.Name, path, len(data))

	if e.Textures != nil && doc.Renderer != nil && doc.Renderer.Texture != "" {
		if err := e.Textures.ExportTexture(doc.Renderer.Texture, dir); err != nil {
			log.Printf("[Exporter] Warning: could not export texture %q: %v", doc.Renderer.Texture, err)
		}
	}
	return path, nil
}

func (e *Exporter) metadata(name string) gpart.Metadata {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return gpart.Metadata{
		Name:       name,
		Version:    gpart.Version,
		ExportDate: now().Format(gpart.DateLayout),
		Exporter:   gpart.Exporter,
	}
}

func (e *Exporter) extension() string {
	if e.Extension == "" {
		return gpart.Extension
	}
	return e.Extension
}

// Kind returns the error kind of err, or nil when err is not an export error.
func Kind(err error) error {
	var ee *ExportError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return nil
}
