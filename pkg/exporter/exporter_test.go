package exporter

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
}

func newTestExporter() *Exporter {
	x := New()
	x.Now = fixedClock
	return x
}

var allSections = []string{
	"metadata", "system", "emission", "shape", "velocityOverLifetime",
	"limitVelocityOverLifetime", "forceOverLifetime", "colorOverLifetime",
	"sizeOverLifetime", "rotationOverLifetime", "noise", "collision",
	"textureSheetAnimation", "renderer", "subEmitters",
}

// TestExport_Explosion exports the reference effect and reads it back
func TestExport_Explosion(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	x := newTestExporter()

	path, err := x.Export(mustEffect(t, "Explosion"), dir)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if want := filepath.Join(dir, "Explosion.gpart"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	doc, err := gpart.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	md := doc.Metadata
	if md.Name != "Explosion" || md.Version != "1.0" || md.Exporter != "GPart Exporter v1.0" {
		t.Errorf("metadata = %+v", md)
	}
	if md.ExportDate != "2024-03-09 14:05:07" {
		t.Errorf("exportDate = %q, want 2024-03-09 14:05:07", md.ExportDate)
	}

	sys := doc.System
	if sys.Duration != 2.5 || sys.Looping || sys.MaxParticles != 500 {
		t.Errorf("system = duration %v looping %v maxParticles %d", sys.Duration, sys.Looping, sys.MaxParticles)
	}
	if sys.StartLifetime.Mode != "TwoConstants" || sys.StartLifetime.ConstantMin != 1 || sys.StartLifetime.ConstantMax != 2 {
		t.Errorf("startLifetime = %+v", sys.StartLifetime)
	}

	if len(doc.Emission.Bursts) != 1 {
		t.Fatalf("bursts = %d, want 1", len(doc.Emission.Bursts))
	}
	want := gpart.Burst{Time: 0, MinCount: 10, MaxCount: 20, Cycles: 1, RepeatInterval: 0}
	if doc.Emission.Bursts[0] != want {
		t.Errorf("burst = %+v, want %+v", doc.Emission.Bursts[0], want)
	}

	// disabled modules are still written in full
	if doc.Collision == nil || doc.Collision.Enabled || doc.Collision.Type != "World" || doc.Collision.CollidesWithDynamic {
		t.Errorf("collision = %+v", doc.Collision)
	}

	if doc.Renderer == nil || doc.Renderer.Texture != "fire" {
		t.Errorf("renderer = %+v, want texture fire", doc.Renderer)
	}
	wantSubs := []gpart.SubEmitter{{Type: "Death", Name: "Sparks"}}
	if !reflect.DeepEqual(doc.SubEmitters, wantSubs) {
		t.Errorf("subEmitters = %+v, want %+v", doc.SubEmitters, wantSubs)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	sections, err := gpart.Sections(data)
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if !reflect.DeepEqual(sections, allSections) {
		t.Errorf("sections = %v, want %v", sections, allSections)
	}
	if !bytes.Contains(data, []byte(`"cycles": 1`)) {
		t.Error(`burst cycle count should be written as "cycles"`)
	}
}

func TestBuild_RendererAbsent(t *testing.T) {
	x := newTestExporter()
	data, err := x.Encode(mustEffect(t, "Sparks"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	sections, err := gpart.Sections(data)
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	for _, s := range sections {
		if s == "renderer" {
			t.Fatal("renderer section should be omitted")
		}
	}
	if len(sections) != len(allSections)-1 {
		t.Errorf("sections = %v, want all but renderer", sections)
	}
	if !bytes.Contains(data, []byte(`"subEmitters": []`)) {
		t.Error("subEmitters should be an empty list")
	}
}

func TestBuild_OmitsAbsentCurves(t *testing.T) {
	doc, err := newTestExporter().Build(mustEffect(t, "Sparks"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sd := doc.System.StartDelay
	if sd.Curve != nil || sd.CurveMin != nil || sd.CurveMax != nil {
		t.Errorf("startDelay curves = %+v, want none", sd)
	}
	size := doc.SizeOverLifetime.Size
	if size.Curve == nil || size.CurveMin != nil || size.CurveMax != nil {
		t.Errorf("size curves = %+v, want only curve", size)
	}
}

func TestEncode_Idempotent(t *testing.T) {
	x := newTestExporter()
	src := mustEffect(t, "Explosion")

	first, err := x.Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := x.Encode(src)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two exports of the same effect differ")
	}
}

func TestExport_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Sparks.gpart")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := newTestExporter().Export(mustEffect(t, "Sparks"), dir); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "stale") {
		t.Error("existing file was not overwritten")
	}
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		src        func(t *testing.T) particle.Source
		dir        func(t *testing.T) string
		wantKind   error
		wantModule string
	}{
		{
			name:     "no selection",
			src:      func(t *testing.T) particle.Source { return nil },
			dir:      func(t *testing.T) string { return t.TempDir() },
			wantKind: ErrNoSelection,
		},
		{
			name: "module read failure",
			src: func(t *testing.T) particle.Source {
				return &stubSource{Source: mustEffect(t, "Sparks"), noiseErr: errors.New("noise unavailable")}
			},
			dir:        func(t *testing.T) string { return t.TempDir() },
			wantKind:   ErrModuleRead,
			wantModule: "noise",
		},
		{
			name:       "dangling sub-emitter",
			src:        func(t *testing.T) particle.Source { return mustEffect(t, "Orphan") },
			dir:        func(t *testing.T) string { return t.TempDir() },
			wantKind:   ErrModuleRead,
			wantModule: "subEmitters",
		},
		{
			name: "non-finite value",
			src: func(t *testing.T) particle.Source {
				m := particle.DefaultMainModule()
				m.Duration = float32(math.Inf(1))
				return &stubSource{Source: mustEffect(t, "Sparks"), main: &m}
			},
			dir:      func(t *testing.T) string { return t.TempDir() },
			wantKind: ErrEncode,
		},
		{
			name: "destination is a file",
			src:  func(t *testing.T) particle.Source { return mustEffect(t, "Sparks") },
			dir: func(t *testing.T) string {
				blocker := filepath.Join(t.TempDir(), "blocker")
				if err := os.WriteFile(blocker, nil, 0o644); err != nil {
					t.Fatalf("WriteFile failed: %v", err)
				}
				return filepath.Join(blocker, "out")
			},
			wantKind: ErrIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dir(t)
			path, err := newTestExporter().Export(tt.src(t), dir)
			if err == nil {
				t.Fatalf("Export() = %q, want error", path)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("error = %v, want kind %v", err, tt.wantKind)
			}
			if Kind(err) != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", Kind(err), tt.wantKind)
			}

			var ee *ExportError
			if !errors.As(err, &ee) {
				t.Fatalf("error %T is not *ExportError", err)
			}
			if ee.Module != tt.wantModule {
				t.Errorf("module = %q, want %q", ee.Module, tt.wantModule)
			}

			if tt.wantKind != ErrIO {
				entries, _ := os.ReadDir(dir)
				if len(entries) != 0 {
					t.Errorf("%d files written, want none", len(entries))
				}
			}
		})
	}
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestExport_Texture(t *testing.T) {
	texDir := t.TempDir()
	writeTestPNG(t, filepath.Join(texDir, "fire.png"), 4, 2)

	out := t.TempDir()
	x := newTestExporter()
	x.Textures = NewPNGTextureExporter(texDir)

	if _, err := x.Export(mustEffect(t, "Explosion"), out); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := os.Open(filepath.Join(out, "fire.png"))
	if err != nil {
		t.Fatalf("texture not exported: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("texture bounds = %v, want 4x2", b)
	}
}

func TestExport_TextureFailureIgnored(t *testing.T) {
	texDir := t.TempDir()
	// undecodable image
	if err := os.WriteFile(filepath.Join(texDir, "fire.jpg"), []byte("not a jpeg"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	out := t.TempDir()
	x := newTestExporter()
	x.Textures = NewPNGTextureExporter(texDir)

	path, err := x.Export(mustEffect(t, "Explosion"), out)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "fire.png")); !os.IsNotExist(err) {
		t.Errorf("fire.png should not exist, stat error = %v", err)
	}
}

func TestDirTextureSource_NotFound(t *testing.T) {
	_, err := DirTextureSource{Dir: t.TempDir()}.OpenTexture("missing")
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("error = %v, want ErrTextureNotFound", err)
	}
}

// TestExport_AllModulesEnabled exports an effect with every module switched on
func TestExport_AllModulesEnabled(t *testing.T) {
	texDir := t.TempDir()
	writeTestPNG(t, filepath.Join(texDir, "glow.png"), 2, 2)

	out := t.TempDir()
	x := newTestExporter()
	x.Textures = NewPNGTextureExporter(texDir)

	path, err := x.Export(mustFullEffect(t, "Everything"), out)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	sections, err := gpart.Sections(data)
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if !reflect.DeepEqual(sections, allSections) {
		t.Errorf("sections = %v, want %v", sections, allSections)
	}

	doc, err := gpart.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	enabled := map[string]bool{
		"emission":                  doc.Emission.Enabled,
		"shape":                     doc.Shape.Enabled,
		"velocityOverLifetime":      doc.VelocityOverLifetime.Enabled,
		"limitVelocityOverLifetime": doc.LimitVelocityOverLifetime.Enabled,
		"forceOverLifetime":         doc.ForceOverLifetime.Enabled,
		"colorOverLifetime":         doc.ColorOverLifetime.Enabled,
		"sizeOverLifetime":          doc.SizeOverLifetime.Enabled,
		"rotationOverLifetime":      doc.RotationOverLifetime.Enabled,
		"noise":                     doc.Noise.Enabled,
		"collision":                 doc.Collision.Enabled,
		"textureSheetAnimation":     doc.TextureSheetAnimation.Enabled,
	}
	for key, on := range enabled {
		if !on {
			t.Errorf("%s.enabled = false, want true", key)
		}
	}

	if doc.Renderer == nil || doc.Renderer.RenderMode != "VerticalBillboard" || doc.Renderer.SortingOrder != 7 {
		t.Errorf("renderer = %+v", doc.Renderer)
	}
	if doc.Noise.Quality != 0 || doc.Noise.Octaves != 3 {
		t.Errorf("noise quality %d octaves %d, want 0 and 3", doc.Noise.Quality, doc.Noise.Octaves)
	}
	if doc.Collision.Mode != "Collision2D" || !doc.Collision.CollidesWithDynamic {
		t.Errorf("collision = %+v", doc.Collision)
	}
	want := gpart.Burst{Time: 0.25, MinCount: 3, MaxCount: 6, Cycles: 2, RepeatInterval: 0.5}
	if len(doc.Emission.Bursts) != 1 || doc.Emission.Bursts[0] != want {
		t.Errorf("bursts = %+v, want [%+v]", doc.Emission.Bursts, want)
	}
	if _, err := os.Stat(filepath.Join(out, "glow.png")); err != nil {
		t.Errorf("texture not exported: %v", err)
	}
}

func TestExport_RejectsPathNames(t *testing.T) {
	for _, name := range []string{"../escape", "nested/escape", "..", `back\slash`} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			dir := filepath.Join(root, "out")
			src := &stubSource{Source: mustEffect(t, "Sparks"), name: name}

			path, err := newTestExporter().Export(src, dir)
			if err == nil {
				t.Fatalf("Export() = %q, want error", path)
			}
			if Kind(err) != ErrIO {
				t.Errorf("Kind() = %v, want ErrIO", Kind(err))
			}
			if !errors.Is(err, particle.ErrInvalidName) {
				t.Errorf("error = %v, want ErrInvalidName", err)
			}

			entries, _ := os.ReadDir(root)
			if len(entries) != 0 {
				t.Errorf("%d entries written under %s, want none", len(entries), root)
			}
		})
	}
}

func TestPNGTextureExporter_RejectsPathNames(t *testing.T) {
	texRoot := t.TempDir()
	texDir := filepath.Join(texRoot, "textures")
	if err := os.Mkdir(texDir, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	// a real image one level up must stay unreachable
	writeTestPNG(t, filepath.Join(texRoot, "secret.png"), 1, 1)

	out := t.TempDir()
	err := NewPNGTextureExporter(texDir).ExportTexture("../secret", out)
	if !errors.Is(err, particle.ErrInvalidName) {
		t.Errorf("error = %v, want ErrInvalidName", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(out), "secret.png")); !os.IsNotExist(err) {
		t.Errorf("texture written outside the output directory: %v", err)
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("%d files written, want none", len(entries))
	}
}
