package exporter

import (
	"fmt"

	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// TranslateTextureSheetAnimation copies the sheet layout and frame ranges.
// Animation type and mode are written by name.
func TranslateTextureSheetAnimation(src particle.Source) (*gpart.TextureSheetAnimationModule, error) {
	t, err := src.TextureSheetAnimation()
	if err != nil {
		return nil, err
	}
	return &gpart.TextureSheetAnimationModule{
		Enabled:       t.Enabled,
		NumTilesX:     t.NumTilesX,
		NumTilesY:     t.NumTilesY,
		AnimationType: t.Animation.String(),
		Mode:          t.Mode.String(),
		FrameOverTime: EncodeScalarRange(t.FrameOverTime),
		StartFrame:    EncodeScalarRange(t.StartFrame),
		CycleCount:    t.CycleCount,
		RowIndex:      t.RowIndex,
	}, nil
}

// TranslateRenderer returns (nil, nil) when the effect has no renderer.
//
// Material and texture are referenced by name and are empty when no material
// or main texture is assigned. Flip is set when any flip axis is non-zero.
func TranslateRenderer(src particle.Source) (*gpart.RendererModule, error) {
	r, err := src.Renderer()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}

	var material, texture string
	if r.Material != nil {
		material = r.Material.Name
		texture = r.Material.MainTexture
	}

	return &gpart.RendererModule{
		RenderMode:      r.RenderMode.String(),
		SortMode:        r.SortMode.String(),
		MinParticleSize: r.MinParticleSize,
		MaxParticleSize: r.MaxParticleSize,
		Material:        material,
		Texture:         texture,
		Pivot:           EncodeVector3(r.Pivot),
		Flip:            !r.Flip.IsZero(),
		VelocityScale:   EncodeVector3(r.VelocityScale),
		LengthScale:     r.LengthScale,
		NormalDirection: r.NormalDirection,
		SortingOrder:    r.SortingOrder,
	}, nil
}

// TranslateSubEmitters lists attached child effects in slot order. Empty
// slots are skipped.
func TranslateSubEmitters(src particle.Source) ([]gpart.SubEmitter, error) {
	list, err := src.SubEmitters()
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("sub-emitter list: %w", ErrInvalidInput)
	}

	n := list.SubEmittersCount()
	subs := make([]gpart.SubEmitter, 0, n)
	for i := 0; i < n; i++ {
		child := list.SubEmitterSystem(i)
		if child == nil {
			continue
		}
		subs = append(subs, gpart.SubEmitter{
			Type: list.SubEmitterType(i).String(),
			Name: child.Name(),
		})
	}
	return subs, nil
}
