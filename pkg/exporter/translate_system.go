package exporter

import (
	"fmt"

	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// TranslateMain reads the main (system) module.
func TranslateMain(src particle.Source) (*gpart.MainModule, error) {
	m, err := src.Main()
	if err != nil {
		return nil, err
	}

	// maxParticles is unsigned in some runtimes
	maxParticles := m.MaxParticles
	if maxParticles < 0 {
		maxParticles = 0
	}

	return &gpart.MainModule{
		Duration:        m.Duration,
		Looping:         m.Looping,
		Prewarm:         m.Prewarm,
		StartDelay:      EncodeScalarRange(m.StartDelay),
		StartLifetime:   EncodeScalarRange(m.StartLifetime),
		StartSpeed:      EncodeScalarRange(m.StartSpeed),
		StartSize:       EncodeScalarRange(m.StartSize),
		StartSize3D:     m.StartSize3D,
		StartSizeX:      EncodeScalarRange(m.StartSizeX),
		StartSizeY:      EncodeScalarRange(m.StartSizeY),
		StartSizeZ:      EncodeScalarRange(m.StartSizeZ),
		StartRotation:   EncodeScalarRange(m.StartRotation),
		StartRotation3D: m.StartRotation3D,
		StartRotationX:  EncodeScalarRange(m.StartRotationX),
		StartRotationY:  EncodeScalarRange(m.StartRotationY),
		StartRotationZ:  EncodeScalarRange(m.StartRotationZ),
		StartColor:      EncodeColor(m.StartColor),
		GravityModifier: EncodeScalarRange(m.GravityModifier),
		SimulationSpace: m.SimulationSpace.String(),
		SimulationSpeed: m.SimulationSpeed,
		PlayOnAwake:     m.PlayOnAwake,
		MaxParticles:    maxParticles,
	}, nil
}

// TranslateEmission reads the emission module and its bursts.
//
// The burst buffer is sized to the reported count before it is filled; a
// list that fills a different number of entries is treated as a read failure.
func TranslateEmission(src particle.Source) (*gpart.EmissionModule, error) {
	e, err := src.Emission()
	if err != nil {
		return nil, err
	}
	if e.Bursts == nil {
		return nil, fmt.Errorf("burst list: %w", ErrInvalidInput)
	}

	count := e.Bursts.BurstCount()
	if count < 0 {
		return nil, fmt.Errorf("burst count %d: %w", count, ErrInvalidInput)
	}
	buf := make([]particle.Burst, count)
	if n := e.Bursts.GetBursts(buf); n != count {
		return nil, fmt.Errorf("burst list reported %d bursts but filled %d", count, n)
	}

	bursts := make([]gpart.Burst, 0, count)
	for _, b := range buf {
		bursts = append(bursts, EncodeBurst(b))
	}

	return &gpart.EmissionModule{
		Enabled:          e.Enabled,
		RateOverTime:     EncodeScalarRange(e.RateOverTime),
		RateOverDistance: EncodeScalarRange(e.RateOverDistance),
		Bursts:           bursts,
	}, nil
}

// TranslateShape reads the shape module. The source scale is written twice,
// as boxScale and as scale.
func TranslateShape(src particle.Source) (*gpart.ShapeModule, error) {
	s, err := src.Shape()
	if err != nil {
		return nil, err
	}
	return &gpart.ShapeModule{
		Enabled:                  s.Enabled,
		ShapeType:                s.ShapeType.String(),
		Angle:                    s.Angle,
		Radius:                   s.Radius,
		RadiusThickness:          s.RadiusThickness,
		Arc:                      s.Arc,
		BoxScale:                 EncodeVector3(s.Scale),
		Position:                 EncodeVector3(s.Position),
		Rotation:                 EncodeVector3(s.Rotation),
		Scale:                    EncodeVector3(s.Scale),
		AlignToDirection:         s.AlignToDirection,
		RandomDirectionAmount:    s.RandomDirectionAmount,
		SphericalDirectionAmount: s.SphericalDirectionAmount,
	}, nil
}
