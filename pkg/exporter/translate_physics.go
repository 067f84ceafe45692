package exporter

import (
	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// TranslateNoise reads the noise module. Quality is written as its integer
// level rather than by name.
func TranslateNoise(src particle.Source) (*gpart.NoiseModule, error) {
	n, err := src.Noise()
	if err != nil {
		return nil, err
	}
	return &gpart.NoiseModule{
		Enabled:          n.Enabled,
		Strength:         EncodeScalarRange(n.Strength),
		Frequency:        n.Frequency,
		ScrollSpeed:      n.ScrollSpeed,
		Damping:          n.Damping,
		Octaves:          n.OctaveCount,
		OctaveMultiplier: n.OctaveMultiplier,
		OctaveScale:      n.OctaveScale,
		Quality:          int(n.Quality),
		SeparateAxes:     n.SeparateAxes,
		StrengthX:        EncodeScalarRange(n.StrengthX),
		StrengthY:        EncodeScalarRange(n.StrengthY),
		StrengthZ:        EncodeScalarRange(n.StrengthZ),
	}, nil
}

// TranslateCollision reads the collision module. The layer mask itself is
// not exported, only whether it selects anything.
func TranslateCollision(src particle.Source) (*gpart.CollisionModule, error) {
	c, err := src.Collision()
	if err != nil {
		return nil, err
	}
	return &gpart.CollisionModule{
		Enabled:             c.Enabled,
		Type:                c.Type.String(),
		Mode:                c.Mode.String(),
		Dampen:              EncodeScalarRange(c.Dampen),
		Bounce:              EncodeScalarRange(c.Bounce),
		LifetimeLoss:        EncodeScalarRange(c.LifetimeLoss),
		MinKillSpeed:        c.MinKillSpeed,
		MaxKillSpeed:        c.MaxKillSpeed,
		RadiusScale:         c.RadiusScale,
		CollidesWithDynamic: c.CollidesWith != 0,
		MaxCollisionShapes:  c.MaxCollisionShapes,
	}, nil
}
