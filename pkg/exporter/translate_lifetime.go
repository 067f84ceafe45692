package exporter

import (
	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// Over-lifetime modules. Each is copied field by field; disabled modules are
// written in full.

// TranslateVelocityOverLifetime copies the per-axis velocity ranges and their space.
func TranslateVelocityOverLifetime(src particle.Source) (*gpart.VelocityOverLifetimeModule, error) {
	v, err := src.VelocityOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.VelocityOverLifetimeModule{
		Enabled: v.Enabled,
		X:       EncodeScalarRange(v.X),
		Y:       EncodeScalarRange(v.Y),
		Z:       EncodeScalarRange(v.Z),
		Space:   v.Space.String(),
	}, nil
}

// TranslateLimitVelocityOverLifetime copies the speed limit, per-axis limits and dampen factor.
func TranslateLimitVelocityOverLifetime(src particle.Source) (*gpart.LimitVelocityOverLifetimeModule, error) {
	l, err := src.LimitVelocityOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.LimitVelocityOverLifetimeModule{
		Enabled:      l.Enabled,
		Limit:        EncodeScalarRange(l.Limit),
		Dampen:       l.Dampen,
		SeparateAxes: l.SeparateAxes,
		LimitX:       EncodeScalarRange(l.LimitX),
		LimitY:       EncodeScalarRange(l.LimitY),
		LimitZ:       EncodeScalarRange(l.LimitZ),
	}, nil
}

// TranslateForceOverLifetime copies the per-axis force ranges.
func TranslateForceOverLifetime(src particle.Source) (*gpart.ForceOverLifetimeModule, error) {
	f, err := src.ForceOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.ForceOverLifetimeModule{
		Enabled:    f.Enabled,
		X:          EncodeScalarRange(f.X),
		Y:          EncodeScalarRange(f.Y),
		Z:          EncodeScalarRange(f.Z),
		Space:      f.Space.String(),
		Randomized: f.Randomized,
	}, nil
}

// TranslateColorOverLifetime writes empty key lists when the module has no
// gradient.
func TranslateColorOverLifetime(src particle.Source) (*gpart.ColorOverLifetimeModule, error) {
	c, err := src.ColorOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.ColorOverLifetimeModule{
		Enabled:  c.Enabled,
		Gradient: EncodeGradient(c.Gradient),
	}, nil
}

// TranslateSizeOverLifetime copies the uniform and per-axis size ranges.
func TranslateSizeOverLifetime(src particle.Source) (*gpart.SizeOverLifetimeModule, error) {
	s, err := src.SizeOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.SizeOverLifetimeModule{
		Enabled:      s.Enabled,
		Size:         EncodeScalarRange(s.Size),
		SeparateAxes: s.SeparateAxes,
		X:            EncodeScalarRange(s.X),
		Y:            EncodeScalarRange(s.Y),
		Z:            EncodeScalarRange(s.Z),
	}, nil
}

// TranslateRotationOverLifetime copies the per-axis angular velocity ranges.
func TranslateRotationOverLifetime(src particle.Source) (*gpart.RotationOverLifetimeModule, error) {
	r, err := src.RotationOverLifetime()
	if err != nil {
		return nil, err
	}
	return &gpart.RotationOverLifetimeModule{
		Enabled:      r.Enabled,
		X:            EncodeScalarRange(r.X),
		Y:            EncodeScalarRange(r.Y),
		Z:            EncodeScalarRange(r.Z),
		SeparateAxes: r.SeparateAxes,
	}, nil
}
