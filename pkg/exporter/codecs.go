package exporter

import (
	"github.com/gonewx/gpart/internal/particle"
	"github.com/gonewx/gpart/pkg/gpart"
)

// Value codecs. All are pure copies from source shapes to document shapes;
// nothing is clamped or normalized.

// EncodeVector3 copies v field by field.
func EncodeVector3(v particle.Vector3) gpart.Vector3 {
	return gpart.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// EncodeColor copies c field by field.
func EncodeColor(c particle.Color) gpart.Color {
	return gpart.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// EncodeCurve returns the keys of c in authored order, or nil when c is nil
// or has no keys. Both cases are omitted from the document.
func EncodeCurve(c *particle.Curve) *gpart.AnimationCurve {
	if c == nil || len(c.Keys) == 0 {
		return nil
	}
	keys := make([]gpart.Keyframe, len(c.Keys))
	for i, k := range c.Keys {
		keys[i] = gpart.Keyframe{
			Time:       k.Time,
			Value:      k.Value,
			InTangent:  k.InTangent,
			OutTangent: k.OutTangent,
		}
	}
	return &gpart.AnimationCurve{Keys: keys}
}

// EncodeScalarRange converts a scalar range. The mode is written by name and
// every constant field is copied regardless of mode.
func EncodeScalarRange(m particle.MinMaxCurve) gpart.MinMaxCurve {
	return gpart.MinMaxCurve{
		Mode:        m.Mode.String(),
		Constant:    m.Constant,
		ConstantMin: m.ConstantMin,
		ConstantMax: m.ConstantMax,
		Curve:       EncodeCurve(m.Curve),
		CurveMin:    EncodeCurve(m.CurveMin),
		CurveMax:    EncodeCurve(m.CurveMax),
		Multiplier:  m.Multiplier,
	}
}

// EncodeGradient converts color and alpha keys independently. A nil gradient
// yields two empty key lists.
func EncodeGradient(g *particle.Gradient) gpart.Gradient {
	out := gpart.Gradient{
		ColorKeys: []gpart.GradientColorKey{},
		AlphaKeys: []gpart.GradientAlphaKey{},
	}
	if g == nil {
		return out
	}
	for _, k := range g.ColorKeys {
		out.ColorKeys = append(out.ColorKeys, gpart.GradientColorKey{Color: EncodeColor(k.Color), Time: k.Time})
	}
	for _, k := range g.AlphaKeys {
		out.AlphaKeys = append(out.AlphaKeys, gpart.GradientAlphaKey{Alpha: k.Alpha, Time: k.Time})
	}
	return out
}

// EncodeBurst converts one burst; the cycle count is written as "cycles".
func EncodeBurst(b particle.Burst) gpart.Burst {
	return gpart.Burst{
		Time:           b.Time,
		MinCount:       int(b.MinCount),
		MaxCount:       int(b.MaxCount),
		Cycles:         b.CycleCount,
		RepeatInterval: b.RepeatInterval,
	}
}
