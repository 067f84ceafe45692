package particle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseScalarRange parses the shorthand notation used for scalar ranges in
// effect libraries.
// Supports multiple formats:
//   - Fixed value: "1500" → Constant
//   - Range: "[0.7 0.9]" → TwoConstants (min=0.7, max=0.9)
//   - Single-value range: "[3]" → Constant
//   - Keyframes: "0,2 1,2 4,21" → Curve with keys (time,value)
//   - Full keyframes: "0,1,0,-1 1,0,-1,0" → Curve with keys (time,value,inTangent,outTangent)
//   - Curve pair: "[0,0 1,1] [0,1 1,2]" → TwoCurves (curveMin, curveMax)
//
// The multiplier is always 1. Constant and ConstantMax share storage in the
// authoring tool, so both are set for Constant and TwoConstants results.
//
// Returns an error when the string is empty or any number fails to parse.
func ParseScalarRange(s string) (MinMaxCurve, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MinMaxCurve{}, fmt.Errorf("empty scalar range")
	}

	// Curve pair: two bracketed keyframe groups
	if strings.Count(s, "[") == 2 && strings.Count(s, "]") == 2 {
		closeIdx := strings.Index(s, "]")
		first := strings.TrimSpace(s[:closeIdx+1])
		second := strings.TrimSpace(s[closeIdx+1:])
		if !strings.HasPrefix(second, "[") || !strings.HasSuffix(second, "]") {
			return MinMaxCurve{}, fmt.Errorf("malformed curve pair %q", s)
		}
		curveMin, err := parseKeyframes(strings.Trim(first, "[]"))
		if err != nil {
			return MinMaxCurve{}, fmt.Errorf("curve pair %q min: %w", s, err)
		}
		curveMax, err := parseKeyframes(strings.Trim(second, "[]"))
		if err != nil {
			return MinMaxCurve{}, fmt.Errorf("curve pair %q max: %w", s, err)
		}
		return MinMaxCurve{
			Mode:       CurveModeTwoCurves,
			CurveMin:   curveMin,
			CurveMax:   curveMax,
			Multiplier: 1,
		}, nil
	}

	// Bracketed keyframes are a plain curve
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") && strings.Contains(s, ",") {
		s = strings.Trim(s, "[]")
	}

	// Range: "[min max]" or "[value]"
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		parts := strings.Fields(strings.Trim(s, "[]"))
		switch len(parts) {
		case 1:
			v, err := parseFloat32(parts[0])
			if err != nil {
				return MinMaxCurve{}, fmt.Errorf("range %q: %w", s, err)
			}
			return Constant(v), nil
		case 2:
			lo, err := parseFloat32(parts[0])
			if err != nil {
				return MinMaxCurve{}, fmt.Errorf("range %q min: %w", s, err)
			}
			hi, err := parseFloat32(parts[1])
			if err != nil {
				return MinMaxCurve{}, fmt.Errorf("range %q max: %w", s, err)
			}
			return MinMaxCurve{
				Mode:        CurveModeTwoConstants,
				Constant:    hi,
				ConstantMin: lo,
				ConstantMax: hi,
				Multiplier:  1,
			}, nil
		default:
			return MinMaxCurve{}, fmt.Errorf("range %q must hold one or two values", s)
		}
	}

	// Keyframes: contains comma
	if strings.Contains(s, ",") {
		curve, err := parseKeyframes(s)
		if err != nil {
			return MinMaxCurve{}, fmt.Errorf("curve %q: %w", s, err)
		}
		return MinMaxCurve{Mode: CurveModeCurve, Curve: curve, Multiplier: 1}, nil
	}

	// Fixed value format
	v, err := parseFloat32(s)
	if err != nil {
		return MinMaxCurve{}, fmt.Errorf("constant %q: %w", s, err)
	}
	return Constant(v), nil
}

// parseKeyframes parses whitespace-separated "time,value[,inTangent,outTangent]"
// groups, preserving their order.
func parseKeyframes(s string) (*Curve, error) {
	fields := strings.Fields(s)
	curve := &Curve{Keys: make([]Keyframe, 0, len(fields))}
	for _, field := range fields {
		parts := strings.Split(field, ",")
		if len(parts) != 2 && len(parts) != 4 {
			return nil, fmt.Errorf("keyframe %q must be time,value or time,value,inTangent,outTangent", field)
		}
		vals := make([]float32, len(parts))
		for i, p := range parts {
			v, err := parseFloat32(p)
			if err != nil {
				return nil, fmt.Errorf("keyframe %q: %w", field, err)
			}
			vals[i] = v
		}
		kf := Keyframe{Time: vals[0], Value: vals[1]}
		if len(vals) == 4 {
			kf.InTangent = vals[2]
			kf.OutTangent = vals[3]
		}
		curve.Keys = append(curve.Keys, kf)
	}
	return curve, nil
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}
