package particle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEffectNotFound is returned by Library.Effect for an unknown name.
var ErrEffectNotFound = errors.New("effect not found")

// ErrInvalidName is returned for a name that cannot be used as a file name.
var ErrInvalidName = errors.New("invalid name")

// CheckName returns an error unless name is usable as a single file name.
// Effect and texture names become file names, so path separators and the
// "." and ".." entries are rejected.
func CheckName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Library is a set of effect definitions authored in one YAML file.
// Definitions reference each other by name through sub-emitter slots.
type Library struct {
	// TextureDir is where renderer main textures are looked up. Relative
	// paths are resolved against the library file's directory by LoadLibrary.
	TextureDir string

	effects []*Effect
	byName  map[string]*Effect
}

type libraryFile struct {
	TextureDir string       `yaml:"textureDir"`
	Effects    []effectYAML `yaml:"effects"`
}

type effectYAML struct {
	Name                      string                          `yaml:"name"`
	Main                      MainModule                      `yaml:"main"`
	Emission                  emissionYAML                    `yaml:"emission"`
	Shape                     ShapeModule                     `yaml:"shape"`
	VelocityOverLifetime      VelocityOverLifetimeModule      `yaml:"velocityOverLifetime"`
	LimitVelocityOverLifetime LimitVelocityOverLifetimeModule `yaml:"limitVelocityOverLifetime"`
	ForceOverLifetime         ForceOverLifetimeModule         `yaml:"forceOverLifetime"`
	ColorOverLifetime         ColorOverLifetimeModule         `yaml:"colorOverLifetime"`
	SizeOverLifetime          SizeOverLifetimeModule          `yaml:"sizeOverLifetime"`
	RotationOverLifetime      RotationOverLifetimeModule      `yaml:"rotationOverLifetime"`
	Noise                     NoiseModule                     `yaml:"noise"`
	Collision                 CollisionModule                 `yaml:"collision"`
	TextureSheetAnimation     TextureSheetAnimationModule     `yaml:"textureSheetAnimation"`
	Renderer                  yaml.Node                       `yaml:"renderer"`
	SubEmitters               []subEmitterYAML                `yaml:"subEmitters"`
}

type emissionYAML struct {
	Enabled          bool        `yaml:"enabled"`
	RateOverTime     MinMaxCurve `yaml:"rateOverTime"`
	RateOverDistance MinMaxCurve `yaml:"rateOverDistance"`
	Bursts           []Burst     `yaml:"bursts"`
}

type subEmitterYAML struct {
	Type   SubEmitterType `yaml:"type"`
	Effect string         `yaml:"effect"`
}

// UnmarshalYAML seeds every module with its defaults before decoding so
// omitted keys keep the authoring tool's values.
func (e *effectYAML) UnmarshalYAML(n *yaml.Node) error {
	*e = effectYAML{
		Main: DefaultMainModule(),
		Emission: emissionYAML{
			Enabled:          true,
			RateOverTime:     Constant(10),
			RateOverDistance: Constant(0),
		},
		Shape:                     DefaultShapeModule(),
		VelocityOverLifetime:      DefaultVelocityOverLifetimeModule(),
		LimitVelocityOverLifetime: DefaultLimitVelocityOverLifetimeModule(),
		ForceOverLifetime:         DefaultForceOverLifetimeModule(),
		ColorOverLifetime:         DefaultColorOverLifetimeModule(),
		SizeOverLifetime:          DefaultSizeOverLifetimeModule(),
		RotationOverLifetime:      DefaultRotationOverLifetimeModule(),
		Noise:                     DefaultNoiseModule(),
		Collision:                 DefaultCollisionModule(),
		TextureSheetAnimation:     DefaultTextureSheetAnimationModule(),
	}
	type plain effectYAML
	return n.Decode((*plain)(e))
}

// UnmarshalYAML accepts a bursts entry; cycleCount defaults to 1.
func (b *Burst) UnmarshalYAML(n *yaml.Node) error {
	*b = Burst{CycleCount: 1}
	type plain Burst
	return n.Decode((*plain)(b))
}

// UnmarshalYAML accepts either the shorthand notation of ParseScalarRange or
// a mapping with explicit fields. Constant and ConstantMax share storage, so
// the field the mode does not name mirrors the one it does.
func (m *MinMaxCurve) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseScalarRange(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*m = parsed
		return nil
	case yaml.MappingNode:
		// A mapping replaces the seeded default outright; curves the
		// author did not write stay nil.
		v := MinMaxCurve{Multiplier: 1}
		type plain MinMaxCurve
		if err := n.Decode((*plain)(&v)); err != nil {
			return err
		}
		switch v.Mode {
		case CurveModeConstant:
			v.ConstantMax = v.Constant
		case CurveModeTwoConstants:
			v.Constant = v.ConstantMax
		}
		*m = v
		return nil
	default:
		return fmt.Errorf("line %d: scalar range must be a string, number or mapping", n.Line)
	}
}

// UnmarshalYAML accepts a keyframe shorthand string, a sequence of
// keyframes, or a mapping with a keys sequence.
func (c *Curve) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		parsed, err := parseKeyframes(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*c = *parsed
		return nil
	case yaml.SequenceNode:
		var keys []Keyframe
		if err := n.Decode(&keys); err != nil {
			return err
		}
		*c = Curve{Keys: keys}
		return nil
	default:
		type plain Curve
		*c = Curve{}
		return n.Decode((*plain)(c))
	}
}

// ParseLibrary parses a YAML effect library.
//
// Parameters:
//   - data: YAML document with an "effects" sequence
//
// Returns:
//   - *Library: parsed library, definitions in authored order
//   - error: YAML syntax or type errors, or invalid definitions
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse effect library: %w", err)
	}

	if err := validateLibrary(&file); err != nil {
		return nil, fmt.Errorf("invalid effect library: %w", err)
	}

	lib := &Library{
		TextureDir: file.TextureDir,
		effects:    make([]*Effect, 0, len(file.Effects)),
		byName:     make(map[string]*Effect, len(file.Effects)),
	}
	for i := range file.Effects {
		effect, err := newEffect(lib, &file.Effects[i])
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", file.Effects[i].Name, err)
		}
		lib.effects = append(lib.effects, effect)
		lib.byName[effect.name] = effect
	}
	return lib, nil
}

// LoadLibrary reads and parses a YAML effect library from disk.
//
// A relative textureDir is resolved against the library's directory; when it
// is empty the library's directory itself is used.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect library %s: %w", path, err)
	}

	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	switch {
	case lib.TextureDir == "":
		lib.TextureDir = base
	case !filepath.IsAbs(lib.TextureDir):
		lib.TextureDir = filepath.Join(base, lib.TextureDir)
	}
	return lib, nil
}

// validateLibrary checks structural integrity only; gameplay values are not
// judged.
func validateLibrary(file *libraryFile) error {
	if len(file.Effects) == 0 {
		return fmt.Errorf("at least one effect is required")
	}

	seen := make(map[string]bool, len(file.Effects))
	for i, e := range file.Effects {
		if e.Name == "" {
			return fmt.Errorf("effect %d: name is required", i)
		}
		if err := CheckName(e.Name); err != nil {
			return fmt.Errorf("effect %d: %w", i, err)
		}
		if seen[e.Name] {
			return fmt.Errorf("effect %q: duplicate name", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Names returns the effect names in authored order.
func (l *Library) Names() []string {
	names := make([]string, len(l.effects))
	for i, e := range l.effects {
		names[i] = e.name
	}
	return names
}

// Effect returns the definition with the given name.
func (l *Library) Effect(name string) (*Effect, error) {
	e, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEffectNotFound, name)
	}
	return e, nil
}
