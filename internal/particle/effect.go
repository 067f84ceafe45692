package particle

import "fmt"

// Effect is one definition of a Library. It implements Source.
type Effect struct {
	lib  *Library
	name string

	main                      MainModule
	emission                  EmissionModule
	shape                     ShapeModule
	velocityOverLifetime      VelocityOverLifetimeModule
	limitVelocityOverLifetime LimitVelocityOverLifetimeModule
	forceOverLifetime         ForceOverLifetimeModule
	colorOverLifetime         ColorOverLifetimeModule
	sizeOverLifetime          SizeOverLifetimeModule
	rotationOverLifetime      RotationOverLifetimeModule
	noise                     NoiseModule
	collision                 CollisionModule
	textureSheetAnimation     TextureSheetAnimationModule
	renderer                  *Renderer
	subEmitters               []subEmitterYAML
}

var _ Source = (*Effect)(nil)

func newEffect(lib *Library, def *effectYAML) (*Effect, error) {
	e := &Effect{
		lib:  lib,
		name: def.Name,
		main: def.Main,
		emission: EmissionModule{
			Enabled:          def.Emission.Enabled,
			RateOverTime:     def.Emission.RateOverTime,
			RateOverDistance: def.Emission.RateOverDistance,
			Bursts:           BurstSlice(def.Emission.Bursts),
		},
		shape:                     def.Shape,
		velocityOverLifetime:      def.VelocityOverLifetime,
		limitVelocityOverLifetime: def.LimitVelocityOverLifetime,
		forceOverLifetime:         def.ForceOverLifetime,
		colorOverLifetime:         def.ColorOverLifetime,
		sizeOverLifetime:          def.SizeOverLifetime,
		rotationOverLifetime:      def.RotationOverLifetime,
		noise:                     def.Noise,
		collision:                 def.Collision,
		textureSheetAnimation:     def.TextureSheetAnimation,
		subEmitters:               def.SubEmitters,
	}

	// A renderer key, even an empty mapping, attaches a renderer; an absent
	// key leaves a zero node and an explicit null detaches it
	if def.Renderer.Kind != 0 && def.Renderer.ShortTag() != "!!null" {
		r := DefaultRenderer()
		if err := def.Renderer.Decode(&r); err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		e.renderer = &r
	}
	return e, nil
}

// Name returns the effect name, unique within its library.
func (e *Effect) Name() string { return e.name }

// Module accessors return stored values and never fail.

func (e *Effect) Main() (MainModule, error)   { return e.main, nil }
func (e *Effect) Shape() (ShapeModule, error) { return e.shape, nil }
func (e *Effect) Noise() (NoiseModule, error) { return e.noise, nil }

func (e *Effect) Emission() (EmissionModule, error) { return e.emission, nil }

func (e *Effect) VelocityOverLifetime() (VelocityOverLifetimeModule, error) {
	return e.velocityOverLifetime, nil
}

func (e *Effect) LimitVelocityOverLifetime() (LimitVelocityOverLifetimeModule, error) {
	return e.limitVelocityOverLifetime, nil
}

func (e *Effect) ForceOverLifetime() (ForceOverLifetimeModule, error) {
	return e.forceOverLifetime, nil
}

func (e *Effect) ColorOverLifetime() (ColorOverLifetimeModule, error) {
	return e.colorOverLifetime, nil
}

func (e *Effect) SizeOverLifetime() (SizeOverLifetimeModule, error) {
	return e.sizeOverLifetime, nil
}

func (e *Effect) RotationOverLifetime() (RotationOverLifetimeModule, error) {
	return e.rotationOverLifetime, nil
}

func (e *Effect) Collision() (CollisionModule, error) { return e.collision, nil }

func (e *Effect) TextureSheetAnimation() (TextureSheetAnimationModule, error) {
	return e.textureSheetAnimation, nil
}

// Renderer returns a copy of the attached renderer, or nil when the effect
// has none.
func (e *Effect) Renderer() (*Renderer, error) {
	if e.renderer == nil {
		return nil, nil
	}
	r := *e.renderer
	if r.Material != nil {
		m := *r.Material
		r.Material = &m
	}
	return &r, nil
}

// SubEmitters resolves each slot's child effect by name. A slot without a
// child stays empty; a name missing from the library is an error.
func (e *Effect) SubEmitters() (SubEmitterList, error) {
	slots := make(SubEmitterSlots, len(e.subEmitters))
	for i, s := range e.subEmitters {
		slots[i].Type = s.Type
		if s.Effect == "" {
			continue
		}
		child, err := e.lib.Effect(s.Effect)
		if err != nil {
			return nil, fmt.Errorf("sub-emitter slot %d: %w", i, err)
		}
		slots[i].System = child
	}
	return slots, nil
}

// BurstSlice is a BurstList backed by a slice.
type BurstSlice []Burst

func (b BurstSlice) BurstCount() int { return len(b) }

func (b BurstSlice) GetBursts(dst []Burst) int { return copy(dst, b) }

// SubEmitterSlot is one sub-emitter slot; System is nil for an empty slot.
type SubEmitterSlot struct {
	Type   SubEmitterType
	System Source
}

// SubEmitterSlots is a SubEmitterList backed by a slice.
type SubEmitterSlots []SubEmitterSlot

func (s SubEmitterSlots) SubEmittersCount() int { return len(s) }

func (s SubEmitterSlots) SubEmitterType(i int) SubEmitterType { return s[i].Type }

func (s SubEmitterSlots) SubEmitterSystem(i int) Source { return s[i].System }
