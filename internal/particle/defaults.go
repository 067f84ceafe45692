package particle

// Defaults mirror what the authoring tool assigns to a freshly created
// effect, so a library entry only needs to spell out what it changes.

func linearCurve() *Curve {
	return &Curve{Keys: []Keyframe{
		{Time: 0, Value: 0, InTangent: 1, OutTangent: 1},
		{Time: 1, Value: 1, InTangent: 1, OutTangent: 1},
	}}
}

// DefaultMainModule returns the main module of a new effect.
func DefaultMainModule() MainModule {
	return MainModule{
		Duration:        5,
		Looping:         true,
		StartDelay:      Constant(0),
		StartLifetime:   Constant(5),
		StartSpeed:      Constant(5),
		StartSize:       Constant(1),
		StartSizeX:      Constant(1),
		StartSizeY:      Constant(1),
		StartSizeZ:      Constant(1),
		StartRotation:   Constant(0),
		StartRotationX:  Constant(0),
		StartRotationY:  Constant(0),
		StartRotationZ:  Constant(0),
		StartColor:      Color{R: 1, G: 1, B: 1, A: 1},
		GravityModifier: Constant(0),
		SimulationSpace: SimulationSpaceLocal,
		SimulationSpeed: 1,
		PlayOnAwake:     true,
		MaxParticles:    1000,
	}
}

// DefaultShapeModule is a 25 degree cone of radius 1.
func DefaultShapeModule() ShapeModule {
	return ShapeModule{
		Enabled:         true,
		ShapeType:       ShapeCone,
		Angle:           25,
		Radius:          1,
		RadiusThickness: 1,
		Arc:             360,
		Scale:           Vector3{X: 1, Y: 1, Z: 1},
	}
}

func DefaultVelocityOverLifetimeModule() VelocityOverLifetimeModule {
	return VelocityOverLifetimeModule{X: Constant(0), Y: Constant(0), Z: Constant(0)}
}

func DefaultLimitVelocityOverLifetimeModule() LimitVelocityOverLifetimeModule {
	return LimitVelocityOverLifetimeModule{
		Limit:  Constant(1),
		LimitX: Constant(1),
		LimitY: Constant(1),
		LimitZ: Constant(1),
	}
}

func DefaultForceOverLifetimeModule() ForceOverLifetimeModule {
	return ForceOverLifetimeModule{X: Constant(0), Y: Constant(0), Z: Constant(0)}
}

// DefaultGradient is opaque white across the whole lifetime.
func DefaultGradient() *Gradient {
	white := Color{R: 1, G: 1, B: 1, A: 1}
	return &Gradient{
		ColorKeys: []GradientColorKey{{Color: white, Time: 0}, {Color: white, Time: 1}},
		AlphaKeys: []GradientAlphaKey{{Alpha: 1, Time: 0}, {Alpha: 1, Time: 1}},
	}
}

func DefaultColorOverLifetimeModule() ColorOverLifetimeModule {
	return ColorOverLifetimeModule{Gradient: DefaultGradient()}
}

func DefaultSizeOverLifetimeModule() SizeOverLifetimeModule {
	return SizeOverLifetimeModule{
		Size: MinMaxCurve{Mode: CurveModeCurve, Curve: linearCurve(), Multiplier: 1},
		X:    MinMaxCurve{Mode: CurveModeCurve, Curve: linearCurve(), Multiplier: 1},
		Y:    MinMaxCurve{Mode: CurveModeCurve, Curve: linearCurve(), Multiplier: 1},
		Z:    MinMaxCurve{Mode: CurveModeCurve, Curve: linearCurve(), Multiplier: 1},
	}
}

// DefaultRotationOverLifetimeModule spins around Z at 45 degrees per second
// (stored in radians).
func DefaultRotationOverLifetimeModule() RotationOverLifetimeModule {
	return RotationOverLifetimeModule{X: Constant(0), Y: Constant(0), Z: Constant(0.7853982)}
}

// DefaultNoiseModule is disabled, high quality, one octave.
func DefaultNoiseModule() NoiseModule {
	return NoiseModule{
		Strength:         Constant(1),
		Frequency:        0.5,
		Damping:          true,
		OctaveCount:      1,
		OctaveMultiplier: 0.5,
		OctaveScale:      2,
		Quality:          NoiseQualityHigh,
		StrengthX:        Constant(1),
		StrengthY:        Constant(1),
		StrengthZ:        Constant(1),
	}
}

// DefaultCollisionModule collides with every layer once enabled.
func DefaultCollisionModule() CollisionModule {
	return CollisionModule{
		Type:               CollisionPlanes,
		Mode:               CollisionMode3D,
		Dampen:             Constant(0),
		Bounce:             Constant(1),
		LifetimeLoss:       Constant(0),
		MaxKillSpeed:       10000,
		RadiusScale:        1,
		CollidesWith:       0xFFFFFFFF,
		MaxCollisionShapes: 256,
	}
}

func DefaultTextureSheetAnimationModule() TextureSheetAnimationModule {
	return TextureSheetAnimationModule{
		NumTilesX:     1,
		NumTilesY:     1,
		Animation:     AnimationWholeSheet,
		Mode:          AnimationModeGrid,
		FrameOverTime: MinMaxCurve{Mode: CurveModeCurve, Curve: linearCurve(), Multiplier: 1},
		StartFrame:    Constant(0),
		CycleCount:    1,
	}
}

// DefaultRenderer is the renderer added alongside a new effect.
func DefaultRenderer() Renderer {
	return Renderer{
		RenderMode:      RenderBillboard,
		SortMode:        SortNone,
		MaxParticleSize: 0.5,
		LengthScale:     2,
		NormalDirection: 1,
	}
}
