// Package particle provides the source-side model of a particle effect
// definition: the accessor interface the exporter reads from, the value
// shapes it exposes (ranges, curves, gradients, bursts), and a YAML-backed
// authoring library that implements the accessor outside the authoring host.
//
// A definition is made of fourteen independently-enabled modules. Every
// module is always present on a definition; only the renderer may be absent.
package particle

// Source is the read-only accessor for one effect definition.
//
// Every module getter may fail: the exporter treats any error as fatal for
// the whole export. Renderer returns (nil, nil) when no renderer is attached.
type Source interface {
	Name() string

	Main() (MainModule, error)
	Emission() (EmissionModule, error)
	Shape() (ShapeModule, error)
	VelocityOverLifetime() (VelocityOverLifetimeModule, error)
	LimitVelocityOverLifetime() (LimitVelocityOverLifetimeModule, error)
	ForceOverLifetime() (ForceOverLifetimeModule, error)
	ColorOverLifetime() (ColorOverLifetimeModule, error)
	SizeOverLifetime() (SizeOverLifetimeModule, error)
	RotationOverLifetime() (RotationOverLifetimeModule, error)
	Noise() (NoiseModule, error)
	Collision() (CollisionModule, error)
	TextureSheetAnimation() (TextureSheetAnimationModule, error)
	Renderer() (*Renderer, error)
	SubEmitters() (SubEmitterList, error)
}

// BurstList exposes the bursts of an emission module the way the authoring
// tool does: the caller asks for the count, sizes a buffer, then fills it.
type BurstList interface {
	// BurstCount reports how many bursts are configured.
	BurstCount() int
	// GetBursts copies up to len(dst) bursts into dst and returns the number copied.
	GetBursts(dst []Burst) int
}

// SubEmitterList exposes sub-emitter slots by index.
type SubEmitterList interface {
	SubEmittersCount() int
	SubEmitterType(i int) SubEmitterType
	// SubEmitterSystem returns the child effect attached to slot i, or nil
	// when the slot is empty.
	SubEmitterSystem(i int) Source
}

// Vector3 is a 3D vector in authoring-tool units.
type Vector3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// IsZero reports whether all three components are zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Color is a linear RGBA color, components normally in 0-1 but not clamped.
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// Keyframe is one sample point of a Curve.
type Keyframe struct {
	Time       float32 `yaml:"time"`
	Value      float32 `yaml:"value"`
	InTangent  float32 `yaml:"inTangent"`
	OutTangent float32 `yaml:"outTangent"`
}

// Curve is an ordered keyframe list. Key order is the authored order and is
// never sorted.
type Curve struct {
	Keys []Keyframe `yaml:"keys"`
}

// MinMaxCurve is a scalar value source: a constant, a random pick between two
// constants, a curve, or a random pick between two curves. Curve fields are
// nil when the authoring tool has no curve object for them.
type MinMaxCurve struct {
	Mode        CurveMode `yaml:"mode"`
	Constant    float32   `yaml:"constant"`
	ConstantMin float32   `yaml:"constantMin"`
	ConstantMax float32   `yaml:"constantMax"`
	Curve       *Curve    `yaml:"curve,omitempty"`
	CurveMin    *Curve    `yaml:"curveMin,omitempty"`
	CurveMax    *Curve    `yaml:"curveMax,omitempty"`
	Multiplier  float32   `yaml:"multiplier"`
}

// Constant returns a MinMaxCurve in Constant mode.
func Constant(v float32) MinMaxCurve {
	return MinMaxCurve{Mode: CurveModeConstant, Constant: v, ConstantMax: v, Multiplier: 1}
}

// GradientColorKey is a color sample of a Gradient.
type GradientColorKey struct {
	Color Color   `yaml:"color"`
	Time  float32 `yaml:"time"`
}

// GradientAlphaKey is an alpha sample of a Gradient.
type GradientAlphaKey struct {
	Alpha float32 `yaml:"alpha"`
	Time  float32 `yaml:"time"`
}

// Gradient holds color and alpha keys. The two lists are independent and may
// have different lengths and key times.
type Gradient struct {
	ColorKeys []GradientColorKey `yaml:"colorKeys"`
	AlphaKeys []GradientAlphaKey `yaml:"alphaKeys"`
}

// Burst is a one-shot emission event.
type Burst struct {
	Time           float32 `yaml:"time"`
	MinCount       int16   `yaml:"minCount"`
	MaxCount       int16   `yaml:"maxCount"`
	CycleCount     int     `yaml:"cycleCount"`
	RepeatInterval float32 `yaml:"repeatInterval"`
}

// MainModule holds the always-on system settings.
type MainModule struct {
	Duration        float32         `yaml:"duration"`
	Looping         bool            `yaml:"looping"`
	Prewarm         bool            `yaml:"prewarm"`
	StartDelay      MinMaxCurve     `yaml:"startDelay"`
	StartLifetime   MinMaxCurve     `yaml:"startLifetime"`
	StartSpeed      MinMaxCurve     `yaml:"startSpeed"`
	StartSize       MinMaxCurve     `yaml:"startSize"`
	StartSize3D     bool            `yaml:"startSize3D"`
	StartSizeX      MinMaxCurve     `yaml:"startSizeX"`
	StartSizeY      MinMaxCurve     `yaml:"startSizeY"`
	StartSizeZ      MinMaxCurve     `yaml:"startSizeZ"`
	StartRotation   MinMaxCurve     `yaml:"startRotation"`
	StartRotation3D bool            `yaml:"startRotation3D"`
	StartRotationX  MinMaxCurve     `yaml:"startRotationX"`
	StartRotationY  MinMaxCurve     `yaml:"startRotationY"`
	StartRotationZ  MinMaxCurve     `yaml:"startRotationZ"`
	StartColor      Color           `yaml:"startColor"`
	GravityModifier MinMaxCurve     `yaml:"gravityModifier"`
	SimulationSpace SimulationSpace `yaml:"simulationSpace"`
	SimulationSpeed float32         `yaml:"simulationSpeed"`
	PlayOnAwake     bool            `yaml:"playOnAwake"`
	MaxParticles    int             `yaml:"maxParticles"`
}

// EmissionModule controls spawn rate and bursts.
type EmissionModule struct {
	Enabled          bool
	RateOverTime     MinMaxCurve
	RateOverDistance MinMaxCurve
	Bursts           BurstList
}

// ShapeModule controls where particles spawn. Scale doubles as the box
// dimensions for box shapes.
type ShapeModule struct {
	Enabled                  bool      `yaml:"enabled"`
	ShapeType                ShapeType `yaml:"shapeType"`
	Angle                    float32   `yaml:"angle"`
	Radius                   float32   `yaml:"radius"`
	RadiusThickness          float32   `yaml:"radiusThickness"`
	Arc                      float32   `yaml:"arc"`
	Position                 Vector3   `yaml:"position"`
	Rotation                 Vector3   `yaml:"rotation"`
	Scale                    Vector3   `yaml:"scale"`
	AlignToDirection         bool      `yaml:"alignToDirection"`
	RandomDirectionAmount    float32   `yaml:"randomDirectionAmount"`
	SphericalDirectionAmount float32   `yaml:"sphericalDirectionAmount"`
}

// VelocityOverLifetimeModule adds velocity by normalized age.
type VelocityOverLifetimeModule struct {
	Enabled bool            `yaml:"enabled"`
	X       MinMaxCurve     `yaml:"x"`
	Y       MinMaxCurve     `yaml:"y"`
	Z       MinMaxCurve     `yaml:"z"`
	Space   SimulationSpace `yaml:"space"`
}

// LimitVelocityOverLifetimeModule slows particles above a speed limit.
type LimitVelocityOverLifetimeModule struct {
	Enabled      bool        `yaml:"enabled"`
	Limit        MinMaxCurve `yaml:"limit"`
	Dampen       float32     `yaml:"dampen"`
	SeparateAxes bool        `yaml:"separateAxes"`
	LimitX       MinMaxCurve `yaml:"limitX"`
	LimitY       MinMaxCurve `yaml:"limitY"`
	LimitZ       MinMaxCurve `yaml:"limitZ"`
}

// ForceOverLifetimeModule applies acceleration by normalized age.
type ForceOverLifetimeModule struct {
	Enabled    bool            `yaml:"enabled"`
	X          MinMaxCurve     `yaml:"x"`
	Y          MinMaxCurve     `yaml:"y"`
	Z          MinMaxCurve     `yaml:"z"`
	Space      SimulationSpace `yaml:"space"`
	Randomized bool            `yaml:"randomized"`
}

// ColorOverLifetimeModule tints particles by normalized age. Gradient is nil
// when the color source is not gradient-based.
type ColorOverLifetimeModule struct {
	Enabled  bool      `yaml:"enabled"`
	Gradient *Gradient `yaml:"gradient"`
}

// SizeOverLifetimeModule scales particles by normalized age.
type SizeOverLifetimeModule struct {
	Enabled      bool        `yaml:"enabled"`
	Size         MinMaxCurve `yaml:"size"`
	SeparateAxes bool        `yaml:"separateAxes"`
	X            MinMaxCurve `yaml:"x"`
	Y            MinMaxCurve `yaml:"y"`
	Z            MinMaxCurve `yaml:"z"`
}

// RotationOverLifetimeModule spins particles by normalized age, in radians per second.
type RotationOverLifetimeModule struct {
	Enabled      bool        `yaml:"enabled"`
	X            MinMaxCurve `yaml:"x"`
	Y            MinMaxCurve `yaml:"y"`
	Z            MinMaxCurve `yaml:"z"`
	SeparateAxes bool        `yaml:"separateAxes"`
}

// NoiseModule adds turbulence to particle movement.
type NoiseModule struct {
	Enabled          bool         `yaml:"enabled"`
	Strength         MinMaxCurve  `yaml:"strength"`
	Frequency        float32      `yaml:"frequency"`
	ScrollSpeed      float32      `yaml:"scrollSpeed"`
	Damping          bool         `yaml:"damping"`
	OctaveCount      int          `yaml:"octaveCount"`
	OctaveMultiplier float32      `yaml:"octaveMultiplier"`
	OctaveScale      float32      `yaml:"octaveScale"`
	Quality          NoiseQuality `yaml:"quality"`
	SeparateAxes     bool         `yaml:"separateAxes"`
	StrengthX        MinMaxCurve  `yaml:"strengthX"`
	StrengthY        MinMaxCurve  `yaml:"strengthY"`
	StrengthZ        MinMaxCurve  `yaml:"strengthZ"`
}

// CollisionModule controls particle collision. CollidesWith is a layer
// bitmask; zero means nothing.
type CollisionModule struct {
	Enabled            bool          `yaml:"enabled"`
	Type               CollisionType `yaml:"type"`
	Mode               CollisionMode `yaml:"mode"`
	Dampen             MinMaxCurve   `yaml:"dampen"`
	Bounce             MinMaxCurve   `yaml:"bounce"`
	LifetimeLoss       MinMaxCurve   `yaml:"lifetimeLoss"`
	MinKillSpeed       float32       `yaml:"minKillSpeed"`
	MaxKillSpeed       float32       `yaml:"maxKillSpeed"`
	RadiusScale        float32       `yaml:"radiusScale"`
	CollidesWith       uint32        `yaml:"collidesWith"`
	MaxCollisionShapes int           `yaml:"maxCollisionShapes"`
}

// TextureSheetAnimationModule plays frames from a tiled texture.
type TextureSheetAnimationModule struct {
	Enabled       bool          `yaml:"enabled"`
	NumTilesX     int           `yaml:"numTilesX"`
	NumTilesY     int           `yaml:"numTilesY"`
	Animation     AnimationType `yaml:"animation"`
	Mode          AnimationMode `yaml:"mode"`
	FrameOverTime MinMaxCurve   `yaml:"frameOverTime"`
	StartFrame    MinMaxCurve   `yaml:"startFrame"`
	CycleCount    int           `yaml:"cycleCount"`
	RowIndex      int           `yaml:"rowIndex"`
}

// Material is the renderer's shared material. MainTexture is empty when the
// material has no main texture.
type Material struct {
	Name        string `yaml:"name"`
	MainTexture string `yaml:"mainTexture"`
}

// Renderer is the optional render component attached to an effect.
// Material is nil when no shared material is assigned.
type Renderer struct {
	RenderMode      RenderMode `yaml:"renderMode"`
	SortMode        SortMode   `yaml:"sortMode"`
	MinParticleSize float32    `yaml:"minParticleSize"`
	MaxParticleSize float32    `yaml:"maxParticleSize"`
	Material        *Material  `yaml:"material"`
	Pivot           Vector3    `yaml:"pivot"`
	Flip            Vector3    `yaml:"flip"`
	VelocityScale   Vector3    `yaml:"velocityScale"`
	LengthScale     float32    `yaml:"lengthScale"`
	NormalDirection float32    `yaml:"normalDirection"`
	SortingOrder    int        `yaml:"sortingOrder"`
}
