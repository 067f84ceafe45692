// Package gpart defines the .gpart interchange document: a versioned,
// indented JSON rendition of one particle effect definition.
//
// Field order in every record follows the struct declaration order, which is
// also the emission order, so two exports can be diffed by hand. Optional
// parts are pointers and are omitted when nil:
//   - curve, curveMin, curveMax of a MinMaxCurve (also nil for zero keys)
//   - the renderer, when the source effect has none
package gpart

const (
	// Version is the schema version written to metadata.version.
	Version = "1.0"

	// Extension is the conventional file extension of an exported document.
	Extension = ".gpart"

	// Exporter identifies this tool in metadata.exporter.
	Exporter = "GPart Exporter v1.0"

	// DateLayout formats metadata.exportDate.
	DateLayout = "2006-01-02 15:04:05"
)

// Document is the root of a .gpart file.
type Document struct {
	Metadata                  Metadata                         `json:"metadata"`
	System                    *MainModule                      `json:"system"`
	Emission                  *EmissionModule                  `json:"emission"`
	Shape                     *ShapeModule                     `json:"shape"`
	VelocityOverLifetime      *VelocityOverLifetimeModule      `json:"velocityOverLifetime"`
	LimitVelocityOverLifetime *LimitVelocityOverLifetimeModule `json:"limitVelocityOverLifetime"`
	ForceOverLifetime         *ForceOverLifetimeModule         `json:"forceOverLifetime"`
	ColorOverLifetime         *ColorOverLifetimeModule         `json:"colorOverLifetime"`
	SizeOverLifetime          *SizeOverLifetimeModule          `json:"sizeOverLifetime"`
	RotationOverLifetime      *RotationOverLifetimeModule      `json:"rotationOverLifetime"`
	Noise                     *NoiseModule                     `json:"noise"`
	Collision                 *CollisionModule                 `json:"collision"`
	TextureSheetAnimation     *TextureSheetAnimationModule     `json:"textureSheetAnimation"`
	Renderer                  *RendererModule                  `json:"renderer,omitempty" jsonschema:"description=Absent when the effect has no renderer"`
	SubEmitters               []SubEmitter                     `json:"subEmitters"`
}

// Metadata identifies the effect and the exporter that wrote it.
type Metadata struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	ExportDate string `json:"exportDate" jsonschema:"description=Local time formatted yyyy-MM-dd HH:mm:ss"`
	Exporter   string `json:"exporter"`
}

// Vector3 is a 3D vector.
type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Color is a linear RGBA color.
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Keyframe is one key of an AnimationCurve.
type Keyframe struct {
	Time       float32 `json:"time"`
	Value      float32 `json:"value"`
	InTangent  float32 `json:"inTangent"`
	OutTangent float32 `json:"outTangent"`
}

// AnimationCurve holds keys in authored order.
type AnimationCurve struct {
	Keys []Keyframe `json:"keys"`
}

// MinMaxCurve is a scalar range. Mode is the symbolic curve mode name.
type MinMaxCurve struct {
	Mode        string          `json:"mode" jsonschema:"enum=Constant,enum=Curve,enum=TwoCurves,enum=TwoConstants"`
	Constant    float32         `json:"constant"`
	ConstantMin float32         `json:"constantMin"`
	ConstantMax float32         `json:"constantMax"`
	Curve       *AnimationCurve `json:"curve,omitempty"`
	CurveMin    *AnimationCurve `json:"curveMin,omitempty"`
	CurveMax    *AnimationCurve `json:"curveMax,omitempty"`
	Multiplier  float32         `json:"multiplier"`
}

// GradientColorKey is a color sample at a normalized time.
type GradientColorKey struct {
	Color Color   `json:"color"`
	Time  float32 `json:"time"`
}

// GradientAlphaKey is an alpha sample at a normalized time.
type GradientAlphaKey struct {
	Alpha float32 `json:"alpha"`
	Time  float32 `json:"time"`
}

// Gradient keeps color and alpha keys independent.
type Gradient struct {
	ColorKeys []GradientColorKey `json:"colorKeys"`
	AlphaKeys []GradientAlphaKey `json:"alphaKeys"`
}

// Burst is written with the key "cycles" for the cycle count, which is what
// runtimes reading this format expect.
type Burst struct {
	Time           float32 `json:"time"`
	MinCount       int     `json:"minCount"`
	MaxCount       int     `json:"maxCount"`
	Cycles         int     `json:"cycles"`
	RepeatInterval float32 `json:"repeatInterval"`
}

// MainModule is the "system" section.
type MainModule struct {
	Duration        float32     `json:"duration"`
	Looping         bool        `json:"looping"`
	Prewarm         bool        `json:"prewarm"`
	StartDelay      MinMaxCurve `json:"startDelay"`
	StartLifetime   MinMaxCurve `json:"startLifetime"`
	StartSpeed      MinMaxCurve `json:"startSpeed"`
	StartSize       MinMaxCurve `json:"startSize"`
	StartSize3D     bool        `json:"startSize3D"`
	StartSizeX      MinMaxCurve `json:"startSizeX"`
	StartSizeY      MinMaxCurve `json:"startSizeY"`
	StartSizeZ      MinMaxCurve `json:"startSizeZ"`
	StartRotation   MinMaxCurve `json:"startRotation"`
	StartRotation3D bool        `json:"startRotation3D"`
	StartRotationX  MinMaxCurve `json:"startRotationX"`
	StartRotationY  MinMaxCurve `json:"startRotationY"`
	StartRotationZ  MinMaxCurve `json:"startRotationZ"`
	StartColor      Color       `json:"startColor"`
	GravityModifier MinMaxCurve `json:"gravityModifier"`
	SimulationSpace string      `json:"simulationSpace"`
	SimulationSpeed float32     `json:"simulationSpeed"`
	PlayOnAwake     bool        `json:"playOnAwake"`
	MaxParticles    int         `json:"maxParticles" jsonschema:"minimum=0"`
}

// EmissionModule is the "emission" section. Bursts is never null.
type EmissionModule struct {
	Enabled          bool        `json:"enabled"`
	RateOverTime     MinMaxCurve `json:"rateOverTime"`
	RateOverDistance MinMaxCurve `json:"rateOverDistance"`
	Bursts           []Burst     `json:"bursts"`
}

// ShapeModule carries the source scale twice, as boxScale and scale.
type ShapeModule struct {
	Enabled                  bool    `json:"enabled"`
	ShapeType                string  `json:"shapeType"`
	Angle                    float32 `json:"angle"`
	Radius                   float32 `json:"radius"`
	RadiusThickness          float32 `json:"radiusThickness"`
	Arc                      float32 `json:"arc"`
	BoxScale                 Vector3 `json:"boxScale"`
	Position                 Vector3 `json:"position"`
	Rotation                 Vector3 `json:"rotation"`
	Scale                    Vector3 `json:"scale"`
	AlignToDirection         bool    `json:"alignToDirection"`
	RandomDirectionAmount    float32 `json:"randomDirectionAmount"`
	SphericalDirectionAmount float32 `json:"sphericalDirectionAmount"`
}

// VelocityOverLifetimeModule is the "velocityOverLifetime" section.
type VelocityOverLifetimeModule struct {
	Enabled bool        `json:"enabled"`
	X       MinMaxCurve `json:"x"`
	Y       MinMaxCurve `json:"y"`
	Z       MinMaxCurve `json:"z"`
	Space   string      `json:"space"`
}

// LimitVelocityOverLifetimeModule is the "limitVelocityOverLifetime" section.
type LimitVelocityOverLifetimeModule struct {
	Enabled      bool        `json:"enabled"`
	Limit        MinMaxCurve `json:"limit"`
	Dampen       float32     `json:"dampen"`
	SeparateAxes bool        `json:"separateAxes"`
	LimitX       MinMaxCurve `json:"limitX"`
	LimitY       MinMaxCurve `json:"limitY"`
	LimitZ       MinMaxCurve `json:"limitZ"`
}

// ForceOverLifetimeModule is the "forceOverLifetime" section.
type ForceOverLifetimeModule struct {
	Enabled    bool        `json:"enabled"`
	X          MinMaxCurve `json:"x"`
	Y          MinMaxCurve `json:"y"`
	Z          MinMaxCurve `json:"z"`
	Space      string      `json:"space"`
	Randomized bool        `json:"randomized"`
}

// ColorOverLifetimeModule is the "colorOverLifetime" section.
type ColorOverLifetimeModule struct {
	Enabled  bool     `json:"enabled"`
	Gradient Gradient `json:"gradient"`
}

// SizeOverLifetimeModule is the "sizeOverLifetime" section.
type SizeOverLifetimeModule struct {
	Enabled      bool        `json:"enabled"`
	Size         MinMaxCurve `json:"size"`
	SeparateAxes bool        `json:"separateAxes"`
	X            MinMaxCurve `json:"x"`
	Y            MinMaxCurve `json:"y"`
	Z            MinMaxCurve `json:"z"`
}

// RotationOverLifetimeModule is the "rotationOverLifetime" section.
type RotationOverLifetimeModule struct {
	Enabled      bool        `json:"enabled"`
	X            MinMaxCurve `json:"x"`
	Y            MinMaxCurve `json:"y"`
	Z            MinMaxCurve `json:"z"`
	SeparateAxes bool        `json:"separateAxes"`
}

// NoiseModule writes Quality as an integer level (0 low, 1 medium, 2 high).
type NoiseModule struct {
	Enabled          bool        `json:"enabled"`
	Strength         MinMaxCurve `json:"strength"`
	Frequency        float32     `json:"frequency"`
	ScrollSpeed      float32     `json:"scrollSpeed"`
	Damping          bool        `json:"damping"`
	Octaves          int         `json:"octaves"`
	OctaveMultiplier float32     `json:"octaveMultiplier"`
	OctaveScale      float32     `json:"octaveScale"`
	Quality          int         `json:"quality" jsonschema:"minimum=0,maximum=2"`
	SeparateAxes     bool        `json:"separateAxes"`
	StrengthX        MinMaxCurve `json:"strengthX"`
	StrengthY        MinMaxCurve `json:"strengthY"`
	StrengthZ        MinMaxCurve `json:"strengthZ"`
}

// CollisionModule is the "collision" section.
type CollisionModule struct {
	Enabled             bool        `json:"enabled"`
	Type                string      `json:"type"`
	Mode                string      `json:"mode"`
	Dampen              MinMaxCurve `json:"dampen"`
	Bounce              MinMaxCurve `json:"bounce"`
	LifetimeLoss        MinMaxCurve `json:"lifetimeLoss"`
	MinKillSpeed        float32     `json:"minKillSpeed"`
	MaxKillSpeed        float32     `json:"maxKillSpeed"`
	RadiusScale         float32     `json:"radiusScale"`
	CollidesWithDynamic bool        `json:"collidesWithDynamic" jsonschema:"description=True when the collision layer mask is not empty"`
	MaxCollisionShapes  int         `json:"maxCollisionShapes"`
}

// TextureSheetAnimationModule is the "textureSheetAnimation" section.
type TextureSheetAnimationModule struct {
	Enabled       bool        `json:"enabled"`
	NumTilesX     int         `json:"numTilesX"`
	NumTilesY     int         `json:"numTilesY"`
	AnimationType string      `json:"animationType"`
	Mode          string      `json:"mode"`
	FrameOverTime MinMaxCurve `json:"frameOverTime"`
	StartFrame    MinMaxCurve `json:"startFrame"`
	CycleCount    int         `json:"cycleCount"`
	RowIndex      int         `json:"rowIndex"`
}

// RendererModule has no enabled flag; its presence is the signal.
// Flip is true when any axis of the source flip vector is non-zero.
type RendererModule struct {
	RenderMode      string  `json:"renderMode"`
	SortMode        string  `json:"sortMode"`
	MinParticleSize float32 `json:"minParticleSize"`
	MaxParticleSize float32 `json:"maxParticleSize"`
	Material        string  `json:"material"`
	Texture         string  `json:"texture"`
	Pivot           Vector3 `json:"pivot"`
	Flip            bool    `json:"flip"`
	VelocityScale   Vector3 `json:"velocityScale"`
	LengthScale     float32 `json:"lengthScale"`
	NormalDirection float32 `json:"normalDirection"`
	SortingOrder    int     `json:"sortingOrder"`
}

// SubEmitter names a child effect and the event that spawns it.
type SubEmitter struct {
	Type string `json:"type" jsonschema:"enum=Birth,enum=Collision,enum=Death,enum=Trigger,enum=Manual"`
	Name string `json:"name"`
}
