package particle

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Closed enumerations of the authoring tool. Numeric values match the tool's
// own numbering; symbolic names come from static tables, never reflection.

// CurveMode selects how a MinMaxCurve produces its value.
type CurveMode int

const (
	CurveModeConstant CurveMode = iota
	CurveModeCurve
	CurveModeTwoCurves
	CurveModeTwoConstants
)

var curveModeNames = []string{"Constant", "Curve", "TwoCurves", "TwoConstants"}

// SimulationSpace is the coordinate space particles move in.
type SimulationSpace int

const (
	SimulationSpaceLocal SimulationSpace = iota
	SimulationSpaceWorld
	SimulationSpaceCustom
)

var simulationSpaceNames = []string{"Local", "World", "Custom"}

// ShapeType is the emitter volume or surface.
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeSphereShell
	ShapeHemisphere
	ShapeHemisphereShell
	ShapeCone
	ShapeBox
	ShapeMesh
	ShapeConeShell
	ShapeConeVolume
	ShapeConeVolumeShell
	ShapeCircle
	ShapeCircleEdge
	ShapeSingleSidedEdge
	ShapeMeshRenderer
	ShapeSkinnedMeshRenderer
	ShapeBoxShell
	ShapeBoxEdge
	ShapeDonut
	ShapeRectangle
	ShapeSprite
	ShapeSpriteRenderer
)

var shapeTypeNames = []string{
	"Sphere", "SphereShell", "Hemisphere", "HemisphereShell", "Cone", "Box",
	"Mesh", "ConeShell", "ConeVolume", "ConeVolumeShell", "Circle",
	"CircleEdge", "SingleSidedEdge", "MeshRenderer", "SkinnedMeshRenderer",
	"BoxShell", "BoxEdge", "Donut", "Rectangle", "Sprite", "SpriteRenderer",
}

// CollisionType selects collision against planes or the world.
type CollisionType int

const (
	CollisionPlanes CollisionType = iota
	CollisionWorld
)

var collisionTypeNames = []string{"Planes", "World"}

// CollisionMode selects 3D or 2D collision.
type CollisionMode int

const (
	CollisionMode3D CollisionMode = iota
	CollisionMode2D
)

var collisionModeNames = []string{"Collision3D", "Collision2D"}

// AnimationType selects whether a texture sheet plays every tile or one row.
type AnimationType int

const (
	AnimationWholeSheet AnimationType = iota
	AnimationSingleRow
)

var animationTypeNames = []string{"WholeSheet", "SingleRow"}

// AnimationMode selects grid tiles or a sprite list.
type AnimationMode int

const (
	AnimationModeGrid AnimationMode = iota
	AnimationModeSprites
)

var animationModeNames = []string{"Grid", "Sprites"}

// RenderMode is how particles are drawn.
type RenderMode int

const (
	RenderBillboard RenderMode = iota
	RenderStretch
	RenderHorizontalBillboard
	RenderVerticalBillboard
	RenderMesh
	RenderNone
)

var renderModeNames = []string{"Billboard", "Stretch", "HorizontalBillboard", "VerticalBillboard", "Mesh", "None"}

// SortMode is the draw order of particles.
type SortMode int

const (
	SortNone SortMode = iota
	SortDistance
	SortOldestInFront
	SortYoungestInFront
	SortDepth
)

var sortModeNames = []string{"None", "Distance", "OldestInFront", "YoungestInFront", "Depth"}

// SubEmitterType is the event that triggers a sub-emitter.
type SubEmitterType int

const (
	SubEmitterBirth SubEmitterType = iota
	SubEmitterCollision
	SubEmitterDeath
	SubEmitterTrigger
	SubEmitterManual
)

var subEmitterTypeNames = []string{"Birth", "Collision", "Death", "Trigger", "Manual"}

// NoiseQuality is exported as its integer level, unlike the other enumerations.
type NoiseQuality int

const (
	NoiseQualityLow NoiseQuality = iota
	NoiseQualityMedium
	NoiseQualityHigh
)

var noiseQualityNames = []string{"Low", "Medium", "High"}

func (m CurveMode) String() string       { return enumName(curveModeNames, int(m)) }
func (s SimulationSpace) String() string { return enumName(simulationSpaceNames, int(s)) }
func (s ShapeType) String() string       { return enumName(shapeTypeNames, int(s)) }
func (t CollisionType) String() string   { return enumName(collisionTypeNames, int(t)) }
func (m CollisionMode) String() string   { return enumName(collisionModeNames, int(m)) }
func (t AnimationType) String() string   { return enumName(animationTypeNames, int(t)) }
func (m AnimationMode) String() string   { return enumName(animationModeNames, int(m)) }
func (m RenderMode) String() string      { return enumName(renderModeNames, int(m)) }
func (m SortMode) String() string        { return enumName(sortModeNames, int(m)) }
func (t SubEmitterType) String() string  { return enumName(subEmitterTypeNames, int(t)) }
func (q NoiseQuality) String() string    { return enumName(noiseQualityNames, int(q)) }

func (m *CurveMode) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "curve mode", curveModeNames, m)
}

func (s *SimulationSpace) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "simulation space", simulationSpaceNames, s)
}

func (s *ShapeType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "shape type", shapeTypeNames, s)
}

func (t *CollisionType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "collision type", collisionTypeNames, t)
}

func (m *CollisionMode) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "collision mode", collisionModeNames, m)
}

func (t *AnimationType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "animation type", animationTypeNames, t)
}

func (m *AnimationMode) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "animation mode", animationModeNames, m)
}

func (m *RenderMode) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "render mode", renderModeNames, m)
}

func (m *SortMode) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "sort mode", sortModeNames, m)
}

func (t *SubEmitterType) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "sub-emitter type", subEmitterTypeNames, t)
}

func (q *NoiseQuality) UnmarshalYAML(n *yaml.Node) error {
	return unmarshalEnum(n, "noise quality", noiseQualityNames, q)
}

// enumName returns the symbolic name of v, or its decimal form when v is
// outside the table.
func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return strconv.Itoa(v)
}

// parseEnum resolves a symbolic name (case-insensitive) or an in-range
// integer level.
func parseEnum(kind string, names []string, s string) (int, error) {
	s = strings.TrimSpace(s)
	for i, name := range names {
		if strings.EqualFold(name, s) {
			return i, nil
		}
	}
	if v, err := strconv.Atoi(s); err == nil && v >= 0 && v < len(names) {
		return v, nil
	}
	return 0, fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}

func unmarshalEnum[T ~int](n *yaml.Node, kind string, names []string, dst *T) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %s must be a scalar", n.Line, kind)
	}
	v, err := parseEnum(kind, names, n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*dst = T(v)
	return nil
}
