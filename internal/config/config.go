// Package config provides YAML-based configuration loading, validation and
// difficulty management for the glider.
package config

// Velocity models for the physics integrator.
const (
	VelocityConstant = "constant" // fixed speed every tick
	VelocityAltitude = "altitude" // lower on screen flies faster
)

// Obstacle generators.
const (
	GeneratorWindowed  = "windowed"  // gap top drawn from a window around the previous one
	GeneratorRejection = "rejection" // independent edges, resampled until the gap is legal
)

// Collision narrow-phase modes.
const (
	CollisionSilhouette = "silhouette" // rotated body polygon vs obstacle blocks
	CollisionBand       = "band"       // axis-aligned vertical extent vs gap edges
)

// Difficulty progression types.
const (
	ProgressionScore = "score"
	ProgressionNone  = "none"
)

// GliderConfig contains all tunables for the glider simulation.
// Distances are in field units; the terminal front end maps cells to units
// through the Field section.
type GliderConfig struct {
	Field      GliderField      `yaml:"field"`
	Body       GliderBody       `yaml:"body"`
	Physics    GliderPhysics    `yaml:"physics"`
	Obstacles  GliderObstacles  `yaml:"obstacles"`
	Collision  GliderCollision  `yaml:"collision"`
	Game       GliderGame       `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GliderField maps terminal cells to field units.
type GliderField struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"` // rows reserved above the field
}

// GliderBody describes the flying body.
type GliderBody struct {
	Size    float64 `yaml:"size"`     // sprite edge length
	AnchorX float64 `yaml:"anchor_x"` // fixed horizontal position as a fraction of field width
}

// GliderPhysics defines the turning/gliding flight model.
type GliderPhysics struct {
	VelocityModel string  `yaml:"velocity_model"`
	Speed         float64 `yaml:"speed"`     // constant model
	MinSpeed      float64 `yaml:"min_speed"` // altitude model, at the top of the field
	MaxSpeed      float64 `yaml:"max_speed"` // altitude model, at the bottom of the field
	RotateUp      float64 `yaml:"rotate_up"` // angle increment per flying tick (negative pitches up)
	GlideBias     float64 `yaml:"glide_bias"`
	HistoryLen    int     `yaml:"history_len"` // trail points kept
}

// GliderObstacles defines obstacle generation.
type GliderObstacles struct {
	Generator        string  `yaml:"generator"`
	Width            float64 `yaml:"width"`
	SpawnLead        float64 `yaml:"spawn_lead"`       // spawn once the rightmost obstacle is this far inside the right edge
	MinSpaceFactor   float64 `yaml:"min_space_factor"` // minimum gap = factor * body size
	MaxSpaceRatio    float64 `yaml:"max_space_ratio"`  // maximum gap = ratio * minimum gap
	GapDistanceMin   float64 `yaml:"gap_distance_min"`
	GapDistanceMax   float64 `yaml:"gap_distance_max"`
	GapDistanceFloor float64 `yaml:"gap_distance_floor"` // the upper bound never shrinks below this
	DriftBase        float64 `yaml:"drift_base"`
	DriftPerDistance float64 `yaml:"drift_per_distance"`
	DriftWindow      float64 `yaml:"drift_window"` // rejection generator: half-width around previous edges
	MaxAttempts      int     `yaml:"max_attempts"`
	WarningRange     float64 `yaml:"warning_range"`
}

// GliderCollision defines the collision test.
type GliderCollision struct {
	Mode       string  `yaml:"mode"`
	CheckRange float64 `yaml:"check_range"` // silhouette half-extent = body size / check range
}

// GliderGame defines round and presentation rules.
type GliderGame struct {
	Lives     int `yaml:"lives"`
	TrailBand int `yaml:"trail_band"` // trail points per color band
}

// MinSpace returns the smallest legal gap height.
func (c GliderConfig) MinSpace() float64 {
	return c.Obstacles.MinSpaceFactor * c.Body.Size
}

// MaxSpace returns the largest gap height the windowed generator draws.
func (c GliderConfig) MaxSpace() float64 {
	return c.MinSpace() * c.Obstacles.MaxSpaceRatio
}

// HalfCheck returns the half-extent of the body's collision silhouette.
func (c GliderConfig) HalfCheck() float64 {
	if c.Collision.CheckRange <= 0 {
		return c.Body.Size / 2
	}
	return c.Body.Size / c.Collision.CheckRange
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases with score.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DistanceReduction float64 `yaml:"distance_reduction"` // gap distance upper bound reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
