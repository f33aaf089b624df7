package config

import (
	_ "embed"
)

//go:embed defaults/glider.yaml
var defaultGliderYAML []byte

// DefaultGliderConfig returns the built-in configuration. It mirrors
// defaults/glider.yaml and backs it up if the embedded file cannot be parsed.
func DefaultGliderConfig() GliderConfig {
	return GliderConfig{
		Field: GliderField{
			CellWidth:  10,
			CellHeight: 20,
			HUDRows:    1,
		},
		Body: GliderBody{
			Size:    40,
			AnchorX: 0.3333,
		},
		Physics: GliderPhysics{
			VelocityModel: VelocityAltitude,
			Speed:         6,
			MinSpeed:      5,
			MaxSpeed:      9,
			RotateUp:      -0.05,
			GlideBias:     0.4,
			HistoryLen:    120,
		},
		Obstacles: GliderObstacles{
			Generator:        GeneratorWindowed,
			Width:            40,
			SpawnLead:        80,
			MinSpaceFactor:   3,
			MaxSpaceRatio:    1.5,
			GapDistanceMin:   0,
			GapDistanceMax:   200,
			GapDistanceFloor: 60,
			DriftBase:        60,
			DriftPerDistance: 0.5,
			DriftWindow:      200,
			MaxAttempts:      32,
			WarningRange:     200,
		},
		Collision: GliderCollision{
			Mode:       CollisionSilhouette,
			CheckRange: 2.5,
		},
		Game: GliderGame{
			Lives:     10,
			TrailBand: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				DistanceReduction: 140,
			},
		},
	}
}

// ApplyClassic switches a config to the first prototype's rules: constant
// speed, independently drawn gap edges and an axis-aligned collision band.
func ApplyClassic(cfg *GliderConfig) {
	cfg.Physics.VelocityModel = VelocityConstant
	cfg.Obstacles.Generator = GeneratorRejection
	cfg.Collision.Mode = CollisionBand
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGliderYAML
}
