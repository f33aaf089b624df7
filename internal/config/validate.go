package config

import (
	"errors"
	"fmt"
)

// Validate reports every out-of-range field, joined into one error.
func (c GliderConfig) Validate() error {
	var errs []error
	bad := func(field string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: "+format, append([]any{field}, args...)...))
	}

	if c.Field.CellWidth <= 0 {
		bad("field.cell_width", "must be positive, got %v", c.Field.CellWidth)
	}
	if c.Field.CellHeight <= 0 {
		bad("field.cell_height", "must be positive, got %v", c.Field.CellHeight)
	}
	if c.Field.HUDRows < 0 {
		bad("field.hud_rows", "must not be negative, got %d", c.Field.HUDRows)
	}

	if c.Body.Size <= 0 {
		bad("body.size", "must be positive, got %v", c.Body.Size)
	}
	if c.Body.AnchorX < 0 || c.Body.AnchorX > 1 {
		bad("body.anchor_x", "must be within [0, 1], got %v", c.Body.AnchorX)
	}

	switch c.Physics.VelocityModel {
	case VelocityConstant:
		if c.Physics.Speed <= 0 {
			bad("physics.speed", "must be positive, got %v", c.Physics.Speed)
		}
	case VelocityAltitude:
		if c.Physics.MinSpeed <= 0 {
			bad("physics.min_speed", "must be positive, got %v", c.Physics.MinSpeed)
		}
		if c.Physics.MaxSpeed < c.Physics.MinSpeed {
			bad("physics.max_speed", "must be >= min_speed (%v), got %v", c.Physics.MinSpeed, c.Physics.MaxSpeed)
		}
	default:
		bad("physics.velocity_model", "unknown model %q", c.Physics.VelocityModel)
	}
	if c.Physics.HistoryLen < 1 {
		bad("physics.history_len", "must be at least 1, got %d", c.Physics.HistoryLen)
	}

	switch c.Obstacles.Generator {
	case GeneratorWindowed, GeneratorRejection:
	default:
		bad("obstacles.generator", "unknown generator %q", c.Obstacles.Generator)
	}
	if c.Obstacles.Width <= 0 {
		bad("obstacles.width", "must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.SpawnLead < 0 {
		bad("obstacles.spawn_lead", "must not be negative, got %v", c.Obstacles.SpawnLead)
	}
	if c.Obstacles.MinSpaceFactor <= 0 {
		bad("obstacles.min_space_factor", "must be positive, got %v", c.Obstacles.MinSpaceFactor)
	}
	if c.Obstacles.MaxSpaceRatio < 1 {
		bad("obstacles.max_space_ratio", "must be >= 1, got %v", c.Obstacles.MaxSpaceRatio)
	}
	if c.Obstacles.GapDistanceMin < 0 {
		bad("obstacles.gap_distance_min", "must not be negative, got %v", c.Obstacles.GapDistanceMin)
	}
	if c.Obstacles.GapDistanceMax < c.Obstacles.GapDistanceMin {
		bad("obstacles.gap_distance_max", "must be >= gap_distance_min (%v), got %v", c.Obstacles.GapDistanceMin, c.Obstacles.GapDistanceMax)
	}
	if c.Obstacles.GapDistanceFloor < c.Obstacles.GapDistanceMin {
		bad("obstacles.gap_distance_floor", "must be >= gap_distance_min (%v), got %v", c.Obstacles.GapDistanceMin, c.Obstacles.GapDistanceFloor)
	}
	if c.Obstacles.DriftBase < 0 || c.Obstacles.DriftPerDistance < 0 || c.Obstacles.DriftWindow < 0 {
		bad("obstacles.drift", "drift values must not be negative")
	}
	if c.Obstacles.MaxAttempts < 1 {
		bad("obstacles.max_attempts", "must be at least 1, got %d", c.Obstacles.MaxAttempts)
	}
	if c.Obstacles.WarningRange < 0 {
		bad("obstacles.warning_range", "must not be negative, got %v", c.Obstacles.WarningRange)
	}

	switch c.Collision.Mode {
	case CollisionSilhouette, CollisionBand:
	default:
		bad("collision.mode", "unknown mode %q", c.Collision.Mode)
	}
	if c.Collision.CheckRange <= 0 {
		bad("collision.check_range", "must be positive, got %v", c.Collision.CheckRange)
	}

	if c.Game.Lives < 1 {
		bad("game.lives", "must be at least 1, got %d", c.Game.Lives)
	}
	if c.Game.TrailBand < 2 {
		bad("game.trail_band", "must be at least 2, got %d", c.Game.TrailBand)
	}

	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		bad("difficulty.initial_level", "must be within [0, 1], got %v", c.Difficulty.InitialLevel)
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionScore, ProgressionNone:
	default:
		bad("difficulty.progression.type", "unknown type %q", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.Scaling.DistanceReduction < 0 {
		bad("difficulty.scaling.distance_reduction", "must not be negative, got %v", c.Difficulty.Scaling.DistanceReduction)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid glider config: %w", errors.Join(errs...))
}
