package runner

import (
	"math/rand"

	"github.com/vovakirdan/teatime-runner/internal/config"
)

// Spawner picks and builds the entities that enter at the right board edge.
type Spawner struct {
	cfg     config.SpawnConfig
	boardW  float64
	groundY float64
	rng     *rand.Rand
}

// NewSpawner creates a spawner drawing rolls from rng.
func NewSpawner(cfg config.RunnerConfig, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:     cfg.Spawn,
		boardW:  cfg.Board.Width,
		groundY: cfg.GroundY(),
		rng:     rng,
	}
}

// KindFor maps a roll in [0,1) to a kind. Every roll selects exactly one of
// bush, teacup or guard.
func (s *Spawner) KindFor(roll float64) Kind {
	switch {
	case roll > s.cfg.LowThreshold:
		return KindBush
	case roll > s.cfg.PickupThreshold:
		return KindTeacup
	default:
		return KindGuard
	}
}

// Make builds an entity of the given kind at the right board edge.
func (s *Spawner) Make(kind Kind) Entity {
	var kc config.KindConfig
	switch kind {
	case KindBush:
		kc = s.cfg.Bush
	case KindTeacup:
		kc = s.cfg.Teacup
	case KindGuard:
		kc = s.cfg.Guard
	case KindDragon:
		kc = s.cfg.Dragon
	default:
		panic("runner: no geometry for " + kind.String())
	}
	return Entity{
		Rect: Rect{
			X:      s.boardW,
			Y:      s.groundY + kc.OffsetY,
			Width:  kc.Width,
			Height: kc.Height,
		},
		Kind:   kind,
		Sprite: kind.Sprite(),
	}
}

// Next draws a roll and builds the selected entity.
func (s *Spawner) Next() Entity {
	return s.Make(s.KindFor(s.rng.Float64()))
}
