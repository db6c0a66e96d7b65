package spaceship

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-spaceship/internal/config"
	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// Enemy is a descending enemy ship with its own shots.
// A dead enemy is not drawn and no longer fires, but its shots in flight
// keep moving and can still hit the player.
type Enemy struct {
	X, Y     float64
	Shots    []Shot
	Dead     bool
	nextShot time.Duration
}

// Pos returns the enemy position as a point.
func (e *Enemy) Pos() core.Point {
	return core.Pt(e.X, e.Y)
}

// EnemyManager spawns enemies on a timer, lets each one fire on its own
// schedule and moves them every render tick.
type EnemyManager struct {
	enemies   []*Enemy
	rng       *rand.Rand
	cfg       config.SpaceshipEnemies
	spawn     core.Interval
	shotEvery time.Duration
	width     float64
	height    float64
	margin    float64
}

// NewEnemyManager creates a manager for a width x height canvas. The first
// enemy appears one spawn interval after start.
func NewEnemyManager(rng *rand.Rand, cfg config.SpaceshipEnemies, timing config.SpaceshipTiming, width, height, margin float64) *EnemyManager {
	return &EnemyManager{
		enemies:   make([]*Enemy, 0, 8),
		rng:       rng,
		cfg:       cfg,
		spawn:     core.NewInterval(timing.EnemySpawn(), 0),
		shotEvery: timing.EnemyShot(),
		width:     width,
		height:    height,
		margin:    margin,
	}
}

// SetSpawnInterval changes the time between spawns from the next spawn on.
func (m *EnemyManager) SetSpawnInterval(every time.Duration) {
	m.spawn.SetEvery(every)
}

// Update spawns every enemy due by now and fires every enemy shot due by
// now. It returns the spawn positions.
func (m *EnemyManager) Update(now time.Duration) []core.Point {
	var spawned []core.Point
	for {
		at, ok := m.spawn.Take(now)
		if !ok {
			break
		}
		x := float64(int(m.rng.Float64() * m.width))
		e := m.Add(core.Pt(x, m.cfg.SpawnY), at)
		spawned = append(spawned, e.Pos())
	}

	for _, e := range m.enemies {
		m.fire(e, now)
	}
	return spawned
}

// Add places an enemy at p as if it spawned at time at.
func (m *EnemyManager) Add(p core.Point, at time.Duration) *Enemy {
	e := &Enemy{
		X:        p.X,
		Y:        p.Y,
		Shots:    make([]Shot, 0, 4),
		nextShot: at + m.shotEvery,
	}
	m.enemies = append(m.enemies, e)
	return e
}

// fire handles every shot of e due by now: a live enemy appends a shot at
// its position, then its shots are filtered to the visible ones.
func (m *EnemyManager) fire(e *Enemy, now time.Duration) {
	if m.shotEvery <= 0 {
		return
	}
	for e.nextShot <= now {
		if !e.Dead {
			e.Shots = append(e.Shots, Shot{X: e.X, Y: e.Y})
		}
		visible := e.Shots[:0]
		for _, s := range e.Shots {
			if core.Visible(s.Pos(), m.width, m.height, m.margin) {
				visible = append(visible, s)
			}
		}
		e.Shots = visible
		e.nextShot += m.shotEvery
	}
}

// Move advances every enemy down by speed with a random horizontal drift,
// moves all enemy shots, then drops enemies that left the canvas or are
// dead with nothing left in flight.
func (m *EnemyManager) Move(speed float64) {
	for _, e := range m.enemies {
		e.Y += speed
		e.X += float64(randInt(m.rng, -m.cfg.Drift, m.cfg.Drift))
		for i := range e.Shots {
			e.Shots[i].Y += m.cfg.ShotSpeed
		}
	}

	kept := m.enemies[:0]
	for _, e := range m.enemies {
		if !core.Visible(e.Pos(), m.width, m.height, m.margin) {
			continue
		}
		if e.Dead && len(e.Shots) == 0 {
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(m.enemies); i++ {
		m.enemies[i] = nil
	}
	m.enemies = kept
}

// Enemies returns the active enemies. The slice is owned by the manager.
func (m *EnemyManager) Enemies() []*Enemy {
	return m.enemies
}

// randInt returns a random integer in [min, max].
func randInt(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}
