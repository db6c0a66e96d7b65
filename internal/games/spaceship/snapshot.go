package spaceship

// Snapshot is an immutable view of one render tick. Painters draw from it
// and never see the live game state.
type Snapshot struct {
	Width     float64
	Height    float64
	Tick      int // Render ticks elapsed
	Stars     []Star
	Ship      Ship
	Enemies   []Enemy
	HeroShots []Shot
	Score     int
	Paused    bool
}

// capture copies every producer's latest value into a new snapshot.
func (g *Game) capture() Snapshot {
	live := g.enemies.Enemies()
	enemies := make([]Enemy, len(live))
	for i, e := range live {
		enemies[i] = *e
		enemies[i].Shots = append([]Shot(nil), e.Shots...)
	}

	return Snapshot{
		Width:     g.width,
		Height:    g.height,
		Tick:      g.renderTicks,
		Stars:     g.stars.Stars(),
		Ship:      g.ship.Ship(),
		Enemies:   enemies,
		HeroShots: g.heroShots.Shots(),
		Score:     g.score.Total(),
		Paused:    g.paused,
	}
}
