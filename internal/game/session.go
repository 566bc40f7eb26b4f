package game

import (
	"fmt"
	"log"
	"math"
	"time"

	"blocks/internal/config"
	"blocks/internal/instance"
	"blocks/internal/profiling"
	"blocks/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// slowRefresh is the budget of one frame at 60 FPS.
const slowRefresh = 16 * time.Millisecond

// Session walks a viewpoint across the world and keeps the instance list
// for the current working window.
type Session struct {
	World *world.World

	pos   mgl32.Vec2 // x, z
	dir   mgl32.Vec2
	speed float32

	instances []instance.Record
	Refreshes int
	Slow      int
}

// NewSession places the viewpoint at the origin and builds the first
// instance list.
func NewSession(w *world.World, cfg config.Config) (*Session, error) {
	rad := float64(mgl32.DegToRad(cfg.Heading))
	s := &Session{
		World: w,
		dir:   mgl32.Vec2{float32(math.Cos(rad)), float32(math.Sin(rad))},
		speed: cfg.Speed,
	}
	if err := s.refresh(); err != nil {
		return nil, fmt.Errorf("initial refresh: %w", err)
	}
	return s, nil
}

// Update advances the viewpoint by dt seconds and refreshes the working
// window when it has drifted past the deadzone.
func (s *Session) Update(dt float64) (bool, error) {
	defer profiling.Track("game.Update")()

	s.pos = s.pos.Add(s.dir.Mul(s.speed * float32(dt)))
	if !s.World.NeedsRefresh(s.pos.X(), s.pos.Y()) {
		return false, nil
	}
	if err := s.refresh(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Session) refresh() error {
	start := time.Now()
	recs, err := s.World.Refresh(s.pos.X(), s.pos.Y())
	if err != nil {
		return err
	}
	s.instances = recs
	s.Refreshes++

	if d := time.Since(start); d > slowRefresh {
		s.Slow++
		log.Printf("Slow refresh at chunk %v: %v. Top tasks: %s", s.World.LoadedCenter(), d, profiling.TopN(5))
	}
	return nil
}

// Instances returns the records of the last refresh.
func (s *Session) Instances() []instance.Record {
	return s.instances
}

// Position returns the viewpoint as (x, z).
func (s *Session) Position() mgl32.Vec2 {
	return s.pos
}

// SetPosition teleports the viewpoint without refreshing.
func (s *Session) SetPosition(x, z float32) {
	s.pos = mgl32.Vec2{x, z}
}
