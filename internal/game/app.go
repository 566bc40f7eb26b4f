package game

import (
	"log"
	"time"

	"blocks/internal/profiling"
)

// fallbackStep is the simulated frame time when pacing is disabled.
const fallbackStep = time.Second / 60

// Stats summarizes a run.
type Stats struct {
	Frames    int
	Refreshes int
	Slow      int
	Elapsed   time.Duration
}

// App drives a Session for a fixed number of frames.
type App struct {
	session    *Session
	fpsLimiter *FPSLimiter
	step       time.Duration
}

func NewApp(session *Session, fpsLimit int) *App {
	limiter := NewFPSLimiter(fpsLimit)
	step := limiter.FrameTime()
	if step == 0 {
		step = fallbackStep
	}
	return &App{
		session:    session,
		fpsLimiter: limiter,
		step:       step,
	}
}

// Run ticks frames times. The viewpoint advances by the nominal frame time
// so a run is reproducible regardless of how fast the host is.
func (a *App) Run(frames int) (Stats, error) {
	start := time.Now()
	refreshesBefore, slowBefore := a.session.Refreshes, a.session.Slow

	var stats Stats
	for i := 0; i < frames; i++ {
		if err := a.tick(); err != nil {
			return stats, err
		}
		stats.Frames++
	}
	stats.Refreshes = a.session.Refreshes - refreshesBefore
	stats.Slow = a.session.Slow - slowBefore
	stats.Elapsed = time.Since(start)
	return stats, nil
}

func (a *App) tick() error {
	profiling.ResetFrame()
	startTick := time.Now()

	refreshed, err := a.session.Update(a.step.Seconds())
	if err != nil {
		return err
	}
	if refreshed {
		p := a.session.Position()
		log.Printf("Refreshed around (%.1f, %.1f): center %v, %d instances",
			p.X(), p.Y(), a.session.World.LoadedCenter(), len(a.session.Instances()))
	}

	if processing := time.Since(startTick); processing > slowRefresh && !refreshed {
		log.Printf("Slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	a.fpsLimiter.Wait()
	return nil
}
