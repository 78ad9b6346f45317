package engine

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/nnchaudhuri/skyclock/location"
	"github.com/nnchaudhuri/skyclock/terminal"
)

// Face renders a snapshot into its own buffer and flushes it out.
// Implemented by the face package; the interface keeps the engine free
// of render wiring
type Face interface {
	Resize(width, height int)
	Frame(now time.Time, snap *Snapshot)
	Flush(term terminal.Terminal)
}

// Chimer strikes on the hour. Implemented by the audio package; nil
// disables chiming
type Chimer interface {
	Strike()
}

// Config wires an Engine
type Config struct {
	Terminal terminal.Terminal
	Face     Face
	State    *State
	Resolver *location.Resolver
	Logger   *zap.Logger
	Chime    Chimer
	FPS      int
}

// Engine runs the frame loop: a fixed tick recomputes the whole face
// synchronously from the latest snapshot and wall-clock time. Nothing
// in the loop blocks; ephemeris and geocoding land out-of-band through
// the state's atomic snapshot swap
type Engine struct {
	term     terminal.Terminal
	face     Face
	state    *State
	resolver *location.Resolver
	logger   *zap.Logger
	chime    Chimer

	tick     time.Duration
	sched    *gocron.Scheduler
	lastHour int
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New builds an engine from config. FPS defaults to 30
func New(cfg Config) *Engine {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	return &Engine{
		term:     cfg.Terminal,
		face:     cfg.Face,
		state:    cfg.State,
		resolver: cfg.Resolver,
		logger:   cfg.Logger,
		chime:    cfg.Chime,
		tick:     time.Second / time.Duration(fps),
		lastHour: -1,
		stopChan: make(chan struct{}),
	}
}

// Stop ends the frame loop. Safe to call multiple times
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopChan) })
}

// Run drives the clock until quit or Stop. It owns the terminal event
// loop and the frame ticker; a gocron job rolls the displayed day over
// at local midnight
func (e *Engine) Run() error {
	// Input runs in its own goroutine; PollEvent blocks
	events := make(chan terminal.Event, 8)
	go func() {
		for {
			ev := e.term.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-e.stopChan:
				return
			}
		}
	}()

	// The rollover job polls by the minute instead of firing at a fixed
	// clock time: local midnight depends on the place's UTC offset, which
	// can change at runtime
	e.sched = gocron.NewScheduler(time.UTC)
	if _, err := e.sched.Every(1).Minute().Do(e.rolloverCheck); err != nil {
		e.logger.Warn("midnight refresh not scheduled", zap.Error(err))
	}
	e.sched.StartAsync()
	defer e.sched.Stop()

	w, h := e.term.Size()
	e.face.Resize(w, h)

	ticker := time.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopChan:
			e.wg.Wait()
			return nil

		case ev := <-events:
			if quit := e.handleEvent(ev); quit {
				e.Stop()
			}

		case now := <-ticker.C:
			snap := e.state.Load()
			e.maybeChime(now, snap.Place.UTCOffsetHours)
			e.face.Frame(now, snap)
			e.face.Flush(e.term)
		}
	}
}

// RefreshToday recomputes the ephemeris for the current local day and
// resumes following the wall clock
func (e *Engine) RefreshToday() {
	e.state.Mutate(func(s *Snapshot) { s.FollowToday = true })
	snap := e.state.Load()
	date, dayStart := localDay(time.Now(), snap.Place)
	e.refreshEphemeris(snap.Place, date, dayStart)
}

// rolloverCheck advances the displayed day once local midnight passes.
// A date the user paged to stays put until an explicit refresh
func (e *Engine) rolloverCheck() {
	snap := e.state.Load()
	if !snap.FollowToday || snap.Date.IsZero() {
		return
	}
	date, dayStart := localDay(time.Now(), snap.Place)
	if !date.Equal(snap.Date) {
		e.refreshEphemeris(snap.Place, date, dayStart)
	}
}

func (e *Engine) handleEvent(ev terminal.Event) (quit bool) {
	switch ev := ev.(type) {
	case terminal.ResizeEvent:
		e.face.Resize(ev.Width, ev.Height)
		e.term.Sync()

	case terminal.KeyEvent:
		switch {
		case ev.Key == tcell.KeyEscape || ev.Key == tcell.KeyCtrlC:
			return true
		case ev.Rune == 'q':
			return true
		case ev.Rune == 'm':
			e.ToggleMode()
		case ev.Rune == '[':
			e.SetDate(-1)
		case ev.Rune == ']':
			e.SetDate(1)
		case ev.Rune == 'r':
			e.RefreshToday()
		}
	}
	return false
}

// maybeChime strikes once whenever the local hour rolls over
func (e *Engine) maybeChime(now time.Time, utcOffsetHours float64) {
	if e.chime == nil {
		return
	}
	hour := now.UTC().Add(time.Duration(utcOffsetHours * float64(time.Hour))).Hour()
	if e.lastHour == -1 {
		e.lastHour = hour
		return
	}
	if hour != e.lastHour {
		e.lastHour = hour
		e.chime.Strike()
	}
}
