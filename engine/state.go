// Package engine drives the clock: it owns the application state, the
// frame loop, input handling, and the asynchronous updates that feed the
// renderer
package engine

import (
	"sync/atomic"
	"time"

	"github.com/nnchaudhuri/skyclock/dial"
	"github.com/nnchaudhuri/skyclock/ephemeris"
	"github.com/nnchaudhuri/skyclock/location"
	"github.com/nnchaudhuri/skyclock/sky"
)

// MoonData is the cached lunar state for the displayed day
type MoonData struct {
	Illum  ephemeris.Illumination
	Events dial.MoonEvents
}

// Snapshot is the immutable view of application state a frame renders
// from. It is replaced whole at update points (location change, date
// change, fetch completion, theme reload) and never mutated mid-render,
// so the frame loop reads without locks
type Snapshot struct {
	Place location.Place
	// Date carries the displayed local calendar day in its Y/M/D
	Date time.Time
	// DayStart is the UTC instant of that day's local midnight
	DayStart time.Time
	Mode     dial.Mode

	Sequence sky.ColorSequence
	Mapping  sky.Mapping

	HasBoundaries bool
	Boundaries    sky.TimeBoundarySet
	Moon          MoonData

	// FollowToday is true while the displayed day tracks the wall clock;
	// paging to another date suspends it until an explicit refresh
	FollowToday bool

	// Notice is a non-blocking status-line message, empty when all is well
	Notice string
}

// State holds the current snapshot and the fetch bookkeeping. One
// logical writer path (update points) and one reader (the frame loop);
// the atomic pointer makes the hand-off safe without locks
type State struct {
	cur   atomic.Pointer[Snapshot]
	reqID atomic.Uint64
}

// NewState seeds the state with a night-only snapshot for the given
// place and sequence; the first ephemeris update fills in the rest
func NewState(place location.Place, seq sky.ColorSequence, mode dial.Mode) *State {
	s := &State{}
	s.cur.Store(&Snapshot{
		Place:       place,
		Mode:        mode,
		Sequence:    seq,
		Mapping:     sky.NightMapping(seq),
		FollowToday: true,
	})
	return s
}

// Load returns the current snapshot
func (s *State) Load() *Snapshot {
	return s.cur.Load()
}

// Mutate applies fn to a copy of the current snapshot and swaps it in,
// retrying on concurrent replacement
func (s *State) Mutate(fn func(*Snapshot)) {
	for {
		old := s.cur.Load()
		next := *old
		fn(&next)
		if s.cur.CompareAndSwap(old, &next) {
			return
		}
	}
}

// NextRequest issues a monotonic id for an asynchronous update. A
// completion whose id is no longer the latest is discarded, so a slow
// stale fetch cannot overwrite a newer result
func (s *State) NextRequest() uint64 {
	return s.reqID.Add(1)
}

// IsLatest reports whether id is still the most recently issued request
func (s *State) IsLatest(id uint64) bool {
	return s.reqID.Load() == id
}
