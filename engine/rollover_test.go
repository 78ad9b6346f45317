package engine

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/nnchaudhuri/skyclock/dial"
	"github.com/nnchaudhuri/skyclock/location"
	"github.com/nnchaudhuri/skyclock/sky"
)

func newTestEngine() (*Engine, *State) {
	s := NewState(location.Default, sky.DefaultSequence(), dial.ModeRotating)
	e := New(Config{State: s, Logger: zap.NewNop()})
	return e, s
}

func TestRolloverAdvancesStaleDay(t *testing.T) {
	e, s := newTestEngine()

	staleDate, staleStart := localDay(time.Now().Add(-48*time.Hour), location.Default)
	s.Mutate(func(snap *Snapshot) {
		snap.Date = staleDate
		snap.DayStart = staleStart
	})

	e.rolloverCheck()
	e.wg.Wait()

	today, _ := localDay(time.Now(), location.Default)
	if got := s.Load().Date; !got.Equal(today) {
		t.Errorf("date after rollover = %v, want %v", got, today)
	}
}

func TestRolloverWaitsForFirstFetch(t *testing.T) {
	e, s := newTestEngine()

	e.rolloverCheck()
	e.wg.Wait()

	if !s.Load().Date.IsZero() {
		t.Error("rollover must not fire before the first ephemeris result")
	}
}

func TestRolloverKeepsPagedDate(t *testing.T) {
	e, s := newTestEngine()

	e.SetDate(-3)
	e.wg.Wait()

	paged := s.Load()
	if paged.FollowToday {
		t.Fatal("paging must stop following the wall clock")
	}
	today, _ := localDay(time.Now(), location.Default)
	if want := today.AddDate(0, 0, -3); !paged.Date.Equal(want) {
		t.Fatalf("paged date = %v, want %v", paged.Date, want)
	}

	e.rolloverCheck()
	e.wg.Wait()

	if got := s.Load().Date; !got.Equal(paged.Date) {
		t.Errorf("rollover moved a paged date: %v, want %v", got, paged.Date)
	}
}

func TestRefreshTodayResumesFollowing(t *testing.T) {
	e, s := newTestEngine()

	e.SetDate(2)
	e.wg.Wait()

	e.RefreshToday()
	e.wg.Wait()

	snap := s.Load()
	if !snap.FollowToday {
		t.Error("explicit refresh must resume following the wall clock")
	}
	today, _ := localDay(time.Now(), location.Default)
	if !snap.Date.Equal(today) {
		t.Errorf("date after refresh = %v, want %v", snap.Date, today)
	}
}

func TestRefreshDatePinsTheDay(t *testing.T) {
	e, s := newTestEngine()

	pinned := time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)
	e.RefreshDate(pinned)
	e.wg.Wait()

	e.rolloverCheck()
	e.wg.Wait()

	snap := s.Load()
	if snap.FollowToday {
		t.Error("an explicit date must not follow the wall clock")
	}
	if !snap.Date.Equal(pinned) {
		t.Errorf("date = %v, want %v", snap.Date, pinned)
	}
}
