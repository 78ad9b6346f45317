package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nnchaudhuri/skyclock/dial"
	"github.com/nnchaudhuri/skyclock/ephemeris"
	"github.com/nnchaudhuri/skyclock/location"
	"github.com/nnchaudhuri/skyclock/sky"
)

// localDay returns the local calendar day of now at the place, as a
// UTC-tagged Y/M/D carrier plus the UTC instant of local midnight
func localDay(now time.Time, place location.Place) (date, dayStart time.Time) {
	offset := time.Duration(place.UTCOffsetHours * float64(time.Hour))
	y, m, d := now.UTC().Add(offset).Date()
	date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dayStart = date.Add(-offset)
	return
}

// refreshEphemeris recomputes boundaries and lunar data for the place
// and day, asynchronously, and installs the result unless a newer
// request superseded this one while it ran
func (e *Engine) refreshEphemeris(place location.Place, date, dayStart time.Time) {
	id := e.state.NextRequest()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		boundaries := ephemeris.SunBoundaries(date, place.Lat, place.Lng)
		illum := ephemeris.MoonIllumination(dayStart.Add(12 * time.Hour))
		events := ephemeris.MoonRiseSet(dayStart, place.Lat, place.Lng)

		if !e.state.IsLatest(id) {
			e.logger.Debug("discarding superseded ephemeris result",
				zap.Uint64("request", id))
			return
		}

		degenerate := boundaries.Span() <= 0
		e.state.Mutate(func(s *Snapshot) {
			s.Place = place
			s.Date = date
			s.DayStart = dayStart
			s.Boundaries = boundaries
			s.HasBoundaries = !degenerate
			s.Mapping = sky.NewMapping(boundaries, s.Sequence)
			s.Moon = MoonData{Illum: illum, Events: events}
			s.Notice = ""
		})

		e.logger.Info("ephemeris updated",
			zap.String("place", place.Name),
			zap.Time("date", date),
			zap.Bool("degenerate", degenerate),
			zap.Bool("moon_events", events.OK))
	}()
}

// SetLocation resolves a location query asynchronously and refreshes the
// ephemeris on success. On failure the previous place is kept and a
// notice is posted; resolution is never fatal
func (e *Engine) SetLocation(query string) {
	id := e.state.NextRequest()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		place, err := e.resolver.Resolve(ctx, query)
		if !e.state.IsLatest(id) {
			return
		}
		if err != nil {
			// Resolve already fell back to the default place
			e.logger.Warn("location resolution failed",
				zap.String("query", query), zap.Error(err))
			e.state.Mutate(func(s *Snapshot) {
				s.Notice = "location lookup failed"
			})
		}

		date, dayStart := localDay(time.Now(), place)
		e.refreshEphemeris(place, date, dayStart)
	}()
}

// RefreshDate recomputes the ephemeris for an explicit calendar day at
// the current place. The day stays pinned like a paged date
func (e *Engine) RefreshDate(date time.Time) {
	e.state.Mutate(func(s *Snapshot) { s.FollowToday = false })
	snap := e.state.Load()
	offset := time.Duration(snap.Place.UTCOffsetHours * float64(time.Hour))
	e.refreshEphemeris(snap.Place, date, date.Add(-offset))
}

// SetDate pages the displayed day by delta days and stops following the
// wall clock; RefreshToday resumes it
func (e *Engine) SetDate(delta int) {
	e.state.Mutate(func(s *Snapshot) { s.FollowToday = false })
	snap := e.state.Load()
	base := snap.Date
	if base.IsZero() {
		base, _ = localDay(time.Now(), snap.Place)
	}
	date := base.AddDate(0, 0, delta)
	offset := time.Duration(snap.Place.UTCOffsetHours * float64(time.Hour))
	e.refreshEphemeris(snap.Place, date, date.Add(-offset))
}

// ToggleMode flips between rotating and fixed display
func (e *Engine) ToggleMode() {
	e.state.Mutate(func(s *Snapshot) {
		if s.Mode == dial.ModeRotating {
			s.Mode = dial.ModeFixed
		} else {
			s.Mode = dial.ModeRotating
		}
	})
}

// SetSequence installs a new color sequence and rebuilds the derived
// mapping; called at startup and by the theme watcher
func (e *Engine) SetSequence(seq sky.ColorSequence) {
	e.state.Mutate(func(s *Snapshot) {
		s.Sequence = seq
		if s.HasBoundaries {
			s.Mapping = sky.NewMapping(s.Boundaries, seq)
		} else {
			s.Mapping = sky.NightMapping(seq)
		}
	})
}
