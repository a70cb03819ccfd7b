// Package feed implements the swipe-feed navigation machine: one current
// video, exactly one playing at a time, gesture-driven advance with wrap.
//
// The machine itself is a pure reducer over an explicit State; the
// Controller owns the timers and the live player handles. All state
// transitions are serialized.
package feed

import (
	"math"
	"time"
)

const (
	// TransitionCooldown blocks navigation while the transition animation
	// runs; gestures during the window are dropped, not queued.
	TransitionCooldown = 500 * time.Millisecond
	// GestureDebounce keeps one physical swipe from counting twice. It is
	// enforced independently of the transition cooldown.
	GestureDebounce = 300 * time.Millisecond
	// SwipeThreshold is the minimum vertical travel for a touch swipe.
	SwipeThreshold = 80.0
	// PlayStartDelay lets the pause of the previous element settle before
	// the new current element starts, so two elements never race for audio.
	PlayStartDelay = 50 * time.Millisecond
	// ProgressInterval is the playback progress sampling period.
	ProgressInterval = 100 * time.Millisecond
	// LikeDuration is how long the double-tap heart stays visible.
	LikeDuration = 800 * time.Millisecond
	// DoubleTapWindow is the max gap between two taps counting as a double.
	DoubleTapWindow = 300 * time.Millisecond
)

type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// State is the whole navigation state. It is a value; Reduce returns the
// next one without touching the old.
type State struct {
	Count          int
	CurrentIndex   int
	Direction      Direction
	Transitioning  bool
	HasUnmutedOnce bool
	CurrentMuted   bool
	ShowSoundHint  bool
	LikeVisible    bool
	Progress       float64

	gestures    gate
	lastTap     time.Time
	touchStartY float64
	touchActive bool
}

// NewState is the machine's entry point for a feed of count videos.
// A zero count is the caller's empty-state path; the machine never runs.
func NewState(count int) State {
	return State{
		Count:         count,
		CurrentMuted:  true,
		ShowSoundHint: true,
		gestures:      gate{window: GestureDebounce},
	}
}

type Event interface{ feedEvent() }

type (
	// Start plays the initial current video. Fired once after load.
	Start struct{}
	// Next and Prev are programmatic navigation, no debounce of their own.
	Next struct{}
	Prev struct{}
	// Wheel is a vertical scroll gesture; positive delta advances.
	Wheel struct {
		DeltaY float64
		At     time.Time
	}
	TouchStart struct {
		Y  float64
		At time.Time
	}
	TouchEnd struct {
		Y  float64
		At time.Time
	}
	// Tap feeds double-tap-to-like detection.
	Tap struct{ At time.Time }
	// ToggleMute flips the current element's audio.
	ToggleMute struct{}
	// ProgressTick is a sampled playback position of the current element.
	ProgressTick struct {
		Position time.Duration
		Duration time.Duration
	}
	// TransitionDone and LikeExpired are timer callbacks.
	TransitionDone struct{}
	LikeExpired    struct{}
)

func (Start) feedEvent()          {}
func (Next) feedEvent()           {}
func (Prev) feedEvent()           {}
func (Wheel) feedEvent()          {}
func (TouchStart) feedEvent()     {}
func (TouchEnd) feedEvent()       {}
func (Tap) feedEvent()            {}
func (ToggleMute) feedEvent()     {}
func (ProgressTick) feedEvent()   {}
func (TransitionDone) feedEvent() {}
func (LikeExpired) feedEvent()    {}

// Effect is a side effect the controller must carry out, in order.
type Effect interface{ feedEffect() }

type (
	// PauseAll pauses, mutes and rewinds every tracked element.
	PauseAll struct{}
	// PlayCurrent starts the element at Index from the top, after the
	// settle delay.
	PlayCurrent struct {
		Index int
		Muted bool
	}
	// SetMuted flips the element at Index without touching playback.
	SetMuted struct {
		Index int
		Muted bool
	}
	ScheduleTransitionEnd struct{}
	ScheduleLikeExpiry    struct{}
)

func (PauseAll) feedEffect()              {}
func (PlayCurrent) feedEffect()           {}
func (SetMuted) feedEffect()              {}
func (ScheduleTransitionEnd) feedEffect() {}
func (ScheduleLikeExpiry) feedEffect()    {}

// Reduce applies one event and returns the next state plus the effects to
// run. It is pure: time only enters through event payloads.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Start:
		if s.Count == 0 {
			return s, nil
		}
		s.CurrentMuted = !s.HasUnmutedOnce
		return s, []Effect{PauseAll{}, PlayCurrent{Index: s.CurrentIndex, Muted: s.CurrentMuted}}

	case Next:
		return advance(s, Forward)

	case Prev:
		return advance(s, Backward)

	case Wheel:
		if s.Transitioning || e.DeltaY == 0 {
			return s, nil
		}
		if !s.gestures.admit(e.At) {
			return s, nil
		}
		if e.DeltaY > 0 {
			return advance(s, Forward)
		}
		return advance(s, Backward)

	case TouchStart:
		if s.Transitioning {
			return s, nil
		}
		s.touchStartY = e.Y
		s.touchActive = true
		return s, nil

	case TouchEnd:
		if !s.touchActive || s.Transitioning {
			s.touchActive = false
			return s, nil
		}
		s.touchActive = false
		if !s.gestures.admits(e.At) {
			return s, nil
		}
		delta := s.touchStartY - e.Y
		if math.Abs(delta) <= SwipeThreshold {
			// Below threshold: dropped silently, debounce untouched.
			return s, nil
		}
		s.gestures.admit(e.At)
		if delta > 0 {
			return advance(s, Forward)
		}
		return advance(s, Backward)

	case Tap:
		if !s.lastTap.IsZero() && e.At.Sub(s.lastTap) < DoubleTapWindow {
			s.lastTap = e.At
			s.LikeVisible = true
			return s, []Effect{ScheduleLikeExpiry{}}
		}
		s.lastTap = e.At
		return s, nil

	case ToggleMute:
		muted := !s.CurrentMuted
		s.CurrentMuted = muted
		if !muted {
			// Sticky for the session; muting again does not reset it.
			s.HasUnmutedOnce = true
			s.ShowSoundHint = false
		}
		return s, []Effect{SetMuted{Index: s.CurrentIndex, Muted: muted}}

	case ProgressTick:
		if e.Duration > 0 {
			s.Progress = float64(e.Position) / float64(e.Duration)
		}
		return s, nil

	case TransitionDone:
		s.Transitioning = false
		return s, nil

	case LikeExpired:
		s.LikeVisible = false
		return s, nil
	}
	return s, nil
}

func advance(s State, dir Direction) (State, []Effect) {
	if s.Transitioning || s.Count == 0 {
		return s, nil
	}
	s.Transitioning = true
	s.Direction = dir
	s.CurrentIndex = (s.CurrentIndex + int(dir) + s.Count) % s.Count
	s.CurrentMuted = !s.HasUnmutedOnce
	s.Progress = 0
	return s, []Effect{
		PauseAll{},
		PlayCurrent{Index: s.CurrentIndex, Muted: s.CurrentMuted},
		ScheduleTransitionEnd{},
	}
}
