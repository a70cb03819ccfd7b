package feed

import (
	"errors"
	"sync"
	"time"

	"scrollit/pkg/models"
)

// ErrEmptyFeed means the machine must not run; callers show the empty
// state and retry by reloading the whole sequence.
var ErrEmptyFeed = errors.New("feed is empty")

// Controller owns the machine state, the player handles and every timer.
// A single mutex serializes all transitions, mirroring the one UI event
// loop the machine was designed for.
type Controller struct {
	mu      sync.Mutex
	state   State
	videos  []models.Video
	players *Registry
	now     func() time.Time

	playTimer       *time.Timer
	transitionTimer *time.Timer
	likeTimer       *time.Timer
	progressTicker  *time.Ticker
	done            chan struct{}
	started         bool
	closed          bool
}

// NewController builds a controller over a fixed, already-ordered sequence.
func NewController(videos []models.Video, players *Registry) (*Controller, error) {
	if len(videos) == 0 {
		return nil, ErrEmptyFeed
	}
	return &Controller{
		state:   NewState(len(videos)),
		videos:  videos,
		players: players,
		now:     time.Now,
		done:    make(chan struct{}),
	}, nil
}

// Start plays the first video and begins progress sampling. Calling it
// again, or after Close, does nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	if c.closed || c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.apply(Start{})
	c.progressTicker = time.NewTicker(ProgressInterval)
	c.mu.Unlock()

	go c.pollProgress()
}

func (c *Controller) GoNext() { c.dispatch(Next{}) }
func (c *Controller) GoPrev() { c.dispatch(Prev{}) }

func (c *Controller) HandleWheel(deltaY float64) {
	c.dispatch(Wheel{DeltaY: deltaY, At: c.now()})
}

func (c *Controller) HandleTouchStart(y float64) {
	c.dispatch(TouchStart{Y: y, At: c.now()})
}

func (c *Controller) HandleTouchEnd(y float64) {
	c.dispatch(TouchEnd{Y: y, At: c.now()})
}

func (c *Controller) HandleTap() {
	c.dispatch(Tap{At: c.now()})
}

func (c *Controller) ToggleMute() {
	c.dispatch(ToggleMute{})
}

// State returns a copy of the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the video at the current position.
func (c *Controller) Current() models.Video {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.videos[c.state.CurrentIndex]
}

// Close cancels every timer and leaves all players paused, muted and
// rewound. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)

	stopTimer(c.playTimer)
	stopTimer(c.transitionTimer)
	stopTimer(c.likeTimer)
	if c.progressTicker != nil {
		c.progressTicker.Stop()
	}

	c.players.Each(func(_ uint, p Player) {
		p.Pause()
		p.SetMuted(true)
		p.SeekStart()
	})
}

func (c *Controller) dispatch(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.apply(ev)
}

// apply must be called with c.mu held.
func (c *Controller) apply(ev Event) {
	next, effects := Reduce(c.state, ev)
	c.state = next
	for _, eff := range effects {
		c.run(eff)
	}
}

func (c *Controller) run(eff Effect) {
	switch e := eff.(type) {
	case PauseAll:
		c.players.Each(func(_ uint, p Player) {
			p.Pause()
			p.SetMuted(true)
			p.SeekStart()
		})

	case PlayCurrent:
		id := c.videos[e.Index].ID
		muted := e.Muted
		stopTimer(c.playTimer)
		c.playTimer = time.AfterFunc(PlayStartDelay, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.closed {
				return
			}
			if p, ok := c.players.Get(id); ok {
				p.SeekStart()
				p.SetMuted(muted)
				p.Play()
			}
		})

	case SetMuted:
		if p, ok := c.players.Get(c.videos[e.Index].ID); ok {
			p.SetMuted(e.Muted)
		}

	case ScheduleTransitionEnd:
		stopTimer(c.transitionTimer)
		c.transitionTimer = time.AfterFunc(TransitionCooldown, func() {
			c.dispatch(TransitionDone{})
		})

	case ScheduleLikeExpiry:
		stopTimer(c.likeTimer)
		c.likeTimer = time.AfterFunc(LikeDuration, func() {
			c.dispatch(LikeExpired{})
		})
	}
}

func (c *Controller) pollProgress() {
	for {
		select {
		case <-c.done:
			return
		case <-c.progressTicker.C:
			c.sampleProgress()
		}
	}
}

func (c *Controller) sampleProgress() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	id := c.videos[c.state.CurrentIndex].ID
	if p, ok := c.players.Get(id); ok {
		c.apply(ProgressTick{Position: p.Position(), Duration: p.Duration()})
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}
