package feed

import (
	"sync"
	"time"
)

// Player is a live media element handle. Implementations are expected to be
// safe for calls from timer goroutines.
type Player interface {
	Play()
	Pause()
	SeekStart()
	SetMuted(muted bool)
	Muted() bool
	Position() time.Duration
	Duration() time.Duration
}

// Registry maps video identity to its attached Player. Keying by identity
// instead of feed position keeps the handles correct if the sequence is
// ever reordered or filtered.
type Registry struct {
	mu      sync.Mutex
	players map[uint]Player
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[uint]Player)}
}

// Attach registers the handle for a video, replacing any previous one.
func (r *Registry) Attach(videoID uint, p Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[videoID] = p
}

func (r *Registry) Detach(videoID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, videoID)
}

func (r *Registry) Get(videoID uint) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[videoID]
	return p, ok
}

// Each calls fn for every attached player.
func (r *Registry) Each(fn func(videoID uint, p Player)) {
	r.mu.Lock()
	snapshot := make(map[uint]Player, len(r.players))
	for id, p := range r.players {
		snapshot[id] = p
	}
	r.mu.Unlock()

	for id, p := range snapshot {
		fn(id, p)
	}
}
