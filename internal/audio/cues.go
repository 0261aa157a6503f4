package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-castle-defense/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)

	masterVolume = 0.3

	hitCooldown   = 80 * time.Millisecond
	deathCooldown = 100 * time.Millisecond

	hitDuration   = 50 * time.Millisecond
	deathDuration = 200 * time.Millisecond
)

// CuePlayer plays short synthesized cues for combat events. Each cue kind
// is rate limited on its own.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sink        func(beep.Streamer)
	now         func() time.Time
	lastHit     time.Time
	lastDeath   time.Time
	initialized bool
}

// NewCuePlayer creates a player. It stays silent until Initialize.
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.sink = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	p.initialized = true
	return nil
}

// Cleanup drops every pending cue.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.sink = nil
}

// PlayHit plays the impact "thwack": a short square sweep 400 to 100 Hz.
func (p *CuePlayer) PlayHit() bool {
	return p.play(&p.lastHit, hitCooldown, func() beep.Streamer {
		return NewSweep(WaveSquare, 400, 100, hitDuration, masterVolume*0.5, sampleRate)
	})
}

// PlayDeath plays the falling "thump": a triangle sweep 100 to 10 Hz.
func (p *CuePlayer) PlayDeath() bool {
	return p.play(&p.lastDeath, deathCooldown, func() beep.Streamer {
		return NewSweep(WaveTriangle, 100, 10, deathDuration, masterVolume, sampleRate)
	})
}

func (p *CuePlayer) play(last *time.Time, cooldown time.Duration, build func() beep.Streamer) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil {
		return false
	}
	now := p.now()
	if !last.IsZero() && now.Sub(*last) < cooldown {
		return false
	}
	*last = now
	p.sink(build())
	return true
}

// OnEvent maps combat events to cues.
func (p *CuePlayer) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyHit:
		p.PlayHit()
	case event.EnemyKilled:
		p.PlayDeath()
	}
}

// Listen subscribes the player to the events it voices.
func (p *CuePlayer) Listen(d *event.Dispatcher) {
	d.SubscribeAll(p, event.EnemyHit, event.EnemyKilled)
}
