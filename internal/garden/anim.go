package garden

import (
	"github.com/chewxy/math32"
)

// AnimState is the one-shot pop animation's state.
type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimPlaying
)

// PopAnimation is the one-shot scale bump played when the rose is tapped:
// an explicit IDLE -> PLAYING -> IDLE machine evaluated by elapsed-time
// subtraction, with its start time cleared on completion. It never touches
// a wall clock.
type PopAnimation struct {
	state    AnimState
	start    float64
	duration float64
}

// NewPopAnimation creates an idle animation of the given duration in
// seconds.
func NewPopAnimation(duration float64) *PopAnimation {
	return &PopAnimation{duration: duration}
}

// Start begins playback at the given time. Starting while playing restarts.
func (p *PopAnimation) Start(now float64) {
	p.state = AnimPlaying
	p.start = now
}

// State returns the current animation state.
func (p *PopAnimation) State() AnimState {
	return p.state
}

// Scale returns the rose's animation scale factor at the given time: 1 when
// idle, an eased overshoot bump while playing. Playback self-terminates
// after the configured duration.
func (p *PopAnimation) Scale(now float64) float32 {
	if p.state != AnimPlaying {
		return 1
	}
	t := (now - p.start) / p.duration
	if t >= 1 {
		p.state = AnimIdle
		p.start = 0
		return 1
	}

	// Overshoot ease: quick swell past 1, settle back.
	f := float32(t)
	bump := math32.Sin(f*math32.Pi) * (1 - f) * 0.35
	return 1 + bump
}

// IdleSway returns the rose's continuous idle motion at the given time:
// small rocking angles around X and Z plus a breathing scale factor.
func IdleSway(elapsed float32) (tiltX, tiltZ, breathe float32) {
	tiltX = math32.Sin(elapsed*0.9) * 0.025
	tiltZ = math32.Cos(elapsed*0.7) * 0.02
	breathe = 1 + math32.Sin(elapsed*1.3)*0.012
	return tiltX, tiltZ, breathe
}
