package garden

import (
	"github.com/jerieldones/valentine-garden/pkg/math"
)

// TriggerState is the interaction trigger's state.
type TriggerState uint8

const (
	// TriggerArmed accepts one hit.
	TriggerArmed TriggerState = iota
	// TriggerFired is terminal: once the rose has been tapped the trigger
	// never re-arms for the session.
	TriggerFired
)

// TapTrigger gates tap detection on the rose: pointer-downs within the
// cooldown of the previous accepted one are ignored, and only the first
// capsule hit ever fires. Time is injected by the caller as a monotonic
// seconds value, so the trigger is testable without a clock.
type TapTrigger struct {
	state    TriggerState
	cooldown float64
	lastDown float64
	hasDown  bool
	onFire   func()
}

// NewTapTrigger creates an armed trigger. onFire runs exactly once, from
// the frame thread, when the rose is first hit.
func NewTapTrigger(cooldown float64, onFire func()) *TapTrigger {
	return &TapTrigger{cooldown: cooldown, onFire: onFire}
}

// State returns the current trigger state.
func (t *TapTrigger) State() TriggerState {
	return t.state
}

// PointerDown processes a pointer-down at the given time with the given
// world-space ray. Returns true when this event fired the trigger.
func (t *TapTrigger) PointerDown(now float64, origin, dir math.Vec3, target Capsule) bool {
	if t.hasDown && now-t.lastDown < t.cooldown {
		return false
	}
	t.lastDown = now
	t.hasDown = true

	if t.state == TriggerFired {
		return false
	}
	if _, hit := target.IntersectRay(origin, dir); !hit {
		return false
	}

	t.state = TriggerFired
	if t.onFire != nil {
		t.onFire()
	}
	return true
}
