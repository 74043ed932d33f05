package mode

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Rotating cycles through a list of modes, switching to the next one every rotateTime
type Rotating struct {
	modes      []Mode
	rotateTime time.Duration
	current    int
	lastSwitch time.Time
	started    bool
}

var _ Mode = &Rotating{}

// NewRotating creates a Rotating mode. The first mode in the list runs first.
func NewRotating(rotateTime time.Duration, modes ...Mode) (*Rotating, error) {
	if len(modes) == 0 {
		return nil, errors.New("no modes to rotate")
	}
	if rotateTime <= 0 {
		return nil, fmt.Errorf("invalid rotation time: %s", rotateTime)
	}
	return &Rotating{modes: modes, rotateTime: rotateTime}, nil
}

// Current returns the index of the active mode
func (r *Rotating) Current() int {
	return r.current
}

// Run switches to the next mode if the current one has run for rotateTime, then runs the active mode
func (r *Rotating) Run(now time.Time) error {
	switch {
	case !r.started:
		r.started = true
		r.lastSwitch = now
	case now.Sub(r.lastSwitch) >= r.rotateTime:
		r.current = (r.current + 1) % len(r.modes)
		r.lastSwitch = now
		log.WithField("index", r.current).Debug("switching mode")
	}
	return r.modes[r.current].Run(now)
}
