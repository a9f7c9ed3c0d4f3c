package leveldata

import (
	"errors"
	"fmt"
	"math"
)

// MaxTilt is the steepest platform tilt a level may use, in degrees.
const MaxTilt = 10.0

var (
	ErrNoPlatforms = errors.New("level has no platforms")
	ErrNoGoal      = errors.New("level has no goal region")
	ErrBadSize     = errors.New("level has no size")
)

// Validate checks the invariants the simulation relies on.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%s: %w", l.Name, ErrBadSize)
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("%s: %w", l.Name, ErrNoPlatforms)
	}
	if l.Goal.W <= 0 || l.Goal.H <= 0 {
		return fmt.Errorf("%s: %w", l.Name, ErrNoGoal)
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%s: platform %d has empty size", l.Name, i)
		}
		if math.Abs(p.Tilt) > MaxTilt {
			return fmt.Errorf("%s: platform %d tilt %.1f exceeds %.1f degrees", l.Name, i, p.Tilt, MaxTilt)
		}
	}
	for i, ld := range l.Ladders {
		if ld.W <= 0 || ld.H <= 0 {
			return fmt.Errorf("%s: ladder %d has empty size", l.Name, i)
		}
	}
	return nil
}
