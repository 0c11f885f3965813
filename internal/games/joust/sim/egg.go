package sim

import (
	"math"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// EggSignal is what an egg reports after a tick.
type EggSignal int

const (
	EggNone EggSignal = iota
	EggCarrierRequested
	EggHatched
)

// Egg is dropped by a defeated rider. It hatches after a random delay and
// asks for a carrier a few seconds before that.
type Egg struct {
	Body

	kind      Kind
	age       int
	hatchAt   int
	carrierAt int
}

// NewEgg creates an airborne egg with random hatch and carrier timers.
func NewEgg(center, vel core.Vec2, kind Kind, env *Env) *Egg {
	p := env.Params.Egg
	e := &Egg{
		Body: NewBody(core.RectFromCenter(center, p.Width, p.Height), 0),
		kind: kind,
	}
	e.grounded = false
	e.Vel = core.V(vel.X, 0)
	e.hatchAt = env.Params.TickRate * randRange(env.Rand, p.HatchMinSeconds, p.HatchMaxSeconds)
	e.carrierAt = env.Params.TickRate * randRange(env.Rand, p.CarrierMinSeconds, p.CarrierMaxSeconds)
	return e
}

// SetTimers overrides the hatch and carrier deadlines, in ticks from creation.
// A carrier deadline at or past the hatch deadline never fires.
func (e *Egg) SetTimers(hatchAt, carrierAt int) {
	e.hatchAt = hatchAt
	e.carrierAt = carrierAt
}

func (e *Egg) Kind() Kind     { return e.kind }
func (e *Egg) Age() int       { return e.age }
func (e *Egg) HatchAt() int   { return e.hatchAt }
func (e *Egg) CarrierAt() int { return e.carrierAt }

// Step moves the egg and advances its timers. The tick on which the age
// reaches the hatch deadline reports EggHatched; hatching wins over a
// carrier request due on the same tick.
func (e *Egg) Step(env *Env) EggSignal {
	if e.grounded {
		e.applyFriction(env.Params.Egg.Friction)
	}
	e.integrate(env)
	e.collide(env)

	e.age++
	if e.age >= e.hatchAt {
		return EggHatched
	}
	if e.age == e.carrierAt {
		return EggCarrierRequested
	}
	return EggNone
}

func (e *Egg) applyFriction(friction float64) {
	switch {
	case e.Vel.X > 0:
		e.Vel.X -= friction
	case e.Vel.X < 0:
		e.Vel.X += friction
	}
	if math.Abs(e.Vel.X) < friction {
		e.Vel.X = 0
	}
}
