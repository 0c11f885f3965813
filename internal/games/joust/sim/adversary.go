package sim

import (
	"github.com/vovakirdan/tui-joust/internal/core"
)

// Kind identifies an adversary variant. Eggs and placeholders carry the kind
// of the rider they will turn back into.
type Kind int

const (
	Patrol  Kind = iota // Bounder: cruises at a fixed height band
	Pursuit             // Hunter: homes on the character's height
	Elite               // Shadow Lord: reserved fast flyer
)

// String returns the arcade name of the variant.
func (k Kind) String() string {
	switch k {
	case Patrol:
		return "Bounder"
	case Pursuit:
		return "Hunter"
	case Elite:
		return "Shadow Lord"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the three variants.
func (k Kind) Valid() bool {
	return k >= Patrol && k <= Elite
}

// Facing is the horizontal direction a flyer looks in.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// AnimState is the visual/movement state of a flyer.
type AnimState int

const (
	AnimGround AnimState = iota
	AnimAir
	AnimFlap
)

// wings is the flap timing and animation state shared by riders and carriers.
type wings struct {
	facing       Facing
	anim         AnimState
	animCounter  int
	flapInterval int
	flapCounter  int
}

func (w *wings) Facing() Facing    { return w.facing }
func (w *wings) Anim() AnimState   { return w.anim }
func (w *wings) FlapInterval() int { return w.flapInterval }
func (w *wings) FlapCounter() int  { return w.flapCounter }

func (w *wings) setFlapInterval(n int) {
	if n < 1 {
		n = 1
	}
	w.flapInterval = n
	w.flapCounter = 1 % n
}

// advanceFlapCounter keeps flapCounter in [0, flapInterval).
func (w *wings) advanceFlapCounter() {
	w.flapCounter = (w.flapCounter + 1) % w.flapInterval
}

// beat is one wing flap: a small hop plus an upward impulse.
func (w *wings) beat(b *Body, impulse float64) {
	b.liftOff()
	b.Box.Y--
	b.Vel.Y -= impulse
	w.anim = AnimFlap
	w.animCounter = 0
}

// animate settles a flap into gliding after half an interval and turns the
// flyer toward its horizontal motion.
func (w *wings) animate(b *Body) {
	switch {
	case b.grounded:
		w.anim = AnimGround
	case w.anim == AnimAir:
	default:
		if w.animCounter >= w.flapInterval/2 {
			w.anim = AnimAir
			w.animCounter = 0
		}
		w.animCounter++
	}

	if b.Vel.X < 0 {
		w.facing = FacingLeft
	} else if b.Vel.X > 0 {
		w.facing = FacingRight
	}
}

// Steering is the per-variant target-seeking step, run before the flap
// decision. Collision, grounding and wrap are shared by all variants.
type Steering interface {
	Steer(a *Adversary, characterPos core.Vec2)
}

// patrolSteering keeps the target chosen at spawn.
type patrolSteering struct{}

func (patrolSteering) Steer(*Adversary, core.Vec2) {}

// pursuitSteering retargets the character every tick.
type pursuitSteering struct{}

func (pursuitSteering) Steer(a *Adversary, characterPos core.Vec2) {
	a.target = characterPos
}

// eliteSteering currently flies like a patrol.
type eliteSteering struct {
	patrolSteering
}

func steeringFor(k Kind) Steering {
	switch k {
	case Pursuit:
		return pursuitSteering{}
	case Elite:
		return eliteSteering{}
	default:
		return patrolSteering{}
	}
}

// Adversary is an enemy rider.
type Adversary struct {
	Body
	wings

	ID     uint64
	kind   Kind
	alive  bool
	target core.Vec2
	steer  Steering
}

// NewAdversary creates a live rider of the given kind centered on pos, facing
// a random direction.
func NewAdversary(id uint64, kind Kind, pos core.Vec2, env *Env) *Adversary {
	p := env.Params.Adversary
	dir := randSign(env.Rand)

	a := &Adversary{
		Body:  NewBody(core.RectFromCenter(pos, p.Width, p.Height), env.Params.Physics.AirborneHeightDelta),
		wings: wings{facing: Facing(dir)},
		ID:    id,
		kind:  kind,
		alive: true,
		steer: steeringFor(kind),
	}
	a.Vel = core.V(dir*p.Speed, 0)

	lo := int(env.Bounds.H * p.TargetBandMin)
	hi := int(env.Bounds.H * p.TargetBandMax)
	a.target = core.V(0, float64(randRange(env.Rand, lo, hi)))

	a.setFlapInterval(a.drawFlapInterval(env))
	return a
}

func (a *Adversary) Kind() Kind        { return a.kind }
func (a *Adversary) Target() core.Vec2 { return a.target }
func (a *Adversary) IsAlive() bool     { return a.alive }

func (a *Adversary) SetSteering(s Steering) { a.steer = s }

// Step runs one tick: steer, maybe flap, integrate, animate, collide.
func (a *Adversary) Step(env *Env, characterPos core.Vec2) {
	if !a.alive {
		return
	}
	a.steer.Steer(a, characterPos)
	a.flap(env)
	a.integrate(env)
	a.animate(&a.Body)
	a.collide(env)
}

// flap evaluates the flap decision once every flapInterval ticks. A rider
// below its target height flaps, which also lifts it off the ground.
func (a *Adversary) flap(env *Env) {
	if a.Center().Y > env.Bounds.H-env.Params.Physics.FloorDampMargin {
		a.Vel.Y = 0
	}

	if a.flapCounter == 0 && a.Center().Y > a.target.Y {
		a.beat(&a.Body, env.Params.Adversary.FlapImpulse)
		a.flapInterval = a.drawFlapInterval(env)
	}
	a.advanceFlapCounter()
}

func (a *Adversary) drawFlapInterval(env *Env) int {
	p := env.Params.Adversary
	n := randRange(env.Rand, p.FlapIntervalMin, p.FlapIntervalMax)
	if n < 1 {
		n = 1
	}
	return n
}

// Kill marks the rider dead and returns the egg it drops. The caller must
// remove the adversary from its collection.
func (a *Adversary) Kill(env *Env) *Egg {
	a.alive = false
	vel := core.V(float64(a.facing)*env.Params.Egg.LaunchSpeed, 0)
	return NewEgg(a.Center(), vel, a.kind, env)
}
