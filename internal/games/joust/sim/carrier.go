package sim

import (
	"math"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// CarrierSignal is what a carrier reports after a tick.
type CarrierSignal int

const (
	CarrierNone CarrierSignal = iota
	// CarrierLanded: the carrier touched down beside the egg and is walking to it.
	CarrierLanded
	// CarrierMountRequested: the walking carrier is close enough to be mounted.
	CarrierMountRequested
)

// Carrier is the bird that flies in to collect a hatching rider. It follows
// a goal point, deflected around platforms by FindPath, then lands and walks
// the last few units to the egg.
//
// A carrier that has not requested a mount after PatienceSeconds starts
// phasing: it passes through platforms instead of bouncing off them, flies
// straight to a point DropHeight above its landing spot and drops from there.
// A leaving carrier phases from the start. Both bound the time a carrier can
// spend in the field.
type Carrier struct {
	Body
	wings

	// anchor reports where the egg (or the hatched rider) is. The carrier
	// never owns the egg; the lifecycle controller does.
	anchor func() core.Vec2
	goal   core.Vec2
	path   core.Vec2
	speed  float64
	cfg    CarrierParams
	bounds Bounds

	age      int
	patience int

	canFlap              bool
	reachedInitialTarget bool
	mountRequested       bool
	leaving              bool
	phasing              bool
	dropping             bool
}

// NewCarrier spawns a carrier on the side of the field opposite the egg and
// aims it at a landing spot a short walk from the egg.
func NewCarrier(anchor func() core.Vec2, env *Env) *Carrier {
	p := env.Params.Carrier
	egg := anchor()

	c := &Carrier{
		Body:     NewBody(core.NewRectF(0, 0, p.Width, p.Height), env.Params.Physics.AirborneHeightDelta),
		wings:    wings{facing: Facing(randSign(env.Rand))},
		anchor:   anchor,
		speed:    p.FlySpeed,
		cfg:      p,
		bounds:   env.Bounds,
		canFlap:  true,
		patience: p.PatienceSeconds * env.Params.TickRate,
	}
	c.setFlapInterval(p.FlapInterval)

	spawnX := env.Bounds.W
	if egg.X > env.Bounds.W/2 {
		spawnX = 0
		c.Vel.X = 1
	}
	c.Box.SetCenter(core.V(spawnX, egg.Y-p.SpawnAbove))

	c.goal = core.V(c.approachX(egg, env), egg.Y)

	for _, pl := range env.Platforms {
		if c.Box.Intersects(pl.Box) {
			c.Box.Y += c.Box.H + 1
		}
	}

	c.path = c.FindPath(c.goal, env.Platforms)
	return c
}

// approachX picks a landing x 10..30 units from the egg, on the side of the
// egg facing the middle of its supporting platform, kept EdgeMargin inside
// the field.
func (c *Carrier) approachX(egg core.Vec2, env *Env) float64 {
	p := env.Params.Carrier
	offset := float64(randRange(env.Rand, p.ApproachMin, p.ApproachMax))

	middle := env.Bounds.W / 2
	if support, ok := supportingPlatform(egg, env.Platforms, p.PlatformReach); ok {
		middle = support.Center().X
	}

	x := egg.X + offset
	if egg.X > middle {
		x = egg.X - offset
	}
	return min(max(x, p.EdgeMargin), env.Bounds.W-p.EdgeMargin)
}

// supportingPlatform returns the platform the point rests on, if any.
func supportingPlatform(pt core.Vec2, platforms []Platform, reach float64) (core.RectF, bool) {
	for _, pl := range platforms {
		b := pl.Box
		if pt.X > b.Left() && pt.X < b.Right() && math.Abs(pt.Y-b.Top()) < reach {
			return b, true
		}
	}
	return core.RectF{}, false
}

func (c *Carrier) Goal() core.Vec2            { return c.goal }
func (c *Carrier) Path() core.Vec2            { return c.path }
func (c *Carrier) Speed() float64             { return c.speed }
func (c *Carrier) CanFlap() bool              { return c.canFlap }
func (c *Carrier) ReachedInitialTarget() bool { return c.reachedInitialTarget }
func (c *Carrier) MountRequested() bool       { return c.mountRequested }
func (c *Carrier) Leaving() bool              { return c.leaving }
func (c *Carrier) Phasing() bool              { return c.phasing }

// Step runs one tick of navigation and physics.
func (c *Carrier) Step(env *Env) CarrierSignal {
	p := env.Params.Carrier

	c.age++
	if c.age > c.patience {
		c.phasing = true
	}

	if c.canFlap && !c.dropping {
		c.flap(env)
	}

	detour := false
	if c.phasing {
		c.path = c.goal
		if c.canFlap && !c.leaving {
			c.path.Y = max(c.goal.Y-p.DropHeight, p.Height)
		}
	} else {
		c.path = c.FindPath(c.goal, env.Platforms)
		detour = c.path != c.goal
	}

	dx := c.path.X - c.Center().X
	switch {
	case math.Abs(dx) > p.ArriveDistance:
		c.Vel.X = math.Copysign(c.speed, dx)
	case detour:
		// A waypoint is not a place to stop; keep heading for the goal.
		c.Vel.X = math.Copysign(c.speed, c.goal.X-c.Center().X)
	default:
		c.Vel.X = 0
		if c.phasing && c.canFlap && c.Center().Y <= c.path.Y {
			c.dropping = true
		}
		if c.grounded && !c.leaving && (!c.phasing || c.dropping) {
			c.goal = c.anchor()
			c.speed = p.WalkSpeed
			c.canFlap = false
			c.reachedInitialTarget = true
		}
	}

	if !c.leaving && !c.canFlap && math.Abs(c.anchor().X-c.Center().X) < p.MountDistance {
		c.mountRequested = true
	}

	c.integrate(env)
	c.animate(&c.Body)
	if c.phasing {
		c.BounceTop(env)
		c.CheckGrounded(env)
		c.ResolveBoundary(env.Bounds)
	} else {
		c.collide(env)
	}

	switch {
	case c.leaving:
		return CarrierNone
	case c.mountRequested:
		return CarrierMountRequested
	case c.reachedInitialTarget:
		return CarrierLanded
	}
	return CarrierNone
}

// flap keeps the carrier near the height of its path target: always below
// it, and above it only when diving fast or on a 1-in-N whim.
func (c *Carrier) flap(env *Env) {
	p := env.Params.Carrier
	if c.Center().Y > env.Bounds.H-env.Params.Physics.FloorDampMargin {
		c.Vel.Y = 0
	}

	if c.flapCounter == 0 {
		impulse := env.Params.Adversary.FlapImpulse
		if c.Center().Y < c.path.Y {
			if c.Vel.Y > p.DiveThreshold || (p.RandomFlapOdds > 0 && env.Rand.Intn(p.RandomFlapOdds) == 0) {
				c.beat(&c.Body, impulse)
			}
		} else {
			c.beat(&c.Body, impulse)
		}
	}
	c.advanceFlapCounter()
}

// FlyOff sends the carrier off the nearest edge in its facing direction,
// through any platform in the way. It no longer reports landing or mount
// requests.
func (c *Carrier) FlyOff() {
	if c.facing == FacingLeft {
		c.goal.X = -c.cfg.FlyOffMargin
	} else {
		c.goal.X = c.bounds.W + c.cfg.FlyOffMargin
	}
	c.speed = c.cfg.FlyOffSpeed
	c.canFlap = true
	c.mountRequested = false
	c.leaving = true
	c.phasing = true
	c.dropping = false
}

// OffScreen reports whether the carrier's center has left the field horizontally.
func (c *Carrier) OffScreen() bool {
	x := c.Center().X
	return x > c.bounds.W || x < 0
}

// FindPath looks ahead toward the goal at the carrier's height, two
// body-widths or up to the goal, whichever is nearer. If a platform is in
// the way it returns a point just outside the platform's near edge, above or
// below it depending on where the goal lies; otherwise the goal.
func (c *Carrier) FindPath(goal core.Vec2, platforms []Platform) core.Vec2 {
	w, h := c.Box.W, c.Box.H
	center := c.Center()
	reach := min(2*w, math.Abs(goal.X-center.X))
	if reach == 0 {
		return goal
	}
	right := goal.X > center.X

	left := center.X
	if !right {
		left -= reach
	}
	ahead := core.NewRectF(left, c.Box.Top(), reach, h)

	for _, pl := range platforms {
		b := pl.Box
		if !ahead.Intersects(b) {
			continue
		}

		y := b.Bottom() + h - 1
		if b.Center().Y > goal.Y {
			y = b.Top() - h + 1
		}
		x := b.Right() + w
		if right {
			x = b.Left() - w
		}
		return core.V(x, y)
	}
	return goal
}
