package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// Strict makes invariant violations panic instead of being clamped.
// The CLI turns it on with --debug.
var Strict bool

var logger = log.New(io.Discard)

// SetLogger sets the logger used to report clamped invariant violations.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Body is the physics state shared by every moving object: a box, a velocity
// and a grounded flag. Riders and carriers lose AirDelta units of box height
// while airborne; the ground check compensates so it always tests the feet.
type Body struct {
	Box      core.RectF
	Vel      core.Vec2
	grounded bool
	airDelta float64
}

// NewBody creates a body standing at box with the given airborne height delta.
func NewBody(box core.RectF, airDelta float64) Body {
	return Body{Box: box, grounded: true, airDelta: airDelta}
}

// IsGrounded reports whether the body rested on a surface at the last check.
func (b *Body) IsGrounded() bool {
	return b.grounded
}

// BoundingBox returns the current collision box.
func (b *Body) BoundingBox() core.RectF {
	return b.Box
}

// Center returns the center of the collision box.
func (b *Body) Center() core.Vec2 {
	return b.Box.Center()
}

// Step runs one tick of the plain pipeline: integrate, then collide.
func (b *Body) Step(env *Env) {
	b.integrate(env)
	b.collide(env)
}

// integrate applies gravity while airborne and moves by the velocity.
func (b *Body) integrate(env *Env) {
	if !b.grounded {
		b.Vel.Y += env.Params.Physics.Gravity
	}
	b.Box.Translate(b.Vel)
}

// collide runs the contact pipeline in its fixed order.
func (b *Body) collide(env *Env) {
	b.ApplyPlatformCollision(env)
	b.BounceTop(env)
	b.CheckGrounded(env)
	b.ResolveBoundary(env.Bounds)
}

// liftOff switches a grounded body to its airborne profile.
func (b *Body) liftOff() {
	if !b.grounded {
		return
	}
	b.grounded = false
	b.Box.H -= b.airDelta
}

// ApplyPlatformCollision bounces the body off the side or underside of any
// platform it overlaps. Side contacts scatter sideways by a random amount.
func (b *Body) ApplyPlatformCollision(env *Env) {
	phys := env.Params.Physics
	for _, p := range env.Platforms {
		pb := p.Box
		if !b.Box.Intersects(pb) {
			continue
		}

		leftEdge := core.NewRectF(pb.Left(), pb.Top()-1, 1, pb.H-1)
		rightEdge := core.NewRectF(pb.Right()-1, pb.Top(), 1, pb.H)
		underside := core.NewRectF(pb.Left(), pb.Bottom()+1, pb.W, 1)

		switch {
		case b.Box.Intersects(leftEdge):
			scatter := float64(randRange(env.Rand, phys.ScatterMin, phys.ScatterMax))
			b.Vel = core.V(-math.Abs(b.Vel.X)/3-scatter, 0)
			b.Box.SetRight(pb.Left())
		case b.Box.Intersects(rightEdge):
			scatter := float64(randRange(env.Rand, phys.ScatterMin, phys.ScatterMax))
			b.Vel = core.V(math.Abs(b.Vel.X)/3+scatter, 0)
			b.Box.SetLeft(pb.Right())
		case b.Box.Intersects(underside):
			b.Vel = core.V(b.Vel.X, 1)
			b.Box.SetTop(pb.Bottom())
		}
	}
}

// BounceTop keeps the body below the ceiling. The rebound grows with impact speed.
func (b *Body) BounceTop(env *Env) {
	if b.Box.Top() > 0 {
		return
	}
	b.Box.SetTop(0)
	b.Vel.Y = math.Abs(b.Vel.Y)/env.Params.Physics.TopBounceDivisor + 1
}

// CheckGrounded tests a 1x3 strip under the body's feet against every
// platform and the floor sentinel at the bottom of the field. A rising body
// never lands. With no platforms at all the body is always airborne.
func (b *Body) CheckGrounded(env *Env) {
	feet := b.Box.Bottom()
	if !b.grounded {
		feet += b.airDelta
	}
	strip := core.NewRectF(b.Box.Center().X, feet, 1, 3)

	surface, hit := b.surfaceUnder(strip, env)
	if hit && b.Vel.Y >= 0 {
		b.Vel.Y = 0
		if !b.grounded {
			b.Box.H += b.airDelta
		}
		if b.Box.Bottom() >= surface.Top() {
			b.Box.SetBottom(surface.Top() - 1)
		}
		b.grounded = true
	} else {
		if b.grounded {
			b.Box.H -= b.airDelta
		}
		b.grounded = false
	}

	b.enforceGrounded()
}

func (b *Body) surfaceUnder(strip core.RectF, env *Env) (core.RectF, bool) {
	if len(env.Platforms) == 0 {
		return core.RectF{}, false
	}
	for _, p := range env.Platforms {
		if strip.Intersects(p.Box) {
			return p.Box, true
		}
	}
	floor := core.NewRectF(0, env.Bounds.H, env.Bounds.W, 100)
	if strip.Intersects(floor) {
		return floor, true
	}
	return core.RectF{}, false
}

// ResolveBoundary wraps the body horizontally once it has fully left the field.
func (b *Body) ResolveBoundary(bounds Bounds) {
	if b.Box.Right() < 0 {
		b.Box.SetLeft(bounds.W)
	} else if b.Box.Left() > bounds.W {
		b.Box.SetRight(0)
	}
}

// enforceGrounded guards the grounded-implies-still invariant.
func (b *Body) enforceGrounded() {
	if !b.grounded || b.Vel.Y == 0 {
		return
	}
	if Strict {
		panic(fmt.Sprintf("sim: grounded body with vy=%v", b.Vel.Y))
	}
	logger.Warn("clamping vertical velocity of grounded body", "vy", b.Vel.Y, "x", b.Box.X, "y", b.Box.Y)
	b.Vel.Y = 0
}
