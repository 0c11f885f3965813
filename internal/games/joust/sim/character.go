package sim

import (
	"math"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// Controls is the character's input for one tick.
type Controls struct {
	Left  bool
	Right bool
	Flap  bool
}

// Character is the player's rider.
type Character struct {
	Body

	facing       Facing
	anim         AnimState
	frozen       int
	invulnerable int
}

// NewCharacter places the character at pos, frozen and invulnerable as if
// it had just respawned.
func NewCharacter(pos core.Vec2, env *Env) *Character {
	p := env.Params.Character
	c := &Character{
		Body:   NewBody(core.RectFromCenter(pos, p.Width, p.Height), env.Params.Physics.AirborneHeightDelta),
		facing: FacingRight,
	}
	c.placeAt(pos, env)
	return c
}

func (c *Character) Facing() Facing  { return c.facing }
func (c *Character) Anim() AnimState { return c.anim }
func (c *Character) Frozen() bool    { return c.frozen > 0 }

// Invulnerable reports whether the post-respawn grace window is active.
func (c *Character) Invulnerable() bool {
	return c.invulnerable > 0
}

// Step applies input, then the shared body pipeline. A frozen character
// hangs at its spawn point and ignores input.
func (c *Character) Step(env *Env, in Controls) {
	if c.invulnerable > 0 {
		c.invulnerable--
	}
	if c.frozen > 0 {
		c.frozen--
		return
	}

	p := env.Params.Character
	switch {
	case in.Left && !in.Right:
		c.Vel.X = math.Max(c.Vel.X-p.Accel, -p.MaxSpeed)
		c.facing = FacingLeft
	case in.Right && !in.Left:
		c.Vel.X = math.Min(c.Vel.X+p.Accel, p.MaxSpeed)
		c.facing = FacingRight
	case c.grounded:
		switch {
		case c.Vel.X > 0:
			c.Vel.X -= p.Friction
		case c.Vel.X < 0:
			c.Vel.X += p.Friction
		}
		if math.Abs(c.Vel.X) < p.Friction {
			c.Vel.X = 0
		}
	}

	if in.Flap {
		impulse := p.AirFlap
		if c.grounded {
			impulse = p.GroundFlap
		}
		c.liftOff()
		c.Vel.Y -= impulse
		c.anim = AnimFlap
	} else if c.grounded {
		c.anim = AnimGround
	} else {
		c.anim = AnimAir
	}

	c.integrate(env)
	c.collide(env)
}

// Respawn moves the character to a random spawn point of the active
// platforms, or the middle of the field if there are none.
func (c *Character) Respawn(env *Env) {
	pos := core.V(env.Bounds.W/2, env.Bounds.H/2)
	if pts := env.SpawnPoints(); len(pts) > 0 {
		pos = pts[env.Rand.Intn(len(pts))]
	}
	c.placeAt(pos, env)
}

// placeAt puts the character in the air at pos with its airborne box.
func (c *Character) placeAt(pos core.Vec2, env *Env) {
	p := env.Params.Character
	c.Box = core.RectFromCenter(pos, p.Width, p.Height-c.airDelta)
	c.Vel = core.Vec2{}
	c.grounded = false
	c.anim = AnimAir
	c.frozen = p.RespawnFreeze
	c.invulnerable = p.InvulnerableTicks
}
