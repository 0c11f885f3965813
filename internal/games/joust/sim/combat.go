package sim

import (
	"math"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// CombatEvents is what one resolver pass did. The driver owns score and
// lives; it folds these in after the pass.
type CombatEvents struct {
	PointsAwarded int
	CharacterHit  bool
	Kills         int
	EggsCollected int
	EggsSunk      int
	// Spawned holds the controllers created for this pass's kills. The driver
	// appends them to its collection after the pass.
	Spawned []*Lifecycle
}

// Resolver is the cross-body contact pass. It is the only code that mutates
// two different entities in one operation.
type Resolver struct {
	params   CombatParams
	eggValue int
}

// NewResolver creates a resolver with the egg value at its base tier.
func NewResolver(p CombatParams) *Resolver {
	return &Resolver{params: p, eggValue: p.EggBase}
}

// EggValue returns the points the next collected egg is worth, before the
// airborne bonus.
func (r *Resolver) EggValue() int {
	return r.eggValue
}

// ResetEggValue drops the egg value back to its base tier.
func (r *Resolver) ResetEggValue() {
	r.eggValue = r.params.EggBase
}

// Resolve runs one pass over every live body. Dead adversaries and finished
// controllers are skipped; nothing is removed from the given slices.
func (r *Resolver) Resolve(env *Env, ch *Character, adversaries []*Adversary, lifecycles []*Lifecycle, hazard core.RectF) CombatEvents {
	var ev CombatEvents

	r.characterVsAdversaries(env, ch, adversaries, &ev)
	r.adversaryPairs(adversaries)
	if !ev.CharacterHit {
		r.characterVsEggs(ch, lifecycles, &ev)
	}
	r.eggsVsHazard(lifecycles, hazard, &ev)

	if !ev.CharacterHit && !ch.Frozen() && ch.Box.Intersects(hazard) {
		r.hitCharacter(env, ch, &ev)
	}
	return ev
}

func (r *Resolver) hitCharacter(env *Env, ch *Character, ev *CombatEvents) {
	ch.Respawn(env)
	r.eggValue = r.params.EggBase
	ev.CharacterHit = true
}

// contactDelta is the scaled offset from the character to the adversary,
// measured between rounded centers so near-level contacts count as level.
func (r *Resolver) contactDelta(ch *Character, a *Adversary) core.Vec2 {
	cc, ac := ch.Center(), a.Center()
	d := core.V(math.Round(ac.X)-math.Round(cc.X), math.Round(ac.Y)-math.Round(cc.Y))
	return d.Scale(1 / r.params.ContactScale)
}

func (r *Resolver) characterVsAdversaries(env *Env, ch *Character, adversaries []*Adversary, ev *CombatEvents) {
	if ch.Invulnerable() {
		return
	}
	for _, a := range adversaries {
		if !a.IsAlive() || !ch.Box.Intersects(a.Box) {
			continue
		}

		delta := r.contactDelta(ch, a)
		switch {
		case delta.Y < 0:
			a.Vel.Y = delta.Y
			a.Vel.X = -a.Vel.X
			r.hitCharacter(env, ch, ev)
			return

		case delta.Y > 0:
			ch.Vel = delta.Neg()
			egg := a.Kill(env)
			ev.Spawned = append(ev.Spawned, NewLifecycle(egg, env))
			ev.PointsAwarded += r.killReward(a.Kind())
			ev.Kills++

		default:
			a.Vel = core.V(delta.X*r.params.LevelPushX, 0)
			ch.Vel = delta.Neg()
		}
	}
}

func (r *Resolver) killReward(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return r.params.KillRewards[k]
}

// adversaryPairs bounces every intersecting pair of live adversaries apart.
// Each pair is handled once, in slice order.
func (r *Resolver) adversaryPairs(adversaries []*Adversary) {
	for i := 0; i < len(adversaries); i++ {
		a := adversaries[i]
		if !a.IsAlive() {
			continue
		}
		for j := i + 1; j < len(adversaries); j++ {
			b := adversaries[j]
			if !b.IsAlive() || !a.Box.Intersects(b.Box) {
				continue
			}
			bounceApart(a, b)
		}
	}
}

// bounceApart separates two overlapping adversaries. Bodies at the same x
// are ordered by ID.
func bounceApart(a, b *Adversary) {
	left, right := a, b
	ax, bx := a.Center().X, b.Center().X
	if bx < ax || (bx == ax && b.ID < a.ID) {
		left, right = b, a
	}

	sameDir := (left.Vel.X > 0 && right.Vel.X > 0) || (left.Vel.X < 0 && right.Vel.X < 0)
	switch {
	case sameDir && left.Vel.X > 0:
		// moving right: right leads, left trails
		left.Vel.X = -left.Vel.X
		left.Box.SetRight(right.Box.Left() - 1)
	case sameDir:
		// moving left: left leads, right trails
		right.Vel.X = -right.Vel.X
		right.Box.SetLeft(left.Box.Right() + 1)
	default:
		overlap := left.Box.Right() - right.Box.Left() + 1
		half := overlap / 2
		left.Box.X -= half
		right.Box.X += overlap - half
		left.Vel.X = -math.Abs(left.Vel.X)
		right.Vel.X = math.Abs(right.Vel.X)
	}

	left.Vel.Y = 0
	right.Vel.Y = 0
}

func (r *Resolver) characterVsEggs(ch *Character, lifecycles []*Lifecycle, ev *CombatEvents) {
	for _, l := range lifecycles {
		box, ok := l.EggBox()
		if !ok || !ch.Box.Intersects(box) {
			continue
		}

		points := r.eggValue
		if !ch.IsGrounded() {
			points += r.params.AirborneEggBonus
		}
		ev.PointsAwarded += points
		ev.EggsCollected++
		r.eggValue = min(r.eggValue+r.params.EggStep, r.params.EggMax)

		l.Destroy()
	}
}

func (r *Resolver) eggsVsHazard(lifecycles []*Lifecycle, hazard core.RectF, ev *CombatEvents) {
	for _, l := range lifecycles {
		box, ok := l.EggBox()
		if !ok || !box.Intersects(hazard) {
			continue
		}
		l.Sink()
		ev.EggsSunk++
	}
}
