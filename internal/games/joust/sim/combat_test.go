package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-joust/internal/core"
)

// offField is a hazard zone nothing in these tests touches.
var offField = core.NewRectF(0, 2000, 600, 1)

// activeCharacter returns a character at pos with the respawn grace cleared.
func activeCharacter(env *Env, pos core.Vec2) *Character {
	ch := NewCharacter(pos, env)
	ch.frozen = 0
	ch.invulnerable = 0
	return ch
}

func adversaryAt(env *Env, id uint64, kind Kind, pos, vel core.Vec2) *Adversary {
	a := NewAdversary(id, kind, pos, env)
	a.Vel = vel
	return a
}

func TestHeadOnAdversariesBounceApart(t *testing.T) {
	env := newTestEnv(1)
	ch := NewCharacter(core.V(100, 500), env)
	a := adversaryAt(env, 1, Patrol, core.V(300, 200), core.V(2, 0))
	b := adversaryAt(env, 2, Patrol, core.V(320, 200), core.V(-2, 0))
	require.True(t, a.Box.Intersects(b.Box))

	r := NewResolver(env.Params.Combat)
	r.Resolve(env, ch, []*Adversary{a, b}, nil, offField)

	assert.Equal(t, -2.0, a.Vel.X)
	assert.Equal(t, 2.0, b.Vel.X)
	assert.False(t, a.Box.Intersects(b.Box))
	assert.InDelta(t, 1.0, b.Box.Left()-a.Box.Right(), 1e-9)
	assert.Zero(t, a.Vel.Y)
	assert.Zero(t, b.Vel.Y)
}

func TestSameDirectionTrailerReverses(t *testing.T) {
	env := newTestEnv(1)
	ch := NewCharacter(core.V(100, 500), env)

	t.Run("moving right", func(t *testing.T) {
		trailer := adversaryAt(env, 1, Patrol, core.V(300, 200), core.V(2, 0))
		leader := adversaryAt(env, 2, Patrol, core.V(310, 200), core.V(1, 0))

		NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{leader, trailer}, nil, offField)

		assert.Equal(t, -2.0, trailer.Vel.X)
		assert.Equal(t, 1.0, leader.Vel.X)
		assert.Equal(t, leader.Box.Left()-1, trailer.Box.Right())
	})

	t.Run("moving left", func(t *testing.T) {
		leader := adversaryAt(env, 1, Patrol, core.V(300, 200), core.V(-1, 0))
		trailer := adversaryAt(env, 2, Patrol, core.V(310, 200), core.V(-2, 0))

		NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{leader, trailer}, nil, offField)

		assert.Equal(t, 2.0, trailer.Vel.X)
		assert.Equal(t, -1.0, leader.Vel.X)
		assert.Equal(t, leader.Box.Right()+1, trailer.Box.Left())
	})
}

func TestAdversaryTieBreakByID(t *testing.T) {
	env := newTestEnv(1)
	ch := NewCharacter(core.V(100, 500), env)
	hi := adversaryAt(env, 9, Patrol, core.V(300, 200), core.V(2, 0))
	lo := adversaryAt(env, 3, Patrol, core.V(300, 200), core.V(-2, 0))

	NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{hi, lo}, nil, offField)

	assert.Less(t, lo.Box.Right(), hi.Box.Left(), "lower id ends up on the left")
	assert.Equal(t, -2.0, lo.Vel.X)
	assert.Equal(t, 2.0, hi.Vel.X)
}

func TestCharacterAboveKills(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{Patrol, 500},
		{Pursuit, 750},
		{Elite, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			env := newTestEnv(1)
			ch := activeCharacter(env, core.V(300, 200))
			a := adversaryAt(env, 1, tt.kind, core.V(300, 220), core.V(2, 0))
			pos := a.Center()

			ev := NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{a}, nil, offField)

			assert.Equal(t, tt.expected, ev.PointsAwarded)
			assert.Equal(t, 1, ev.Kills)
			assert.False(t, ev.CharacterHit)
			assert.False(t, a.IsAlive())
			require.Len(t, ev.Spawned, 1)
			assert.Equal(t, tt.kind, ev.Spawned[0].Kind())
			assert.Equal(t, StateEggOnly, ev.Spawned[0].State())
			assert.Equal(t, pos, ev.Spawned[0].Egg().Center())
			assert.InDelta(t, -20.0/12, ch.Vel.Y, 1e-9)
		})
	}
}

func TestAdversaryAboveHitsCharacter(t *testing.T) {
	env := newTestEnv(1)
	ch := activeCharacter(env, core.V(300, 200))
	a := adversaryAt(env, 1, Pursuit, core.V(300, 180), core.V(2, 0))
	r := NewResolver(env.Params.Combat)
	r.eggValue = 750

	ev := r.Resolve(env, ch, []*Adversary{a}, nil, offField)

	assert.True(t, ev.CharacterHit)
	assert.Zero(t, ev.PointsAwarded)
	assert.True(t, a.IsAlive())
	assert.Equal(t, -2.0, a.Vel.X)
	assert.InDelta(t, -20.0/12, a.Vel.Y, 1e-9)
	assert.True(t, ch.Invulnerable())
	assert.Equal(t, 250, r.EggValue())
}

func TestLevelContactBounces(t *testing.T) {
	env := newTestEnv(1)
	ch := activeCharacter(env, core.V(300, 200))
	a := adversaryAt(env, 1, Patrol, core.V(310, 200.3), core.V(-2, 0))

	ev := NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{a}, nil, offField)

	assert.False(t, ev.CharacterHit)
	assert.Zero(t, ev.Kills)
	assert.True(t, a.IsAlive())
	assert.InDelta(t, 1.25, a.Vel.X, 1e-9)
	assert.Zero(t, a.Vel.Y)
	assert.InDelta(t, -10.0/12, ch.Vel.X, 1e-9)
	assert.Zero(t, ch.Vel.Y)
}

func TestInvulnerableCharacterIgnoresAdversaries(t *testing.T) {
	env := newTestEnv(1)
	ch := NewCharacter(core.V(300, 200), env)
	require.True(t, ch.Invulnerable())
	a := adversaryAt(env, 1, Patrol, core.V(300, 220), core.V(2, 0))

	ev := NewResolver(env.Params.Combat).Resolve(env, ch, []*Adversary{a}, nil, offField)

	assert.Zero(t, ev.Kills)
	assert.True(t, a.IsAlive())
}

func TestEggCollectionTiers(t *testing.T) {
	env := newTestEnv(1)
	ch := activeCharacter(env, core.V(300, 200))
	ch.grounded = true
	r := NewResolver(env.Params.Combat)

	for _, expected := range []int{250, 500, 750, 1000, 1000} {
		l := newTestLifecycle(env, core.V(300, 205), 10_000, 10_000)
		ev := r.Resolve(env, ch, nil, []*Lifecycle{l}, offField)

		assert.Equal(t, expected, ev.PointsAwarded)
		assert.Equal(t, 1, ev.EggsCollected)
		assert.Equal(t, StateDestroyedNoCarrier, l.State())
	}
}

func TestAirborneEggBonus(t *testing.T) {
	env := newTestEnv(1)
	ch := activeCharacter(env, core.V(300, 200))
	require.False(t, ch.IsGrounded())
	l := newTestLifecycle(env, core.V(300, 205), 10_000, 10_000)

	ev := NewResolver(env.Params.Combat).Resolve(env, ch, nil, []*Lifecycle{l}, offField)

	assert.Equal(t, 750, ev.PointsAwarded)
}

func TestEggSinksInHazard(t *testing.T) {
	env := newTestEnv(1)
	ch := activeCharacter(env, core.V(100, 100))
	l := newTestLifecycle(env, core.V(300, 590), 10_000, 10_000)
	lava := core.NewRectF(0, 580, 600, 20)

	ev := NewResolver(env.Params.Combat).Resolve(env, ch, nil, []*Lifecycle{l}, lava)

	assert.Equal(t, 1, ev.EggsSunk)
	assert.Zero(t, ev.PointsAwarded)
	assert.Equal(t, StateDestroyedNoCarrier, l.State())
}

func TestCharacterInHazard(t *testing.T) {
	env := newTestEnv(1)
	lava := core.NewRectF(0, 580, 600, 20)

	ch := activeCharacter(env, core.V(300, 585))
	ev := NewResolver(env.Params.Combat).Resolve(env, ch, nil, nil, lava)
	assert.True(t, ev.CharacterHit)
	assert.True(t, ch.Frozen())

	frozen := NewCharacter(core.V(300, 585), env)
	ev = NewResolver(env.Params.Combat).Resolve(env, frozen, nil, nil, lava)
	assert.False(t, ev.CharacterHit)
}
