package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-joust/internal/core"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Bounder", Patrol.String())
	assert.Equal(t, "Hunter", Pursuit.String())
	assert.Equal(t, "Shadow Lord", Elite.String())
	assert.Equal(t, "Unknown", Kind(7).String())
	assert.False(t, Kind(-1).Valid())
}

func TestKillDropsMatchingEgg(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		for _, kind := range []Kind{Patrol, Pursuit, Elite} {
			env := newTestEnv(seed)
			a := NewAdversary(1, kind, core.V(300, 200), env)
			require.True(t, a.IsAlive())

			egg := a.Kill(env)

			require.NotNil(t, egg)
			assert.False(t, a.IsAlive())
			assert.Equal(t, kind, egg.Kind())
			assert.Equal(t, a.Center(), egg.Center())
			assert.Equal(t, float64(a.Facing())*env.Params.Egg.LaunchSpeed, egg.Vel.X)
			assert.Zero(t, egg.Vel.Y)
			assert.False(t, egg.IsGrounded())
		}
	}
}

func TestNewAdversaryTargetBand(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		env := newTestEnv(seed)
		a := NewAdversary(1, Patrol, core.V(300, 200), env)

		assert.GreaterOrEqual(t, a.Target().Y, 30.0)
		assert.LessOrEqual(t, a.Target().Y, 468.0)
		assert.Equal(t, float64(a.Facing())*2, a.Vel.X)
		assert.GreaterOrEqual(t, a.FlapInterval(), 8)
		assert.LessOrEqual(t, a.FlapInterval(), 16)
	}
}

func TestFlapCounterStaysInRange(t *testing.T) {
	env := newTestEnv(3, ledge(-20, 500, 640, 8), ledge(180, 196, 160, 8), ledge(210, 376, 120, 8))
	a := NewAdversary(1, Patrol, core.V(300, 480), env)

	for i := 0; i < 2000; i++ {
		a.Step(env, core.V(0, 0))
		require.GreaterOrEqual(t, a.FlapCounter(), 0)
		require.Less(t, a.FlapCounter(), a.FlapInterval(), "tick %d", i)
		if a.IsGrounded() {
			require.Zero(t, a.Vel.Y, "tick %d", i)
		}
	}
}

func TestAdversaryFlapsBelowTarget(t *testing.T) {
	env := newTestEnv(1)
	a := NewAdversary(1, Patrol, core.V(300, 400), env)
	a.target = core.V(0, 100)
	a.flapCounter = 0

	a.Step(env, core.V(0, 0))

	assert.Less(t, a.Vel.Y, 0.0)
	assert.Equal(t, AnimFlap, a.Anim())
	assert.False(t, a.IsGrounded())
}

func TestAdversaryAboveTargetDoesNotFlap(t *testing.T) {
	env := newTestEnv(1)
	a := NewAdversary(1, Patrol, core.V(300, 100), env)
	a.target = core.V(0, 400)
	a.flapCounter = 0

	a.Step(env, core.V(0, 0))

	assert.GreaterOrEqual(t, a.Vel.Y, 0.0)
	assert.NotEqual(t, AnimFlap, a.Anim())
}

func TestPursuitRetargetsCharacter(t *testing.T) {
	env := newTestEnv(1)
	hunter := NewAdversary(1, Pursuit, core.V(300, 200), env)
	bounder := NewAdversary(2, Patrol, core.V(300, 200), env)
	before := bounder.Target()

	ch := core.V(123, 456)
	hunter.Step(env, ch)
	bounder.Step(env, ch)

	assert.Equal(t, ch, hunter.Target())
	assert.Equal(t, before, bounder.Target())
}

func TestDeadAdversaryDoesNotMove(t *testing.T) {
	env := newTestEnv(1)
	a := NewAdversary(1, Elite, core.V(300, 200), env)
	a.Kill(env)
	box := a.Box

	a.Step(env, core.V(0, 0))

	assert.Equal(t, box, a.Box)
}
