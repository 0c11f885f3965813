package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-joust/internal/core"
)

func newTestEnv(seed int64, platforms ...Platform) *Env {
	return &Env{
		Platforms: platforms,
		Bounds:    Bounds{W: 600, H: 600},
		Params:    DefaultParams(60),
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func ledge(x, y, w, h float64) Platform {
	return Platform{Box: core.NewRectF(x, y, w, h)}
}

func TestPlatformSideContactReversesDirection(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		env := newTestEnv(seed, ledge(200, 300, 100, 8))

		// moving right into the left edge
		b := NewBody(core.NewRectF(180, 290, 24, 30), 0)
		b.Vel = core.V(3, 0)
		b.ApplyPlatformCollision(env)
		assert.Less(t, b.Vel.X, 0.0, "seed %d: left edge", seed)
		assert.GreaterOrEqual(t, b.Vel.X, -5.0)
		assert.LessOrEqual(t, b.Vel.X, -2.0)
		assert.Equal(t, 200.0, b.Box.Right())
		assert.Zero(t, b.Vel.Y)

		// moving left into the right edge
		b = NewBody(core.NewRectF(296, 290, 24, 30), 0)
		b.Vel = core.V(-3, 0)
		b.ApplyPlatformCollision(env)
		assert.Greater(t, b.Vel.X, 0.0, "seed %d: right edge", seed)
		assert.Equal(t, 300.0, b.Box.Left())
	}
}

func TestPlatformUndersideBouncesDown(t *testing.T) {
	env := newTestEnv(1, ledge(200, 300, 100, 8))
	b := NewBody(core.NewRectF(230, 305, 24, 30), 0)
	b.Vel = core.V(1.5, -2)

	b.ApplyPlatformCollision(env)

	assert.Equal(t, core.V(1.5, 1), b.Vel)
	assert.Equal(t, 308.0, b.Box.Top())
}

func TestBounceTop(t *testing.T) {
	env := newTestEnv(1)
	b := NewBody(core.NewRectF(100, -5, 24, 30), 0)
	b.Vel = core.V(0, -3)

	b.BounceTop(env)

	assert.Equal(t, 0.0, b.Box.Top())
	assert.InDelta(t, 2.0, b.Vel.Y, 1e-9)
}

func TestBodyLandsAndStaysGrounded(t *testing.T) {
	env := newTestEnv(1, ledge(200, 300, 200, 8))
	b := NewBody(core.RectFromCenter(core.V(300, 250), 24, 30), 12)
	b.liftOff()
	require.Equal(t, 18.0, b.Box.H)

	landed := false
	for i := 0; i < 300; i++ {
		b.Step(env)
		if b.IsGrounded() {
			require.Zero(t, b.Vel.Y, "tick %d", i)
			landed = true
		}
	}

	require.True(t, landed)
	assert.True(t, b.IsGrounded())
	assert.Equal(t, 30.0, b.Box.H, "full height restored on landing")
	assert.InDelta(t, 298.0, b.Box.Bottom(), 2.0)
}

func TestBodyWithoutPlatformsIsNeverGrounded(t *testing.T) {
	env := newTestEnv(1)
	b := NewBody(core.RectFromCenter(core.V(300, 100), 24, 30), 12)
	require.True(t, b.IsGrounded())

	for i := 0; i < 30; i++ {
		b.Step(env)
		require.False(t, b.IsGrounded(), "tick %d", i)
	}
	assert.Greater(t, b.Vel.Y, 0.0)
	assert.Equal(t, 18.0, b.Box.H)
}

func TestRisingBodyDoesNotLand(t *testing.T) {
	env := newTestEnv(1, ledge(0, 400, 600, 8))
	b := NewBody(core.NewRectF(300, 370, 24, 30), 12)
	b.Box.SetBottom(399)
	b.Step(env)
	require.True(t, b.IsGrounded())

	b.liftOff()
	b.Vel.Y = -1.5
	b.Step(env)

	assert.False(t, b.IsGrounded())
	assert.Less(t, b.Vel.Y, 0.0)
}

func TestResolveBoundaryWraps(t *testing.T) {
	bounds := Bounds{W: 600, H: 600}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"past right edge", 601, -24},
		{"past left edge", -30, 600},
		{"partly off right", 590, 590},
		{"partly off left", -10, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(core.NewRectF(tt.x, 100, 24, 30), 0)
			b.ResolveBoundary(bounds)
			assert.Equal(t, tt.expected, b.Box.X)
		})
	}
}

func TestGroundedInvariantEnforcement(t *testing.T) {
	t.Run("clamps when lenient", func(t *testing.T) {
		b := NewBody(core.NewRectF(0, 0, 10, 10), 0)
		b.Vel.Y = 1
		b.enforceGrounded()
		assert.Zero(t, b.Vel.Y)
	})

	t.Run("panics when strict", func(t *testing.T) {
		Strict = true
		defer func() { Strict = false }()

		b := NewBody(core.NewRectF(0, 0, 10, 10), 0)
		b.Vel.Y = 1
		assert.Panics(t, b.enforceGrounded)
	})
}
