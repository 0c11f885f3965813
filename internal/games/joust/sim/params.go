// Package sim is the Joust simulation core: moving bodies, the adversary
// behaviors, the egg/carrier/mount lifecycle and the per-tick combat pass.
//
// Everything here is tick-driven and single-threaded. All randomness comes
// through the Rand carried by Env, so a run is reproducible from its seed.
package sim

import (
	"github.com/vovakirdan/tui-joust/internal/core"
)

// Bounds is the size of the play field in world units. Y grows downward.
type Bounds struct {
	W, H float64
}

// Rand is the random source threaded through every call that draws.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// randRange returns a uniform integer in [lo, hi].
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// randSign returns -1 or +1 with equal probability.
func randSign(r Rand) float64 {
	if r.Intn(2) == 0 {
		return -1
	}
	return 1
}

// PhysicsParams are the constants of the shared body pipeline.
type PhysicsParams struct {
	Gravity             float64 // added to vy each airborne tick
	AirborneHeightDelta float64 // box height lost while airborne
	ScatterMin          int     // side-bounce scatter range, inclusive
	ScatterMax          int
	TopBounceDivisor    float64 // vy = |vy|/divisor + 1 on ceiling contact
	FloorDampMargin     float64 // flyers within this distance of the bottom stop falling
}

// AdversaryParams configure Patrol, Pursuit and Elite riders.
type AdversaryParams struct {
	Width, Height   float64
	Speed           float64 // initial horizontal speed
	FlapImpulse     float64
	FlapIntervalMin int
	FlapIntervalMax int
	TargetBandMin   float64 // patrol target height band, fractions of field height
	TargetBandMax   float64
}

// CarrierParams configure the bird that comes to collect a hatched rider.
type CarrierParams struct {
	Width, Height  float64
	FlapInterval   int
	FlySpeed       float64
	WalkSpeed      float64
	FlyOffSpeed    float64
	SpawnAbove     float64 // spawn height above the egg
	ApproachMin    int     // landing offset from the egg, inclusive range
	ApproachMax    int
	ArriveDistance float64 // horizontal distance that counts as "at the target"
	MountDistance  float64
	FlyOffMargin   float64 // distance past the screen edge to retarget to
	EdgeMargin     float64 // clamp distance for landing targets
	DiveThreshold  float64 // flap when falling faster than this above the target
	RandomFlapOdds int     // 1-in-N chance of a flap while above the target
	PlatformReach  float64 // max distance between egg center and platform top

	PatienceSeconds int     // approach time before the carrier starts phasing
	DropHeight      float64 // a phasing carrier drops from this far above its landing spot
}

// EggParams configure eggs and the hatched mount placeholder.
type EggParams struct {
	Width, Height     float64
	LaunchSpeed       float64 // horizontal speed of an egg dropped by a kill
	Friction          float64
	HatchMinSeconds   int
	HatchMaxSeconds   int
	CarrierMinSeconds int
	CarrierMaxSeconds int
	MountWidth        float64
	MountHeight       float64
	MountOffset       float64 // placeholder sits this far above the egg center
}

// CharacterParams configure the player-controlled rider.
type CharacterParams struct {
	Width, Height     float64
	Accel             float64
	MaxSpeed          float64
	Friction          float64
	GroundFlap        float64
	AirFlap           float64
	RespawnFreeze     int // ticks frozen after respawn
	InvulnerableTicks int
}

// CombatParams configure the combat pass and point awards.
type CombatParams struct {
	ContactScale     float64 // delta = (adversary - character) / ContactScale
	LevelPushX       float64 // horizontal multiplier for a glancing bounce
	KillRewards      [3]int  // Patrol, Pursuit, Elite
	EggBase          int
	EggStep          int
	EggMax           int
	AirborneEggBonus int
}

// Params gathers every tunable constant the core uses.
type Params struct {
	TickRate  int
	Physics   PhysicsParams
	Adversary AdversaryParams
	Carrier   CarrierParams
	Egg       EggParams
	Character CharacterParams
	Combat    CombatParams
}

// DefaultParams returns the arcade tuning for a 600x600 field at the given tick rate.
func DefaultParams(tickRate int) Params {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Params{
		TickRate: tickRate,
		Physics: PhysicsParams{
			Gravity:             0.049,
			AirborneHeightDelta: 12,
			ScatterMin:          1,
			ScatterMax:          4,
			TopBounceDivisor:    3,
			FloorDampMargin:     50,
		},
		Adversary: AdversaryParams{
			Width:           24,
			Height:          30,
			Speed:           2,
			FlapImpulse:     0.72,
			FlapIntervalMin: 8,
			FlapIntervalMax: 16,
			TargetBandMin:   0.05,
			TargetBandMax:   0.78,
		},
		Carrier: CarrierParams{
			Width:          24,
			Height:         26,
			FlapInterval:   8,
			FlySpeed:       2,
			WalkSpeed:      1,
			FlyOffSpeed:    4,
			SpawnAbove:     50,
			ApproachMin:    10,
			ApproachMax:    30,
			ArriveDistance: 2,
			MountDistance:  5,
			FlyOffMargin:   20,
			EdgeMargin:     10,
			DiveThreshold:  2,
			RandomFlapOdds: 10,
			PlatformReach:  20,

			PatienceSeconds: 10,
			DropHeight:      30,
		},
		Egg: EggParams{
			Width:             12,
			Height:            12,
			LaunchSpeed:       2,
			Friction:          0.24,
			HatchMinSeconds:   12,
			HatchMaxSeconds:   16,
			CarrierMinSeconds: 7,
			CarrierMaxSeconds: 12,
			MountWidth:        12,
			MountHeight:       16,
			MountOffset:       2,
		},
		Character: CharacterParams{
			Width:             24,
			Height:            30,
			Accel:             0.24,
			MaxSpeed:          6,
			Friction:          0.15,
			GroundFlap:        1.5,
			AirFlap:           0.9,
			RespawnFreeze:     tickRate / 4,
			InvulnerableTicks: tickRate * 5,
		},
		Combat: CombatParams{
			ContactScale:     12,
			LevelPushX:       1.5,
			KillRewards:      [3]int{500, 750, 1500},
			EggBase:          250,
			EggStep:          250,
			EggMax:           1000,
			AirborneEggBonus: 500,
		},
	}
}

// Platform is a static ledge. Platforms are read-only inputs to collision.
type Platform struct {
	Box      core.RectF
	HasSpawn bool
	Spawn    core.Vec2 // center of a rider spawned here
}

// Env is the read-only per-tick input shared by every step call.
type Env struct {
	Platforms []Platform
	Bounds    Bounds
	Params    Params
	Rand      Rand
}

// SpawnPoints returns the spawn coordinates of the active platforms in order.
func (e *Env) SpawnPoints() []core.Vec2 {
	var pts []core.Vec2
	for _, p := range e.Platforms {
		if p.HasSpawn {
			pts = append(pts, p.Spawn)
		}
	}
	return pts
}
