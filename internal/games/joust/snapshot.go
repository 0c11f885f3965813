package joust

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the observable run state for replay checks and run logs.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	LivesLost int
	Wave      int
	Cycle     int
	State     string
	Mode      int // 0=Campaign, 1=Endless
	EggValue  int
	LavaLevel float64
	Pending   int

	// Character: X, Y, VX, VY of the box
	Character [4]float64

	// Each adversary is 6 values: ID, Kind, X, Y, VX, VY
	AdversaryCount int
	AdversaryData  []float64

	// Each lifecycle is 8 values: State, Kind, egg X, egg Y, then the
	// carrier's X, Y, VX, VY (zero while there is none)
	LifecycleCount int
	LifecycleData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	advData := make([]float64, 0, len(g.adversaries)*6)
	for _, a := range g.adversaries {
		advData = append(advData, float64(a.ID), float64(a.Kind()), a.Box.X, a.Box.Y, a.Vel.X, a.Vel.Y)
	}

	lcData := make([]float64, 0, len(g.lifecycles)*8)
	for _, l := range g.lifecycles {
		egg := l.Egg().Box
		lcData = append(lcData, float64(l.State()), float64(l.Kind()), egg.X, egg.Y)

		var carrier [4]float64
		if c := l.Carrier(); c != nil {
			carrier = [4]float64{c.Box.X, c.Box.Y, c.Vel.X, c.Vel.Y}
		}
		lcData = append(lcData, carrier[:]...)
	}

	ch := g.character
	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:     g.score,
		Lives:     g.lives,
		LivesLost: g.livesLost,
		Wave:      g.wave,
		Cycle:     g.cycle,
		State:     g.state,
		Mode:      int(g.mode),
		EggValue:  g.resolver.EggValue(),
		LavaLevel: g.hazard.Height(),
		Pending:   len(g.pending),

		Character: [4]float64{ch.Box.X, ch.Box.Y, ch.Vel.X, ch.Vel.Y},

		AdversaryCount: len(g.adversaries),
		AdversaryData:  advData,
		LifecycleCount: len(g.lifecycles),
		LifecycleData:  lcData,
	}
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = d.Write(buf[:])
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	binary.LittleEndian.PutUint64(buf[:], snap.Tick)
	_, _ = d.Write(buf[:])
	putInt(snap.Score)
	putInt(snap.Lives)
	putInt(snap.LivesLost)
	putInt(snap.Wave)
	putInt(snap.Cycle)
	putInt(snap.Mode)
	putInt(snap.EggValue)
	putInt(snap.Pending)
	putFloat(snap.LavaLevel)
	_, _ = d.WriteString(snap.State)

	for _, v := range snap.Character {
		putFloat(v)
	}

	putInt(snap.AdversaryCount)
	for _, v := range snap.AdversaryData {
		putFloat(v)
	}

	putInt(snap.LifecycleCount)
	for _, v := range snap.LifecycleData {
		putFloat(v)
	}

	return d.Sum64()
}

// StateHash returns the hash of the current snapshot.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
