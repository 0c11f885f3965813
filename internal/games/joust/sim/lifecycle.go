package sim

import (
	"github.com/vovakirdan/tui-joust/internal/core"
)

// LifecycleState is the phase of an egg's way back to a live rider.
type LifecycleState int

const (
	StateEggOnly LifecycleState = iota
	StateEggAndCarrier
	// StateMountOnly: the egg hatched before any carrier was called.
	StateMountOnly
	StateCarrierAndMount
	StateDestroyedNoCarrier
	StateDestroyedCarrierLeaving
	// StateSpawned: the rider remounted and was handed to the driver.
	StateSpawned
)

func (s LifecycleState) String() string {
	switch s {
	case StateEggOnly:
		return "EggOnly"
	case StateEggAndCarrier:
		return "EggAndCarrier"
	case StateMountOnly:
		return "MountOnly"
	case StateCarrierAndMount:
		return "CarrierAndMount"
	case StateDestroyedNoCarrier:
		return "Destroyed_NoCarrier"
	case StateDestroyedCarrierLeaving:
		return "Destroyed_CarrierLeaving"
	case StateSpawned:
		return "Spawned"
	default:
		return "Unknown"
	}
}

// SignalKind classifies a lifecycle step result.
type SignalKind int

const (
	SignalNone SignalKind = iota
	// SignalSpawnReady: materialize a live rider and drop the controller.
	SignalSpawnReady
	// SignalTerminal: drop the controller.
	SignalTerminal
)

// LifecycleSignal is the result of one Lifecycle.Step.
type LifecycleSignal struct {
	Kind     SignalKind
	Type     Kind
	Position core.Vec2 // rider center for SignalSpawnReady
}

// EntityKind identifies what a renderable handle shows.
type EntityKind int

const (
	EntityEgg EntityKind = iota
	EntityCarrier
	EntityMount
)

// Entity is a read-only render handle.
type Entity struct {
	Kind   EntityKind
	Rider  Kind
	Box    core.RectF
	Facing Facing
	Anim   AnimState
}

// Lifecycle owns one egg, at most one carrier and at most one hatched-rider
// placeholder, and sequences them from laying to remount or destruction.
type Lifecycle struct {
	state LifecycleState
	kind  Kind

	egg        *Egg
	eggVisible bool

	carrier *Carrier

	mount        *core.RectF
	mountVisible bool

	riderHeight float64
	mountW      float64
	mountH      float64
	mountOffset float64
}

// NewLifecycle takes ownership of egg.
func NewLifecycle(egg *Egg, env *Env) *Lifecycle {
	p := env.Params
	return &Lifecycle{
		state:       StateEggOnly,
		kind:        egg.Kind(),
		egg:         egg,
		eggVisible:  true,
		riderHeight: p.Adversary.Height,
		mountW:      p.Egg.MountWidth,
		mountH:      p.Egg.MountHeight,
		mountOffset: p.Egg.MountOffset,
	}
}

func (l *Lifecycle) State() LifecycleState { return l.state }
func (l *Lifecycle) Kind() Kind            { return l.kind }
func (l *Lifecycle) Egg() *Egg             { return l.egg }
func (l *Lifecycle) Carrier() *Carrier     { return l.carrier }

// Done reports whether the controller reached a terminal state.
func (l *Lifecycle) Done() bool {
	return l.state == StateDestroyedNoCarrier || l.state == StateSpawned
}

// anchor is the carrier's handle on the egg slot: the egg until it hatches,
// then the placeholder. A retired egg stays readable.
func (l *Lifecycle) anchor() core.Vec2 {
	if l.mount != nil {
		return l.mount.Center()
	}
	return l.egg.Center()
}

// Step advances the owned bodies by one tick and applies the transition
// their signals call for. characterPos is accepted for symmetry with
// Adversary.Step; carriers ignore the character.
func (l *Lifecycle) Step(env *Env, characterPos core.Vec2) LifecycleSignal {
	switch l.state {
	case StateEggOnly:
		switch l.egg.Step(env) {
		case EggHatched:
			l.hatch()
			l.state = StateMountOnly
		case EggCarrierRequested:
			l.carrier = NewCarrier(l.anchor, env)
			l.state = StateEggAndCarrier
		}

	case StateEggAndCarrier:
		cs := l.carrier.Step(env)
		es := l.egg.Step(env)
		if cs != CarrierNone || es == EggHatched {
			l.hatch()
			l.state = StateCarrierAndMount
		}

	case StateMountOnly:
		l.carrier = NewCarrier(l.anchor, env)
		l.state = StateCarrierAndMount

	case StateCarrierAndMount:
		if l.carrier.Step(env) == CarrierMountRequested {
			pos := l.spawnPosition()
			l.state = StateSpawned
			l.mountVisible = false
			l.carrier = nil
			return LifecycleSignal{Kind: SignalSpawnReady, Type: l.kind, Position: pos}
		}

	case StateDestroyedCarrierLeaving:
		l.carrier.Step(env)
		if l.carrier.OffScreen() {
			l.carrier = nil
			l.state = StateDestroyedNoCarrier
			return LifecycleSignal{Kind: SignalTerminal}
		}

	case StateDestroyedNoCarrier, StateSpawned:
		return LifecycleSignal{Kind: SignalTerminal}
	}

	return LifecycleSignal{Kind: SignalNone}
}

// hatch retires the egg and puts the placeholder in its slot.
func (l *Lifecycle) hatch() {
	l.eggVisible = false
	if l.mount == nil {
		c := l.egg.Center()
		c.Y -= l.mountOffset
		box := core.RectFromCenter(c, l.mountW, l.mountH)
		l.mount = &box
	}
	l.mountVisible = true
}

// spawnPosition stands the new rider on the placeholder's feet.
func (l *Lifecycle) spawnPosition() core.Vec2 {
	return core.V(l.mount.Center().X, l.mount.Bottom()-l.riderHeight/2)
}

// Destroy is called when the character grabs the egg or placeholder. Without
// a carrier the controller ends at once; otherwise the carrier flies off
// first. Calling Destroy on a destroyed or spawned controller does nothing.
func (l *Lifecycle) Destroy() {
	switch l.state {
	case StateDestroyedNoCarrier, StateDestroyedCarrierLeaving, StateSpawned:
		return
	}

	l.eggVisible = false
	l.mountVisible = false
	if l.carrier == nil {
		l.state = StateDestroyedNoCarrier
		return
	}
	l.carrier.FlyOff()
	l.state = StateDestroyedCarrierLeaving
}

// Sink removes the controller outright, carrier included. Used when the egg
// falls into the hazard.
func (l *Lifecycle) Sink() {
	if l.state == StateSpawned {
		return
	}
	l.eggVisible = false
	l.mountVisible = false
	l.carrier = nil
	l.state = StateDestroyedNoCarrier
}

// EggBox returns the egg-shaped collidable: the egg before hatching, the
// placeholder after. At most one of them is ever visible.
func (l *Lifecycle) EggBox() (core.RectF, bool) {
	switch {
	case l.eggVisible:
		return l.egg.Box, true
	case l.mountVisible:
		return *l.mount, true
	}
	return core.RectF{}, false
}

// VisibleEntities returns render handles in draw order: egg, carrier, placeholder.
func (l *Lifecycle) VisibleEntities() []Entity {
	var out []Entity
	if l.eggVisible {
		out = append(out, Entity{Kind: EntityEgg, Rider: l.kind, Box: l.egg.Box})
	}
	if l.carrier != nil {
		out = append(out, Entity{
			Kind:   EntityCarrier,
			Rider:  l.kind,
			Box:    l.carrier.Box,
			Facing: l.carrier.Facing(),
			Anim:   l.carrier.Anim(),
		})
	}
	if l.mountVisible {
		out = append(out, Entity{Kind: EntityMount, Rider: l.kind, Box: *l.mount})
	}
	return out
}
