package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFlap) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFlap)
	f.Set(ActionLeft)
	if !f.Has(ActionFlap) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as set")
	}

	f.Clear()
	if f.Has(ActionFlap) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionFlap) {
		t.Error("zero frame should report nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionRight: "Right",
		ActionFlap:  "Flap",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
