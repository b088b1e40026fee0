package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRight)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRight, ActionLeft}
	if len(f.Actions) != len(want) {
		t.Fatalf("len(Actions) = %d, expected %d", len(f.Actions), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}

	if got := f.Count(ActionLeft); got != 2 {
		t.Errorf("Count(Left) = %d, expected 2", got)
	}
	if !f.Has(ActionRight) {
		t.Error("Has(Right) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(Pause) should be false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionSound, "Sound"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
