package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Press("up")
	f.Press("b")
	if !f.Has(ActionJump) {
		t.Error("Set(ActionJump) not recorded")
	}
	if len(f.Keys) != 2 || f.Keys[0] != "up" || f.Keys[1] != "b" {
		t.Errorf("Keys = %v, expected [up b]", f.Keys)
	}

	f.Clear()
	if f.Has(ActionJump) || len(f.Keys) != 0 {
		t.Error("Clear should drop actions and keys")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
