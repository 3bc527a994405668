package core

import "testing"

func TestInputFrameQueries(t *testing.T) {
	f := Tap(ButtonUp, ButtonA)

	if !f.IsJustPressed(ButtonUp) || !f.IsPressed(ButtonUp) {
		t.Error("Tap should mark Up as pressed and held")
	}
	if f.IsJustPressed(ButtonDown) {
		t.Error("Down was not tapped")
	}

	f.Release(ButtonA)
	if f.IsPressed(ButtonA) || f.IsJustPressed(ButtonA) {
		t.Error("Release should clear held and pressed")
	}
	if !f.IsJustReleased(ButtonA) {
		t.Error("Release should mark A as just released")
	}
}

func TestInputFrameEmpty(t *testing.T) {
	if !NewInputFrame().Empty() {
		t.Error("new frame should be empty")
	}
	var f InputFrame
	f.Hold(ButtonB)
	if f.Empty() || f.IsJustPressed(ButtonB) {
		t.Error("Hold should set held without a fresh press")
	}
}

func TestInputTrackerHoldAndRelease(t *testing.T) {
	tr := NewInputTracker(2)
	tr.Hit(ButtonB)

	f1 := tr.Next()
	if !f1.IsJustPressed(ButtonB) || !f1.IsPressed(ButtonB) {
		t.Fatal("first frame should report B just pressed")
	}

	f2 := tr.Next()
	if f2.IsJustPressed(ButtonB) || !f2.IsPressed(ButtonB) {
		t.Fatal("second frame should report B held only")
	}

	f3 := tr.Next()
	if f3.IsPressed(ButtonB) || !f3.IsJustReleased(ButtonB) {
		t.Fatal("third frame should report B released")
	}

	f4 := tr.Next()
	if !f4.Empty() {
		t.Fatal("fourth frame should be empty")
	}
}

func TestInputTrackerRepeatIsFreshPress(t *testing.T) {
	tr := NewInputTracker(3)
	tr.Hit(ButtonUp)
	tr.Next()
	tr.Hit(ButtonUp)

	f := tr.Next()
	if !f.IsJustPressed(ButtonUp) {
		t.Error("auto-repeat should be reported as a fresh press")
	}
	if f.IsJustReleased(ButtonUp) {
		t.Error("button held across repeat should not be released")
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := NewInputTracker(5)
	tr.Hit(ButtonLeft)
	tr.Reset()

	if f := tr.Next(); !f.Empty() {
		t.Error("Reset should drop pending input")
	}
}

func TestButtonString(t *testing.T) {
	if ButtonMenu.String() != "Menu" {
		t.Errorf("ButtonMenu.String() = %q", ButtonMenu.String())
	}
	if Button(200).String() != "Unknown" {
		t.Error("out of range button should be Unknown")
	}
}
