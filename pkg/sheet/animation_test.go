package sheet

import "testing"

func settle(t *testing.T, a *animator) int {
	t.Helper()
	for frames := 1; frames <= 600; frames++ {
		if !a.step() {
			return frames
		}
	}
	t.Fatalf("spring did not settle: pos=%v vel=%v target=%v", a.pos, a.vel, a.target)
	return 0
}

func TestAnimatorSettles(t *testing.T) {
	a := newAnimator(DefaultSpring())
	a.jumpTo(25)
	if !a.animateTo(3) {
		t.Fatal("expected a new frame loop")
	}
	if !a.running {
		t.Fatal("animator should be running")
	}
	settle(t, &a)
	if a.pos != 3 || a.vel != 0 || a.running {
		t.Errorf("settled state pos=%v vel=%v running=%v", a.pos, a.vel, a.running)
	}
}

func TestAnimatorRetargetKeepsLoop(t *testing.T) {
	a := newAnimator(DefaultSpring())
	a.jumpTo(0)
	a.animateTo(100)
	loop := a.loop
	a.step()
	if a.animateTo(50) {
		t.Error("retarget while running must not start a second loop")
	}
	if a.loop != loop || a.target != 50 {
		t.Errorf("loop=%d target=%v", a.loop, a.target)
	}
	settle(t, &a)
	if a.pos != 50 {
		t.Errorf("pos = %v, want 50", a.pos)
	}
}

func TestAnimatorAlreadyAtTarget(t *testing.T) {
	a := newAnimator(DefaultSpring())
	a.jumpTo(10)
	if a.animateTo(10) {
		t.Error("no loop needed when already at rest on target")
	}
}

func TestAnimatorStaleFrames(t *testing.T) {
	a := newAnimator(DefaultSpring())
	a.jumpTo(0)
	a.animateTo(10)
	old := frameMsg{loop: a.loop}
	a.jumpTo(10)
	a.animateTo(20)
	if a.current(old) {
		t.Error("frame from a cancelled loop accepted")
	}
	if !a.current(frameMsg{loop: a.loop}) {
		t.Error("frame from the running loop rejected")
	}
}

func TestAnimatorZeroFPS(t *testing.T) {
	a := newAnimator(Spring{Stiffness: 300, Damping: 30, FPS: 0})
	if a.interval <= 0 {
		t.Errorf("interval = %v, want positive", a.interval)
	}
}
