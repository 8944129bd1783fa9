package motion

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestBounceTranslate(t *testing.T) {
	profile := BounceTranslate(1125, 3, 1, 0.25)
	origin := Point{X: -100, Y: 600}

	tests := []struct {
		elapsed  float64
		wantX    float64
		wantRot  float64
		finished bool
	}{
		{0, -100, 0, false},
		{0.125, -100 + 1225*0.125/3, 0.5, false},
		{0.25, -100 + 1225*0.25/3, 1, false},
		{0.5, -100 + 1225*0.5/3, 0, false},
		{0.75, -100 + 1225*0.75/3, -1, false},
		{1.5, 512.5, 0, false},
		{3, 1125, 0, true},
		{10, 1125, 0, true},
	}

	for _, tt := range tests {
		pose := profile.Evaluate(origin, tt.elapsed)
		if !approxEqual(pose.X, tt.wantX) {
			t.Errorf("t=%v: X = %v, want %v", tt.elapsed, pose.X, tt.wantX)
		}
		if pose.Y != 600 {
			t.Errorf("t=%v: Y should stay on the lane, got %v", tt.elapsed, pose.Y)
		}
		if !approxEqual(pose.Rotation, tt.wantRot) {
			t.Errorf("t=%v: Rotation = %v, want %v", tt.elapsed, pose.Rotation, tt.wantRot)
		}
		if pose.Finished != tt.finished {
			t.Errorf("t=%v: Finished = %v, want %v", tt.elapsed, pose.Finished, tt.finished)
		}
	}

	if !profile.IsOneShot() {
		t.Error("BounceTranslate should be one-shot")
	}
}

func TestRotateTranslate(t *testing.T) {
	profile := RotateTranslate(-101, 6, 1)
	origin := Point{X: 1124, Y: 400}

	pose := profile.Evaluate(origin, 3)
	if !approxEqual(pose.X, 1124+(-101-1124)*0.5) {
		t.Errorf("Halfway X = %v", pose.X)
	}
	if !approxEqual(pose.Rotation, 3) {
		t.Errorf("Rotation should grow 1 rad/s, got %v", pose.Rotation)
	}

	end := profile.Evaluate(origin, 6)
	if end.X != -101 || !end.Finished {
		t.Errorf("End pose = %+v, want X=-101 finished", end)
	}
}

func TestHopSequence(t *testing.T) {
	profile := HopSequence(200, 50, 0.25)
	origin := Point{X: -100, Y: 200}

	tests := []struct {
		elapsed float64
		wantX   float64
		wantY   float64
	}{
		{0, -100, 200},
		{0.125, 0, 200},
		{0.25, 100, 200},
		{0.5, 100, 200}, // 停顿
		{0.625, 100, 225},
		{0.75, 100, 250},
		{1.0, 100, 200},
		{1.125, 200, 200},
		{6.0, -100 + 6*200, 200},
	}

	for _, tt := range tests {
		pose := profile.Evaluate(origin, tt.elapsed)
		if !approxEqual(pose.X, tt.wantX) || !approxEqual(pose.Y, tt.wantY) {
			t.Errorf("t=%v: pose = (%v, %v), want (%v, %v)", tt.elapsed, pose.X, pose.Y, tt.wantX, tt.wantY)
		}
		if pose.Finished {
			t.Errorf("t=%v: hop sequence repeats forever and never finishes", tt.elapsed)
		}
	}

	if profile.IsOneShot() {
		t.Error("HopSequence should not be one-shot")
	}
	if profile.CycleDuration() != 1.0 {
		t.Errorf("CycleDuration() = %v, want 1.0", profile.CycleDuration())
	}
}

func TestBounceFall(t *testing.T) {
	profile := BounceFall(-101, 2, 1, 0.25)
	origin := Point{X: 300, Y: 868}

	pose := profile.Evaluate(origin, 1)
	if pose.X != 300 {
		t.Errorf("Drop should fall straight down, X = %v", pose.X)
	}
	if !approxEqual(pose.Y, 383.5) {
		t.Errorf("Halfway Y = %v, want 383.5", pose.Y)
	}

	end := profile.Evaluate(origin, 2)
	if end.Y != -101 || !end.Finished {
		t.Errorf("End pose = %+v", end)
	}
}

func TestSwayReturnsToOrigin(t *testing.T) {
	for _, mirrored := range []bool{false, true} {
		profile := Sway(16, 25, 0.5, mirrored)
		origin := Point{X: 0, Y: 540}

		pose := profile.Evaluate(origin, profile.CycleDuration())
		if !approxEqual(pose.X, 0) || !approxEqual(pose.Y, 540) {
			t.Errorf("mirrored=%v: pose after one cycle = (%v, %v), want origin", mirrored, pose.X, pose.Y)
		}

		peak := profile.Evaluate(origin, 0.5)
		wantX := 16.0
		if mirrored {
			wantX = -16
		}
		if !approxEqual(peak.X, wantX) || !approxEqual(peak.Y, 565) {
			t.Errorf("mirrored=%v: peak = (%v, %v)", mirrored, peak.X, peak.Y)
		}
	}
}

func TestEvaluateNegativeElapsedClamps(t *testing.T) {
	profile := BounceTranslate(1125, 3, 1, 0.25)
	pose := profile.Evaluate(Point{X: -100, Y: 600}, -1)
	if pose.X != -100 || pose.Rotation != 0 {
		t.Errorf("Negative elapsed should behave as 0, got %+v", pose)
	}
}
