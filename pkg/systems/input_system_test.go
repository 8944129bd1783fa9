package systems

import (
	"testing"

	"github.com/gonewx/carnival/pkg/components"
	"github.com/gonewx/carnival/pkg/ecs"
	"github.com/gonewx/carnival/pkg/entities"
)

// fakeTapHandler 记录收到的场地坐标
type fakeTapHandler struct {
	taps [][2]float64
}

func (f *fakeTapHandler) HandleTap(x, y float64) TapOutcome {
	f.taps = append(f.taps, [2]float64{x, y})
	return TapOutcome{}
}

func TestScreenToField(t *testing.T) {
	tests := []struct {
		sx, sy int
		x, y   float64
	}{
		{0, 0, 0, 768},
		{512, 384, 512, 384},
		{1024, 768, 1024, 0},
		{512, 559, 512, 209},
	}
	for _, tt := range tests {
		x, y := ScreenToField(tt.sx, tt.sy)
		if x != tt.x || y != tt.y {
			t.Errorf("ScreenToField(%d, %d) = (%v, %v), want (%v, %v)", tt.sx, tt.sy, x, y, tt.x, tt.y)
		}
	}
}

func TestInputSystemDispatchTap(t *testing.T) {
	handler := &fakeTapHandler{}
	system := NewInputSystem(ecs.NewEntityManager(), handler)

	system.DispatchTap(100, 668)
	system.DispatchTap(900, 168)

	if system.TapCount() != 2 || len(handler.taps) != 2 {
		t.Fatalf("TapCount=%d handler taps=%d, want 2", system.TapCount(), len(handler.taps))
	}
	if handler.taps[0] != [2]float64{100, 100} || handler.taps[1] != [2]float64{900, 600} {
		t.Errorf("Field taps = %v", handler.taps)
	}
}

// TestInputSystemDispatchToResolver 屏幕点击经过坐标转换后命中靶子
func TestInputSystemDispatchToResolver(t *testing.T) {
	w := newTestWorld(1, 0)
	system := NewInputSystem(w.em, w.resolver)
	w.scheduler.Start()
	id := spawnAt(t, w, "duck", 300, 600)

	outcome := system.DispatchTap(300, 168)
	if len(outcome.Hits) != 1 || outcome.Hits[0] != id {
		t.Errorf("Hits = %v, want [%d]", outcome.Hits, id)
	}
}

func TestInputSystemHover(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewInputSystem(em, &fakeTapHandler{})
	buttonID, err := entities.NewStartButtonEntity(em, 512, 209, 360, 90, "Start Game")
	if err != nil {
		t.Fatalf("NewStartButtonEntity failed: %v", err)
	}
	ui, _ := ecs.GetComponent[*components.UIComponent](em, buttonID)

	system.updateHover(512, 559)
	if ui.State != components.UIHovered {
		t.Errorf("State over button = %v, want hovered", ui.State)
	}

	system.updateHover(10, 10)
	if ui.State != components.UINormal {
		t.Errorf("State off button = %v, want normal", ui.State)
	}

	ui.State = components.UIHidden
	system.updateHover(512, 559)
	if ui.State != components.UIHidden {
		t.Error("Hidden button must stay hidden")
	}
}
