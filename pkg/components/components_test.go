package components

import "testing"

func TestDirectionUnit(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantX  float64
		wantY  float64
		wantID string
	}{
		{name: "向上", dir: DirectionUp, wantX: 0, wantY: -1, wantID: "up"},
		{name: "向左", dir: DirectionLeft, wantX: -1, wantY: 0, wantID: "left"},
		{name: "向右", dir: DirectionRight, wantX: 1, wantY: 0, wantID: "right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.dir.Unit()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Unit() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
			// 只有一个轴非零
			if x != 0 && y != 0 {
				t.Error("direction must have exactly one nonzero axis")
			}
			if tt.dir.String() != tt.wantID {
				t.Errorf("String() = %q, want %q", tt.dir.String(), tt.wantID)
			}
		})
	}
}

func TestAnimationStateString(t *testing.T) {
	if AnimIdle.String() != "turn" || AnimLeft.String() != "left" || AnimRight.String() != "right" {
		t.Errorf("unexpected animation keys: %s %s %s", AnimIdle, AnimLeft, AnimRight)
	}
}

func TestBodyGrounded(t *testing.T) {
	body := &BodyComponent{Active: true}
	if body.Grounded() {
		t.Error("body without contacts should not be grounded")
	}

	// 世界边界不计入落地
	body.Blocked.Down = true
	if body.Grounded() {
		t.Error("world bounds contact should not count as grounded")
	}

	body.Touching.Down = true
	if !body.Grounded() {
		t.Error("body touching platform below should be grounded")
	}

	body.Active = false
	if body.Grounded() {
		t.Error("inactive body should never be grounded")
	}
}
