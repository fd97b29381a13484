package physics

import (
	"math"
	"testing"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/ecs"
)

const testDT = 1.0 / 60.0

func newTestWorld() (*World, *ecs.EntityManager) {
	em := ecs.NewEntityManager()
	return NewWorld(em, 800, 600, 300), em
}

func position(em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	return pos
}

func velocity(em *ecs.EntityManager, id ecs.EntityID) *components.VelocityComponent {
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	return vel
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b rect
		want bool
	}{
		{name: "完全重叠", a: rect{0, 10, 0, 10}, b: rect{0, 10, 0, 10}, want: true},
		{name: "部分重叠", a: rect{0, 10, 0, 10}, b: rect{5, 15, 5, 15}, want: true},
		{name: "边界刚好接触", a: rect{0, 10, 0, 10}, b: rect{10, 20, 0, 10}, want: false},
		{name: "水平分离", a: rect{0, 10, 0, 10}, b: rect{20, 30, 0, 10}, want: false},
		{name: "垂直分离", a: rect{0, 10, 0, 10}, b: rect{0, 10, 20, 30}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStep_GravityIntegration(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupCollectible, 100, 100, 10, 10)

	w.Step(0.5)

	vel := velocity(em, id)
	if vel.VY != 150 {
		t.Errorf("VY = %v, want 150 after 0.5s of gravity 300", vel.VY)
	}
	if pos := position(em, id); pos.Y != 175 {
		t.Errorf("Y = %v, want 175", pos.Y)
	}
}

func TestStep_NoGravityBody(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupHazard, 100, 100, 10, 10)
	w.SetAllowGravity(id, false)
	w.SetVelocity(id, 50, 20)

	w.Step(1)

	pos := position(em, id)
	if pos.X != 150 || pos.Y != 120 {
		t.Errorf("position = (%v, %v), want (150, 120)", pos.X, pos.Y)
	}
}

func TestStep_WorldBoundsReport(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupProjectile, 400, 10, 8, 8)
	w.SetAllowGravity(id, false)
	w.SetCollideWorldBounds(id, true, true)
	w.SetVelocityY(id, -400)

	contacts := w.Step(testDT)

	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if c.Kind != ContactWorldBounds || c.A != id || c.GroupB != components.GroupWorldBounds {
		t.Errorf("unexpected contact %+v", c)
	}
	if pos := position(em, id); pos.Y != 4 {
		t.Errorf("Y = %v, want clamped to 4", pos.Y)
	}
}

func TestStep_WorldBoundsElasticBounce(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupHazard, 795, 300, 14, 14)
	w.SetAllowGravity(id, false)
	w.SetBounce(id, 1, 1)
	w.SetCollideWorldBounds(id, true, false)
	w.SetVelocity(id, 200, 0)

	contacts := w.Step(testDT)

	if len(contacts) != 0 {
		t.Errorf("bounds without report should not produce contacts, got %d", len(contacts))
	}
	if vel := velocity(em, id); vel.VX != -200 {
		t.Errorf("VX = %v, want -200 after elastic bounce", vel.VX)
	}
}

func TestStep_LandOnPlatform(t *testing.T) {
	w, em := newTestWorld()
	w.AddCollider(components.GroupPlayer, components.GroupPlatform)

	platform := w.CreateStaticBody(components.GroupPlatform, 400, 568, 800, 64)
	player := w.CreateBody(components.GroupPlayer, 100, 500, 32, 48)

	var sawSolid bool
	for i := 0; i < 120; i++ {
		for _, c := range w.Step(testDT) {
			if c.Kind == ContactSolid && c.A == player && c.B == platform {
				sawSolid = true
			}
		}
	}

	if !sawSolid {
		t.Error("expected player-platform solid contact")
	}
	body, _ := ecs.GetComponent[*components.BodyComponent](em, player)
	if !body.Grounded() {
		t.Error("player resting on platform should be grounded")
	}
	// 平台顶部 536，玩家半高 24
	if pos := position(em, player); math.Abs(pos.Y-512) > 0.5 {
		t.Errorf("player Y = %v, want ~512", pos.Y)
	}
	if pos := position(em, platform); pos.Y != 568 {
		t.Errorf("static platform moved to %v", pos.Y)
	}
}

func TestStep_OverlapDoesNotCorrect(t *testing.T) {
	w, em := newTestWorld()
	w.AddOverlap(components.GroupPlayer, components.GroupCollectible)

	player := w.CreateBody(components.GroupPlayer, 100, 100, 32, 48)
	star := w.CreateBody(components.GroupCollectible, 105, 100, 24, 22)
	w.SetAllowGravity(player, false)
	w.SetAllowGravity(star, false)

	contacts := w.Step(testDT)

	if len(contacts) != 1 || contacts[0].Kind != ContactOverlap {
		t.Fatalf("contacts = %+v, want single overlap", contacts)
	}
	if contacts[0].A != player || contacts[0].B != star {
		t.Errorf("overlap order = (%d, %d), want (%d, %d)", contacts[0].A, contacts[0].B, player, star)
	}
	if pos := position(em, star); pos.X != 105 {
		t.Errorf("overlap should not move bodies, star X = %v", pos.X)
	}
}

func TestStep_InactiveBodiesIgnored(t *testing.T) {
	w, _ := newTestWorld()
	w.AddOverlap(components.GroupPlayer, components.GroupCollectible)

	player := w.CreateBody(components.GroupPlayer, 100, 100, 32, 48)
	star := w.CreateBody(components.GroupCollectible, 100, 100, 24, 22)
	w.SetAllowGravity(player, false)

	if !w.DisableBody(star) {
		t.Fatal("DisableBody should report the body was active")
	}
	if w.DisableBody(star) {
		t.Error("second DisableBody should be a no-op")
	}

	if contacts := w.Step(testDT); len(contacts) != 0 {
		t.Errorf("inactive body should not produce contacts, got %+v", contacts)
	}
}

func TestPauseResume(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupCollectible, 100, 100, 10, 10)

	w.Pause()
	if !w.Paused() {
		t.Fatal("world should be paused")
	}
	if contacts := w.Step(1); contacts != nil {
		t.Errorf("paused Step should return nil, got %v", contacts)
	}
	if pos := position(em, id); pos.Y != 100 {
		t.Errorf("paused world should not move bodies, Y = %v", pos.Y)
	}

	w.Resume()
	w.Step(1)
	if pos := position(em, id); pos.Y == 100 {
		t.Error("resumed world should move bodies")
	}
}

func TestEnableBody(t *testing.T) {
	w, em := newTestWorld()
	id := w.CreateBody(components.GroupCollectible, 100, 300, 10, 10)
	w.SetVelocity(id, 10, 10)
	w.DisableBody(id)

	w.EnableBody(id, 82, 0)

	if !w.IsActive(id) {
		t.Error("body should be active after EnableBody")
	}
	pos := position(em, id)
	vel := velocity(em, id)
	if pos.X != 82 || pos.Y != 0 || vel.VX != 0 || vel.VY != 0 {
		t.Errorf("EnableBody state = pos(%v,%v) vel(%v,%v)", pos.X, pos.Y, vel.VX, vel.VY)
	}
}
