package systems

import (
	"testing"
	"time"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
)

func TestFireSystem_Scenario(t *testing.T) {
	w := newTestWorld()
	player, score := newTestShooter(t, w)
	fs := NewFireSystem(w, score, config.DefaultLevelConfig().Projectiles, player)

	// 零分时拒绝
	if fs.TryFire(components.DirectionUp, 0) {
		t.Fatal("fire with zero score should be rejected")
	}
	if score.Value() != 0 {
		t.Fatalf("score = %d, want 0", score.Value())
	}

	score.Collect(10)

	steps := []struct {
		at        time.Duration
		wantOK    bool
		wantScore int
	}{
		{at: 0, wantOK: true, wantScore: 9},
		{at: 100 * time.Millisecond, wantOK: false, wantScore: 9},
		{at: 350 * time.Millisecond, wantOK: true, wantScore: 8},
	}
	for _, st := range steps {
		if got := fs.TryFire(components.DirectionUp, st.at); got != st.wantOK {
			t.Errorf("TryFire at %v = %v, want %v", st.at, got, st.wantOK)
		}
		if score.Value() != st.wantScore {
			t.Errorf("score after fire at %v = %d, want %d", st.at, score.Value(), st.wantScore)
		}
	}
	if fs.Shots() != 2 {
		t.Errorf("Shots() = %d, want 2", fs.Shots())
	}
	if last, ok := fs.LastFire(); !ok || last != 350*time.Millisecond {
		t.Errorf("LastFire() = (%v, %v), want (350ms, true)", last, ok)
	}
}

func TestFireSystem_ProjectileVelocity(t *testing.T) {
	tests := []struct {
		dir    components.Direction
		vx, vy float64
	}{
		{dir: components.DirectionUp, vx: 0, vy: -400},
		{dir: components.DirectionLeft, vx: -400, vy: 0},
		{dir: components.DirectionRight, vx: 400, vy: 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			w := newTestWorld()
			player, score := newTestShooter(t, w)
			score.Collect(10)
			fs := NewFireSystem(w, score, config.DefaultLevelConfig().Projectiles, player)

			if !fs.TryFire(tt.dir, time.Second) {
				t.Fatal("TryFire() should succeed")
			}

			em := w.EntityManager()
			id := fs.LastProjectile()
			vel := velocityOf(t, em, id)
			if vel.VX != tt.vx || vel.VY != tt.vy {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", vel.VX, vel.VY, tt.vx, tt.vy)
			}
			pos := positionOf(t, em, id)
			origin := positionOf(t, em, player)
			if pos.X != origin.X || pos.Y != origin.Y {
				t.Errorf("projectile at (%v, %v), want player position (%v, %v)", pos.X, pos.Y, origin.X, origin.Y)
			}
		})
	}
}

func TestFireSystem_CooldownNeverViolated(t *testing.T) {
	w := newTestWorld()
	player, score := newTestShooter(t, w)
	score.Collect(1000)
	fs := NewFireSystem(w, score, config.DefaultLevelConfig().Projectiles, player)

	var fired []time.Duration
	for now := time.Duration(0); now < 5*time.Second; now += 7 * time.Millisecond {
		if fs.TryFire(components.DirectionRight, now) {
			fired = append(fired, now)
		}
	}

	if len(fired) < 2 {
		t.Fatalf("expected several shots, got %d", len(fired))
	}
	for i := 1; i < len(fired); i++ {
		if gap := fired[i] - fired[i-1]; gap < 300*time.Millisecond {
			t.Errorf("shots %d and %d only %v apart", i-1, i, gap)
		}
	}
	if want := 1000 - len(fired); score.Value() != want {
		t.Errorf("score = %d, want %d", score.Value(), want)
	}
}

func TestFireSystem_InsufficientScore(t *testing.T) {
	w := newTestWorld()
	player, score := newTestShooter(t, w)
	cfg := config.DefaultLevelConfig().Projectiles
	cfg.Cost = 5
	score.Collect(3)
	fs := NewFireSystem(w, score, cfg, player)

	if fs.TryFire(components.DirectionUp, 0) {
		t.Error("fire with score below cost should be rejected")
	}
	if score.Value() != 3 {
		t.Errorf("score = %d, want 3", score.Value())
	}
}

func TestFireSystem_ReusesInactiveProjectile(t *testing.T) {
	w := newTestWorld()
	player, score := newTestShooter(t, w)
	score.Collect(10)
	fs := NewFireSystem(w, score, config.DefaultLevelConfig().Projectiles, player)

	fs.TryFire(components.DirectionUp, 0)
	first := fs.LastProjectile()
	w.DisableBody(first)

	fs.TryFire(components.DirectionLeft, time.Second)
	if fs.LastProjectile() != first {
		t.Errorf("expected projectile %d to be reused, got %d", first, fs.LastProjectile())
	}
	if !w.IsActive(first) {
		t.Error("reused projectile should be active")
	}
}

func TestFireSystem_MissingShooter(t *testing.T) {
	w := newTestWorld()
	_, score := newTestShooter(t, w)
	score.Collect(10)
	fs := NewFireSystem(w, score, config.DefaultLevelConfig().Projectiles, 999)

	if fs.TryFire(components.DirectionUp, 0) {
		t.Error("fire without a shooter should be rejected")
	}
	if score.Value() != 10 {
		t.Errorf("score = %d, want 10", score.Value())
	}
}
