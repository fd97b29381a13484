package main

import (
	"math/rand"
	"testing"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
)

func TestAutoplay_Deterministic(t *testing.T) {
	cfg := config.DefaultLevelConfig()

	a, err := autoplay(cfg, rand.New(rand.NewSource(42)), 30)
	if err != nil {
		t.Fatalf("autoplay() error: %v", err)
	}
	b, err := autoplay(cfg, rand.New(rand.NewSource(42)), 30)
	if err != nil {
		t.Fatalf("autoplay() error: %v", err)
	}

	if a != b {
		t.Errorf("same seed produced different runs: %+v vs %+v", a, b)
	}
	if a.Score < 0 {
		t.Errorf("score went negative: %d", a.Score)
	}
	if a.Outcome != "timeout" && a.Outcome != "game over" {
		t.Errorf("unexpected outcome %q", a.Outcome)
	}
}

func TestDecide(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	player := systems.SpriteView{Group: components.GroupPlayer, X: 400, Y: 500}

	tests := []struct {
		name      string
		view      systems.View
		wantLeft  bool
		wantRight bool
		wantFire  bool
	}{
		{
			name: "没有玩家时不操作",
			view: systems.View{Phase: game.RunPhasePlaying},
		},
		{
			name: "星星在左边",
			view: systems.View{Phase: game.RunPhasePlaying, Sprites: []systems.SpriteView{
				player, {Group: components.GroupCollectible, X: 100, Y: 500},
			}},
			wantLeft: true,
		},
		{
			name: "星星在右边",
			view: systems.View{Phase: game.RunPhasePlaying, Sprites: []systems.SpriteView{
				player, {Group: components.GroupCollectible, X: 700, Y: 500},
			}},
			wantRight: true,
		},
		{
			name: "头顶有炸弹且有分数时开火",
			view: systems.View{Phase: game.RunPhasePlaying, Score: 10, Sprites: []systems.SpriteView{
				player, {Group: components.GroupHazard, X: 410, Y: 300},
			}},
			wantFire: true,
		},
		{
			name: "零分不开火",
			view: systems.View{Phase: game.RunPhasePlaying, Sprites: []systems.SpriteView{
				player, {Group: components.GroupHazard, X: 410, Y: 300},
			}},
		},
		{
			name: "结束后不操作",
			view: systems.View{Phase: game.RunPhaseEnded, Sprites: []systems.SpriteView{
				player, {Group: components.GroupCollectible, X: 100, Y: 500},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decide(tt.view, rng)
			if in.Left != tt.wantLeft || in.Right != tt.wantRight || in.Fire != tt.wantFire {
				t.Errorf("decide() = %+v, want left=%v right=%v fire=%v", in, tt.wantLeft, tt.wantRight, tt.wantFire)
			}
		})
	}
}
