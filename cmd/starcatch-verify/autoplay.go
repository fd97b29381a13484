package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
)

const frame = 1.0 / 60.0

// runResult 一局的统计
type runResult struct {
	Score   int
	Waves   int
	Shots   int
	Elapsed time.Duration
	Outcome string
}

// autoplay 用简单策略跑完一局：追最近的星星，有炸弹靠近时开火
//
// 参数:
//   - cfg: 关卡配置
//   - rng: 同时驱动关卡随机数和策略的随机数
//   - maxSeconds: 模拟时间上限
//
// 返回:
//   - runResult: 结束时的统计，Outcome 为 "game over" 或 "timeout"
func autoplay(cfg *config.LevelConfig, rng *rand.Rand, maxSeconds float64) (runResult, error) {
	returned := false
	sim := systems.NewSimulation(cfg, rng, systems.MenuTransitionFunc(func() { returned = true }))
	if err := sim.Start(); err != nil {
		return runResult{}, err
	}

	limit := time.Duration(maxSeconds * float64(time.Second))
	for sim.Now() < limit && !returned {
		sim.Update(frame, decide(sim.View(), rng))
	}

	res := runResult{
		Score:   sim.Score(),
		Elapsed: sim.Now(),
		Outcome: "timeout",
	}
	if run := sim.Run(); run != nil {
		res.Waves = run.Spawner.Waves()
		res.Shots = run.Fire.Shots()
	}
	if sim.Phase() == game.RunPhaseEnded || returned {
		res.Outcome = "game over"
	}
	return res, nil
}

// decide 根据当前画面选择输入
func decide(v systems.View, rng *rand.Rand) systems.InputSnapshot {
	player, ok := v.PlayerSprite()
	if !ok || v.Phase != game.RunPhasePlaying {
		return systems.InputSnapshot{}
	}

	var in systems.InputSnapshot
	target, found := nearest(v, player, components.GroupCollectible)
	if found {
		dx := target.X - player.X
		switch {
		case dx < -8:
			in.Left = true
		case dx > 8:
			in.Right = true
		}
		// 星星在高处时试着跳
		in.Up = target.Y < player.Y-40 && rng.Intn(4) == 0
	}

	if bomb, ok := nearest(v, player, components.GroupHazard); ok {
		if math.Abs(bomb.X-player.X) < 60 && bomb.Y < player.Y && v.Score > 0 {
			in.Fire = true
		}
	}
	return in
}

// nearest 返回离玩家最近的指定分组实体
func nearest(v systems.View, player systems.SpriteView, group components.Group) (systems.SpriteView, bool) {
	var best systems.SpriteView
	bestDist := math.MaxFloat64
	for _, sp := range v.Sprites {
		if sp.Group != group {
			continue
		}
		d := math.Hypot(sp.X-player.X, sp.Y-player.Y)
		if d < bestDist {
			best, bestDist = sp, d
		}
	}
	return best, bestDist < math.MaxFloat64
}
