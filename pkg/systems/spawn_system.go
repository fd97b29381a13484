package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/starcatch/pkg/components"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/ecs"
	"github.com/gonewx/starcatch/pkg/entities"
	"github.com/gonewx/starcatch/pkg/physics"
)

// SpawnSystem 管理星星波次和炸弹生成
//
// 一波星星在开局时一次性创建，之后只在激活/停用之间切换，
// 数量和下标在整局中保持不变。每清空一波就重生整波并追加一颗炸弹。
type SpawnSystem struct {
	world *physics.World
	cfg   *config.LevelConfig
	rng   *rand.Rand

	wave    []ecs.EntityID
	hazards []ecs.EntityID
	waves   int // 已清空的波次数
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - w: 物理世界
//   - cfg: 关卡配置
//   - rng: 随机数源（测试时传入固定种子）
func NewSpawnSystem(w *physics.World, cfg *config.LevelConfig, rng *rand.Rand) *SpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &SpawnSystem{
		world: w,
		cfg:   cfg,
		rng:   rng,
	}
}

// LayoutWave 创建整波星星，每颗星星的垂直反弹系数在 [BounceMin, BounceMax) 内随机
func (s *SpawnSystem) LayoutWave() error {
	if len(s.wave) > 0 {
		return fmt.Errorf("collectible wave already laid out")
	}

	col := s.cfg.Collectibles
	s.wave = make([]ecs.EntityID, 0, col.Count)
	for i := 0; i < col.Count; i++ {
		bounce := col.BounceMin + s.rng.Float64()*(col.BounceMax-col.BounceMin)
		id, err := entities.NewCollectible(s.world, col, i, bounce)
		if err != nil {
			return fmt.Errorf("failed to create collectible %d: %w", i, err)
		}
		s.wave = append(s.wave, id)
	}

	log.Printf("[SpawnSystem] Laid out wave of %d collectibles", len(s.wave))
	return nil
}

// Wave 返回整波星星（按下标排列）
func (s *SpawnSystem) Wave() []ecs.EntityID {
	return s.wave
}

// Hazards 返回本局生成过的全部炸弹
func (s *SpawnSystem) Hazards() []ecs.EntityID {
	return s.hazards
}

// Waves 返回已清空的波次数
func (s *SpawnSystem) Waves() int {
	return s.waves
}

// ActiveCount 返回仍然激活的星星数量
func (s *SpawnSystem) ActiveCount() int {
	count := 0
	for _, id := range s.wave {
		if s.world.IsActive(id) {
			count++
		}
	}
	return count
}

// ActiveHazards 返回激活的炸弹数量
func (s *SpawnSystem) ActiveHazards() int {
	count := 0
	for _, id := range s.hazards {
		if s.world.IsActive(id) {
			count++
		}
	}
	return count
}

// RespawnWave 重新激活整波星星：回到各自的初始 X，从 y=0 落下，反弹系数不变
func (s *SpawnSystem) RespawnWave() {
	em := s.world.EntityManager()
	for _, id := range s.wave {
		star, ok := ecs.GetComponent[*components.CollectibleComponent](em, id)
		if !ok {
			continue
		}
		s.world.EnableBody(id, star.OriginX, 0)
		s.world.SetBounce(id, 0, star.BounceY)
	}
	s.waves++
	log.Printf("[SpawnSystem] Wave %d cleared, respawned %d collectibles", s.waves, len(s.wave))
}

// HazardX 在玩家所在半边的对侧随机选择炸弹的 X 坐标
//
// 玩家在中线左侧时返回 [mid, width)，否则返回 [0, mid)。
func (s *SpawnSystem) HazardX(playerX float64) float64 {
	mid := s.cfg.Midpoint()
	if playerX < mid {
		return mid + s.rng.Float64()*(s.cfg.World.Width-mid)
	}
	return s.rng.Float64() * mid
}

// SpawnHazard 在玩家对侧生成一颗炸弹
func (s *SpawnSystem) SpawnHazard(playerX float64) (ecs.EntityID, error) {
	hz := s.cfg.Hazards
	x := s.HazardX(playerX)
	vx := hz.VelocityXMin + s.rng.Float64()*(hz.VelocityXMax-hz.VelocityXMin)

	id, err := entities.NewHazard(s.world, hz, x, vx, s.waves)
	if err != nil {
		return 0, fmt.Errorf("failed to spawn hazard: %w", err)
	}
	s.hazards = append(s.hazards, id)
	return id, nil
}
