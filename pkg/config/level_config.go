package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置
//
// 描述唯一关卡的全部规则参数：世界尺寸、玩家手感、平台布局、
// 星星波次、炸弹生成、子弹发射和结束延迟。
//
// 配置文件位置: data/level.yaml
type LevelConfig struct {
	World        WorldConfig       `yaml:"world"`
	Player       PlayerConfig      `yaml:"player"`
	Platforms    []PlatformConfig  `yaml:"platforms"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Hazards      HazardConfig      `yaml:"hazards"`
	Projectiles  ProjectileConfig  `yaml:"projectiles"`

	// GameOverDelayMs 碰到炸弹后返回菜单前的等待时间（毫秒）
	GameOverDelayMs int `yaml:"gameOverDelayMs"`
}

// WorldConfig 世界尺寸与重力
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // 像素/秒²，向下为正
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	StartX      float64 `yaml:"startX"`
	StartY      float64 `yaml:"startY"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`       // 水平速度
	JumpImpulse float64 `yaml:"jumpImpulse"` // 起跳速度（正值，施加时取负）
	Bounce      float64 `yaml:"bounce"`
}

// PlatformConfig 平台（中心点坐标）
type PlatformConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CollectibleConfig 星星波次参数
type CollectibleConfig struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"startX"`
	StepX     float64 `yaml:"stepX"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BounceMin float64 `yaml:"bounceMin"` // 包含
	BounceMax float64 `yaml:"bounceMax"` // 不包含
	Reward    int     `yaml:"reward"`
}

// HazardConfig 炸弹参数
type HazardConfig struct {
	SpawnY       float64 `yaml:"spawnY"`
	VelocityXMin float64 `yaml:"velocityXMin"`
	VelocityXMax float64 `yaml:"velocityXMax"`
	VelocityY    float64 `yaml:"velocityY"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// ProjectileConfig 子弹参数
type ProjectileConfig struct {
	Speed      float64 `yaml:"speed"`
	Cost       int     `yaml:"cost"`
	CooldownMs int     `yaml:"cooldownMs"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// ErrInvalidLevelConfig 配置校验失败
var ErrInvalidLevelConfig = errors.New("invalid level config")

// DefaultLevelConfig 返回内置的默认关卡
func DefaultLevelConfig() *LevelConfig {
	return &LevelConfig{
		World: WorldConfig{Width: 800, Height: 600, Gravity: 300},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      450,
			Width:       32,
			Height:      48,
			Speed:       160,
			JumpImpulse: 330,
			Bounce:      0.2,
		},
		Platforms: []PlatformConfig{
			{X: 400, Y: 568, Width: 800, Height: 64}, // 地面（原图 400x32 放大 2 倍）
			{X: 600, Y: 400, Width: 400, Height: 32},
			{X: 50, Y: 250, Width: 400, Height: 32},
			{X: 750, Y: 220, Width: 400, Height: 32},
		},
		Collectibles: CollectibleConfig{
			Count:     12,
			StartX:    12,
			StepX:     70,
			Width:     24,
			Height:    22,
			BounceMin: 0.4,
			BounceMax: 0.8,
			Reward:    10,
		},
		Hazards: HazardConfig{
			SpawnY:       16,
			VelocityXMin: -200,
			VelocityXMax: 200,
			VelocityY:    20,
			Width:        14,
			Height:       14,
		},
		Projectiles: ProjectileConfig{
			Speed:      400,
			Cost:       1,
			CooldownMs: 300,
			Width:      8,
			Height:     8,
		},
		GameOverDelayMs: 1000,
	}
}

// LoadLevelConfig 加载关卡配置
//
// 文件中缺省的字段使用 DefaultLevelConfig 的值。
//
// 参数:
//   - path: 配置文件路径（如 "data/level.yaml"）
//
// 返回:
//   - *LevelConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config: %w", err)
	}
	return ParseLevelConfig(data)
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	cfg := DefaultLevelConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *LevelConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidLevelConfig, fmt.Sprintf(format, args...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world size must be positive, got %.1fx%.1f", c.World.Width, c.World.Height)
	}
	if c.World.Gravity < 0 {
		return invalid("world gravity must not be negative, got %.1f", c.World.Gravity)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive")
	}
	if c.Player.Speed <= 0 || c.Player.JumpImpulse <= 0 {
		return invalid("player speed and jumpImpulse must be positive")
	}
	if c.Player.Bounce < 0 || c.Player.Bounce > 1 {
		return invalid("player bounce %.2f out of [0,1]", c.Player.Bounce)
	}

	for i, p := range c.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return invalid("platform %d size must be positive", i)
		}
	}

	col := c.Collectibles
	if col.Count <= 0 {
		return invalid("collectible count must be positive, got %d", col.Count)
	}
	if col.Width <= 0 || col.Height <= 0 {
		return invalid("collectible size must be positive")
	}
	if col.BounceMin < 0 || col.BounceMax > 1 || col.BounceMin > col.BounceMax {
		return invalid("collectible bounce range [%.2f, %.2f) invalid", col.BounceMin, col.BounceMax)
	}
	if col.Reward < 0 {
		return invalid("collectible reward must not be negative")
	}

	hz := c.Hazards
	if hz.VelocityXMin > hz.VelocityXMax {
		return invalid("hazard velocity range invalid: min(%.1f) > max(%.1f)", hz.VelocityXMin, hz.VelocityXMax)
	}
	if hz.Width <= 0 || hz.Height <= 0 {
		return invalid("hazard size must be positive")
	}

	pr := c.Projectiles
	if pr.Speed <= 0 {
		return invalid("projectile speed must be positive")
	}
	if pr.Cost < 0 {
		return invalid("projectile cost must not be negative")
	}
	if pr.CooldownMs < 0 {
		return invalid("projectile cooldown must not be negative")
	}
	if pr.Width <= 0 || pr.Height <= 0 {
		return invalid("projectile size must be positive")
	}

	if c.GameOverDelayMs < 0 {
		return invalid("gameOverDelayMs must not be negative")
	}

	return nil
}

// FireCooldown 子弹冷却时间
func (c *LevelConfig) FireCooldown() time.Duration {
	return c.Projectiles.Cooldown()
}

// Cooldown 两次成功发射之间的最小间隔
func (p ProjectileConfig) Cooldown() time.Duration {
	return time.Duration(p.CooldownMs) * time.Millisecond
}

// GameOverDelay 结束后返回菜单的延迟
func (c *LevelConfig) GameOverDelay() time.Duration {
	return time.Duration(c.GameOverDelayMs) * time.Millisecond
}

// Midpoint 世界水平中线
func (c *LevelConfig) Midpoint() float64 {
	return c.World.Width / 2
}
