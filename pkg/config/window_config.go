package config

// 窗口逻辑分辨率（与世界尺寸一致）
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// GameWindowTitle 窗口标题
const GameWindowTitle = "Star Catch"

// DefaultLevelConfigPath 默认关卡配置文件位置
const DefaultLevelConfigPath = "data/level.yaml"
