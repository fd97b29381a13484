// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载关卡配置、
// 打开成绩存储、注册菜单和关卡场景。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/embedded"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "starcatch"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LevelConfigPath 关卡配置文件路径，为空时使用 config.DefaultLevelConfigPath
	LevelConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SkipMenu 跳过开始界面，直接进入关卡
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	records                  *game.RecordManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	levelConfig, err := loadLevelConfig(cfg.LevelConfigPath)
	if err != nil {
		return nil, err
	}

	records, err := game.NewRecordManager(openStorage())
	if err != nil {
		return nil, fmt.Errorf("成绩管理器初始化失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] Random seed: %d", seed)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.Register(game.SceneMenu, func() game.Scene {
		return scenes.NewMenuScene(sceneManager, records)
	})
	sceneManager.Register(game.SceneLevel, func() game.Scene {
		return scenes.NewGameScene(sceneManager, levelConfig, records, rng)
	})

	start := game.SceneMenu
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, starting level directly")
		start = game.SceneLevel
	}
	if !sceneManager.Start(start) {
		return nil, fmt.Errorf("failed to start scene %q", start)
	}

	return &App{
		sceneManager: sceneManager,
		records:      records,
		verbose:      cfg.Verbose,
	}, nil
}

// loadLevelConfig 加载关卡配置
//
// 查找顺序: 磁盘文件 -> 嵌入的 data/level.yaml -> 内置默认值。
func loadLevelConfig(path string) (*config.LevelConfig, error) {
	if path == "" {
		path = config.DefaultLevelConfigPath
	}

	levelConfig, err := config.LoadLevelConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		data, embErr := embedded.ReadFile(config.DefaultLevelConfigPath)
		if embErr != nil {
			log.Printf("[App] Warning: level config %s not found, using defaults", path)
			return config.DefaultLevelConfig(), nil
		}
		levelConfig, err = config.ParseLevelConfig(data)
		if err != nil {
			return nil, fmt.Errorf("嵌入关卡配置无效: %w", err)
		}
		log.Printf("[Config] Loaded embedded level config")
		return levelConfig, nil
	}
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}

	log.Printf("[Config] Loaded level config: %s", path)
	return levelConfig, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为内存模式）
func openStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (records kept in memory)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Records 返回成绩管理器
func (a *App) Records() *game.RecordManager {
	return a.records
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
