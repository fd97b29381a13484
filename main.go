package main

import (
	"flag"
	"log"

	"github.com/gonewx/starcatch/pkg/app"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	levelPath  = flag.String("config", config.DefaultLevelConfigPath, "关卡配置文件路径")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	skipMenu   = flag.Bool("skip-menu", false, "跳过开始界面，直接进入关卡")
	fullscreen = flag.Bool("fullscreen", false, "以全屏模式启动")
)

func main() {
	flag.Parse()

	// 磁盘上没有关卡配置时使用嵌入的副本
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		LevelConfigPath: *levelPath,
		Seed:            *seed,
		SkipMenu:        *skipMenu,
	})
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	// Start the game loop
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
