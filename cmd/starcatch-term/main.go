// starcatch-term 在终端中运行星星收集游戏
//
// 与图形版共用同一个模拟核心，只替换输入和渲染：
// 终端没有按键释放事件，按住状态由最近一次按键时间推算。
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/starcatch/pkg/config"
	"github.com/gonewx/starcatch/pkg/game"
	"github.com/gonewx/starcatch/pkg/systems"
	"github.com/quasilyte/gdata/v2"
)

const frame = time.Second / 60

var (
	levelPath = flag.String("config", config.DefaultLevelConfigPath, "关卡配置文件路径")
	seed      = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	logPath   = flag.String("log", "", "日志文件路径（终端被游戏占用，默认不输出日志）")
	mute      = flag.Bool("mute", false, "关闭提示音")
)

type termGame struct {
	screen  tcell.Screen
	sim     *systems.Simulation
	records *game.RecordManager
	keys    *heldKeys
	sound   *sound

	inMenu    bool
	lastScore int
}

func newTermGame(cfg *config.LevelConfig, rng *rand.Rand, records *game.RecordManager, snd *sound) (*termGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &termGame{
		screen:  screen,
		records: records,
		keys:    newHeldKeys(),
		sound:   snd,
		inMenu:  true,
	}
	g.sim = systems.NewSimulation(cfg, rng, systems.MenuTransitionFunc(func() {
		g.inMenu = true
		g.keys.clear()
	}))
	g.sim.OnRunEnded(func(score int) {
		g.sound.gameOver()
		if g.records.Submit(score) {
			log.Printf("[Term] New best score: %d", score)
		}
	})
	return g, nil
}

// startRun 从菜单进入新的一局
func (g *termGame) startRun() {
	if err := g.sim.Start(); err != nil {
		log.Printf("[Term] Failed to start run: %v", err)
		return
	}
	g.inMenu = false
	g.lastScore = g.sim.Score()
	g.keys.clear()
}

// handleInput 处理一个终端事件，返回 false 表示退出
func (g *termGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if g.inMenu {
			if ev.Key() == tcell.KeyEnter {
				g.startRun()
			} else if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
				return false
			}
			return true
		}
		g.keys.press(controlOf(ev), time.Now())

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *termGame) tick(now time.Time) {
	if g.inMenu {
		return
	}
	g.sim.Update(frame.Seconds(), g.keys.snapshot(now))

	score := g.sim.Score()
	if score > g.lastScore {
		g.sound.collect()
	}
	g.lastScore = score
}

func (g *termGame) draw() {
	g.screen.Clear()
	if g.inMenu {
		drawMenu(g.screen, g.records.Records())
	} else {
		drawRun(g.screen, g.sim.View())
	}
	g.screen.Show()
}

func (g *termGame) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// 屏幕已关闭
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			g.tick(now)
			g.draw()
		}
	}
}

func (g *termGame) cleanup() {
	g.sound.close()
	g.screen.Fini()
}

// setupLogging 终端被 tcell 占用，日志只能写入文件
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadLevelConfig(*levelPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[Term] Warning: level config %s not found, using defaults", *levelPath)
		cfg, err = config.DefaultLevelConfig(), nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level config: %v\n", err)
		os.Exit(1)
	}

	var storage *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: "starcatch"}); err == nil {
		storage = m
	} else {
		log.Printf("[Term] Warning: gdata unavailable: %v", err)
	}
	records, err := game.NewRecordManager(storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize records: %v\n", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	g, err := newTermGame(cfg, rand.New(rand.NewSource(s)), records, newSound(!*mute))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}
