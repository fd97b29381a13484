package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneMenu  = "menu"
	SceneLevel = "level"
)

// SceneFactory 场景工厂函数类型
// 每次切换都创建新的场景实例，新一局因此总是从初始状态开始
type SceneFactory func() Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Start or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册命名场景的工厂函数
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// Start 创建并切换到命名场景，未注册时返回 false
func (sm *SceneManager) Start(name string) bool {
	factory, ok := sm.factories[name]
	if !ok || factory == nil {
		log.Printf("[SceneManager] Error: scene %q is not registered", name)
		return false
	}

	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] Error: factory for %q returned nil", name)
		return false
	}

	sm.currentScene = scene
	sm.currentName = name
	log.Printf("[SceneManager] Switched to scene %q", name)
	return true
}

// ReturnToMenu 把控制权交还给菜单场景
func (sm *SceneManager) ReturnToMenu() {
	sm.Start(SceneMenu)
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 返回当前命名场景的名称（SwitchTo 设置的场景为空字符串）
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
