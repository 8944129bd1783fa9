package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] 切换场景: %s", sceneName(scene))
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SaveOnExit 若当前场景实现了 Saveable，则在退出前保存
//
// 返回：
//   - bool: 保存成功或无需保存时返回 true
func (sm *SceneManager) SaveOnExit() bool {
	saveable, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	return saveable.SaveOnExit()
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

func sceneName(scene Scene) string {
	if scene == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", scene)
}
