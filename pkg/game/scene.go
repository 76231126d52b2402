package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the game (currently only the match itself).
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 调用时机：
//   - 窗口关闭
//   - 按 Escape 退出
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
