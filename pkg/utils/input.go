// Package utils 提供与平台和输入设备相关的工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 方向键映射
var (
	UpKeys   = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	DownKeys = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

// InputState 本帧的输入状态
// 键盘和触摸/鼠标统一在这里采样，场景只读取结果
type InputState struct {
	// Up / Down 方向键是否按住
	Up, Down bool

	// Restart R 键、点击或触摸刚刚按下
	Restart bool

	// PointerActive 是否有按住的触摸或鼠标左键
	// 移动端用它让球拍追向手指位置
	PointerActive bool
	PointerY      int
}

// GetInputState 采样当前帧的输入
func GetInputState() InputState {
	up, down := DirectionKeys(ebiten.IsKeyPressed)
	state := InputState{
		Up:      up,
		Down:    down,
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	if pressed, _, _ := IsJustTouchedOrClicked(); pressed {
		state.Restart = true
	}

	if pressed, _, y := GetPointerState(); pressed {
		state.PointerActive = true
		state.PointerY = y
	}

	return state
}

// DirectionKeys 根据按键状态计算上下意图
//
// 参数：
//   - isPressed: 按键查询函数（通常是 ebiten.IsKeyPressed）
//
// 返回：
//   - up, down: 任一映射键按下即为 true，两者可以同时为 true
func DirectionKeys(isPressed func(ebiten.Key) bool) (up, down bool) {
	return anyPressed(isPressed, UpKeys), anyPressed(isPressed, DownKeys)
}

func anyPressed(isPressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if isPressed(k) {
			return true
		}
	}
	return false
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态，触摸优先
// 返回：是否按下、X坐标、Y坐标
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}
