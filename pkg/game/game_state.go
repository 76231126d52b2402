package game

// GameState 比赛状态
//
// 状态转换：
//   - StatePlaying → StateGameOver: 任一方分数达到 WinningScore
//   - StateGameOver → StatePlaying: 只能通过 Game.Reset()
type GameState int

const (
	// StatePlaying 比赛进行中（初始状态）
	StatePlaying GameState = iota
	// StateGameOver 比赛结束，Update 不再推进模拟
	StateGameOver
)

// String 返回状态名称（用于日志）
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Side 比赛的一方
type Side int

const (
	// SidePlayer 玩家（左侧）
	SidePlayer Side = iota
	// SideAI 电脑（右侧）
	SideAI
)

// String 返回一方的名称
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAI:
		return "AI"
	default:
		return "Unknown"
	}
}

// Controls 玩家本帧的控制意图
// 键盘方向键和 WASD 都映射到这两个信号；同时按下时相互抵消
type Controls struct {
	Up   bool
	Down bool
}
