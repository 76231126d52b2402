package game

import (
	"math/rand"
)

// MatchResult 一局无界面模拟的结果
type MatchResult struct {
	Seed        int64
	Winner      Side
	Finished    bool // false 表示达到 tick 上限仍未分出胜负
	PlayerScore int
	AIScore     int
	Ticks       int
	PaddleHits  int
	WallHits    int
}

// Duration 返回模拟的比赛时长（秒）
func (r MatchResult) Duration(dt float64) float64 {
	return float64(r.Ticks) * dt
}

// countingEffects 统计事件次数
type countingEffects struct {
	paddleHits int
	wallHits   int
}

func (c *countingEffects) WallHit() { c.wallHits++ }
func (c *countingEffects) PaddleHit() { c.paddleHits++ }
func (c *countingEffects) Scored(Side) {}

// SimulateMatch 用固定种子跑一局 AI 对 AI 的比赛
//
// 玩家一侧由 ControlsToward 追球，与右侧 AI 使用相同的死区但速度更快。
//
// 参数：
//   - seed: 随机种子，相同种子得到相同结果
//   - dt: 每个 tick 的时间步长（秒）
//   - maxTicks: tick 上限，防止无限对打
//
// 返回：
//   - MatchResult: 比赛结果
func SimulateMatch(seed int64, dt float64, maxTicks int) MatchResult {
	fx := &countingEffects{}
	g := NewGame(rand.New(rand.NewSource(seed)), fx)

	ticks := 0
	for ; ticks < maxTicks && g.State == StatePlaying; ticks++ {
		ctl := ControlsToward(g.Ball.Center().Y, g.PlayerPaddle.CenterY())
		g.Update(dt, ctl)
	}

	winner, over := g.Winner()
	return MatchResult{
		Seed:        seed,
		Winner:      winner,
		Finished:    over,
		PlayerScore: g.PlayerScore,
		AIScore:     g.AIScore,
		Ticks:       ticks,
		PaddleHits:  fx.paddleHits,
		WallHits:    fx.wallHits,
	}
}
