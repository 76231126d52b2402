package game

import (
	"log"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/entities"
)

// Game 一局乒乓比赛的完整状态
//
// 职责：
//   - 持有两个球拍、球、比分、粒子和球的拖尾
//   - 每帧推进模拟：球拍、AI、球、碰撞、粒子、拖尾、计分
//   - 管理 Playing / GameOver 状态转换
//
// 渲染层每帧只读地访问导出字段；Game 只在一个 goroutine 中使用，不加锁。
type Game struct {
	PlayerPaddle *entities.Paddle
	AIPaddle     *entities.Paddle
	Ball         *entities.Ball

	PlayerScore int
	AIScore     int
	State       GameState

	Particles []*entities.Particle // 无固定上限，过期后移除
	BallTrail []entities.Vec2D     // 最近 TrailLength 个球心位置，旧的在前

	rng          entities.RandSource
	effects      EffectSink
	maxDeltaTime float64 // 0 表示不限制
}

// NewGame 创建一局新比赛
//
// 参数：
//   - rng: 随机数来源（发球方向、粒子），传入固定种子可复现整局比赛
//   - effects: 事件接收者，可为 nil（使用 NoopEffects）
//
// 返回：
//   - *Game: 处于 StatePlaying 的比赛
func NewGame(rng entities.RandSource, effects EffectSink) *Game {
	if effects == nil {
		effects = NoopEffects{}
	}

	return &Game{
		PlayerPaddle: entities.NewPaddle(config.PaddleMargin, config.PaddleStartY()),
		AIPaddle:     entities.NewPaddle(config.AIPaddleX(), config.PaddleStartY()),
		Ball:         entities.NewBall(config.WindowWidth/2, config.WindowHeight/2, rng),
		State:        StatePlaying,
		Particles:    make([]*entities.Particle, 0),
		BallTrail:    make([]entities.Vec2D, 0, config.TrailLength+1),
		rng:          rng,
		effects:      effects,
	}
}

// SetEffects 替换事件接收者，nil 表示静音
func (g *Game) SetEffects(effects EffectSink) {
	if effects == nil {
		effects = NoopEffects{}
	}
	g.effects = effects
}

// SetMaxDeltaTime 设置单帧时间步长上限（秒），0 表示不限制
func (g *Game) SetMaxDeltaTime(maxDeltaTime float64) {
	if maxDeltaTime < 0 {
		maxDeltaTime = 0
	}
	g.maxDeltaTime = maxDeltaTime
}

// Update 推进一帧模拟
//
// 比赛结束后或 dt 为负时不做任何事。
//
// 参数：
//   - dt: 距上一帧的时间（秒）
//   - ctl: 玩家本帧的控制意图
func (g *Game) Update(dt float64, ctl Controls) {
	if g.State != StatePlaying {
		return
	}
	if dt < 0 {
		return
	}
	if g.maxDeltaTime > 0 && dt > g.maxDeltaTime {
		dt = g.maxDeltaTime
	}

	// 玩家和 AI 的速度
	g.PlayerPaddle.Velocity = PlayerVelocity(ctl)
	g.AIPaddle.Velocity = AIVelocity(g.Ball.Center().Y, g.AIPaddle.CenterY())

	g.PlayerPaddle.Update(dt)
	g.AIPaddle.Update(dt)

	// 上下墙：更新前后都贴墙时触发事件
	oldBallY := g.Ball.Position.Y
	g.Ball.Update(dt)
	if atWall(oldBallY) && atWall(g.Ball.Position.Y) {
		g.effects.WallHit()
	}

	// 球拍碰撞，先玩家后 AI，两次检测都执行
	wasMovingRight := g.Ball.Velocity.X > 0
	g.Ball.HandlePaddleCollision(g.PlayerPaddle)
	g.Ball.HandlePaddleCollision(g.AIPaddle)
	if (g.Ball.Velocity.X > 0) != wasMovingRight {
		g.effects.PaddleHit()
		g.spawnParticles(g.Ball.Center(), config.PaddleHitParticles)
	}

	g.updateParticles(dt)
	g.pushTrail(g.Ball.Center())
	g.checkScore()
}

// HandleInput 处理重新开始
// 只在比赛结束时响应
func (g *Game) HandleInput(restart bool) {
	if g.State == StateGameOver && restart {
		g.Reset()
	}
}

// Reset 开始新的一局
// 清零比分，球回中心重新发球，球拍回中间，清空粒子和拖尾
func (g *Game) Reset() {
	g.PlayerScore = 0
	g.AIScore = 0
	g.Ball.Reset(g.rng)
	g.PlayerPaddle.Position.Y = config.PaddleStartY()
	g.AIPaddle.Position.Y = config.PaddleStartY()
	g.State = StatePlaying
	g.Particles = g.Particles[:0]
	g.BallTrail = g.BallTrail[:0]

	log.Printf("[Game] New match started")
}

// Winner 返回获胜方
// 比赛未结束时第二个返回值为 false
func (g *Game) Winner() (Side, bool) {
	if g.PlayerScore >= config.WinningScore {
		return SidePlayer, true
	}
	if g.AIScore >= config.WinningScore {
		return SideAI, true
	}
	return SidePlayer, false
}

// checkScore 判断球是否出界并计分
func (g *Game) checkScore() {
	var scorer Side
	switch {
	case g.Ball.Position.X < 0:
		scorer = SideAI
		g.AIScore++
	case g.Ball.Position.X > config.WindowWidth:
		scorer = SidePlayer
		g.PlayerScore++
	default:
		return
	}

	g.effects.Scored(scorer)
	g.spawnParticles(g.Ball.Center(), config.ScoreParticles)
	g.Ball.Reset(g.rng)
	g.BallTrail = g.BallTrail[:0]

	log.Printf("[Game] %s scored: %d - %d", scorer, g.PlayerScore, g.AIScore)

	if _, over := g.Winner(); over {
		g.State = StateGameOver
		log.Printf("[Game] Match over, %s wins", scorer)
	}
}

// spawnParticles 在指定位置生成 count 个粒子
func (g *Game) spawnParticles(at entities.Vec2D, count int) {
	for i := 0; i < count; i++ {
		g.Particles = append(g.Particles, entities.NewParticle(at.X, at.Y, g.rng))
	}
}

// updateParticles 更新粒子并原地移除过期的，保持存活粒子的相对顺序
func (g *Game) updateParticles(dt float64) {
	alive := g.Particles[:0]
	for _, p := range g.Particles {
		if p.Update(dt) {
			alive = append(alive, p)
		}
	}
	// 释放尾部引用
	for i := len(alive); i < len(g.Particles); i++ {
		g.Particles[i] = nil
	}
	g.Particles = alive
}

// pushTrail 记录球心位置，超过 TrailLength 时丢弃最旧的
func (g *Game) pushTrail(center entities.Vec2D) {
	g.BallTrail = append(g.BallTrail, center)
	if len(g.BallTrail) > config.TrailLength {
		copy(g.BallTrail, g.BallTrail[1:])
		g.BallTrail = g.BallTrail[:config.TrailLength]
	}
}

// atWall 判断球的Y坐标是否贴着上下墙
func atWall(y float64) bool {
	return y <= 0 || y >= config.WindowHeight-config.BallSize
}
