package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/entities"
)

// recordingEffects 记录收到的事件
type recordingEffects struct {
	wallHits   int
	paddleHits int
	scored     []Side
}

func (r *recordingEffects) WallHit() { r.wallHits++ }
func (r *recordingEffects) PaddleHit() { r.paddleHits++ }
func (r *recordingEffects) Scored(side Side) { r.scored = append(r.scored, side) }

// newTestGame 创建使用固定种子的比赛
func newTestGame(t *testing.T) (*Game, *recordingEffects) {
	t.Helper()
	fx := &recordingEffects{}
	return NewGame(rand.New(rand.NewSource(42)), fx), fx
}

// sendBallLeftOut 让球在玩家球拍上方向左飞出
func sendBallLeftOut(g *Game) {
	g.Ball.Position = entities.NewVec2D(5, 100)
	g.Ball.Velocity = entities.NewVec2D(-config.BallSpeed, 0)
}

func TestNewGame(t *testing.T) {
	g, _ := newTestGame(t)

	if g.State != StatePlaying {
		t.Errorf("State: got %v, want Playing", g.State)
	}
	if g.PlayerScore != 0 || g.AIScore != 0 {
		t.Errorf("scores: got %d-%d, want 0-0", g.PlayerScore, g.AIScore)
	}
	if g.PlayerPaddle.Position.X != config.PaddleMargin {
		t.Errorf("player paddle X: got %v, want %v", g.PlayerPaddle.Position.X, config.PaddleMargin)
	}
	if g.AIPaddle.Position.X != config.AIPaddleX() {
		t.Errorf("AI paddle X: got %v, want %v", g.AIPaddle.Position.X, config.AIPaddleX())
	}
	if g.Ball.Position.X != config.WindowWidth/2 || g.Ball.Position.Y != config.WindowHeight/2 {
		t.Errorf("ball: got %+v, want window center", g.Ball.Position)
	}
	if len(g.Particles) != 0 || len(g.BallTrail) != 0 {
		t.Error("particles and trail should start empty")
	}
}

func TestNewGameNilEffects(t *testing.T) {
	g := NewGame(rand.New(rand.NewSource(1)), nil)
	// 不应 panic
	for i := 0; i < 600; i++ {
		g.Update(1.0/60.0, Controls{})
	}
}

func TestUpdatePlayerControls(t *testing.T) {
	tests := []struct {
		name string
		ctl  Controls
		want float64
	}{
		{"none", Controls{}, 0},
		{"up", Controls{Up: true}, -config.PaddleSpeed},
		{"down", Controls{Down: true}, config.PaddleSpeed},
		{"both cancel", Controls{Up: true, Down: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			startY := g.PlayerPaddle.Position.Y

			g.Update(0.1, tt.ctl)

			if g.PlayerPaddle.Velocity != tt.want {
				t.Errorf("Velocity: got %v, want %v", g.PlayerPaddle.Velocity, tt.want)
			}
			wantY := startY + tt.want*0.1
			if math.Abs(g.PlayerPaddle.Position.Y-wantY) > 1e-9 {
				t.Errorf("Position.Y: got %v, want %v", g.PlayerPaddle.Position.Y, wantY)
			}
		})
	}
}

func TestUpdateAIFollowsBall(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball.Position = entities.NewVec2D(400, 50)
	g.Ball.Velocity = entities.NewVec2D(config.BallSpeed, 0)

	g.Update(0.01, Controls{})

	if g.AIPaddle.Velocity != -config.PaddleSpeed*config.AISpeedFactor {
		t.Errorf("AI velocity: got %v, want %v", g.AIPaddle.Velocity, -config.PaddleSpeed*config.AISpeedFactor)
	}
}

func TestUpdatePaddleHit(t *testing.T) {
	g, fx := newTestGame(t)
	g.Ball.Position = entities.NewVec2D(50, 290)
	g.Ball.Velocity = entities.NewVec2D(-config.BallSpeed, 0)

	g.Update(0.02, Controls{})

	if g.Ball.Velocity.X <= 0 {
		t.Errorf("ball should bounce right, Velocity.X=%v", g.Ball.Velocity.X)
	}
	if fx.paddleHits != 1 {
		t.Errorf("paddle hits: got %d, want 1", fx.paddleHits)
	}
	if len(g.Particles) != config.PaddleHitParticles {
		t.Errorf("particles: got %d, want %d", len(g.Particles), config.PaddleHitParticles)
	}
	if g.Ball.Position.X != config.PaddleMargin+config.PaddleWidth {
		t.Errorf("ball X: got %v, want %v", g.Ball.Position.X, config.PaddleMargin+config.PaddleWidth)
	}
	if len(g.BallTrail) != 1 {
		t.Errorf("trail length: got %d, want 1", len(g.BallTrail))
	}
}

func TestUpdateWallHitEvent(t *testing.T) {
	g, fx := newTestGame(t)

	// 球在中间移动，不触发
	g.Ball.Position = entities.NewVec2D(400, 300)
	g.Ball.Velocity = entities.NewVec2D(config.BallSpeed, 0)
	g.Update(0.01, Controls{})
	if fx.wallHits != 0 {
		t.Errorf("wall hits: got %d, want 0", fx.wallHits)
	}

	// 更新前后都贴着上墙
	g.Ball.Position = entities.NewVec2D(400, 0)
	g.Ball.Velocity = entities.NewVec2D(config.BallSpeed, 0)
	g.Update(0.01, Controls{})
	if fx.wallHits != 1 {
		t.Errorf("wall hits: got %d, want 1", fx.wallHits)
	}
}

func TestUpdateScoring(t *testing.T) {
	g, fx := newTestGame(t)
	sendBallLeftOut(g)

	// 先积累一些拖尾
	g.Update(0.001, Controls{})
	if len(g.BallTrail) == 0 {
		t.Fatal("trail should not be empty before scoring")
	}

	for i := 0; i < 10 && g.AIScore == 0; i++ {
		g.Update(0.05, Controls{})
	}

	if g.AIScore != 1 {
		t.Fatalf("AIScore: got %d, want 1", g.AIScore)
	}
	if g.PlayerScore != 0 {
		t.Errorf("PlayerScore: got %d, want 0", g.PlayerScore)
	}
	if len(g.BallTrail) != 0 {
		t.Errorf("trail length: got %d, want 0", len(g.BallTrail))
	}
	if g.Ball.Position.X != config.WindowWidth/2 || g.Ball.Position.Y != config.WindowHeight/2 {
		t.Errorf("ball: got %+v, want window center", g.Ball.Position)
	}
	if math.Abs(g.Ball.Velocity.Length()-config.BallSpeed) > 1e-6 {
		t.Errorf("ball speed: got %v, want %v", g.Ball.Velocity.Length(), config.BallSpeed)
	}
	if len(g.Particles) != config.ScoreParticles {
		t.Errorf("particles: got %d, want %d", len(g.Particles), config.ScoreParticles)
	}
	if len(fx.scored) != 1 || fx.scored[0] != SideAI {
		t.Errorf("scored events: got %v, want [AI]", fx.scored)
	}
	if g.State != StatePlaying {
		t.Errorf("State: got %v, want Playing", g.State)
	}
}

func TestUpdatePlayerScores(t *testing.T) {
	g, fx := newTestGame(t)
	g.Ball.Position = entities.NewVec2D(config.WindowWidth-5, 100)
	g.Ball.Velocity = entities.NewVec2D(config.BallSpeed, 0)

	g.Update(0.05, Controls{})

	if g.PlayerScore != 1 {
		t.Errorf("PlayerScore: got %d, want 1", g.PlayerScore)
	}
	if len(fx.scored) != 1 || fx.scored[0] != SidePlayer {
		t.Errorf("scored events: got %v, want [Player]", fx.scored)
	}
}

func TestGameOverAndReset(t *testing.T) {
	g, _ := newTestGame(t)
	g.AIScore = config.WinningScore - 1
	sendBallLeftOut(g)

	g.Update(0.05, Controls{})

	if g.AIScore != config.WinningScore {
		t.Fatalf("AIScore: got %d, want %d", g.AIScore, config.WinningScore)
	}
	if g.State != StateGameOver {
		t.Fatalf("State: got %v, want GameOver", g.State)
	}
	if side, over := g.Winner(); !over || side != SideAI {
		t.Errorf("Winner: got (%v, %v), want (AI, true)", side, over)
	}

	// 比赛结束后 Update 不改变任何状态
	ball := *g.Ball
	player := *g.PlayerPaddle
	ai := *g.AIPaddle
	particles := len(g.Particles)
	for i := 0; i < 30; i++ {
		g.Update(0.05, Controls{Up: true})
	}
	if *g.Ball != ball || *g.PlayerPaddle != player || *g.AIPaddle != ai {
		t.Error("entities moved while game over")
	}
	if g.AIScore != config.WinningScore || g.PlayerScore != 0 {
		t.Errorf("scores changed while game over: %d-%d", g.PlayerScore, g.AIScore)
	}
	if len(g.Particles) != particles {
		t.Errorf("particles changed while game over: got %d, want %d", len(g.Particles), particles)
	}

	// 没有按重新开始时保持结束状态
	g.HandleInput(false)
	if g.State != StateGameOver {
		t.Fatalf("State: got %v, want GameOver", g.State)
	}

	g.PlayerPaddle.Position.Y = 0
	g.HandleInput(true)

	if g.State != StatePlaying {
		t.Errorf("State after reset: got %v, want Playing", g.State)
	}
	if g.PlayerScore != 0 || g.AIScore != 0 {
		t.Errorf("scores after reset: got %d-%d, want 0-0", g.PlayerScore, g.AIScore)
	}
	if g.PlayerPaddle.Position.Y != config.PaddleStartY() || g.AIPaddle.Position.Y != config.PaddleStartY() {
		t.Error("paddles should be recentered after reset")
	}
	if len(g.Particles) != 0 || len(g.BallTrail) != 0 {
		t.Error("particles and trail should be cleared after reset")
	}
	if _, over := g.Winner(); over {
		t.Error("Winner should report no winner after reset")
	}
}

func TestHandleInputIgnoredWhilePlaying(t *testing.T) {
	g, _ := newTestGame(t)
	g.PlayerScore = 3

	g.HandleInput(true)

	if g.PlayerScore != 3 {
		t.Errorf("restart should be ignored while playing, PlayerScore=%d", g.PlayerScore)
	}
}

// TestTrailBounded 任意帧数后拖尾长度不超过 TrailLength
func TestTrailBounded(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 2000; i++ {
		g.Update(1.0/60.0, Controls{Down: i%120 < 60, Up: i%120 >= 60})
		if len(g.BallTrail) > config.TrailLength {
			t.Fatalf("tick %d: trail length %d exceeds %d", i, len(g.BallTrail), config.TrailLength)
		}
		if g.State == StateGameOver {
			g.Reset()
		}
	}
}

func TestTrailKeepsNewest(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball.Position = entities.NewVec2D(400, 300)
	g.Ball.Velocity = entities.NewVec2D(0, 10)

	for i := 0; i < config.TrailLength+5; i++ {
		g.Update(0.01, Controls{})
	}

	if len(g.BallTrail) != config.TrailLength {
		t.Fatalf("trail length: got %d, want %d", len(g.BallTrail), config.TrailLength)
	}
	last := g.BallTrail[len(g.BallTrail)-1]
	if last != g.Ball.Center() {
		t.Errorf("last trail point: got %+v, want ball center %+v", last, g.Ball.Center())
	}
	for i := 1; i < len(g.BallTrail); i++ {
		if g.BallTrail[i].Y <= g.BallTrail[i-1].Y {
			t.Fatalf("trail not ordered oldest first at %d", i)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	g, _ := newTestGame(t)
	g.Ball.Position = entities.NewVec2D(400, 300)
	g.Ball.Velocity = entities.NewVec2D(0, 0)
	g.spawnParticles(entities.NewVec2D(100, 100), 20)

	// 粒子最长寿命 2 秒
	for i := 0; i < 25; i++ {
		g.Update(0.1, Controls{})
	}

	if len(g.Particles) != 0 {
		t.Errorf("particles: got %d, want 0", len(g.Particles))
	}
}

func TestUpdateNegativeDeltaIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	ball := *g.Ball

	g.Update(-1, Controls{Down: true})

	if *g.Ball != ball {
		t.Error("ball moved on negative dt")
	}
	if len(g.BallTrail) != 0 {
		t.Error("trail changed on negative dt")
	}
}

func TestUpdateMaxDeltaTime(t *testing.T) {
	g, _ := newTestGame(t)
	g.SetMaxDeltaTime(0.01)
	g.Ball.Position = entities.NewVec2D(400, 300)
	g.Ball.Velocity = entities.NewVec2D(100, 0)

	g.Update(5, Controls{})

	if math.Abs(g.Ball.Position.X-401) > 1e-9 {
		t.Errorf("ball X: got %v, want 401", g.Ball.Position.X)
	}
}

// TestDeterministicWithSeed 相同种子和输入得到相同结果
func TestDeterministicWithSeed(t *testing.T) {
	run := func() (int, int, entities.Vec2D) {
		g := NewGame(rand.New(rand.NewSource(99)), nil)
		for i := 0; i < 3000 && g.State == StatePlaying; i++ {
			g.Update(1.0/60.0, Controls{Up: i%90 < 30})
		}
		return g.PlayerScore, g.AIScore, g.Ball.Position
	}

	p1, a1, b1 := run()
	p2, a2, b2 := run()
	if p1 != p2 || a1 != a2 || b1 != b2 {
		t.Errorf("runs differ: (%d, %d, %+v) vs (%d, %d, %+v)", p1, a1, b1, p2, a2, b2)
	}
}
