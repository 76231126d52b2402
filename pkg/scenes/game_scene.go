package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/utils"
)

// GameSceneOptions 创建比赛场景所需的依赖
// 除 Config 外都可以为 nil
type GameSceneOptions struct {
	Config        *config.GameConfig
	Effects       game.EffectSink     // 音效，nil 表示静音
	RecordManager *game.RecordManager // 战绩，nil 表示不记录
	Input         func() utils.InputState
}

// GameScene 比赛场景
//
// 职责：
//   - 每帧采样输入并推进 game.Game
//   - 比赛结束时记录战绩
//   - 绘制球场、球拍、球、粒子和比分（见 game_scene_render.go）
type GameScene struct {
	game          *game.Game
	config        *config.GameConfig
	recordManager *game.RecordManager
	input         func() utils.InputState

	// matchRecorded 本局结果是否已经记录，重新开始时清除
	matchRecorded bool

	fonts *sceneFonts // 首次 Draw 时加载
}

// NewGameScene 创建比赛场景
//
// 参数：
//   - opts: 场景依赖，Config 为 nil 时使用默认配置
//
// 返回：
//   - *GameScene: 已开始比赛的场景
func NewGameScene(opts GameSceneOptions) *GameScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[GameScene] Starting match (seed: %d)", seed)

	g := game.NewGame(rand.New(rand.NewSource(seed)), opts.Effects)
	g.SetMaxDeltaTime(cfg.MaxDeltaTime)

	input := opts.Input
	if input == nil {
		input = utils.GetInputState
	}

	return &GameScene{
		game:          g,
		config:        cfg,
		recordManager: opts.RecordManager,
		input:         input,
	}
}

// Game 返回场景持有的比赛
func (s *GameScene) Game() *game.Game {
	return s.game
}

// Update 采样输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	in := s.input()

	if s.game.State == game.StateGameOver && in.Restart {
		s.game.HandleInput(true)
		s.matchRecorded = false
		return
	}

	s.game.Update(deltaTime, s.controls(in))

	if s.game.State == game.StateGameOver && !s.matchRecorded {
		s.recordResult()
	}
}

// controls 把输入转换为球拍控制
// 按住触摸/鼠标时球拍追向指针，否则使用方向键
func (s *GameScene) controls(in utils.InputState) game.Controls {
	if in.PointerActive {
		return game.ControlsToward(float64(in.PointerY), s.game.PlayerPaddle.CenterY())
	}
	return game.Controls{Up: in.Up, Down: in.Down}
}

// recordResult 记录刚结束的比赛
func (s *GameScene) recordResult() {
	s.matchRecorded = true

	winner, over := s.game.Winner()
	if !over || s.recordManager == nil {
		return
	}
	s.recordManager.RecordMatch(winner, s.game.PlayerScore, s.game.AIScore)
}

// SaveOnExit 实现 game.Saveable，退出时保存战绩
func (s *GameScene) SaveOnExit() bool {
	if s.recordManager == nil {
		return true
	}
	if err := s.recordManager.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save records: %v", err)
		return false
	}
	return true
}
