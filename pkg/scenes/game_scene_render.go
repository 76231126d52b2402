package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/entities"
	"github.com/gonewx/pong/pkg/game"
	"github.com/gonewx/pong/pkg/utils"
)

// 中线虚线分段数，偶数段绘制
const centerLineSegments = 20

var hintColor = color.RGBA{R: 130, G: 130, B: 130, A: 255}

// Draw 绘制整个球场
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	s.drawCenterLine(screen)
	if s.config.TrailEnabled() {
		s.drawTrail(screen)
	}
	drawPaddle(screen, s.game.PlayerPaddle)
	drawPaddle(screen, s.game.AIPaddle)
	drawBall(screen, s.game.Ball)
	if s.config.ParticlesEnabled() {
		s.drawParticles(screen)
	}

	if !s.ensureFonts() {
		return
	}
	s.drawScores(screen)
	if s.game.State == game.StatePlaying {
		s.drawInstructions(screen)
	} else {
		s.drawGameOver(screen)
	}
}

// ensureFonts 首次调用时加载字体，失败时只画图形不画文字
func (s *GameScene) ensureFonts() bool {
	if s.fonts != nil {
		return s.fonts.score != nil
	}
	fonts, err := loadSceneFonts()
	if err != nil {
		log.Printf("[GameScene] Warning: %v (text disabled)", err)
		s.fonts = &sceneFonts{}
		return false
	}
	s.fonts = fonts
	return true
}

func (s *GameScene) drawCenterLine(screen *ebiten.Image) {
	segment := float32(config.WindowHeight / centerLineSegments)
	x := float32(config.WindowWidth/2 - 2)
	for i := 0; i < centerLineSegments; i += 2 {
		vector.DrawFilledRect(screen, x, float32(i)*segment, 4, segment, color.White, false)
	}
}

// drawTrail 越新的点越不透明
func (s *GameScene) drawTrail(screen *ebiten.Image) {
	n := len(s.game.BallTrail)
	for i, p := range s.game.BallTrail {
		alpha := float64(i) / float64(n) * 0.3
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 3, whiteAlpha(alpha), true)
	}
}

func drawPaddle(screen *ebiten.Image, p *entities.Paddle) {
	x, y := float32(p.Position.X), float32(p.Position.Y)
	vector.DrawFilledRect(screen, x, y, config.PaddleWidth, config.PaddleHeight, color.White, false)
	drawGlow(screen, x, y, config.PaddleWidth, config.PaddleHeight, 0.3, 2, 2)
}

func drawBall(screen *ebiten.Image, b *entities.Ball) {
	x, y := float32(b.Position.X), float32(b.Position.Y)
	vector.DrawFilledRect(screen, x, y, config.BallSize, config.BallSize, color.White, false)
	drawGlow(screen, x, y, config.BallSize, config.BallSize, 0.4, 1.5, 1)
}

// drawGlow 在矩形外画三圈逐渐变淡的描边
func drawGlow(screen *ebiten.Image, x, y, w, h float32, intensity float64, step, strokeWidth float32) {
	for i := 1; i <= 3; i++ {
		offset := float32(i) * step
		alpha := intensity / float64(i)
		vector.StrokeRect(screen, x-offset, y-offset, w+offset*2, h+offset*2, strokeWidth, whiteAlpha(alpha), true)
	}
}

// drawParticles 粒子半径和透明度随剩余生命缩小
func (s *GameScene) drawParticles(screen *ebiten.Image) {
	for _, p := range s.game.Particles {
		alpha := p.Alpha()
		if alpha <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(3*alpha), whiteAlpha(alpha), true)
	}
}

func (s *GameScene) drawScores(screen *ebiten.Image) {
	const y = 80.0
	drawText(screen, fmt.Sprintf("%d", s.game.PlayerScore), s.fonts.score, config.WindowWidth/4-20, y, color.White)
	drawText(screen, fmt.Sprintf("%d", s.game.AIScore), s.fonts.score, 3*config.WindowWidth/4-20, y, color.White)
}

func (s *GameScene) drawInstructions(screen *ebiten.Image) {
	instructions := "W/S or Up/Down arrows to move"
	if utils.IsMobile() {
		instructions = "Touch and drag to move"
	}
	drawCenteredText(screen, instructions, s.fonts.hint, config.WindowHeight-30, hintColor)
}

func (s *GameScene) drawGameOver(screen *ebiten.Image) {
	winnerText := "AI WINS!"
	if winner, _ := s.game.Winner(); winner == game.SidePlayer {
		winnerText = "PLAYER WINS!"
	}
	drawCenteredText(screen, winnerText, s.fonts.title, config.WindowHeight/2-50, color.White)

	hint := "Press R to restart or ESC to quit"
	if utils.IsMobile() {
		hint = "Tap to restart"
	}
	drawCenteredText(screen, hint, s.fonts.hint, config.WindowHeight/2, hintColor)

	if s.recordManager != nil {
		rec := s.recordManager.GetRecord()
		record := fmt.Sprintf("Record: %d - %d", rec.PlayerWins, rec.AIWins)
		drawCenteredText(screen, record, s.fonts.hint, config.WindowHeight/2+40, hintColor)
	}
}

// drawText 以基线 baselineY 绘制文字
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, baselineY float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, baselineY-face.Size)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCenteredText 水平居中绘制文字
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, baselineY float64, clr color.Color) {
	width := text.Advance(str, face)
	drawText(screen, str, face, (config.WindowWidth-width)/2, baselineY, clr)
}

// whiteAlpha 返回预乘 alpha 的半透明白色
func whiteAlpha(alpha float64) color.Color {
	a := uint8(alpha * 255)
	return color.RGBA{R: a, G: a, B: a, A: a}
}
