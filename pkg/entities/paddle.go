package entities

import "github.com/gonewx/pong/pkg/config"

// Paddle 球拍
// 只能上下移动，Velocity 为带符号的垂直速度（像素/秒，向下为正）
type Paddle struct {
	Position Vec2D
	Velocity float64
}

// NewPaddle 创建静止的球拍
func NewPaddle(x, y float64) *Paddle {
	return &Paddle{
		Position: NewVec2D(x, y),
		Velocity: 0,
	}
}

// Update 按速度移动球拍，并限制在球场范围内
// 无论速度是否为零都会执行限制
func (p *Paddle) Update(dt float64) {
	p.Position.Y += p.Velocity * dt

	if p.Position.Y < 0 {
		p.Position.Y = 0
	} else if p.Position.Y > config.WindowHeight-config.PaddleHeight {
		p.Position.Y = config.WindowHeight - config.PaddleHeight
	}
}

// CenterY 返回球拍中心的Y坐标
func (p *Paddle) CenterY() float64 {
	return p.Position.Y + config.PaddleHeight/2
}

// Rect 返回球拍的碰撞盒
func (p *Paddle) Rect() Rect {
	return Rect{X: p.Position.X, Y: p.Position.Y, W: config.PaddleWidth, H: config.PaddleHeight}
}
