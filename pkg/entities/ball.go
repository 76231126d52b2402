package entities

import (
	"math"

	"github.com/gonewx/pong/pkg/config"
)

// maxBounceAngle 击中球拍边缘时的最大反弹角（45°）
const maxBounceAngle = math.Pi / 4

// Ball 球
// 整局只有一个实例，得分后通过 Reset 原地重置
type Ball struct {
	Position Vec2D
	Velocity Vec2D // 像素/秒，大小恒为 BallSpeed
}

// NewBall 在指定位置创建球，并随机发球方向
func NewBall(x, y float64, rng RandSource) *Ball {
	return &Ball{
		Position: NewVec2D(x, y),
		Velocity: serveVelocity(rng),
	}
}

// serveVelocity 随机生成发球速度
//
// 各 50% 概率从两个角度区间中取值：
//   - 向右: [-π/4, π/4)
//   - 向左: [3π/4, 5π/4)
//
// 保证球主要沿水平方向运动，不会接近垂直
func serveVelocity(rng RandSource) Vec2D {
	var angle float64
	if rng.Float64() < 0.5 {
		angle = randRange(rng, -math.Pi/4, math.Pi/4)
	} else {
		angle = randRange(rng, 3*math.Pi/4, 5*math.Pi/4)
	}
	return NewVec2D(config.BallSpeed*math.Cos(angle), config.BallSpeed*math.Sin(angle))
}

// Update 移动球并处理上下墙反弹
// 水平方向不做限制，出界由 Game 判定得分
func (b *Ball) Update(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	maxY := config.WindowHeight - config.BallSize
	if b.Position.Y <= 0 || b.Position.Y >= maxY {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = math.Max(0, math.Min(maxY, b.Position.Y))
	}
}

// Reset 把球放回球场中心并重新随机发球方向
func (b *Ball) Reset(rng RandSource) {
	b.Position = NewVec2D(config.WindowWidth/2, config.WindowHeight/2)
	b.Velocity = serveVelocity(rng)
}

// Rect 返回球的碰撞盒
func (b *Ball) Rect() Rect {
	return Rect{X: b.Position.X, Y: b.Position.Y, W: config.BallSize, H: config.BallSize}
}

// Center 返回球心坐标
func (b *Ball) Center() Vec2D {
	return NewVec2D(b.Position.X+config.BallSize/2, b.Position.Y+config.BallSize/2)
}

// HandlePaddleCollision 处理球与球拍的碰撞
//
// 碰撞时根据击中点相对球拍中心的偏移计算反弹角：
//   - 偏移按半个球拍高度归一化，不做 [-1, 1] 限制
//   - 反弹角 = 归一化偏移 * π/4
//   - 水平方向按当前速度符号取反，与球拍在哪一侧无关
//
// 然后把球推到球拍前沿之外，避免下一帧重复碰撞。
//
// 返回：
//   - bool: 是否发生了碰撞
func (b *Ball) HandlePaddleCollision(paddle *Paddle) bool {
	paddleRect := paddle.Rect()
	if !b.Rect().Overlaps(paddleRect) {
		return false
	}

	intersectY := (b.Position.Y + config.BallSize/2) - paddle.CenterY()
	normalized := intersectY / (config.PaddleHeight / 2)
	angle := normalized * maxBounceAngle

	direction := 1.0
	if b.Velocity.X > 0 {
		direction = -1.0
	}
	b.Velocity = NewVec2D(
		config.BallSpeed*math.Cos(angle)*direction,
		config.BallSpeed*math.Sin(angle),
	)

	if direction < 0 {
		b.Position.X = paddleRect.X - config.BallSize
	} else {
		b.Position.X = paddleRect.X + config.PaddleWidth
	}
	return true
}
