package entities

import "math"

// 粒子随机参数范围
const (
	particleMinSpeed    = 50.0
	particleMaxSpeed    = 200.0
	particleMinLifetime = 0.5
	particleMaxLifetime = 2.0
)

// Particle 粒子
// 击中球拍或得分时生成的短暂视觉效果，由 Game 统一持有和清理
type Particle struct {
	Position    Vec2D
	Velocity    Vec2D   // 像素/秒
	Lifetime    float64 // 剩余生命（秒）
	MaxLifetime float64 // 初始生命（秒）
}

// NewParticle 在指定位置生成粒子
// 方向在 [0, 2π) 内均匀随机，速度在 [50, 200) 内，生命在 [0.5, 2.0) 内
func NewParticle(x, y float64, rng RandSource) *Particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := randRange(rng, particleMinSpeed, particleMaxSpeed)
	lifetime := randRange(rng, particleMinLifetime, particleMaxLifetime)

	return &Particle{
		Position:    NewVec2D(x, y),
		Velocity:    NewVec2D(math.Cos(angle)*speed, math.Sin(angle)*speed),
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
	}
}

// Update 推进粒子并减少生命
// 返回粒子是否仍然存活；返回 false 时由调用方移除
func (p *Particle) Update(dt float64) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Lifetime -= dt
	return p.Lifetime > 0
}

// Alpha 返回当前透明度 Lifetime/MaxLifetime，限制在 [0, 1]
func (p *Particle) Alpha() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Lifetime/p.MaxLifetime))
}
