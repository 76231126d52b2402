package entities

import "math"

// Vec2D 二维向量（值类型）
// 所有运算都返回新值，不修改接收者
type Vec2D struct {
	X float64
	Y float64
}

// NewVec2D 创建向量
func NewVec2D(x, y float64) Vec2D {
	return Vec2D{X: x, Y: y}
}

// ZeroVec2D 返回零向量
func ZeroVec2D() Vec2D {
	return Vec2D{}
}

// Length 返回向量长度 sqrt(x²+y²)
func (v Vec2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize 返回单位向量
// 零向量原样返回，不做除零
func (v Vec2D) Normalize() Vec2D {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec2D{X: v.X / length, Y: v.Y / length}
}

// Add 向量加法
func (v Vec2D) Add(o Vec2D) Vec2D {
	return Vec2D{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale 数乘
func (v Vec2D) Scale(s float64) Vec2D {
	return Vec2D{X: v.X * s, Y: v.Y * s}
}
