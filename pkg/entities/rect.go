package entities

// Rect 轴对齐包围盒（AABB），仅用于碰撞检测
// X, Y 为左上角坐标
type Rect struct {
	X, Y float64
	W, H float64
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Top 上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps 检查两个矩形是否重叠
// 边界相接也算重叠（闭区间比较）
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() <= other.Right() &&
		r.Right() >= other.Left() &&
		r.Top() <= other.Bottom() &&
		r.Bottom() >= other.Top()
}
