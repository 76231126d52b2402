package config

// 游戏常量
// 本文件定义了球场尺寸、球拍和球的规格以及比赛规则。
// 这些值在运行时固定不变，不受配置文件影响。

// 窗口（球场）尺寸
const (
	// WindowWidth 是球场的逻辑宽度（像素）
	// 球的X坐标越过 [0, WindowWidth] 即判定得分
	WindowWidth = 800.0

	// WindowHeight 是球场的逻辑高度（像素）
	WindowHeight = 600.0
)

// 球拍规格
const (
	// PaddleWidth 球拍宽度（像素）
	PaddleWidth = 15.0

	// PaddleHeight 球拍高度（像素）
	PaddleHeight = 80.0

	// PaddleSpeed 玩家球拍移动速度（像素/秒）
	PaddleSpeed = 300.0

	// PaddleMargin 球拍与左右边界的距离（像素）
	// 玩家球拍 X = PaddleMargin，AI 球拍 X = WindowWidth - PaddleMargin - PaddleWidth
	PaddleMargin = 30.0
)

// 球规格
const (
	// BallSize 球的边长（像素），球按正方形处理碰撞
	BallSize = 15.0

	// BallSpeed 球速（像素/秒）
	// 发球、重置以及每次击中球拍后速度大小都恰好等于该值
	BallSpeed = 350.0
)

// 比赛规则
const (
	// WinningScore 获胜所需分数
	WinningScore = 5

	// AISpeedFactor AI 球拍速度相对 PaddleSpeed 的倍率
	// 比玩家慢，保证可以被击败
	AISpeedFactor = 0.8

	// AIDeadband AI 死区（像素）
	// 球心与 AI 球拍中心的垂直距离不超过该值时 AI 不移动，避免抖动
	AIDeadband = 10.0
)

// 特效参数
const (
	// TrailLength 球拖尾保留的最大采样数
	TrailLength = 10

	// PaddleHitParticles 击中球拍时生成的粒子数
	PaddleHitParticles = 8

	// ScoreParticles 得分时生成的粒子数
	ScoreParticles = 15
)

// PaddleStartY 返回球拍居中时的Y坐标
func PaddleStartY() float64 {
	return WindowHeight/2 - PaddleHeight/2
}

// AIPaddleX 返回 AI 球拍（右侧）的X坐标
func AIPaddleX() float64 {
	return WindowWidth - PaddleMargin - PaddleWidth
}
