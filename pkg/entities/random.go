package entities

// RandSource 随机数来源
// *rand.Rand 满足该接口；测试中可以注入固定序列
type RandSource interface {
	// Float64 返回 [0, 1) 内均匀分布的随机数
	Float64() float64
}

// randRange 返回 [min, max) 内均匀分布的随机数
func randRange(rng RandSource, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
