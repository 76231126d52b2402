package game

// EffectSink 接收比赛事件通知（音效等）
//
// 通知只是单向的，不影响物理和计分。
// 音频不可用时使用 NoopEffects。
type EffectSink interface {
	// WallHit 球撞到上下墙
	WallHit()
	// PaddleHit 球被球拍击回
	PaddleHit()
	// Scored 一方得分
	Scored(side Side)
}

// NoopEffects 忽略所有事件
type NoopEffects struct{}

// WallHit 实现 EffectSink
func (NoopEffects) WallHit() {}

// PaddleHit 实现 EffectSink
func (NoopEffects) PaddleHit() {}

// Scored 实现 EffectSink
func (NoopEffects) Scored(Side) {}
