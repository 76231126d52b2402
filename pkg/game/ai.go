package game

import "github.com/gonewx/pong/pkg/config"

// AIVelocity 计算 AI 球拍的速度（死区策略）
//
// 球心在 AI 球拍中心上下 AIDeadband 以外时，以 AISpeedFactor*PaddleSpeed
// 的速度追向球心；否则保持不动。
//
// 参数:
//   - ballCenterY: 球心Y坐标
//   - paddleCenterY: AI 球拍中心Y坐标
//
// 返回:
//   - float64: 球拍垂直速度（向下为正）
func AIVelocity(ballCenterY, paddleCenterY float64) float64 {
	speed := config.PaddleSpeed * config.AISpeedFactor

	if ballCenterY < paddleCenterY-config.AIDeadband {
		return -speed
	} else if ballCenterY > paddleCenterY+config.AIDeadband {
		return speed
	}
	return 0
}

// PlayerVelocity 根据控制意图计算玩家球拍速度
// 同时按下上和下时速度为 0
func PlayerVelocity(ctl Controls) float64 {
	velocity := 0.0
	if ctl.Up {
		velocity -= config.PaddleSpeed
	}
	if ctl.Down {
		velocity += config.PaddleSpeed
	}
	return velocity
}

// ControlsToward 生成追向目标Y坐标的控制意图（使用与 AI 相同的死区）
// 用于无界面模拟时替玩家操作
func ControlsToward(targetY, paddleCenterY float64) Controls {
	v := AIVelocity(targetY, paddleCenterY)
	return Controls{Up: v < 0, Down: v > 0}
}
