//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.pong -o build/android/pong.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Pong.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/pong/pkg/app"
	"github.com/gonewx/pong/pkg/config"
)

func init() {
	// 移动端没有命令行参数，使用默认配置
	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Game:    config.DefaultGameConfig(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
