//go:build ignore

// validate_config 检查配置文件能否被游戏加载
//
// 用法：
//
//	go run tools/validate_config.go data/pong.yaml my.toml
package main

import (
	"fmt"
	"os"

	"github.com/gonewx/pong/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/pong.yaml"}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %q, %d TPS, seed %d, %d Hz\n", path, cfg.WindowTitle, cfg.TPS, cfg.Seed, cfg.SampleRate)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
