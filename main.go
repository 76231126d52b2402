package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/pong/pkg/app"
	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Path to a config file (.yaml, .yml or .toml); defaults to the embedded data/pong.yaml")
	seed := flag.Int64("seed", 0, "Random seed (overrides the config file, 0 = keep)")
	mute := flag.Bool("mute", false, "Disable sound effects for this run")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	flag.Parse()

	embedded.Init(dataFS)

	gameConfig, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		gameConfig.Seed = *seed
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Game:       gameConfig,
		Mute:       *mute,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	gameApp.ApplyWindowSettings()

	runErr := ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// loadConfig 读取 -config 指定的文件，未指定时使用内置默认配置
// 内置配置损坏时退回代码中的默认值
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}

	data, err := embedded.ReadFile(embedded.DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: Failed to read embedded config: %v (using defaults)", err)
		return config.DefaultGameConfig(), nil
	}

	cfg, err := config.ParseGameConfig(data, config.FormatYAML)
	if err != nil {
		log.Printf("[Config] Warning: %v (using defaults)", err)
		return config.DefaultGameConfig(), nil
	}
	return cfg, nil
}
