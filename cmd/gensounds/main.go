// gensounds 把合成的音效写成 WAV 文件，便于试听
//
// 用法：
//
//	go run ./cmd/gensounds -out build/sounds
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gonewx/pong/internal/audio"
	"github.com/gonewx/pong/pkg/game"
)

func main() {
	outDir := flag.String("out", "sounds", "Output directory")
	sampleRate := flag.Int("rate", audio.DefaultSampleRate, "Sample rate in Hz")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error: failed to create %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	bank := game.SoundBank(*sampleRate)
	ids := make([]string, 0, len(bank))
	for id := range bank {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	for _, id := range ids {
		path := filepath.Join(*outDir, id+".wav")
		data := bank[game.SoundID(id)]
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Printf("Error: failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("%s  %d bytes\n", path, len(data))
	}
}
