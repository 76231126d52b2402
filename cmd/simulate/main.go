// simulate 无界面运行 AI 对 AI 的比赛并输出结果
//
// 用法：
//
//	go run ./cmd/simulate -matches 100 -seed 1
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/pong/pkg/config"
	"github.com/gonewx/pong/pkg/game"
)

var (
	matches  = flag.Int("matches", 10, "Number of matches to simulate")
	seed     = flag.Int64("seed", 1, "Seed of the first match (match i uses seed+i)")
	tps      = flag.Int("tps", 60, "Ticks per second")
	maxTicks = flag.Int("max-ticks", 60*60*60, "Tick limit per match")
	verbose  = flag.Bool("verbose", false, "Show per-point game logs")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *matches <= 0 || *tps <= 0 || *maxTicks <= 0 {
		fmt.Fprintln(os.Stderr, "matches, tps and max-ticks must be > 0")
		os.Exit(2)
	}

	dt := 1.0 / float64(*tps)
	var playerWins, aiWins, unfinished, totalTicks, totalHits int

	for i := 0; i < *matches; i++ {
		res := game.SimulateMatch(*seed+int64(i), dt, *maxTicks)
		totalTicks += res.Ticks
		totalHits += res.PaddleHits

		status := fmt.Sprintf("%s wins", res.Winner)
		switch {
		case !res.Finished:
			unfinished++
			status = "unfinished"
		case res.Winner == game.SidePlayer:
			playerWins++
		default:
			aiWins++
		}

		fmt.Printf("match %3d  seed %-6d  %d-%d  %-12s  %7.1fs  %4d paddle hits\n",
			i+1, res.Seed, res.PlayerScore, res.AIScore, status, res.Duration(dt), res.PaddleHits)
	}

	fmt.Println()
	fmt.Printf("player wins: %d, AI wins: %d, unfinished: %d (first to %d)\n",
		playerWins, aiWins, unfinished, config.WinningScore)
	fmt.Printf("average match: %.1fs, %.1f paddle hits\n",
		float64(totalTicks)*dt/float64(*matches), float64(totalHits)/float64(*matches))
}
