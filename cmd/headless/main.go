package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/ladderclimb/assets"
	"github.com/automoto/ladderclimb/headless"
	"github.com/automoto/ladderclimb/shared/physics"
	"github.com/automoto/ladderclimb/shared/rules"
)

func main() {
	frames := flag.Int("frames", 3600, "frames to run (0 runs until interrupted)")
	fps := flag.Int("fps", 0, "frame rate (0 runs as fast as possible)")
	tps := flag.Int("tps", 60, "simulation steps per second when -fps is set")
	seed := flag.Int64("seed", 1, "random seed for hazards and the wandering player")
	levels := flag.String("levels", "", "directory of .tmx levels (default: embedded levels)")
	script := flag.String("script", "", "input script such as \"R:60,RJ:1,U:40\" (default: random wandering)")
	logEvery := flag.Int("log-every", 600, "frames between status lines")
	flag.Parse()

	var intents headless.IntentSource = headless.NewWander(rand.New(rand.NewSource(*seed + 1)))
	if *script != "" {
		s, err := headless.ParseScript(*script)
		if err != nil {
			log.Fatalf("Invalid script: %v", err)
		}
		intents = s
	}

	sess := rules.NewSession(
		assets.LoadLevels(*levels),
		physics.DefaultTuning(),
		rules.DefaultTuning(),
		rand.New(rand.NewSource(*seed)),
		nil,
	)

	loop := headless.NewGameLoop(sess, intents, *fps, *tps)
	loop.SetLogEvery(*logEvery)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	stats := loop.Run(*frames)
	log.Printf("Done: %d frames, %d steps, %d levels completed, %d game overs, best score %d",
		stats.Frames, stats.Steps, stats.LevelsCompleted, stats.GameOvers, stats.BestScore)
}
