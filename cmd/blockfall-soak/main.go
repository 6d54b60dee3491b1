// Command blockfall-soak plays bot-driven games headlessly, checks the
// engine's invariants after every frame and prints a Markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/blockfall/config"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The longest the soak should run for.")
	games := flag.Int("games", 0, "Stop after this many finished games (0 = until duration).")
	seed := flag.Uint64("seed", 1, "Seed for the piece source and the bot.")
	randomizer := flag.String("randomizer", string(config.Uniform), "Piece source: uniform or bag.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	cfg.Seed = *seed
	cfg.Randomizer = config.Randomizer(*randomizer)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("blockfall-soak: %v", err)
	}

	log.Printf("Soaking for %s (games=%d seed=%d randomizer=%s)...", *duration, *games, *seed, cfg.Randomizer)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report := soak(ctx, cfg, *games)
	report.GCPauseMetrics = *gcPauseMetrics

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		log.Fatalf("blockfall-soak: %d invariant violations", len(report.Violations))
	}
	log.Println("Soak complete.")
}
