package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"solarsystem/core"
)

func main() {
	var (
		t      = flag.Float64("t", 0, "Simulation time in seconds")
		steps  = flag.Int("steps", 1, "Number of samples")
		step   = flag.Float64("step", 1, "Seconds between samples")
		asJSON = flag.Bool("json", false, "Print JSON instead of a table")
	)
	flag.Parse()

	if *steps < 1 {
		log.Fatalf("steps must be at least 1, got %d", *steps)
	}

	for i := 0; i < *steps; i++ {
		at := float32(*t + float64(i)**step)
		states := core.Ephemeris(at)

		if *asJSON {
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(struct {
				Time   float32          `json:"time"`
				Bodies []core.BodyState `json:"bodies"`
			}{at, states}); err != nil {
				log.Fatalf("Failed to encode ephemeris: %v", err)
			}
			continue
		}

		fmt.Printf("=== t = %.2f ===\n", at)
		fmt.Printf("%-10s %-7s %-8s %10s %10s %10s %8s\n", "name", "kind", "parent", "x", "y", "z", "dist")
		for _, s := range states {
			fmt.Printf("%-10s %-7s %-8s %10.3f %10.3f %10.3f %8.3f\n",
				s.Name, s.Kind, s.Parent,
				s.Position.X(), s.Position.Y(), s.Position.Z(), s.Position.Len())
		}
		fmt.Println()
	}
}
