package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"solarsystem/config"
	"solarsystem/ephemeris"
	"solarsystem/rendering/opengl"
)

func main() {
	// Parse command line flags
	var (
		configPath = flag.String("config", config.DefaultPath, "Settings file")
		width      = flag.Int("width", 0, "Window width (overrides settings)")
		height     = flag.Int("height", 0, "Window height (overrides settings)")
		serveAddr  = flag.String("serve", "", "Serve the ephemeris feed on this address, e.g. :8080")
		textureDir = flag.String("textures", "", "Texture directory (overrides settings)")
	)
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}
	if *serveAddr != "" {
		settings.Server.Addr = *serveAddr
	}
	if *textureDir != "" {
		settings.Textures.Dir = *textureDir
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	fmt.Println("=== Solar System ===")
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)
	fmt.Printf("Time scale: %.2f\n", settings.Scene.TimeScale)

	renderer, err := opengl.NewSolarRenderer(settings)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := &ephemeris.SimState{}
	if settings.Server.Addr != "" {
		interval := time.Duration(settings.Server.UpdateIntervalMs) * time.Millisecond
		server := ephemeris.NewEphemerisServer(settings.Server.Addr, interval, state)
		go func() {
			if err := server.Run(ctx); err != nil {
				log.Printf("warning: %v", err)
			}
		}()
	}

	fmt.Println("\nPress H for controls")

	lastTime := time.Now()
	frameCount := 0
	lastFPSTime := time.Now()

	// Main loop
	for !renderer.ShouldClose() {
		renderer.PollEvents()

		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		renderer.Advance(dt)
		state.Publish(renderer.SimTime(), renderer.Paused())

		renderer.Update()
		renderer.Render()

		// FPS counter
		frameCount++
		if elapsed := now.Sub(lastFPSTime).Seconds(); elapsed >= 1.0 {
			fps := float64(frameCount) / elapsed
			renderer.SetFPS(fps)
			fmt.Printf("\rFPS: %.1f | t=%.1f", fps, renderer.SimTime())
			frameCount = 0
			lastFPSTime = now
		}
	}
	fmt.Println()
}
