package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solarsystem/core"
)

type Settings struct {
	Window   WindowSettings  `json:"window"`
	Scene    SceneSettings   `json:"scene"`
	Textures TextureSettings `json:"textures"`
	Server   ServerSettings  `json:"server"`
	Capture  CaptureSettings `json:"capture"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type SceneSettings struct {
	TimeScale        float64    `json:"timeScale"`
	ClearColor       [3]float32 `json:"clearColor"` // 0-255
	MoveSpeed        float32    `json:"moveSpeed"`
	MouseSensitivity float32    `json:"mouseSensitivity"`
}

type TextureSettings struct {
	Dir     string   `json:"dir"`
	Planets []string `json:"planets"`
	Rings   []string `json:"rings"`
	MaxSize int      `json:"maxSize"` // 0 keeps the source size
}

type ServerSettings struct {
	Addr             string `json:"addr"` // empty disables the ephemeris feed
	UpdateIntervalMs int    `json:"updateIntervalMs"`
}

type CaptureSettings struct {
	Dir string `json:"dir"`
}

// DefaultPath is read when no -config flag is given
const DefaultPath = "settings.json"

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1024,
			Height: 576,
			Title:  "Solar System",
			VSync:  true,
		},
		Scene: SceneSettings{
			TimeScale:        0.5,
			ClearColor:       [3]float32{39, 40, 34},
			MoveSpeed:        0.01,
			MouseSensitivity: 0.1,
		},
		Textures: TextureSettings{
			Dir: "textures",
			Planets: []string{
				"sun.jpg", "mercury.jpg", "venus.jpg", "earth.jpg", "mars.jpg",
				"jupiter.jpg", "saturn.jpg", "uranus.jpg", "neptune.jpg", "moon.jpg",
			},
			Rings: []string{"saturn-ring.jpg", "uranus-ring.jpg"},
		},
		Server: ServerSettings{
			UpdateIntervalMs: 100,
		},
		Capture: CaptureSettings{
			Dir: "screenshots",
		},
	}
}

// Load reads settings from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (Settings, error) {
	s := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("No %s found, using defaults\n", path)
			return s, nil
		}
		return s, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return s, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}

	fmt.Printf("Loaded settings from %s (%dx%d, time scale %.2f)\n",
		path, s.Window.Width, s.Window.Height, s.Scene.TimeScale)
	return s, nil
}

// Validate checks the values the renderer cannot work without
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case len(s.Textures.Planets) != core.PlanetTextureCount:
		return fmt.Errorf("need %d planet textures, got %d", core.PlanetTextureCount, len(s.Textures.Planets))
	case len(s.Textures.Rings) != core.RingTextureCount:
		return fmt.Errorf("need %d ring textures, got %d", core.RingTextureCount, len(s.Textures.Rings))
	case s.Textures.MaxSize < 0:
		return fmt.Errorf("texture maxSize %d must not be negative", s.Textures.MaxSize)
	case s.Scene.TimeScale < 0:
		return fmt.Errorf("time scale %v must not be negative", s.Scene.TimeScale)
	case s.Scene.MoveSpeed < 0:
		return fmt.Errorf("move speed %v must not be negative", s.Scene.MoveSpeed)
	case s.Server.UpdateIntervalMs <= 0:
		return fmt.Errorf("server update interval %dms must be positive", s.Server.UpdateIntervalMs)
	}
	return nil
}

// PlanetTexturePaths joins the planet texture names onto the texture dir
func (s Settings) PlanetTexturePaths() []string {
	return s.texturePaths(s.Textures.Planets)
}

// RingTexturePaths joins the ring texture names onto the texture dir
func (s Settings) RingTexturePaths() []string {
	return s.texturePaths(s.Textures.Rings)
}

func (s Settings) texturePaths(names []string) []string {
	paths := make([]string, len(names))
	for i, name := range names {
		if filepath.IsAbs(name) {
			paths[i] = name
			continue
		}
		paths[i] = filepath.Join(s.Textures.Dir, name)
	}
	return paths
}

// ClearColor returns the background colour scaled to [0, 1]
func (s Settings) ClearColor() [3]float32 {
	c := s.Scene.ClearColor
	return [3]float32{c[0] / 255, c[1] / 255, c[2] / 255}
}
