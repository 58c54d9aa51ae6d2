package opengl

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"

	"solarsystem/rendering/opengl/overlay"
	"solarsystem/rendering/textures"
)

// SetFPS records the frame rate shown on the HUD
func (r *SolarRenderer) SetFPS(fps float64) {
	r.fps = fps
}

func (r *SolarRenderer) renderHUD() {
	if r.hud == nil || !r.showHUD {
		return
	}

	r.hud.Update(overlay.Stats{
		FPS:       r.fps,
		TimeScale: r.clock.Scale(),
		Distance:  r.camera.Eye.Len(),
		Paused:    r.clock.Paused(),
	})
	r.hud.Render()

	// The HUD always draws filled
	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
}

// saveCapture reads back the back buffer and writes it as WebP
func (r *SolarRenderer) saveCapture() {
	w, h := r.fbWidth, r.fbHeight
	pixels := make([]byte, w*h*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := textures.SaveCapture(r.settings.Capture.Dir, pixels, w, h, time.Now())
	if err != nil {
		log.Printf("warning: screenshot failed: %v", err)
		return
	}
	fmt.Println("> saved", path)
}
