package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"solarsystem/core"
)

const helpText = `Solar system controls:
  W/A/S/D       move forward / left / back / right
  mouse         look around
  E             toggle wireframe
  Home          reset camera
  Pause, P      pause / resume the simulation
  Tab           toggle HUD
  F12           save a screenshot
  H, F1         show this help
  Esc, Q        quit`

func (r *SolarRenderer) printHelp() {
	fmt.Println(helpText)
}

func (r *SolarRenderer) onResize(width, height int) {
	if width <= 0 || height <= 0 {
		return // minimized
	}
	r.width = width
	r.height = height
	r.camera.SetViewport(width, height)
	if r.hud != nil {
		r.hud.UpdateSize(width, height)
	}
}

func (r *SolarRenderer) onFramebufferResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.fbWidth = width
	r.fbHeight = height
	gl.Viewport(0, 0, int32(width), int32(height))

	// Redraw now so the window isn't stretched while dragging
	r.Update()
	r.Render()
}

func movementKey(key glfw.Key) (core.Direction, bool) {
	switch key {
	case glfw.KeyW:
		return core.Forward, true
	case glfw.KeyA:
		return core.Left, true
	case glfw.KeyS:
		return core.Back, true
	case glfw.KeyD:
		return core.Right, true
	}
	return 0, false
}

// keyCommand is what a non-movement key press does
type keyCommand int

const (
	cmdNone keyCommand = iota
	cmdQuit
	cmdHelp
	cmdWireframe
	cmdResetCamera
	cmdPause
	cmdToggleHUD
	cmdScreenshot
)

func commandForKey(key glfw.Key) keyCommand {
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		return cmdQuit
	case glfw.KeyH, glfw.KeyF1:
		return cmdHelp
	case glfw.KeyE:
		return cmdWireframe
	case glfw.KeyHome:
		return cmdResetCamera
	case glfw.KeyPause, glfw.KeyP:
		return cmdPause
	case glfw.KeyTab:
		return cmdToggleHUD
	case glfw.KeyF12:
		return cmdScreenshot
	}
	return cmdNone
}

// redraws reports whether the change must be shown without waiting for the
// next frame
func (c keyCommand) redraws() bool {
	return c == cmdWireframe || c == cmdResetCamera
}

func (r *SolarRenderer) onKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if d, ok := movementKey(key); ok {
		switch action {
		case glfw.Press:
			r.keys.Set(d, true)
		case glfw.Release:
			r.keys.Set(d, false)
		}
		return
	}

	if action != glfw.Press {
		return
	}

	cmd := commandForKey(key)
	switch cmd {
	case cmdQuit:
		r.window.SetShouldClose(true)
	case cmdHelp:
		r.printHelp()
	case cmdWireframe:
		r.wireframe = !r.wireframe
		if r.wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			fmt.Println("> using wireframe mode")
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
			fmt.Println("> using solid mode")
		}
	case cmdResetCamera:
		r.camera.Reset()
		r.keys.Clear()
		r.window.SetCursorPos(float64(r.width/2), float64(r.height/2))
		fmt.Println("> camera reset")
	case cmdPause:
		if r.clock.TogglePause() {
			fmt.Printf("> paused at t=%.1f\n", r.clock.Now())
		} else {
			fmt.Println("> resumed")
		}
	case cmdToggleHUD:
		r.showHUD = !r.showHUD
		if r.showHUD {
			fmt.Println("HUD: ON")
		} else {
			fmt.Println("HUD: OFF")
		}
	case cmdScreenshot:
		r.captureRequested = true
	}

	if cmd.redraws() {
		r.Update()
		r.Render()
	}
}

func (r *SolarRenderer) onMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	// Mouse-look needs no button
}

func (r *SolarRenderer) onMouseMove(xpos, ypos float64) {
	if !r.camera.ApplyFirstPerson(r.width, r.height, xpos, ypos, r.settings.Scene.MouseSensitivity) {
		return
	}
	r.window.SetCursorPos(float64(r.width/2), float64(r.height/2))
}
