package opengl

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"solarsystem/config"
	"solarsystem/core"
	"solarsystem/rendering/opengl/overlay"
	"solarsystem/rendering/opengl/shaders"
)

// uniformLocations caches the solar program's uniforms
type uniformLocations struct {
	model, view, projection int32

	lightPosition, ia, id, is int32
	ka, kd, ks, shininess     int32

	texture      int32
	blinnEnabled int32
	blendEnabled int32
}

// SolarRenderer draws the solar system into a GLFW window
type SolarRenderer struct {
	window   *glfw.Window
	settings config.Settings

	program  uint32
	uniforms uniformLocations

	sphere meshBuffer
	ring   meshBuffer

	planetTextures [core.PlanetTextureCount]uint32
	ringTextures   [core.RingTextureCount]uint32

	camera   *core.Camera
	keys     core.MovementKeys
	light    core.Light
	material core.Material
	clock    *core.Clock

	// Window size in screen coordinates and framebuffer size in pixels
	width, height     int
	fbWidth, fbHeight int

	wireframe bool

	hud     *overlay.HUD
	showHUD bool
	fps     float64

	captureRequested bool
}

// NewSolarRenderer opens the window and uploads every mesh and texture
func NewSolarRenderer(settings config.Settings) (*SolarRenderer, error) {
	runtime.LockOSThread()

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure OpenGL context
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := settings.Window.Width, settings.Window.Height
	window, err := glfw.CreateWindow(width, height, settings.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if settings.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version:", version)

	fbWidth, fbHeight := window.GetFramebufferSize()
	r := &SolarRenderer{
		window:   window,
		settings: settings,
		camera:   core.NewCamera(width, height),
		light:    core.SunLight(),
		material: core.DefaultMaterial(),
		clock:    core.NewClock(settings.Scene.TimeScale),
		width:    width,
		height:   height,
		fbWidth:  fbWidth,
		fbHeight: fbHeight,
		showHUD:  true,
	}

	// Setup OpenGL state
	bg := settings.ClearColor()
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	program, err := shaders.CompileSolarShaders()
	if err != nil {
		r.Terminate()
		return nil, fmt.Errorf("failed to compile solar shaders: %w", err)
	}
	r.program = program
	r.lookupUniforms()

	r.sphere = uploadMesh(core.SphereMesh(1))
	r.ring = uploadMesh(core.RingMesh())

	r.loadTextures(r.planetTextures[:], settings.PlanetTexturePaths())
	r.loadTextures(r.ringTextures[:], settings.RingTexturePaths())

	hud, err := overlay.NewHUD(width, height)
	if err != nil {
		log.Printf("warning: HUD disabled: %v", err)
	} else {
		r.hud = hud
	}

	// Hide the cursor and park it at the centre for mouse-look
	window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	window.SetCursorPos(float64(width/2), float64(height/2))

	// Setup callbacks
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onFramebufferResize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, scancode, action, mods)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		r.onMouseButton(button, action, mods)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.onMouseMove(xpos, ypos)
	})

	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			r.keys.Clear()
		}
	})

	return r, nil
}

func (r *SolarRenderer) lookupUniforms() {
	loc := func(name string) int32 {
		return shaders.UniformLocation(r.program, name)
	}
	r.uniforms = uniformLocations{
		model:         loc("model_matrix"),
		view:          loc("view_matrix"),
		projection:    loc("projection_matrix"),
		lightPosition: loc("light_position"),
		ia:            loc("Ia"),
		id:            loc("Id"),
		is:            loc("Is"),
		ka:            loc("Ka"),
		kd:            loc("Kd"),
		ks:            loc("Ks"),
		shininess:     loc("shininess"),
		texture:       loc("TEX1"),
		blinnEnabled:  loc("blinnEnabled"),
		blendEnabled:  loc("blendEnabled"),
	}
}

// Advance moves the simulation clock by dt wall seconds
func (r *SolarRenderer) Advance(dt float64) {
	r.clock.Advance(dt)
}

// SimTime returns the current simulation time
func (r *SolarRenderer) SimTime() float32 {
	return r.clock.Now()
}

// Paused reports whether the simulation is paused
func (r *SolarRenderer) Paused() bool {
	return r.clock.Paused()
}

// Update applies held movement keys and pushes the per-frame uniforms
func (r *SolarRenderer) Update() {
	if r.keys.Any() {
		r.camera.Translate(r.keys.Displacement(r.camera.Eye, r.camera.At, r.settings.Scene.MoveSpeed))
	}

	gl.UseProgram(r.program)

	view := r.camera.View()
	projection := r.camera.Projection()
	gl.UniformMatrix4fv(r.uniforms.view, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uniforms.projection, 1, false, &projection[0])

	gl.Uniform1i(r.uniforms.texture, 0) // GL_TEXTURE0

	r.updateLight()
}

func (r *SolarRenderer) updateLight() {
	gl.Uniform4fv(r.uniforms.lightPosition, 1, &r.light.Position[0])
	gl.Uniform4fv(r.uniforms.ia, 1, &r.light.Ambient[0])
	gl.Uniform4fv(r.uniforms.id, 1, &r.light.Diffuse[0])
	gl.Uniform4fv(r.uniforms.is, 1, &r.light.Specular[0])

	gl.Uniform4fv(r.uniforms.ka, 1, &r.material.Ambient[0])
	gl.Uniform4fv(r.uniforms.kd, 1, &r.material.Diffuse[0])
	gl.Uniform4fv(r.uniforms.ks, 1, &r.material.Specular[0])
	gl.Uniform1f(r.uniforms.shininess, r.material.Shininess)
}

// Render draws one frame and swaps buffers
func (r *SolarRenderer) Render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	t := r.clock.Now()

	// Sun and planets
	r.sphere.bind()
	for i, p := range core.Planets {
		r.setFlag(r.uniforms.blinnEnabled, i != core.Sun)
		gl.BindTexture(gl.TEXTURE_2D, r.planetTextures[p.Texture])
		r.draw(core.PlanetModel(p, t), r.sphere)
	}

	// Moons share one texture
	r.setFlag(r.uniforms.blinnEnabled, true)
	gl.BindTexture(gl.TEXTURE_2D, r.planetTextures[core.MoonTexture])
	for _, m := range core.Moons {
		r.draw(core.MoonModel(m, core.Planets[m.Parent], t), r.sphere)
	}

	// Rings are translucent and go last
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r.setFlag(r.uniforms.blendEnabled, true)

	r.ring.bind()
	for _, ring := range core.Rings {
		gl.BindTexture(gl.TEXTURE_2D, r.ringTextures[ring.Texture])
		r.draw(core.RingModel(ring, core.Planets[ring.Parent], t), r.ring)
	}

	gl.Disable(gl.BLEND)
	r.setFlag(r.uniforms.blendEnabled, false)
	gl.BindVertexArray(0)

	r.renderHUD()

	if r.captureRequested {
		r.captureRequested = false
		r.saveCapture()
	}

	r.window.SwapBuffers()
}

func (r *SolarRenderer) draw(model mgl32.Mat4, mesh meshBuffer) {
	gl.UniformMatrix4fv(r.uniforms.model, 1, false, &model[0])
	gl.DrawElements(gl.TRIANGLES, mesh.count, gl.UNSIGNED_INT, nil)
}

func (r *SolarRenderer) setFlag(loc int32, on bool) {
	v := int32(0)
	if on {
		v = 1
	}
	gl.Uniform1i(loc, v)
}

// ShouldClose returns true if the window should close
func (r *SolarRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes window events
func (r *SolarRenderer) PollEvents() {
	glfw.PollEvents()
}

// Time returns seconds since GLFW was initialized
func (r *SolarRenderer) Time() float64 {
	return glfw.GetTime()
}

// Terminate releases GL resources and closes the window
func (r *SolarRenderer) Terminate() {
	if r.hud != nil {
		r.hud.Release()
	}
	r.sphere.release()
	r.ring.release()
	gl.DeleteTextures(int32(len(r.planetTextures)), &r.planetTextures[0])
	gl.DeleteTextures(int32(len(r.ringTextures)), &r.ringTextures[0])
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.window.Destroy()
	glfw.Terminate()
}
