package main

import (
	"fmt"
	"runtime"
	"time"

	"mini-voxel/internal/config"
	"mini-voxel/internal/game"
	"mini-voxel/internal/graphics"
	"mini-voxel/internal/input"
	"mini-voxel/internal/player"
	"mini-voxel/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	renderer, err := graphics.NewRenderer()
	if err != nil {
		panic(err)
	}

	session := game.NewSession(config.DefaultSeed)

	// Spawn above the terrain at the world origin
	spawnHeight := float32(session.Store().Generator().HeightAt(0, 0)) + 4.0
	gamePlayer := player.New(mgl32.Vec3{0, spawnHeight, 0})

	im := input.NewManager()
	im.SetCallbacks(window)

	paused := false
	setupMouseHandlers(window, gamePlayer, &paused)

	runGameLoop(window, renderer, session, gamePlayer, im, &paused)
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(graphics.WinWidth, graphics.WinHeight, "mini-voxel", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func setupMouseHandlers(window *glfw.Window, p *player.Player, paused *bool) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !*paused {
			p.HandleMouseMovement(w, xpos, ypos)
		}
	})
}

func runGameLoop(window *glfw.Window, renderer *graphics.Renderer, session *game.Session, p *player.Player, im *input.Manager, paused *bool) {
	frames := 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()

	for !window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if im.JustPressed(input.ActionPause) {
			*paused = !*paused
			if *paused {
				window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
			} else {
				window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
				p.FirstMouse = true
			}
		}
		if im.JustPressed(input.ActionToggleWireframe) {
			renderer.WireframeMode = !renderer.WireframeMode
		}

		if !*paused {
			p.Update(dt, im)
		}

		session.Tick(game.TickInput{
			Observer:    p.GetEyePosition(),
			Facing:      p.GetFrontVector(),
			Aiming:      !*paused,
			BreakBlock:  !*paused && im.JustPressed(input.ActionMouseLeft),
			PlaceBlock:  !*paused && im.JustPressed(input.ActionMouseRight),
			PaletteSlot: p.SelectedSlot,
		})

		renderer.Render(session, p)
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fmt.Println("FPS: ", frames)
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		window.SwapBuffers()
		glfw.PollEvents()
		im.PostUpdate()

		// Flag frames missing a 60 FPS budget, with the worst offenders
		totalFrameDur := time.Since(now)
		if totalFrameDur > time.Second/60 {
			fmt.Printf("Frame took too long: %.2fms (%s)\n",
				float64(totalFrameDur.Nanoseconds())/1000000.0,
				profiling.TopN(3))
		}
	}
}
