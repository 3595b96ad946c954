package player

import (
	"math"

	"mini-voxel/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FlySpeed         = 12.0
	MouseSensitivity = 0.1
)

// Player is a free-flying observer. There is no collision or gravity; it
// moves along the view direction and the world plane.
type Player struct {
	Position mgl32.Vec3

	CamYaw   float64
	CamPitch float64

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool

	// SelectedSlot is the active hotbar slot (1..3).
	SelectedSlot int
}

func New(spawn mgl32.Vec3) *Player {
	return &Player{
		Position:     spawn,
		CamYaw:       -90.0,
		FirstMouse:   true,
		SelectedSlot: 1,
	}
}

func (p *Player) HandleMouseMovement(w *glfw.Window, xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.CamYaw += xoffset * MouseSensitivity
	p.CamPitch += yoffset * MouseSensitivity

	// Constrain pitch
	if p.CamPitch > 89.0 {
		p.CamPitch = 89.0
	}
	if p.CamPitch < -89.0 {
		p.CamPitch = -89.0
	}
}

// Update applies movement input and hotbar selection for one frame.
func (p *Player) Update(dt float64, im *input.Manager) {
	switch {
	case im.JustPressed(input.ActionHotbar1):
		p.SelectedSlot = 1
	case im.JustPressed(input.ActionHotbar2):
		p.SelectedSlot = 2
	case im.JustPressed(input.ActionHotbar3):
		p.SelectedSlot = 3
	}

	front := p.GetFrontVector()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	var move mgl32.Vec3
	if im.IsActive(input.ActionMoveForward) {
		move = move.Add(front)
	}
	if im.IsActive(input.ActionMoveBackward) {
		move = move.Sub(front)
	}
	if im.IsActive(input.ActionMoveRight) {
		move = move.Add(right)
	}
	if im.IsActive(input.ActionMoveLeft) {
		move = move.Sub(right)
	}
	if im.IsActive(input.ActionMoveUp) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if im.IsActive(input.ActionMoveDown) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}

	if move.Len() > 0 {
		p.Position = p.Position.Add(move.Normalize().Mul(float32(FlySpeed * dt)))
	}
}

func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	eye := p.GetEyePosition()
	target := eye.Add(p.GetFrontVector())
	return mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
}
