package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/downtoearth/ecs/component"
)

const stickDeadzone = 0.3

// Input samples keyboard, mouse and the first gamepad into an Intent.
type Input struct {
	intent component.Intent
	// mouse aim stays active until the keyboard or a stick aims again
	mouseAim bool
	lastX    int
	lastY    int
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Intent() component.Intent {
	return i.intent
}

// Update polls devices. shipPos is where the ship is drawn, used to turn the
// cursor into an aim angle.
func (i *Input) Update(shipPos cp.Vector) {
	var in component.Intent

	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ)
	in.ToggleMode = inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyQ)

	// 8-way ground aim on H/L/K/N or the numpad
	if ebiten.IsKeyPressed(ebiten.KeyNumpad4) || ebiten.IsKeyPressed(ebiten.KeyH) {
		in.AimX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad6) || ebiten.IsKeyPressed(ebiten.KeyL) {
		in.AimX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad8) || ebiten.IsKeyPressed(ebiten.KeyK) {
		in.AimY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad2) || ebiten.IsKeyPressed(ebiten.KeyN) {
		in.AimY++
	}
	if in.AimX != 0 || in.AimY != 0 {
		i.mouseAim = false
	}

	mx, my := ebiten.CursorPosition()
	if mx != i.lastX || my != i.lastY || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		i.mouseAim = true
	}
	i.lastX, i.lastY = mx, my
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Fire = true
	}
	if i.mouseAim {
		in.HasAim = true
		in.AimAngle = math.Atan2(float64(my)-shipPos.Y, float64(mx)-shipPos.X)
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		i.pollGamepad(ids[0], &in)
	}

	i.intent = in
}

func (i *Input) pollGamepad(gid ebiten.GamepadID, in *component.Intent) {
	lx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	in.Left = in.Left || lx < -stickDeadzone
	in.Right = in.Right || lx > stickDeadzone
	in.Up = in.Up || ly < -stickDeadzone
	in.Down = in.Down || ly > stickDeadzone

	in.Fire = in.Fire ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight) ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	in.ToggleMode = in.ToggleMode ||
		inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightTop)

	rx := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		i.mouseAim = false
		in.HasAim = true
		in.AimAngle = math.Atan2(ry, rx)
	}
}
