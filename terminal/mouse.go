package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wordchips/core"
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// MouseEvent is a decoded pointer event in screen cells
type MouseEvent struct {
	Button MouseButton
	Action MouseAction
	X, Y   int
}

// Point returns the event position as a point
func (e MouseEvent) Point() core.Point {
	return core.Point{X: float64(e.X), Y: float64(e.Y)}
}

// Mouse turns tcell button-mask snapshots into press/drag/move/release transitions
// tcell reports only the buttons currently held, so the previous mask is tracked
type Mouse struct {
	held tcell.ButtonMask
}

// Decode translates one tcell mouse event
func (m *Mouse) Decode(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	return m.Translate(ev.Buttons(), x, y)
}

// Translate is Decode on raw values
func (m *Mouse) Translate(buttons tcell.ButtonMask, x, y int) MouseEvent {
	out := MouseEvent{X: x, Y: y}

	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button, out.Action = MouseBtnWheelUp, MouseActionPress
		return out
	case buttons&tcell.WheelDown != 0:
		out.Button, out.Action = MouseBtnWheelDown, MouseActionPress
		return out
	}

	now := buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := m.held
	m.held = now

	switch {
	case prev == 0 && now != 0:
		out.Button, out.Action = buttonOf(now), MouseActionPress
	case prev != 0 && now == 0:
		out.Button, out.Action = buttonOf(prev), MouseActionRelease
	case now != 0:
		out.Button, out.Action = buttonOf(now), MouseActionDrag
	default:
		out.Action = MouseActionMove
	}
	return out
}

func buttonOf(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return MouseBtnLeft
	case mask&tcell.Button3 != 0:
		return MouseBtnMiddle
	case mask&tcell.Button2 != 0:
		return MouseBtnRight
	}
	return MouseBtnNone
}
