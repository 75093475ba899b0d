package mainmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/view"
)

func newMenu(t *testing.T) (*Menu, *[]view.Request) {
	t.Helper()
	var switched []view.Request
	m := New(Config{
		SwitchView: func(r view.Request) { switched = append(switched, r) },
		DesignW:    1020,
		DesignH:    620,
	})
	return m, &switched
}

func TestMenu_ButtonLayout(t *testing.T) {
	m, _ := newMenu(t)
	require.Len(t, m.Buttons(), 3)

	// Column of 200x60 buttons at x=50, vertically centered
	x, y, w, h := m.Buttons()[0].Rect()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 210.0, y)
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 60.0, h)

	_, y1, _, _ := m.Buttons()[1].Rect()
	assert.Equal(t, 280.0, y1)
	_, y2, _, _ := m.Buttons()[2].Rect()
	assert.Equal(t, 350.0, y2)
}

func TestMenu_ClicksSwitchViews(t *testing.T) {
	tests := []struct {
		button int
		want   view.Request
	}{
		{0, view.RequestGame},
		{1, view.RequestSettings},
		{2, view.RequestExit},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			m, switched := newMenu(t)
			x, y, w, h := m.Buttons()[tt.button].Rect()
			m.HandleInput(system.Input{MouseX: int(x + w/2), MouseY: int(y + h/2), Click: true})

			require.Len(t, *switched, 1)
			assert.Equal(t, tt.want, (*switched)[0])
		})
	}
}

func TestMenu_ClickOutsideDoesNothing(t *testing.T) {
	m, switched := newMenu(t)
	m.HandleInput(system.Input{MouseX: 900, MouseY: 10, Click: true})
	assert.Empty(t, *switched)
}

func TestMenu_Hover(t *testing.T) {
	m, _ := newMenu(t)
	x, y, w, h := m.Buttons()[1].Rect()

	m.HandleInput(system.Input{MouseX: int(x + w/2), MouseY: int(y + h/2)})
	assert.False(t, m.Buttons()[0].Hovered())
	assert.True(t, m.Buttons()[1].Hovered())

	// Suppressed pointer (gameplay hands the menu no cursor) clears hover
	m.HandleInput(system.Input{MouseX: -1, MouseY: -1})
	assert.False(t, m.Buttons()[1].Hovered())
}

func TestMenu_HandleResize(t *testing.T) {
	m, switched := newMenu(t)
	m.HandleResize(2040, 1240)

	x, y, w, h := m.Buttons()[0].Rect()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 420.0, y)
	assert.Equal(t, 400.0, w)
	assert.Equal(t, 120.0, h)

	// Clicks land on the scaled rectangle
	m.HandleInput(system.Input{MouseX: int(x + w/2), MouseY: int(y + h/2), Click: true})
	require.Len(t, *switched, 1)
	assert.Equal(t, view.RequestGame, (*switched)[0])
}
