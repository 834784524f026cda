package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assert.Equal(t, NewRect(0, 0, 80, 24), s.Bounds())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, blank, s.GetCell(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
	assert.Empty(t, s.String())
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '#', ColorCyan)
	assert.Equal(t, Cell{Rune: '#', Color: ColorCyan}, s.GetCell(1, 2))

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 4, 0},
		{"above", 0, -1},
		{"below", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() { s.SetCell(tc.x, tc.y, 'A', ColorRed) })
			assert.Equal(t, blank, s.GetCell(tc.x, tc.y))
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(s.Bounds(), "X", ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, blank, s.GetCell(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	assert.Equal(t, strings.Repeat("#####\n", 4)+"#####", s.String())
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorGreen)

	assert.Equal(t, "  Hello", strings.TrimRight(s.Row(1), " "))
	assert.Equal(t, ColorGreen, s.GetCell(6, 1).Color)

	// Only "He" fits before the right edge.
	s.DrawTextColor(18, 0, "Hello", ColorDefault)
	assert.Equal(t, 'H', runeAt(s, 18, 0))
	assert.Equal(t, 'e', runeAt(s, 19, 0))
}

func TestScreenDrawTextCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColor(0, 0, "█a█", ColorDefault)

	assert.Equal(t, '█', runeAt(s, 0, 0))
	assert.Equal(t, 'a', runeAt(s, 1, 0))
	assert.Equal(t, '█', runeAt(s, 2, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		text  string
		wantX int
	}{
		{"whole screen", NewRect(0, 0, 20, 5), "Hi", 9},
		{"inside a box", NewRect(4, 0, 10, 5), "GAME", 7},
		{"odd remainder rounds left", NewRect(0, 0, 10, 5), "abc", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 5)
			s.DrawTextCentered(tc.r, 2, tc.text, ColorYellow)

			assert.Equal(t, []rune(tc.text)[0], runeAt(s, tc.wantX, 2))
			assert.Equal(t, ColorYellow, s.GetCell(tc.wantX, 2).Color)
			assert.Equal(t, ' ', runeAt(s, tc.wantX-1, 2))
		})
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 4, 3), "[]", ColorRed)

	for y := 2; y < 5; y++ {
		assert.Equal(t, "[][]", s.Row(y)[2:6], "row %d", y)
		assert.Equal(t, ColorRed, s.GetCell(2, y).Color)
	}
	assert.Equal(t, ' ', runeAt(s, 1, 1), "outside the rect")
	assert.Equal(t, ' ', runeAt(s, 6, 4), "outside the rect")

	s.FillRect(NewRect(0, 0, 2, 2), "", ColorRed)
	assert.Equal(t, ' ', runeAt(s, 0, 0), "empty pattern draws nothing")
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y     int
		expected rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		assert.Equal(t, c.expected, runeAt(s, c.x, c.y), "corner (%d, %d)", c.x, c.y)
	}

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', runeAt(s, x, 1), "top edge x=%d", x)
		assert.Equal(t, '─', runeAt(s, x, 4), "bottom edge x=%d", x)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', runeAt(s, 1, y), "left edge y=%d", y)
		assert.Equal(t, '│', runeAt(s, 5, y), "right edge y=%d", y)
	}

	assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColor(0, 1, "BBBBB", ColorRed)
	s.DrawTextColor(0, 2, "CCCCC", ColorDefault)

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorDefault)
	s.DrawTextColor(0, 5, "World", ColorDefault)

	// Smaller keeps the top-left content.
	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))

	// Larger still has it.
	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))
	assert.Equal(t, strings.Repeat(" ", 15), s.Row(5), "dropped rows come back blank")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawTextColor(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	assert.True(t, strings.HasPrefix(row, "Test"))
	assert.Len(t, row, 10)

	assert.Equal(t, "          ", s.Row(-1), "out of bounds rows read as spaces")
	assert.Equal(t, "          ", s.Row(5))
}
