package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestRectInset(t *testing.T) {
	r := NewRect(5, 5, 10, 20).Inset(1)
	assert.Equal(t, NewRect(4, 4, 12, 22), r)
	assert.Equal(t, NewRect(5, 5, 10, 20), r.Inset(-1), "negative inset undoes a positive one")
}

func TestPixelLayout(t *testing.T) {
	l := PixelLayout()

	tests := []struct {
		col, row int
		expected Rect
	}{
		{0, 0, NewRect(150, 150, 20, 20)},
		{9, 0, NewRect(330, 150, 20, 20)},
		{0, 19, NewRect(150, 530, 20, 20)},
		{4, 7, NewRect(230, 290, 20, 20)},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, l.CellRect(tc.col, tc.row), "cell (%d, %d)", tc.col, tc.row)
	}
	assert.Equal(t, NewRect(150, 150, 200, 400), l.BoardRect(10, 20))
}

func TestCenteredLayout(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		expectX, expectY int
	}{
		{"roomy terminal", 80, 24, 30, 2},
		{"exact fit", 22, 22, 1, 1},
		{"too small keeps margin", 10, 10, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := CenteredLayout(tc.screenW, tc.screenH, 10, 20, 2, 1)
			assert.Equal(t, Layout{OriginX: tc.expectX, OriginY: tc.expectY, CellW: 2, CellH: 1}, l)
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 5, Min(5, 10))
	assert.Equal(t, 5, Min(10, 5))
	assert.Equal(t, 10, Max(5, 10))
	assert.Equal(t, 10, Max(10, 5))
}
