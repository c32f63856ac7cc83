package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardBounds(t *testing.T) {
	b := NewBoard(4, 6)

	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 6, b.Height())
	assert.True(t, b.InBounds(0, 0))
	assert.True(t, b.InBounds(3, 5))
	assert.False(t, b.InBounds(4, 0))
	assert.False(t, b.InBounds(0, -1))

	b.Set(-1, 0, 3)
	b.Set(0, 6, 3)
	assert.Zero(t, b.filledCount(), "out of bounds writes dropped")
	assert.Equal(t, Empty, b.Get(10, 10))
}

func TestBoardRowsIsCopy(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(1, 2, 5)

	rows := b.Rows()
	assert.Equal(t, Color(5), rows[2][1])

	rows[2][1] = 0
	assert.Equal(t, Color(5), b.Get(1, 2))
}

func TestClearLinesNone(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(0, 3, 1)
	b.Set(1, 3, 1)
	b.Set(2, 3, 1)

	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, 3, b.filledCount())
}

func TestClearLinesStacked(t *testing.T) {
	b := NewBoard(4, 5)
	fillRow(b, 2, 2)
	fillRow(b, 3, 3)
	fillRow(b, 4, 4)
	b.Set(1, 1, 6)

	assert.Equal(t, 3, b.ClearLines())
	assert.Equal(t, 1, b.filledCount())
	assert.Equal(t, Color(6), b.Get(1, 4))
}

func TestClearLinesWholeBoard(t *testing.T) {
	b := NewBoard(4, 4)
	for y := 0; y < 4; y++ {
		fillRow(b, y, Color(y+1))
	}

	assert.Equal(t, 4, b.ClearLines())
	assert.Zero(t, b.filledCount())
}

func TestClearLinesAlternating(t *testing.T) {
	b := NewBoard(4, 8)
	// Full rows at 1, 3, 5, 7 with single markers between them
	for _, y := range []int{1, 3, 5, 7} {
		fillRow(b, y, 1)
	}
	b.Set(0, 0, 2)
	b.Set(1, 2, 3)
	b.Set(2, 4, 4)
	b.Set(3, 6, 5)

	assert.Equal(t, 4, b.ClearLines())
	assert.Equal(t, Color(2), b.Get(0, 4))
	assert.Equal(t, Color(3), b.Get(1, 5))
	assert.Equal(t, Color(4), b.Get(2, 6))
	assert.Equal(t, Color(5), b.Get(3, 7))
	assert.Equal(t, 4, b.filledCount())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 0, 1)
	b.Reset()
	assert.Zero(t, b.filledCount())
}
