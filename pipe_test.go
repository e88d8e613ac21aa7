package rxlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainComposesLeftToRight(t *testing.T) {
	double := Map(func(v int) int { return v * 2 })
	addOne := Map(func(v int) int { return v + 1 })

	var got []int
	Chain(double, addOne)(From(1, 2, 3)).Subscribe(Observer[int]{
		OnNext: func(v int) { got = append(got, v) },
	})

	assert.Equal(t, []int{3, 5, 7}, got)
}

func TestPipe2ChangesElementTypeAtEachStep(t *testing.T) {
	toString := Map(func(v int) string {
		switch v {
		case 1:
			return "one"
		default:
			return "other"
		}
	})
	length := Map(func(s string) int { return len(s) })

	var got []int
	Pipe2(From(1, 2), toString, length).Subscribe(Observer[int]{
		OnNext: func(v int) { got = append(got, v) },
	})

	assert.Equal(t, []int{3, 5}, got)
}

func TestPipe1IsIdentityOverASingleOperator(t *testing.T) {
	var got []int
	Pipe1(From(1, 2, 3), Map(func(v int) int { return v * v })).Subscribe(Observer[int]{
		OnNext: func(v int) { got = append(got, v) },
	})

	assert.Equal(t, []int{1, 4, 9}, got)
}
