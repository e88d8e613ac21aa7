package rxlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBehaviorSubjectPushesCurrentValueToNewSubscriber(t *testing.T) {
	s := NewBehaviorSubject(0)
	s.Next(1)
	s.Next(2)

	var got []int
	s.Subscribe(Observer[int]{OnNext: func(v int) { got = append(got, v) }})
	s.Next(3)

	assert.Equal(t, []int{2, 3}, got)
}

func TestBehaviorSubjectValueReflectsLastNext(t *testing.T) {
	s := NewBehaviorSubject("a")
	assert.Equal(t, "a", s.Value())
	s.Next("b")
	assert.Equal(t, "b", s.Value())
}

func TestBehaviorSubjectLateSubscriberAfterCompleteGetsNoValuePush(t *testing.T) {
	s := NewBehaviorSubject(7)
	s.Complete()

	nextCount, completeCount := 0, 0
	s.Subscribe(Observer[int]{
		OnNext:     func(int) { nextCount++ },
		OnComplete: func() { completeCount++ },
	})

	assert.Equal(t, 0, nextCount)
	assert.Equal(t, 1, completeCount)
}

func TestBehaviorSubjectEveryActiveSubscriberSeesEachNext(t *testing.T) {
	s := NewBehaviorSubject(0)

	var a, b []int
	s.Subscribe(Observer[int]{OnNext: func(v int) { a = append(a, v) }})
	s.Next(1)
	s.Subscribe(Observer[int]{OnNext: func(v int) { b = append(b, v) }})
	s.Next(2)

	assert.Equal(t, []int{0, 1, 2}, a)
	assert.Equal(t, []int{1, 2}, b)
}
