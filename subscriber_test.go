package rxlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObserverDefaultsNilCallbacksToNoOps(t *testing.T) {
	observer := NewObserver[int](func(int) {}, nil, nil)

	assert.NotPanics(t, func() {
		observer.OnError(errors.New("boom"))
		observer.OnComplete()
	})
}

func TestSubscriberDropsNextAfterInactive(t *testing.T) {
	var got []int
	sub := newSubscriber(Observer[int]{OnNext: func(v int) { got = append(got, v) }})

	sub.Next(1)
	sub.Unsubscribe()
	sub.Next(2)

	assert.Equal(t, []int{1}, got)
}

func TestSubscriberErrorAndCompleteRaceResolvesToFirstWinner(t *testing.T) {
	errCount, completeCount := 0, 0
	sub := newSubscriber(Observer[int]{
		OnError:    func(error) { errCount++ },
		OnComplete: func() { completeCount++ },
	})

	sub.Complete()
	sub.Error(errors.New("too late"))

	assert.Equal(t, 0, errCount)
	assert.Equal(t, 1, completeCount)
	assert.True(t, sub.IsInactive())
}
