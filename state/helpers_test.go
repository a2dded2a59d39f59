package state_test

import "github.com/delaneyj/observe/event"

func newCountingListener(count *int) *event.Listener {
	return event.NewListener(func() {
		*count++
	})
}
