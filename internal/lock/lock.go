// Package lock serializes booking decisions that touch the same calendar
// date, so the slot check and the insert behave as one step.
package lock

import (
	"context"
	"errors"
)

var ErrLockTimeout = errors.New("timed out waiting for date lock")

// Locker hands out exclusive locks by key. The returned release func is safe
// to call more than once.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

func DateKey(date string) string {
	return "studioslot:lock:date:" + date
}
