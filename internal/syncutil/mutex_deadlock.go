//go:build deadlock

// Deadlock-detecting variants, selected with -tags=deadlock.
package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex is deadlock.Mutex in deadlock-detection builds.
type Mutex struct {
	deadlock.Mutex
}

// RWMutex is deadlock.RWMutex in deadlock-detection builds.
type RWMutex struct {
	deadlock.RWMutex
}
