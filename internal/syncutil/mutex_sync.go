//go:build !deadlock

// Package syncutil provides the mutex types used across the module, with
// optional deadlock detection. The default build uses the standard sync
// primitives directly; build with -tags=deadlock to swap in
// github.com/sasha-s/go-deadlock.
package syncutil

import "sync"

// Mutex is sync.Mutex unless built with -tags=deadlock.
type Mutex struct {
	sync.Mutex
}

// RWMutex is sync.RWMutex unless built with -tags=deadlock.
type RWMutex struct {
	sync.RWMutex
}
