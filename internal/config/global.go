package config

import (
	"reflect"
	"sync"
)

// global is the process-wide configuration handle. The mutex guards the
// check-and-create sequence so concurrent first access constructs exactly one
// instance and every caller observes it fully built.
var global struct {
	mu       sync.Mutex
	instance any
}

// GlobalFor returns the process-wide configuration instance as type T. On
// first access it calls construct and installs the result; afterwards every
// call returns the same instance. If the installed instance is not of type T
// the call fails with a TypeMismatchError; that is a usage error, not a
// recoverable condition. A failed construct leaves the handle unset.
func GlobalFor[T any](construct func() (T, error)) (T, error) {
	var zero T

	global.mu.Lock()
	defer global.mu.Unlock()

	if global.instance == nil {
		instance, err := construct()
		if err != nil {
			return zero, err
		}
		global.instance = instance
	}

	instance, ok := global.instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Requested: reflect.TypeOf((*T)(nil)).Elem(),
			Actual:    reflect.TypeOf(global.instance),
		}
	}
	return instance, nil
}

// GetGlobal returns the shared base Configuration for the process, resolving
// it from the live environment on first use.
func GetGlobal() (*Config, error) {
	return GlobalFor(func() (*Config, error) {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	})
}

// SetGlobal installs instance as the process-wide configuration. Callers use
// it before first access to inject a preconfigured or extended instance;
// automatic creation then never runs.
func SetGlobal(instance any) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.instance = instance
}

// ResetGlobal clears the process-wide handle so the next access constructs a
// fresh instance. It exists for test isolation.
func ResetGlobal() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.instance = nil
}
