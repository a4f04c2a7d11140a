// Package registry holds the process-wide control service instance.
//
// Exactly one control service may exist per process: the HTTP layer and
// signal handlers resolve it through this registry rather than through a
// hidden global. Install enforces single assignment and returns an error
// on a second attempt so callers can decide whether a duplicate is fatal;
// the Must variants keep the fatal-by-design path for wiring bugs.
package registry

import (
	"errors"
	"sync"
)

var (
	// ErrAlreadyInstalled is returned when a control service instance
	// has already been installed in this process.
	ErrAlreadyInstalled = errors.New("control service instance already installed")

	// ErrNotInstalled is returned when no control service instance has
	// been installed yet.
	ErrNotInstalled = errors.New("no control service instance installed")
)

// Service is the process-wide instance type stored by this registry.
// It is declared as an interface to keep the registry free of import
// cycles; the control plane installs its *controlplane.Service.
type Service any

var (
	mu       sync.RWMutex
	instance Service
)

// Install stores svc as the process-wide control service instance.
// A second call returns ErrAlreadyInstalled and leaves the original
// instance untouched.
func Install(svc Service) error {
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return ErrAlreadyInstalled
	}
	instance = svc
	return nil
}

// MustInstall is like Install but panics on a duplicate installation.
// A duplicate indicates a serious wiring bug and must not be silently
// tolerated.
func MustInstall(svc Service) {
	if err := Install(svc); err != nil {
		panic(err)
	}
}

// Get returns the installed instance, or ErrNotInstalled if none has
// been installed.
func Get() (Service, error) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, ErrNotInstalled
	}
	return instance, nil
}

// MustGet is like Get but panics when no instance is installed.
func MustGet() Service {
	svc, err := Get()
	if err != nil {
		panic(err)
	}
	return svc
}

// Reset removes the installed instance. Only tests should call this.
func Reset() {
	mu.Lock()
	instance = nil
	mu.Unlock()
}
