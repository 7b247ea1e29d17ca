package config

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestGetGlobalReturnsSameInstance(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first, err := GetGlobal()
	if err != nil {
		t.Fatalf("GetGlobal returned error: %v", err)
	}
	second, err := GetGlobal()
	if err != nil {
		t.Fatalf("GetGlobal returned error: %v", err)
	}

	if first != second {
		t.Fatalf("expected the same instance on repeated access")
	}
}

func TestSetGlobalInjectsInstance(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	injected := defaultConfig()
	injected.StorageDir = "/injected"
	SetGlobal(&injected)

	got, err := GetGlobal()
	if err != nil {
		t.Fatalf("GetGlobal returned error: %v", err)
	}
	if got != &injected {
		t.Fatalf("expected the injected instance")
	}
	if got.StorageDir != "/injected" {
		t.Fatalf("unexpected storage dir: %q", got.StorageDir)
	}
}

// extendedConfig mimics an embedding consumer, e.g. a hosting platform that
// adds its own settings on top of the base crawler configuration.
type extendedConfig struct {
	Config
	Token string
}

func TestGlobalForExtendedType(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	first, err := GlobalFor(func() (*extendedConfig, error) {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		return &extendedConfig{Config: cfg, Token: "secret"}, nil
	})
	if err != nil {
		t.Fatalf("GlobalFor returned error: %v", err)
	}

	second, err := GlobalFor(func() (*extendedConfig, error) {
		t.Fatalf("construct must not run once an instance is installed")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GlobalFor returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same extended instance on repeated access")
	}
}

func TestGlobalTypeMismatch(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	base := defaultConfig()
	SetGlobal(&base)

	_, err := GlobalFor(func() (*extendedConfig, error) {
		return &extendedConfig{}, nil
	})

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got %v", err)
	}
	if mismatch.Requested.String() != "*config.extendedConfig" {
		t.Fatalf("unexpected requested type: %v", mismatch.Requested)
	}
	if mismatch.Actual.String() != "*config.Config" {
		t.Fatalf("unexpected actual type: %v", mismatch.Actual)
	}
}

func TestConcurrentFirstAccess(t *testing.T) {
	ResetGlobal()
	t.Cleanup(ResetGlobal)

	var constructed atomic.Int32
	construct := func() (*Config, error) {
		constructed.Add(1)
		cfg := defaultConfig()
		return &cfg, nil
	}

	const callers = 32
	instances := make([]*Config, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			instance, err := GlobalFor(construct)
			if err != nil {
				t.Errorf("GlobalFor returned error: %v", err)
				return
			}
			instances[i] = instance
		}()
	}
	wg.Wait()

	if n := constructed.Load(); n != 1 {
		t.Fatalf("expected exactly one construction, got %d", n)
	}
	for i := 1; i < callers; i++ {
		if instances[i] != instances[0] {
			t.Fatalf("caller %d observed a different instance", i)
		}
	}
}
