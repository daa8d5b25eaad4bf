package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid yaml", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		err := Unmarshal([]byte("name: demo\ncount: 3\n"), &cfg)
		if err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cfg.Name != "demo" || cfg.Count != 3 {
			t.Errorf("Unmarshal() = %+v, want {demo 3}", cfg)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := Unmarshal(nil, &cfg); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		big := []byte("name: " + strings.Repeat("a", MaxInputSize))
		var cfg testConfig
		if err := Unmarshal(big, &cfg); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := Unmarshal([]byte("name: [unclosed"), &cfg); err == nil {
			t.Error("Unmarshal() expected error for malformed input")
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields accepted", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := UnmarshalStrict([]byte("name: demo\n"), &cfg); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if cfg.Name != "demo" {
			t.Errorf("Name = %q, want %q", cfg.Name, "demo")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := UnmarshalStrict([]byte("name: demo\nbogus: 1\n"), &cfg); err == nil {
			t.Error("UnmarshalStrict() expected error for unknown field")
		}
	})
}
