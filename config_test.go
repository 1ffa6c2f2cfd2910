package utfc

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"scalar", Config{EnableSIMD: false}, false},
		{"width_16", Config{EnableSIMD: true, MaxVectorWidth: 16}, false},
		{"width_32", Config{EnableSIMD: true, MaxVectorWidth: 32}, false},
		{"width_64", Config{EnableSIMD: true, MaxVectorWidth: 64}, false},
		{"width_8", Config{EnableSIMD: true, MaxVectorWidth: 8}, true},
		{"width_128", Config{EnableSIMD: true, MaxVectorWidth: 128}, true},
		{"width_negative", Config{EnableSIMD: true, MaxVectorWidth: -16}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err == nil {
				return
			}
			var ce *ConfigError
			if !errors.As(err, &ce) || ce.Field != "MaxVectorWidth" {
				t.Errorf("Validate() error = %#v, want *ConfigError for MaxVectorWidth", err)
			}
		})
	}
}

func TestNewCodec_InvalidConfig(t *testing.T) {
	codec, err := NewCodec(Config{MaxVectorWidth: 24})
	if err == nil || codec != nil {
		t.Fatalf("NewCodec = (%v, %v), want error", codec, err)
	}
	if got, want := err.Error(), "utfc: invalid config: MaxVectorWidth: must be 0, 16, 32 or 64"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestMustNewCodec_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewCodec did not panic on invalid config")
		}
	}()
	MustNewCodec(Config{MaxVectorWidth: 7})
}
