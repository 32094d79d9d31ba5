package geom

import "testing"

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		epsilon float64
		wantErr bool
	}{
		{"positive", 1e-6, false},
		{"zero", 0, true},
		{"negative", -1e-6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.epsilon)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewConfig(%v) error = %v, wantErr %v", tt.epsilon, err, tt.wantErr)
			}
		})
	}
}

func TestConfigComparisons(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.EQ(1.0, 1.0+1e-12) {
		t.Error("EQ should treat near-equal floats as equal")
	}
	if cfg.EQ(1.0, 1.1) {
		t.Error("EQ should not treat distant floats as equal")
	}
	if !cfg.LT(1.0, 2.0) {
		t.Error("LT(1,2) should be true")
	}
	if cfg.LT(1.0, 1.0+1e-12) {
		t.Error("LT should not fire within epsilon")
	}
	if !cfg.GT(2.0, 1.0) {
		t.Error("GT(2,1) should be true")
	}
	if !cfg.LTE(1.0, 1.0) || !cfg.GTE(1.0, 1.0) {
		t.Error("LTE/GTE should hold for equal values")
	}
	if !cfg.IsZero(1e-12) {
		t.Error("IsZero should treat near-zero as zero")
	}
}
