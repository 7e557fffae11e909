package axes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{"SingleAxis", SingleAxis, "single"},
		{"DualAxis", DualAxis, "dual"},
		{"Unknown mode", Mode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("Mode.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	if got := SingleAxis.Toggle(); got != DualAxis {
		t.Errorf("SingleAxis.Toggle() = %v, want %v", got, DualAxis)
	}
	if got := DualAxis.Toggle(); got != SingleAxis {
		t.Errorf("DualAxis.Toggle() = %v, want %v", got, SingleAxis)
	}
	if got := SingleAxis.Toggle().Toggle(); got != SingleAxis {
		t.Errorf("double Toggle() = %v, want %v", got, SingleAxis)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"single", SingleAxis, false},
		{"DUAL", DualAxis, false},
		{" dual ", DualAxis, false},
		{"", SingleAxis, false},
		{"triple", SingleAxis, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestModeTextRoundTrip(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("dual")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	text, _ := m.MarshalText()
	if string(text) != "dual" {
		t.Errorf("MarshalText() = %q, want %q", text, "dual")
	}
	if err := m.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) error = nil, want error")
	}
}

func TestPanes(t *testing.T) {
	t.Run("single axis shows the left side only", func(t *testing.T) {
		want := []Pane{PaneLeftColumns, PaneLeftLabel}
		if diff := cmp.Diff(want, Panes(SingleAxis)); diff != "" {
			t.Errorf("Panes(SingleAxis) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("dual axis adds the right side", func(t *testing.T) {
		want := []Pane{PaneLeftColumns, PaneLeftLabel, PaneRightColumns, PaneRightLabel}
		if diff := cmp.Diff(want, Panes(DualAxis)); diff != "" {
			t.Errorf("Panes(DualAxis) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Has agrees with Panes", func(t *testing.T) {
		if Has(SingleAxis, PaneRightColumns) {
			t.Error("Has(SingleAxis, PaneRightColumns) = true, want false")
		}
		if !Has(DualAxis, PaneRightLabel) {
			t.Error("Has(DualAxis, PaneRightLabel) = false, want true")
		}
	})
}
