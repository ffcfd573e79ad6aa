package resize

import (
	"errors"
	"testing"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestSelect_DecisionTable(t *testing.T) {
	cases := []struct {
		name    string
		req     Request
		want    Method
		wantErr error
	}{
		{"scale and width", Request{Scale: floatp(1.0), Width: intp(10)}, 0, ErrConflictingOptions},
		{"scale and height", Request{Scale: floatp(1.0), Height: intp(10)}, 0, ErrConflictingOptions},
		{"scale and both", Request{Scale: floatp(2), Width: intp(1), Height: intp(1)}, 0, ErrConflictingOptions},
		{"scale only", Request{Scale: floatp(0.5)}, Scale, nil},
		{"width and height", Request{Width: intp(50), Height: intp(50)}, Linear, nil},
		{"width only", Request{Width: intp(50)}, AdjustedHeight, nil},
		{"height only", Request{Height: intp(50)}, AdjustedWidth, nil},
		{"nothing", Request{InputPath: "cat.png"}, 0, ErrMissingOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Select(tc.req)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestPlan_BindsOnlyNeededValues(t *testing.T) {
	s, err := Plan(Request{Width: intp(120)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fw, ok := s.(FitWidth)
	if !ok {
		t.Fatalf("expected FitWidth, got %T", s)
	}
	if fw.Width != 120 {
		t.Fatalf("expected width 120, got %d", fw.Width)
	}
	if s.Method() != AdjustedHeight {
		t.Fatalf("expected ADJUSTED_HEIGHT, got %s", s.Method())
	}
}

func TestPlan_PropagatesSelectErrors(t *testing.T) {
	if _, err := Plan(Request{}); !errors.Is(err, ErrMissingOptions) {
		t.Fatalf("expected ErrMissingOptions, got %v", err)
	}
	if _, err := Plan(Request{Scale: floatp(1), Width: intp(10)}); !errors.Is(err, ErrConflictingOptions) {
		t.Fatalf("expected ErrConflictingOptions, got %v", err)
	}
}

func TestMethodString(t *testing.T) {
	if Scale.String() != "SCALE" || AdjustedWidth.String() != "ADJUSTED_WIDTH" {
		t.Fatalf("unexpected method names: %s %s", Scale, AdjustedWidth)
	}
	if Method(0).String() != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN for zero method")
	}
}
