package polylineffi

import (
	"errors"
	"math"
	"testing"

	ffierrors "github.com/flatroute/polyline-ffi/errors"
)

func TestEncodeCoords(t *testing.T) {
	tests := []struct {
		name      string
		coords    [][]float64
		precision uint32
		want      string
	}{
		{
			name: "google reference vector",
			coords: [][]float64{
				{-120.2, 38.5},
				{-120.95, 40.7},
				{-126.453, 43.252},
			},
			precision: 5,
			want:      "_p~iF~ps|U_ulLnnqC_mqNvxq`@",
		},
		{
			name:      "small integers precision 5",
			coords:    [][]float64{{2, 1}, {4, 3}},
			precision: 5,
			want:      "_ibE_seK_seK_seK",
		},
		{
			name:      "small integers precision 6",
			coords:    [][]float64{{2, 1}, {4, 3}},
			precision: 6,
			want:      "_c`|@_gayB_gayB_gayB",
		},
		{
			name:      "empty sequence",
			coords:    nil,
			precision: 5,
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCoords(tt.coords, tt.precision)
			if err != nil {
				t.Fatalf("EncodeCoords: %v", err)
			}
			if got != tt.want {
				t.Errorf("EncodeCoords = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeCoords_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		coords    [][]float64
		precision uint32
		kind      ffierrors.Kind
	}{
		{"nan x", [][]float64{{math.NaN(), 0}}, 5, ffierrors.KindNonFinite},
		{"nan y", [][]float64{{0, math.NaN()}}, 5, ffierrors.KindNonFinite},
		{"positive infinity", [][]float64{{math.Inf(1), 0}}, 5, ffierrors.KindNonFinite},
		{"negative infinity", [][]float64{{0, math.Inf(-1)}}, 5, ffierrors.KindNonFinite},
		{"latitude above range", [][]float64{{0, 90.1}}, 5, ffierrors.KindOutOfRange},
		{"latitude below range", [][]float64{{0, -90.1}}, 5, ffierrors.KindOutOfRange},
		{"longitude above range", [][]float64{{180.1, 0}}, 5, ffierrors.KindOutOfRange},
		{"longitude below range", [][]float64{{-180.1, 0}}, 5, ffierrors.KindOutOfRange},
		{"short pair", [][]float64{{1}}, 5, ffierrors.KindInvalidData},
		{"long pair", [][]float64{{1, 2, 3}}, 5, ffierrors.KindInvalidData},
		{"precision 0", [][]float64{{1, 2}}, 0, ffierrors.KindInvalidPrecision},
		{"precision 4", [][]float64{{1, 2}}, 4, ffierrors.KindInvalidPrecision},
		{"precision 7", [][]float64{{1, 2}}, 7, ffierrors.KindInvalidPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeCoords(tt.coords, tt.precision)
			if err == nil {
				t.Fatal("expected error")
			}
			want := &ffierrors.Error{Phase: ffierrors.PhaseEncode, Kind: tt.kind}
			if !errors.Is(err, want) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestDecodeCoords(t *testing.T) {
	coords, err := DecodeCoords("_ibE_seK_seK_seK", 5)
	if err != nil {
		t.Fatalf("DecodeCoords: %v", err)
	}
	want := [][]float64{{2, 1}, {4, 3}}
	if len(coords) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(coords), len(want))
	}
	for i := range want {
		if coords[i][0] != want[i][0] || coords[i][1] != want[i][1] {
			t.Errorf("pair %d = %v, want %v", i, coords[i], want[i])
		}
	}
}

func TestDecodeCoords_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		precision uint32
		kind      ffierrors.Kind
	}{
		{"invalid byte", "_p~iF~ps|U_u\xf0\x9f\x97\x91lLnnqC", 5, ffierrors.KindInvalidData},
		{"unterminated sequence", "_p~iF~ps|", 5, ffierrors.KindInvalidData},
		{"precision 4", "_ibE_seK", 4, ffierrors.KindInvalidPrecision},
		{"precision 7", "_ibE_seK", 7, ffierrors.KindInvalidPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCoords(tt.text, tt.precision)
			if err == nil {
				t.Fatal("expected error")
			}
			want := &ffierrors.Error{Phase: ffierrors.PhaseDecode, Kind: tt.kind}
			if !errors.Is(err, want) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestDecodeCoords_Empty(t *testing.T) {
	coords, err := DecodeCoords("", 5)
	if err != nil {
		t.Fatalf("DecodeCoords of empty string: %v", err)
	}
	if len(coords) != 0 {
		t.Errorf("got %d pairs, want 0", len(coords))
	}
}

func TestRoundTrip(t *testing.T) {
	coords := [][]float64{
		{13.38886, 52.51703},
		{13.39773, 52.52972},
		{-0.12766, 51.50732},
		{151.20930, -33.86785},
	}

	for _, precision := range []uint32{5, 6} {
		tolerance := math.Pow10(-int(precision))
		s, err := EncodeCoords(coords, precision)
		if err != nil {
			t.Fatalf("EncodeCoords @%d: %v", precision, err)
		}
		got, err := DecodeCoords(s, precision)
		if err != nil {
			t.Fatalf("DecodeCoords @%d: %v", precision, err)
		}
		if len(got) != len(coords) {
			t.Fatalf("@%d got %d pairs, want %d", precision, len(got), len(coords))
		}
		for i := range coords {
			if math.Abs(got[i][0]-coords[i][0]) > tolerance ||
				math.Abs(got[i][1]-coords[i][1]) > tolerance {
				t.Errorf("@%d pair %d = %v, want %v within %v", precision, i, got[i], coords[i], tolerance)
			}
		}
	}
}

func TestPrecisionSensitivity(t *testing.T) {
	coords := [][]float64{{13.38886, 52.51703}, {13.39773, 52.52972}}

	s5, err := EncodeCoords(coords, 5)
	if err != nil {
		t.Fatal(err)
	}
	s6, err := EncodeCoords(coords, 6)
	if err != nil {
		t.Fatal(err)
	}
	if s5 == s6 {
		t.Errorf("precision 5 and 6 encode identically: %q", s5)
	}

	// The sixth decimal place survives only at precision 6.
	got6, err := DecodeCoords(s6, 6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got6[0][0]-13.38886) > 1e-6 {
		t.Errorf("precision 6 decode = %v, want 13.38886 within 1e-6", got6[0][0])
	}
}

func TestValidPrecision(t *testing.T) {
	for p, want := range map[uint32]bool{0: false, 4: false, 5: true, 6: true, 7: false, 100: false} {
		if got := ValidPrecision(p); got != want {
			t.Errorf("ValidPrecision(%d) = %v, want %v", p, got, want)
		}
	}
}
