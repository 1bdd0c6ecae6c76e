package polylineffi

import (
	"math"

	gopolyline "github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/flatroute/polyline-ffi/errors"
)

// Precisions accepted by the codec. The wire format itself supports any
// scale, but 5 (Google) and 6 (OSRM, Valhalla) are the only values in
// real-world use and the boundary contract fixes the set.
const (
	PrecisionGoogle uint32 = 5
	PrecisionOSRM   uint32 = 6
)

// ValidPrecision reports whether p is an accepted precision value.
func ValidPrecision(p uint32) bool {
	return p == PrecisionGoogle || p == PrecisionOSRM
}

func codecFor(precision uint32) gopolyline.Codec {
	return gopolyline.Codec{Dim: 2, Scale: math.Pow10(int(precision))}
}

// EncodeCoords encodes a sequence of (x, y) coordinate pairs as a
// polyline string with the given precision.
//
// Each pair must have exactly two finite values, with x (longitude) in
// [-180, 180] and y (latitude) in [-90, 90]. An empty sequence encodes
// as the empty string.
func EncodeCoords(coords [][]float64, precision uint32) (string, error) {
	if !ValidPrecision(precision) {
		return "", errors.InvalidPrecision(errors.PhaseEncode, precision)
	}

	// The codec consumes latitude-first pairs; swap on the way in.
	latLngs := make([][]float64, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return "", errors.InvalidData(errors.PhaseEncode,
				"coordinate pair %d has %d values, expected 2", i, len(c))
		}
		x, y := c[0], c[1]
		if !isFinite(x) || !isFinite(y) {
			return "", errors.NonFinite(errors.PhaseEncode, i, x, y)
		}
		if y < -90 || y > 90 {
			return "", errors.OutOfRange(errors.PhaseEncode, i, "latitude", y, 90)
		}
		if x < -180 || x > 180 {
			return "", errors.OutOfRange(errors.PhaseEncode, i, "longitude", x, 180)
		}
		latLngs[i] = []float64{y, x}
	}

	buf := codecFor(precision).EncodeCoords(nil, latLngs)
	return string(buf), nil
}

// DecodeCoords decodes a polyline string into a sequence of (x, y)
// coordinate pairs using the given precision. Precision must match the
// value the string was encoded with.
func DecodeCoords(s string, precision uint32) ([][]float64, error) {
	if !ValidPrecision(precision) {
		return nil, errors.InvalidPrecision(errors.PhaseDecode, precision)
	}

	latLngs, _, err := codecFor(precision).DecodeCoords([]byte(s))
	if err != nil {
		Logger().Debug("polyline decode rejected",
			zap.Uint32("precision", precision),
			zap.Error(err))
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData,
			err, "malformed polyline")
	}

	coords := make([][]float64, len(latLngs))
	for i, ll := range latLngs {
		coords[i] = []float64{ll[1], ll[0]}
	}
	return coords, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
