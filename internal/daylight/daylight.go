// Package daylight estimates ambient light at a place and time from the
// sun's altitude. The game uses it to dim the board at night.
package daylight

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Civil twilight boundary: below -6° of solar altitude it is night.
const twilightAltitude = -6.0

// Intensity returns ambient light intensity in [0.0, 1.0] for the given
// moment and lat/lon. Above the horizon it is 1.0, below civil twilight it
// is 0.0, and in between it fades linearly. Polar day and night fall out of
// the altitude directly, with no special casing.
func Intensity(now time.Time, lat, lon float64) float64 {
	alt := solarAltitude(now.UTC(), lat, lon)
	switch {
	case alt >= 0:
		return 1.0
	case alt <= twilightAltitude:
		return 0.0
	default:
		return 1.0 - alt/twilightAltitude
	}
}

// solarAltitude returns the solar altitude in degrees for UTC time t at
// lat, lon.
func solarAltitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t)
	θ := sidereal.Apparent(jd).Rad()
	θ += lon * math.Pi / 180
	ra, dec := solar.ApparentEquatorial(jd)
	H := θ - ra.Rad()
	H = math.Mod(H+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}
