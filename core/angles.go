package core

import (
	"math"
	"time"
)

// Timestamp is a wall-clock reading of simulated time
// Second carries the fractional part down to the nanosecond
type Timestamp struct {
	Hour   int
	Minute int
	Second float64
}

// TimestampOf reads hour, minute and fractional second from t in its own location
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: float64(t.Second()) + float64(t.Nanosecond())/1e9,
	}
}

// HandAngles holds the three hand angles in radians, measured clockwise from 12
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// AnglesAt maps a timestamp to hand angles
// Angles are not wrapped into [0, 2π); only their differences are consumed by Score
func AnglesAt(ts Timestamp) HandAngles {
	minutes := float64(ts.Minute) + ts.Second/60
	return HandAngles{
		Hour:   2 * math.Pi * (float64(ts.Hour%12) + minutes/60) / 12,
		Minute: 2 * math.Pi * minutes / 60,
		Second: 2 * math.Pi * ts.Second / 60,
	}
}
