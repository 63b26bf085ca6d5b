package reading

import "time"

// Reading is a wristband sensor sample. All sensor fields are optional;
// a device may report any subset. Readings are append-only.
type Reading struct {
	ID          int64
	UserID      int64
	HeartRate   *int
	Motion      *string
	NoiseLevel  *int
	StressLevel *float64
	Battery     *int
	RecordedAt  time.Time
}

// Metrics is the dashboard view derived from the latest reading.
type Metrics struct {
	StressLevel  float64
	StressStatus string
	HeartRate    *int
	Motion       *string
	NoiseLevel   *int
	Battery      *int
	IsConnected  bool
	LastUpdated  time.Time
}

// StressStatus buckets a 0-10 stress level for the dashboard.
func StressStatus(level float64) string {
	switch {
	case level < 4:
		return "Low"
	case level < 7:
		return "Moderate"
	default:
		return "High"
	}
}
