package dashboard

import "time"

type metricsOutput struct {
	Body metricsResponse
}

// Sensor fields stay pointers so a reading that never reported one
// serializes as null instead of a fake zero.
type metricsResponse struct {
	StressLevel  float64   `json:"stress_level"`
	StressStatus string    `json:"stress_status"`
	HeartRate    *int      `json:"heart_rate"`
	Motion       *string   `json:"motion"`
	NoiseLevel   *int      `json:"noise_level"`
	Battery      *int      `json:"battery"`
	IsConnected  bool      `json:"is_connected"`
	LastUpdated  time.Time `json:"last_updated"`
}

type ingestInput struct {
	Body ingestRequest
}

type ingestRequest struct {
	HeartRate   *int       `json:"heart_rate,omitempty" doc:"Beats per minute"`
	Motion      *string    `json:"motion,omitempty" doc:"Motion state, e.g. Still, Moderate, Active"`
	NoiseLevel  *int       `json:"noise_level,omitempty" doc:"Ambient noise in dB"`
	StressLevel *float64   `json:"stress_level,omitempty" doc:"Stress score on a 0-10 scale"`
	Battery     *int       `json:"battery,omitempty" doc:"Battery percentage"`
	RecordedAt  *time.Time `json:"recorded_at,omitempty" doc:"Capture time, defaults to now"`
}

type ingestOutput struct {
	Body ingestResponse
}

type ingestResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
