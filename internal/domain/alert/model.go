package alert

import "time"

// Alert is a notification raised for a caregiver. The only mutation it
// supports is the one-way unread-to-read transition.
type Alert struct {
	ID        int64
	UserID    int64
	Type      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
