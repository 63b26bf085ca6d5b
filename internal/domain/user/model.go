package user

import "time"

// User is a caregiver account. PasswordHash stays inside the domain and
// repository layers; DTOs never carry it.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
