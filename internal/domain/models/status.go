// internal/domain/models/status.go
package models

import "time"

// Lifecycle status values shared by institutions and classrooms.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// A record is active only when its status is ACTIVE and it carries no
// deletion stamp. It is inactive when its status is INACTIVE or it carries
// a deletion stamp. The two are not complements of each other: a record
// with status ACTIVE and a deletion stamp is inactive but never active.
func isActive(status string, deletedAt *time.Time) bool {
	return status == StatusActive && deletedAt == nil
}

func isInactive(status string, deletedAt *time.Time) bool {
	return status == StatusInactive || deletedAt != nil
}
