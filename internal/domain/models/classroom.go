// internal/domain/models/classroom.go
package models

import "time"

// Classroom belongs to exactly one institution.
//
// NOTE:
//   - InstitutionID is fixed when the classroom is created; updates never
//     rewrite it.
//   - Soft-deleted classrooms keep their id inside the owning institution's
//     ClassroomIDs.
type Classroom struct {
	ID            string `bson:"_id" json:"classroomId"`
	InstitutionID string `bson:"institution_id" json:"institutionId"`
	Name          string `bson:"name" json:"classroomName"`
	NameCI        string `bson:"name_ci" json:"-"`
	Age           string `bson:"age" json:"classroomAge"`
	Capacity      int    `bson:"capacity" json:"capacity"`
	Color         string `bson:"color" json:"color"`

	Status string `bson:"status" json:"status"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deletedAt"`
}

func (c Classroom) IsActive() bool { return isActive(c.Status, c.DeletedAt) }

func (c Classroom) IsInactive() bool { return isInactive(c.Status, c.DeletedAt) }
