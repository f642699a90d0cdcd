// internal/domain/models/institution.go
package models

import "time"

// Institution is an educational institution. It owns a list of classroom ids
// (a back-reference kept in sync by application code, not by the database)
// and references its director and auxiliaries, whose records live in the
// user service.
type Institution struct {
	ID     string `bson:"_id" json:"institutionId"`
	Status string `bson:"status" json:"status"`

	InstitutionInformation InstitutionInformation `bson:"institution_information" json:"institutionInformation"`
	NameCI                 string                 `bson:"name_ci" json:"-"` // folded institution name, always stored
	Address                Address                `bson:"address" json:"address"`
	ContactMethods         []ContactMethod        `bson:"contact_methods" json:"contactMethods"`
	GradingType            string                 `bson:"grading_type" json:"gradingType"`
	ClassroomType          string                 `bson:"classroom_type" json:"classroomType"`
	Schedules              []Schedule             `bson:"schedules" json:"schedules"`

	ClassroomIDs []string `bson:"classroom_ids" json:"classroomIds"`
	DirectorID   string   `bson:"director_id,omitempty" json:"directorId,omitempty"`
	AuxiliaryIDs []string `bson:"auxiliary_ids" json:"auxiliaryIds"`

	UGEL string `bson:"ugel" json:"ugel"`
	DRE  string `bson:"dre" json:"dre"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `bson:"deleted_at,omitempty" json:"deletedAt"`
}

// IsActive reports ACTIVE status with no deletion stamp.
func (i Institution) IsActive() bool { return isActive(i.Status, i.DeletedAt) }

// IsInactive reports INACTIVE status or a deletion stamp. A record can be
// neither active nor inactive only if its status is unrecognized.
func (i Institution) IsInactive() bool { return isInactive(i.Status, i.DeletedAt) }

// InstitutionInformation groups the identifying data of an institution.
type InstitutionInformation struct {
	InstitutionName  string `bson:"institution_name" json:"institutionName"`
	CodeInstitution  string `bson:"code_institution" json:"codeInstitution"`
	ModularCode      string `bson:"modular_code" json:"modularCode"`
	InstitutionType  string `bson:"institution_type" json:"institutionType"`
	InstitutionLevel string `bson:"institution_level" json:"institutionLevel"`
	Gender           string `bson:"gender" json:"gender"`
	Slogan           string `bson:"slogan" json:"slogan"`
	LogoURL          string `bson:"logo_url" json:"logoUrl"`
}

type Address struct {
	Street     string `bson:"street" json:"street"`
	District   string `bson:"district" json:"district"`
	Province   string `bson:"province" json:"province"`
	Department string `bson:"department" json:"department"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
}

// ContactMethod is a typed contact entry (e.g. PHONE, EMAIL).
type ContactMethod struct {
	Type  string `bson:"type" json:"type"`
	Value string `bson:"value" json:"value"`
}

// Schedule is a named time window (e.g. MORNING 07:45-12:30).
type Schedule struct {
	Type      string `bson:"type" json:"type"`
	EntryTime string `bson:"entry_time" json:"entryTime"`
	ExitTime  string `bson:"exit_time" json:"exitTime"`
}
