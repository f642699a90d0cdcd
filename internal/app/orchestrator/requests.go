package orchestrator

import (
	"github.com/dalemusser/institutionhub/internal/app/clients/userservice"
	"github.com/dalemusser/institutionhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/institutionhub/internal/domain/models"
)

// Request bodies accepted by the API. Validation rules are declared with
// `validate` tags and checked by the handlers before calling in.

type InstitutionInformationInput struct {
	InstitutionName  string `json:"institutionName" validate:"notblank"`
	CodeInstitution  string `json:"codeInstitution" validate:"notblank"`
	ModularCode      string `json:"modularCode" validate:"notblank"`
	InstitutionType  string `json:"institutionType" validate:"notblank"`
	InstitutionLevel string `json:"institutionLevel" validate:"notblank"`
	Gender           string `json:"gender" validate:"notblank"`
	Slogan           string `json:"slogan"`
	LogoURL          string `json:"logoUrl"`
}

type AddressInput struct {
	Street     string `json:"street" validate:"notblank"`
	District   string `json:"district" validate:"notblank"`
	Province   string `json:"province" validate:"notblank"`
	Department string `json:"department" validate:"notblank"`
	PostalCode string `json:"postalCode"`
}

type ContactMethodInput struct {
	Type  string `json:"type" validate:"notblank"`
	Value string `json:"value" validate:"notblank"`
}

type ScheduleInput struct {
	Type      string `json:"type" validate:"notblank"`
	EntryTime string `json:"entryTime" validate:"notblank"`
	ExitTime  string `json:"exitTime" validate:"notblank"`
}

// UserInput describes a person to create in the user service.
type UserInput struct {
	FirstName      string `json:"firstName" validate:"notblank"`
	LastName       string `json:"lastName" validate:"notblank"`
	DocumentType   string `json:"documentType" validate:"notblank"`
	DocumentNumber string `json:"documentNumber" validate:"notblank"`
	Phone          string `json:"phone" validate:"notblank"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required,oneof=PADRE MADRE DIRECTOR AUXILIAR ADMIN PROFESOR"`
}

// ClassroomInput is one classroom inside an institution create request.
type ClassroomInput struct {
	ClassroomName string `json:"classroomName" validate:"notblank"`
	ClassroomAge  string `json:"classroomAge" validate:"notblank"`
	Capacity      int    `json:"capacity" validate:"gt=0"`
	Color         string `json:"color"`
}

// CreateInstitutionRequest creates an institution, its director and its
// initial classrooms. Auxiliaries are accepted for compatibility but are
// provisioned by the user service itself, never here.
type CreateInstitutionRequest struct {
	InstitutionInformation InstitutionInformationInput `json:"institutionInformation"`
	Address                AddressInput                `json:"address"`
	ContactMethods         []ContactMethodInput        `json:"contactMethods" validate:"dive"`
	GradingType            string                      `json:"gradingType"`
	ClassroomType          string                      `json:"classroomType"`
	Schedules              []ScheduleInput             `json:"schedules" validate:"dive"`
	Classrooms             []ClassroomInput            `json:"classrooms" validate:"dive"`
	Director               *UserInput                  `json:"director" validate:"required"`
	Auxiliaries            []UserInput                 `json:"auxiliaries"`
	UGEL                   string                      `json:"ugel"`
	DRE                    string                      `json:"dre"`
}

type UpdateInstitutionRequest struct {
	InstitutionInformation InstitutionInformationInput `json:"institutionInformation"`
	Address                AddressInput                `json:"address"`
	ContactMethods         []ContactMethodInput        `json:"contactMethods" validate:"dive"`
	GradingType            string                      `json:"gradingType" validate:"notblank"`
	ClassroomType          string                      `json:"classroomType" validate:"notblank"`
	Schedules              []ScheduleInput             `json:"schedules" validate:"dive"`
	DirectorID             string                      `json:"directorId" validate:"notblank"`
	AuxiliaryIDs           []string                    `json:"auxiliaryIds"`
	UGEL                   string                      `json:"ugel" validate:"notblank"`
	DRE                    string                      `json:"dre" validate:"notblank"`
}

type CreateClassroomRequest struct {
	InstitutionID string `json:"institutionId" validate:"notblank"`
	ClassroomName string `json:"classroomName" validate:"notblank"`
	ClassroomAge  string `json:"classroomAge" validate:"notblank"`
	Capacity      int    `json:"capacity" validate:"gt=0"`
	Color         string `json:"color"`
}

// UpdateClassroomRequest changes a classroom's mutable fields. InstitutionID
// is decoded so clients may echo it back, and is ignored.
type UpdateClassroomRequest struct {
	InstitutionID string `json:"institutionId"`
	ClassroomName string `json:"classroomName" validate:"notblank"`
	ClassroomAge  string `json:"classroomAge" validate:"notblank"`
	Capacity      int    `json:"capacity" validate:"gt=0"`
	Color         string `json:"color"`
}

var clean = htmlsanitize.PlainText

func (in InstitutionInformationInput) model() models.InstitutionInformation {
	return models.InstitutionInformation{
		InstitutionName:  clean(in.InstitutionName),
		CodeInstitution:  clean(in.CodeInstitution),
		ModularCode:      clean(in.ModularCode),
		InstitutionType:  clean(in.InstitutionType),
		InstitutionLevel: clean(in.InstitutionLevel),
		Gender:           clean(in.Gender),
		Slogan:           clean(in.Slogan),
		LogoURL:          clean(in.LogoURL),
	}
}

func (in AddressInput) model() models.Address {
	return models.Address{
		Street:     clean(in.Street),
		District:   clean(in.District),
		Province:   clean(in.Province),
		Department: clean(in.Department),
		PostalCode: clean(in.PostalCode),
	}
}

func contactMethods(in []ContactMethodInput) []models.ContactMethod {
	out := make([]models.ContactMethod, 0, len(in))
	for _, c := range in {
		out = append(out, models.ContactMethod{Type: clean(c.Type), Value: clean(c.Value)})
	}
	return out
}

func schedules(in []ScheduleInput) []models.Schedule {
	out := make([]models.Schedule, 0, len(in))
	for _, s := range in {
		out = append(out, models.Schedule{
			Type:      clean(s.Type),
			EntryTime: clean(s.EntryTime),
			ExitTime:  clean(s.ExitTime),
		})
	}
	return out
}

// userRequest builds the create call for the user service. New users are
// always created ACTIVE.
func (in UserInput) userRequest(institutionID string) userservice.UserRequest {
	return userservice.UserRequest{
		InstitutionID:  institutionID,
		FirstName:      clean(in.FirstName),
		LastName:       clean(in.LastName),
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		Phone:          in.Phone,
		Email:          in.Email,
		Role:           in.Role,
		Status:         models.StatusActive,
	}
}
