// internal/domain/models/remoteuser.go
package models

// User roles understood by the user service.
const (
	RolePadre    = "PADRE"
	RoleMadre    = "MADRE"
	RoleDirector = "DIRECTOR"
	RoleAuxiliar = "AUXILIAR"
	RoleAdmin    = "ADMIN"
	RoleProfesor = "PROFESOR"
)

// RemoteUser is a person record owned by the user service. It is never
// persisted locally; institutions only keep its id.
type RemoteUser struct {
	ID             string `json:"userId"`
	InstitutionID  string `json:"institutionId,omitempty"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`

	// Timestamps are relayed as sent by the user service, which emits
	// zone-less local date-times.
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	DeletedAt string `json:"deletedAt,omitempty"`
}
