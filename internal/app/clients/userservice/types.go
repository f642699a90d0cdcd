package userservice

import "github.com/dalemusser/institutionhub/internal/domain/models"

// UserRequest is the body sent on create and update.
type UserRequest struct {
	InstitutionID  string `json:"institutionId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status,omitempty"`
}

// RequestFromUser copies u into a request, e.g. to rewrite its institution.
func RequestFromUser(u models.RemoteUser) UserRequest {
	return UserRequest{
		InstitutionID:  u.InstitutionID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		DocumentType:   u.DocumentType,
		DocumentNumber: u.DocumentNumber,
		Phone:          u.Phone,
		Email:          u.Email,
		Role:           u.Role,
		Status:         u.Status,
	}
}

// envelope is the user service's response wrapper.
type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *models.RemoteUser `json:"data"`
}
