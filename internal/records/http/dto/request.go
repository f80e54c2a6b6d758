// Package dto provides data transfer objects for the records HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	recordsUseCase "github.com/prabhanjangururaj/records-vault/internal/records/usecase"
	customValidation "github.com/prabhanjangururaj/records-vault/internal/validation"
)

// CreateRecordRequest contains the plaintext fields of a new record. The
// creator identity is not part of the request: it is stamped from the
// authenticated principal.
type CreateRecordRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	SSN            string `json:"ssn"`
	PassportNumber string `json:"passport_number"`
	AccountNumber  string `json:"account_number"`
	ServiceRequest string `json:"service_request"`
}

// Validate checks if the create record request is valid. Only the name is
// mandatory; the remaining fields may be absent but not blank padding.
func (r *CreateRecordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			customValidation.Email,
			validation.Length(0, 255),
		),
		validation.Field(&r.Phone,
			validation.Length(0, 32),
		),
		validation.Field(&r.SSN,
			customValidation.NoWhitespace,
			validation.Length(0, 32),
		),
		validation.Field(&r.PassportNumber,
			customValidation.NoWhitespace,
			validation.Length(0, 32),
		),
		validation.Field(&r.AccountNumber,
			validation.Length(0, 64),
		),
		validation.Field(&r.ServiceRequest,
			validation.Length(0, 1024),
		),
	)
}

// ToCreateRecordInput converts a CreateRecordRequest DTO to a use case input.
// CreatedBy is filled in by the handler from the authenticated principal.
func ToCreateRecordInput(req CreateRecordRequest) *recordsUseCase.CreateRecordInput {
	return &recordsUseCase.CreateRecordInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		SSN:            req.SSN,
		PassportNumber: req.PassportNumber,
		AccountNumber:  req.AccountNumber,
		ServiceRequest: req.ServiceRequest,
	}
}
