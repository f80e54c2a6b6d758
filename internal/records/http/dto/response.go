// Package dto provides data transfer objects for the records HTTP layer.
package dto

import (
	"time"

	recordsDomain "github.com/prabhanjangururaj/records-vault/internal/records/domain"
)

// RecordResponse represents a record in API responses. Sensitive fields carry
// whatever the caller's role is allowed to see: plaintext, a masked value, or
// the stored token.
type RecordResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	SSN            string    `json:"ssn"`
	PassportNumber string    `json:"passport_number"`
	AccountNumber  string    `json:"account_number"`
	ServiceRequest string    `json:"service_request"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// MapRecordToResponse converts a domain record to an API response.
func MapRecordToResponse(record *recordsDomain.Record) RecordResponse {
	return RecordResponse{
		ID:             record.ID.String(),
		Name:           record.Name,
		Phone:          record.Phone,
		Email:          record.Email,
		SSN:            record.SSN,
		PassportNumber: record.PassportNumber,
		AccountNumber:  record.AccountNumber,
		ServiceRequest: record.ServiceRequest,
		CreatedBy:      record.CreatedBy,
		CreatedAt:      record.CreatedAt,
	}
}

// ListRecordsResponse represents a paginated list of records in API responses.
type ListRecordsResponse struct {
	Data []RecordResponse `json:"data"`
}

// MapRecordsToListResponse converts a slice of domain records to a list API response.
func MapRecordsToListResponse(records []*recordsDomain.Record) ListRecordsResponse {
	recordResponses := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		recordResponses = append(recordResponses, MapRecordToResponse(record))
	}
	return ListRecordsResponse{
		Data: recordResponses,
	}
}
