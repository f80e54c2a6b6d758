package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRecordRequest_Validate(t *testing.T) {
	valid := CreateRecordRequest{
		Name:           "Alice Smith",
		Phone:          "555-0100",
		Email:          "alice@example.com",
		SSN:            "123-45-6789",
		PassportNumber: "P1234567",
		AccountNumber:  "ACC-1001",
		ServiceRequest: "address change",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateRecordRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *CreateRecordRequest) {},
			wantErr: false,
		},
		{
			name:    "name only is enough",
			mutate:  func(r *CreateRecordRequest) { *r = CreateRecordRequest{Name: "Bob"} },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(r *CreateRecordRequest) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "blank name",
			mutate:  func(r *CreateRecordRequest) { r.Name = "   " },
			wantErr: true,
		},
		{
			name:    "invalid email",
			mutate:  func(r *CreateRecordRequest) { r.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "ssn with surrounding whitespace",
			mutate:  func(r *CreateRecordRequest) { r.SSN = " 123-45-6789 " },
			wantErr: true,
		},
		{
			name:    "passport with surrounding whitespace",
			mutate:  func(r *CreateRecordRequest) { r.PassportNumber = "P1234567 " },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToCreateRecordInput(t *testing.T) {
	request := CreateRecordRequest{
		Name:           "Alice Smith",
		Phone:          "555-0100",
		Email:          "alice@example.com",
		SSN:            "123-45-6789",
		PassportNumber: "P1234567",
		AccountNumber:  "ACC-1001",
		ServiceRequest: "address change",
	}

	input := ToCreateRecordInput(request)

	assert.Equal(t, "Alice Smith", input.Name)
	assert.Equal(t, "555-0100", input.Phone)
	assert.Equal(t, "alice@example.com", input.Email)
	assert.Equal(t, "123-45-6789", input.SSN)
	assert.Equal(t, "P1234567", input.PassportNumber)
	assert.Equal(t, "ACC-1001", input.AccountNumber)
	assert.Equal(t, "address change", input.ServiceRequest)
	assert.Empty(t, input.CreatedBy)
}
