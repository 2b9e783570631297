package validator_test

import (
	"strings"
	"testing"

	"farn/shared/validator"
)

// Test structs for validation
type GuestTestStruct struct {
	Name    string `validate:"required"                         json:"name"`
	Email   string `validate:"required,email"                   json:"email"`
	Phone   string `validate:"required,len=10,numeric"          json:"phone"`
	Payment string `validate:"omitempty,oneof=Pending Cash UPI" json:"payment"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *GuestTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &GuestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Phone:   "9876543210",
				Payment: "Cash",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &GuestTestStruct{
				Email: "john@example.com",
				Phone: "9876543210",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &GuestTestStruct{
				Name:  "John Doe",
				Email: "invalid-email",
				Phone: "9876543210",
			},
			expectError: true,
		},
		{
			name: "phone too short",
			data: &GuestTestStruct{
				Name:  "John Doe",
				Email: "john@example.com",
				Phone: "98765",
			},
			expectError: true,
		},
		{
			name: "payment outside enumeration",
			data: &GuestTestStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				Phone:   "9876543210",
				Payment: "Barter",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateFromReader(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON body",
			jsonBody:    `{"name":"Jane","email":"jane@example.com","phone":"9876543210"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Jane"`,
			expectError: true,
		},
		{
			name:        "valid JSON failing validation",
			jsonBody:    `{"name":"Jane","email":"not-an-email","phone":"9876543210"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data GuestTestStruct
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

// Test custom validation messages
func TestValidationMessages(t *testing.T) {
	data := &GuestTestStruct{}
	err := validator.ValidateStruct[GuestTestStruct](data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	// Check that error message contains field name and is descriptive
	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("guest@example.com", "email"); err != nil {
		t.Errorf("expected valid email, got: %v", err)
	}

	if err := validator.ValidateVar("missing-domain-separator", "email"); err == nil {
		t.Error("expected validation error for invalid email")
	}
}
