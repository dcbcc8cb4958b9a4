package v16

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidRequest(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRequest(&BootNotificationRequest{
		ChargePointVendor: "VendorX",
		ChargePointModel:  "ModelY",
	})
	assert.NoError(t, err)
}

func TestValidator_MissingRequiredField(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRequest(&BootNotificationRequest{
		ChargePointVendor: "VendorX",
	})
	require.Error(t, err)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "ChargePointModel", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)
}

func TestValidator_MaxLength(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRequest(&AuthorizeRequest{
		IdTag: strings.Repeat("A", 21),
	})
	require.Error(t, err)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "max", validationErrs[0].Tag)
}

func TestValidator_NestedDive(t *testing.T) {
	v := NewValidator()

	// meterValue至少一条
	err := v.ValidateRequest(&MeterValuesRequest{ConnectorID: 1})
	assert.Error(t, err)

	err = v.ValidateRequest(&MeterValuesRequest{
		ConnectorID: 1,
		MeterValue: []MeterValue{{
			Timestamp:    NewDateTime(time.Now()),
			SampledValue: []SampledValue{{Value: "1500"}},
		}},
	})
	assert.NoError(t, err)
}

func TestValidator_OptionalFieldSkippedWhenNil(t *testing.T) {
	v := NewValidator()

	err := v.ValidateRequest(&GetDiagnosticsRequest{
		Location: "ftp://diag.example.com/upload",
	})
	assert.NoError(t, err)
}

func TestValidator_ValidateResponse(t *testing.T) {
	v := NewValidator()

	err := v.ValidateResponse(&ResetResponse{Status: "Accepted"})
	assert.NoError(t, err)

	err = v.ValidateResponse(&ResetResponse{})
	assert.Error(t, err)
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "IdTag", Tag: "required", Message: "IdTag is required"},
		{Field: "Value", Tag: "max", Message: "Value exceeds maximum length"},
	}

	combined := errs.Error()
	assert.Contains(t, combined, "IdTag is required")
	assert.Contains(t, combined, "Value exceeds maximum length")
}
