package v16

import (
	"testing"
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentralSystemRequest_RoundTrip(t *testing.T) {
	timestamp := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	reservationID := 42
	transactionID := 7

	tests := []struct {
		name string
		in   message.CentralSystemRequest
	}{
		{
			name: "authorize",
			in:   message.AuthorizeReq{IdTag: "TAG1"},
		},
		{
			name: "boot notification",
			in: message.BootNotificationReq{
				ChargePointVendor: "VendorX",
				ChargePointModel:  "ModelY",
				FirmwareVersion:   "1.2.3",
			},
		},
		{
			name: "heartbeat",
			in:   message.HeartbeatReq{},
		},
		{
			name: "diagnostics status",
			in:   message.DiagnosticsStatusNotificationReq{Status: message.DiagnosticsUploading},
		},
		{
			name: "firmware status",
			in:   message.FirmwareStatusNotificationReq{Status: message.FirmwareDownloaded},
		},
		{
			name: "meter values",
			in: message.MeterValuesReq{
				Scope:         message.ConnectorScope(1),
				TransactionID: &transactionID,
				Meters: []message.Meter{{
					Timestamp: timestamp,
					Values:    []message.MeterValue{message.NewMeterValue("1500")},
				}},
			},
		},
		{
			name: "start transaction",
			in: message.StartTransactionReq{
				Connector:     message.ConnectorScope(2),
				IdTag:         "TAG1",
				Timestamp:     timestamp,
				MeterStart:    100,
				ReservationID: &reservationID,
			},
		},
		{
			name: "status notification",
			in: message.StatusNotificationReq{
				Scope:    message.ConnectorScope(1),
				Status:   message.StatusOccupied{Kind: message.OccupancyCharging},
				VendorID: "com.example",
			},
		},
		{
			name: "stop transaction with non-default reason",
			in: message.StopTransactionReq{
				TransactionID: 7,
				Timestamp:     timestamp,
				MeterStop:     2500,
				Reason:        message.ReasonEVDisconnected,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeCentralSystemRequest(tt.in)
			require.NoError(t, err)

			decoded, err := DecodeCentralSystemRequest(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestStopTransaction_ReasonDefaultElision(t *testing.T) {
	in := message.StopTransactionReq{
		TransactionID: 7,
		Timestamp:     time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC),
		MeterStop:     2500,
		Reason:        message.ReasonLocal,
	}

	encoded, err := EncodeCentralSystemRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.StopTransactionRequest)
	assert.Nil(t, record.Reason)

	// 缺省的原因解码时回填为Local
	decoded, err := DecodeCentralSystemRequest(record)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestStopTransaction_ExplicitReasonOnWire(t *testing.T) {
	in := message.StopTransactionReq{
		TransactionID: 7,
		Timestamp:     time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC),
		Reason:        message.ReasonPowerLoss,
	}

	encoded, err := EncodeCentralSystemRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.StopTransactionRequest)
	require.NotNil(t, record.Reason)
	assert.Equal(t, "PowerLoss", *record.Reason)
}

func TestStatusNotification_UnknownErrorCode(t *testing.T) {
	record := &wire.StatusNotificationRequest{
		ConnectorID: 1,
		ErrorCode:   "NotARealCode",
		Status:      "Available",
	}

	_, err := DecodeCentralSystemRequest(record)
	var enumErr UnrecognizedEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ChargePointErrorCode", enumErr.Enum)
	assert.Equal(t, "NotARealCode", enumErr.Value)
}

func TestStatusNotification_FaultedOnWire(t *testing.T) {
	groundFailure := message.GroundFailure
	in := message.StatusNotificationReq{
		Scope: message.ConnectorScope(1),
		Status: message.StatusFaulted{
			ErrorCode:       &groundFailure,
			VendorErrorCode: "E-17",
		},
	}

	encoded, err := EncodeCentralSystemRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.StatusNotificationRequest)
	assert.Equal(t, "Faulted", record.Status)
	assert.Equal(t, "GroundFailure", record.ErrorCode)
	require.NotNil(t, record.VendorErrorCode)
	assert.Equal(t, "E-17", *record.VendorErrorCode)
}

func TestDataTransfer_RejectedTowardsCentralSystem(t *testing.T) {
	_, err := EncodeCentralSystemRequest(message.DataTransferReq{VendorID: "com.example"})
	var variantErr UnsupportedMessageVariantError
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, "CentralSystemDataTransfer", variantErr.Variant)

	_, err = EncodeCentralSystemResponse(message.DataTransferRes{Status: message.DataTransferAccepted})
	require.ErrorAs(t, err, &variantErr)
	assert.Equal(t, "CentralSystemDataTransfer", variantErr.Variant)
}

func TestCentralSystemResponse_RoundTrip(t *testing.T) {
	currentTime := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	info := message.IdTagInfo{Status: message.IdTagAccepted}

	tests := []struct {
		name string
		in   message.CentralSystemResponse
	}{
		{
			name: "authorize",
			in:   message.AuthorizeRes{IdTagInfo: info},
		},
		{
			name: "boot notification",
			in: message.BootNotificationRes{
				Status:            message.RegistrationAccepted,
				CurrentTime:       currentTime,
				HeartbeatInterval: 300 * time.Second,
			},
		},
		{
			name: "heartbeat",
			in:   message.HeartbeatRes{CurrentTime: currentTime},
		},
		{
			name: "start transaction",
			in:   message.StartTransactionRes{TransactionID: 7, IdTagInfo: info},
		},
		{
			name: "stop transaction with info",
			in:   message.StopTransactionRes{IdTagInfo: &info},
		},
		{
			name: "stop transaction without info",
			in:   message.StopTransactionRes{},
		},
		{
			name: "meter values ack",
			in:   message.MeterValuesRes{},
		},
		{
			name: "status notification ack",
			in:   message.StatusNotificationRes{},
		},
		{
			name: "diagnostics ack",
			in:   message.DiagnosticsStatusNotificationRes{},
		},
		{
			name: "firmware ack",
			in:   message.FirmwareStatusNotificationRes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeCentralSystemResponse(tt.in)
			require.NoError(t, err)

			decoded, err := DecodeCentralSystemResponse(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestBootNotification_IntervalInSeconds(t *testing.T) {
	in := message.BootNotificationRes{
		Status:            message.RegistrationPending,
		CurrentTime:       time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC),
		HeartbeatInterval: 5 * time.Minute,
	}

	encoded, err := EncodeCentralSystemResponse(in)
	require.NoError(t, err)
	record := encoded.(*wire.BootNotificationResponse)
	assert.Equal(t, 300, record.Interval)
	assert.Equal(t, "Pending", record.Status)
}
