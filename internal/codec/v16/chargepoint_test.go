package v16

import (
	"net/url"
	"testing"
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseURI(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.ParseRequestURI(raw)
	require.NoError(t, err)
	return u
}

func TestChargePointRequest_RoundTrip(t *testing.T) {
	timestamp := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	connector := message.ConnectorScope(2)
	profileID := 5
	stackLevel := 0
	purpose := message.TxDefaultProfile
	rateUnit := message.RateUnitWatts
	retries := 3
	retryInterval := 60 * time.Second
	startTime := timestamp
	data := "opaque"

	tests := []struct {
		name string
		in   message.ChargePointRequest
	}{
		{
			name: "cancel reservation",
			in:   message.CancelReservationReq{ReservationID: 42},
		},
		{
			name: "change availability",
			in: message.ChangeAvailabilityReq{
				Scope: message.ConnectorScope(1),
				Type:  message.AvailabilityInoperative,
			},
		},
		{
			name: "change configuration",
			in:   message.ChangeConfigurationReq{Key: "HeartbeatInterval", Value: "300"},
		},
		{
			name: "clear cache",
			in:   message.ClearCacheReq{},
		},
		{
			name: "clear charging profile with filters",
			in: message.ClearChargingProfileReq{
				ProfileID:  &profileID,
				Connector:  &connector,
				Purpose:    &purpose,
				StackLevel: &stackLevel,
			},
		},
		{
			name: "clear charging profile without filters",
			in:   message.ClearChargingProfileReq{},
		},
		{
			name: "data transfer",
			in: message.DataTransferReq{
				VendorID:  "com.example",
				MessageID: "sub",
				Data:      &data,
			},
		},
		{
			name: "get composite schedule",
			in: message.GetCompositeScheduleReq{
				Connector: message.ConnectorScope(1),
				Duration:  30 * time.Minute,
				RateUnit:  &rateUnit,
			},
		},
		{
			name: "get configuration",
			in:   message.GetConfigurationReq{Keys: []string{"HeartbeatInterval"}},
		},
		{
			name: "get diagnostics",
			in: message.GetDiagnosticsReq{
				Location:      mustParseURI(t, "ftp://diag.example.com/upload"),
				StartTime:     &startTime,
				Retries:       &retries,
				RetryInterval: &retryInterval,
			},
		},
		{
			name: "get local list version",
			in:   message.GetLocalListVersionReq{},
		},
		{
			name: "remote start",
			in: message.RemoteStartTransactionReq{
				IdTag:     "TAG1",
				Connector: &connector,
			},
		},
		{
			name: "remote stop",
			in:   message.RemoteStopTransactionReq{TransactionID: 7},
		},
		{
			name: "reserve now",
			in: message.ReserveNowReq{
				Connector:     message.ConnectorScope(1),
				ExpiryDate:    timestamp,
				IdTag:         "TAG1",
				ParentIdTag:   "PARENT1",
				ReservationID: 42,
			},
		},
		{
			name: "reset",
			in:   message.ResetReq{Type: message.ResetSoft},
		},
		{
			name: "trigger message",
			in: message.TriggerMessageReq{
				Requested: message.TriggerStatusNotification,
				Connector: &connector,
			},
		},
		{
			name: "unlock connector",
			in:   message.UnlockConnectorReq{Connector: message.ConnectorScope(1)},
		},
		{
			name: "update firmware",
			in: message.UpdateFirmwareReq{
				RetrieveDate:  timestamp,
				Location:      mustParseURI(t, "https://fw.example.com/v2.bin"),
				Retries:       &retries,
				RetryInterval: &retryInterval,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeChargePointRequest(tt.in)
			require.NoError(t, err)

			decoded, err := DecodeChargePointRequest(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestSendLocalList_FullUpdate(t *testing.T) {
	in := message.SendLocalListReq{
		UpdateType:  message.UpdateFull,
		ListVersion: message.AuthListSupported(3),
		LocalAuthorisationList: []message.AuthorisationData{
			message.AuthorisationAdd("TAG1", message.IdTagInfo{Status: message.IdTagAccepted}),
			message.AuthorisationRemove("TAG2"),
		},
	}

	encoded, err := EncodeChargePointRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.SendLocalListRequest)
	assert.Equal(t, 3, record.ListVersion)
	assert.Equal(t, "Full", record.UpdateType)
	require.Len(t, record.LocalAuthorisationList, 2)
	require.NotNil(t, record.LocalAuthorisationList[0].IdTagInfo)
	assert.Equal(t, "Accepted", record.LocalAuthorisationList[0].IdTagInfo.Status)
	assert.Nil(t, record.LocalAuthorisationList[1].IdTagInfo)

	decoded, err := DecodeChargePointRequest(record)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestSendLocalList_VersionHashDroppedOnWire(t *testing.T) {
	in := message.SendLocalListRes{
		Status: message.UpdateStatus{
			Status:      message.UpdateAccepted,
			VersionHash: "d41d8cd9",
		},
	}

	encoded, err := EncodeChargePointResponse(in)
	require.NoError(t, err)
	record := encoded.(*wire.SendLocalListResponse)
	assert.Equal(t, "Accepted", record.Status)

	// 解码不回填hash
	decoded, err := DecodeChargePointResponse(record)
	require.NoError(t, err)
	res := decoded.(message.SendLocalListRes)
	assert.Equal(t, message.UpdateAccepted, res.Status.Status)
	assert.Empty(t, res.Status.VersionHash)
}

func TestGetLocalListVersion_NotSupported(t *testing.T) {
	encoded, err := EncodeChargePointResponse(message.GetLocalListVersionRes{
		Version: message.AuthListNotSupported,
	})
	require.NoError(t, err)
	record := encoded.(*wire.GetLocalListVersionResponse)
	assert.Equal(t, -1, record.ListVersion)

	decoded, err := DecodeChargePointResponse(&wire.GetLocalListVersionResponse{ListVersion: -7})
	require.NoError(t, err)
	res := decoded.(message.GetLocalListVersionRes)
	assert.False(t, res.Version.Supported)
}

func TestAcceptanceResponses(t *testing.T) {
	tests := []struct {
		name string
		in   message.ChargePointResponse
		want string
	}{
		{"reset accepted", message.ResetRes{Accepted: true}, "Accepted"},
		{"reset rejected", message.ResetRes{Accepted: false}, "Rejected"},
		{"clear cache accepted", message.ClearCacheRes{Accepted: true}, "Accepted"},
		{"cancel reservation rejected", message.CancelReservationRes{Accepted: false}, "Rejected"},
		{"remote start accepted", message.RemoteStartTransactionRes{Accepted: true}, "Accepted"},
		{"remote stop rejected", message.RemoteStopTransactionRes{Accepted: false}, "Rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeChargePointResponse(tt.in)
			require.NoError(t, err)

			decoded, err := DecodeChargePointResponse(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestResetResponse_InvalidAcceptanceStatus(t *testing.T) {
	_, err := DecodeChargePointResponse(&wire.ResetResponse{Status: "Maybe"})

	var acceptErr InvalidAcceptanceStatusError
	require.ErrorAs(t, err, &acceptErr)
	assert.Equal(t, "Maybe", acceptErr.Value)
}

func TestGetDiagnostics_InvalidURI(t *testing.T) {
	_, err := DecodeChargePointRequest(&wire.GetDiagnosticsRequest{Location: "no scheme"})

	var uriErr InvalidURIError
	require.ErrorAs(t, err, &uriErr)
	assert.Equal(t, "no scheme", uriErr.Value)
}

func TestUpdateFirmware_InvalidURI(t *testing.T) {
	_, err := DecodeChargePointRequest(&wire.UpdateFirmwareRequest{
		Location:     "::broken",
		RetrieveDate: wire.NewDateTime(time.Now()),
	})

	var uriErr InvalidURIError
	require.ErrorAs(t, err, &uriErr)
}

func TestSetChargingProfile_RecurringDaily(t *testing.T) {
	in := message.SetChargingProfileReq{
		Connector: message.ConnectorScope(1),
		Profile: message.ChargingProfile{
			ID:         5,
			StackLevel: 1,
			Purpose:    message.TxDefaultProfile,
			Kind:       message.KindRecurring,
			Recurrency: message.RecurrencyDaily,
			Schedule: message.ChargingSchedule{
				RateUnit: message.RateUnitAmperes,
				Periods: []message.ChargingSchedulePeriod{
					{StartOffset: 0, Limit: 16},
				},
			},
		},
	}

	encoded, err := EncodeChargePointRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.SetChargingProfileRequest)
	assert.Equal(t, "Daily", record.CsChargingProfiles.ChargingProfileKind)

	decoded, err := DecodeChargePointRequest(record)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestSetChargingProfile_RecurringWithoutRecurrency(t *testing.T) {
	in := message.SetChargingProfileReq{
		Connector: message.ConnectorScope(1),
		Profile: message.ChargingProfile{
			Kind: message.KindRecurring,
			Schedule: message.ChargingSchedule{
				RateUnit: message.RateUnitWatts,
			},
		},
	}

	_, err := EncodeChargePointRequest(in)
	var kindErr UnrecognizedProfileKindError
	require.ErrorAs(t, err, &kindErr)
}

func TestChargePointResponse_RoundTrip(t *testing.T) {
	timestamp := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	connector := message.ConnectorScope(1)
	value := "300"
	data := "opaque"

	tests := []struct {
		name string
		in   message.ChargePointResponse
	}{
		{
			name: "change availability scheduled",
			in:   message.ChangeAvailabilityRes{Status: message.AvailabilityScheduled},
		},
		{
			name: "change configuration reboot required",
			in:   message.ChangeConfigurationRes{Status: message.ConfigurationRebootRequired},
		},
		{
			name: "clear charging profile unknown",
			in:   message.ClearChargingProfileRes{Status: message.ClearProfileUnknown},
		},
		{
			name: "data transfer",
			in:   message.DataTransferRes{Status: message.DataTransferUnknownVendorID, Data: &data},
		},
		{
			name: "get composite schedule with schedule",
			in: message.GetCompositeScheduleRes{
				Status:        message.CompositeScheduleAccepted,
				Connector:     &connector,
				ScheduleStart: &timestamp,
				Schedule: &message.ChargingSchedule{
					RateUnit: message.RateUnitWatts,
					Periods: []message.ChargingSchedulePeriod{
						{StartOffset: 0, Limit: 11000},
					},
				},
			},
		},
		{
			name: "get composite schedule rejected",
			in:   message.GetCompositeScheduleRes{Status: message.CompositeScheduleRejected},
		},
		{
			name: "get configuration",
			in: message.GetConfigurationRes{
				Values: []message.KeyValue{
					{Key: "HeartbeatInterval", ReadOnly: false, Value: &value},
					{Key: "NumberOfConnectors", ReadOnly: true},
				},
				UnknownKeys: []string{"BogusKey"},
			},
		},
		{
			name: "get diagnostics with file",
			in:   message.GetDiagnosticsRes{FileName: "diag-2024-05-12.tar.gz"},
		},
		{
			name: "get diagnostics empty",
			in:   message.GetDiagnosticsRes{},
		},
		{
			name: "local list version supported",
			in:   message.GetLocalListVersionRes{Version: message.AuthListSupported(3)},
		},
		{
			name: "reserve now faulted",
			in:   message.ReserveNowRes{Status: message.ReservationFaulted},
		},
		{
			name: "set charging profile not supported",
			in:   message.SetChargingProfileRes{Status: message.ProfileNotSupported},
		},
		{
			name: "trigger message not implemented",
			in:   message.TriggerMessageRes{Status: message.TriggerNotImplemented},
		},
		{
			name: "unlock connector failed",
			in:   message.UnlockConnectorRes{Status: message.UnlockFailed},
		},
		{
			name: "update firmware ack",
			in:   message.UpdateFirmwareRes{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeChargePointResponse(tt.in)
			require.NoError(t, err)

			decoded, err := DecodeChargePointResponse(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.in, decoded)
		})
	}
}

func TestTriggerMessage_ConnectorDroppedForGlobalTargets(t *testing.T) {
	connector := message.ConnectorScope(2)
	in := message.TriggerMessageReq{
		Requested: message.TriggerHeartbeat,
		Connector: &connector,
	}

	encoded, err := EncodeChargePointRequest(in)
	require.NoError(t, err)
	record := encoded.(*wire.TriggerMessageRequest)
	assert.Equal(t, "Heartbeat", record.RequestedMessage)
	assert.Nil(t, record.ConnectorID)
}
