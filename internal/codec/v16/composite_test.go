package v16

import (
	"testing"
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampledValue_DefaultElision(t *testing.T) {
	out := sampledValueToWire(message.NewMeterValue("4200"))

	assert.Equal(t, "4200", out.Value)
	assert.Nil(t, out.Context)
	assert.Nil(t, out.Format)
	assert.Nil(t, out.Measurand)
	assert.Nil(t, out.Phase)
	assert.Nil(t, out.Location)
	assert.Nil(t, out.Unit)
}

func TestSampledValue_DefaultBackfill(t *testing.T) {
	decoded, err := sampledValueFromWire(wire.SampledValue{Value: "4200"})
	require.NoError(t, err)

	assert.Equal(t, message.NewMeterValue("4200"), decoded)
	assert.Equal(t, message.ReadingSamplePeriodic, decoded.Context)
	assert.Equal(t, message.FormatRaw, decoded.Format)
	assert.Equal(t, message.MeasurandEnergyActiveImportRegister, decoded.Measurand)
	assert.Equal(t, message.LocationOutlet, decoded.Location)
	assert.Equal(t, message.UnitWh, decoded.Unit)
	assert.Nil(t, decoded.Phase)
}

func TestSampledValue_IndependentDefaults(t *testing.T) {
	// 仅单位偏离默认值时，其余字段仍省略
	in := message.NewMeterValue("12.5")
	in.Unit = message.UnitKWh

	out := sampledValueToWire(in)
	require.NotNil(t, out.Unit)
	assert.Equal(t, "kWh", *out.Unit)
	assert.Nil(t, out.Context)
	assert.Nil(t, out.Measurand)

	decoded, err := sampledValueFromWire(out)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestSampledValue_PhaseIsPlainOptional(t *testing.T) {
	in := message.NewMeterValue("230.1")
	phase := message.PhaseL1
	in.Phase = &phase
	in.Measurand = message.MeasurandVoltage
	in.Unit = message.UnitV

	out := sampledValueToWire(in)
	require.NotNil(t, out.Phase)
	assert.Equal(t, "L1", *out.Phase)

	decoded, err := sampledValueFromWire(out)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestSampledValue_UnknownAttribute(t *testing.T) {
	context := "Sample.Sometimes"
	_, err := sampledValueFromWire(wire.SampledValue{Value: "1", Context: &context})

	var enumErr UnrecognizedEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ReadingContext", enumErr.Enum)
}

func TestStatusToWire(t *testing.T) {
	groundFailure := message.GroundFailure

	tests := []struct {
		name            string
		in              message.ChargePointStatus
		status          string
		errorCode       string
		vendorErrorCode *string
		wantErr         error
	}{
		{
			name:      "available",
			in:        message.StatusAvailable{},
			status:    "Available",
			errorCode: "NoError",
		},
		{
			name:      "occupied charging",
			in:        message.StatusOccupied{Kind: message.OccupancyCharging},
			status:    "Charging",
			errorCode: "NoError",
		},
		{
			name:      "occupied suspended by vehicle",
			in:        message.StatusOccupied{Kind: message.OccupancySuspendedEV},
			status:    "SuspendedEV",
			errorCode: "NoError",
		},
		{
			name:    "occupied without reason",
			in:      message.StatusOccupied{},
			wantErr: MissingOccupiedReasonError{},
		},
		{
			name:      "faulted with explicit code",
			in:        message.StatusFaulted{ErrorCode: &groundFailure, VendorErrorCode: "E-17"},
			status:    "Faulted",
			errorCode: "GroundFailure",
		},
		{
			name:      "faulted without explicit code",
			in:        message.StatusFaulted{},
			status:    "Faulted",
			errorCode: "NoError",
		},
		{
			name:      "reserved",
			in:        message.StatusReserved{Info: "booked"},
			status:    "Reserved",
			errorCode: "NoError",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, errorCode, _, vendorErrorCode, err := statusToWire(tt.in)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.errorCode, errorCode)
			if tt.name == "faulted with explicit code" {
				require.NotNil(t, vendorErrorCode)
				assert.Equal(t, "E-17", *vendorErrorCode)
			}
		})
	}
}

func TestStatusFromWire(t *testing.T) {
	decoded, err := statusFromWire("Preparing", "NoError", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, message.StatusOccupied{Kind: message.OccupancyPreparing}, decoded)

	decoded, err = statusFromWire("Faulted", "HighTemperature", nil, nil)
	require.NoError(t, err)
	faulted, ok := decoded.(message.StatusFaulted)
	require.True(t, ok)
	require.NotNil(t, faulted.ErrorCode)
	assert.Equal(t, message.HighTemperature, *faulted.ErrorCode)

	// "NoError"映射回nil错误码
	decoded, err = statusFromWire("Faulted", "NoError", nil, nil)
	require.NoError(t, err)
	faulted, ok = decoded.(message.StatusFaulted)
	require.True(t, ok)
	assert.Nil(t, faulted.ErrorCode)
}

func TestStatusFromWire_UnknownStatus(t *testing.T) {
	_, err := statusFromWire("Dormant", "NoError", nil, nil)

	var enumErr UnrecognizedEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ChargePointStatus", enumErr.Enum)
	assert.Equal(t, "Dormant", enumErr.Value)
}

func TestStatusRoundTrip(t *testing.T) {
	internalError := message.InternalError
	statuses := []message.ChargePointStatus{
		message.StatusAvailable{Info: "idle"},
		message.StatusOccupied{Kind: message.OccupancyFinishing},
		message.StatusUnavailable{},
		message.StatusReserved{},
		message.StatusFaulted{ErrorCode: &internalError, Info: "fuse", VendorErrorCode: "V42"},
		message.StatusFaulted{},
	}

	for _, in := range statuses {
		status, errorCode, info, vendorErrorCode, err := statusToWire(in)
		require.NoError(t, err)
		decoded, err := statusFromWire(status, errorCode, info, vendorErrorCode)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}

func TestProfileKind(t *testing.T) {
	tests := []struct {
		name       string
		kind       message.ChargingProfileKind
		recurrency message.RecurrencyKind
		wire       string
		wantErr    bool
	}{
		{name: "absolute", kind: message.KindAbsolute, wire: "Absolute"},
		{name: "relative", kind: message.KindRelative, wire: "Relative"},
		{name: "recurring daily", kind: message.KindRecurring, recurrency: message.RecurrencyDaily, wire: "Daily"},
		{name: "recurring weekly", kind: message.KindRecurring, recurrency: message.RecurrencyWeekly, wire: "Weekly"},
		{name: "recurring without recurrency", kind: message.KindRecurring, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := profileKindToWire(tt.kind, tt.recurrency)
			if tt.wantErr {
				var kindErr UnrecognizedProfileKindError
				require.ErrorAs(t, err, &kindErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wire, encoded)

			kind, recurrency, err := profileKindFromWire(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.recurrency, recurrency)
		})
	}
}

func TestProfileKindFromWire_UnknownLiteral(t *testing.T) {
	_, _, err := profileKindFromWire("Hourly")

	var kindErr UnrecognizedProfileKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "Hourly", kindErr.Value)
}

func TestListVersion(t *testing.T) {
	assert.Equal(t, 3, listVersionToWire(message.AuthListSupported(3)))
	assert.Equal(t, 0, listVersionToWire(message.AuthListSupported(0)))
	assert.Equal(t, -1, listVersionToWire(message.AuthListNotSupported))

	assert.Equal(t, message.AuthListSupported(7), listVersionFromWire(7))
	assert.Equal(t, message.AuthListNotSupported, listVersionFromWire(-1))
	// 任何负值均视为不支持
	assert.Equal(t, message.AuthListNotSupported, listVersionFromWire(-12))
}

func TestAcceptance(t *testing.T) {
	assert.Equal(t, "Accepted", acceptanceToWire(true))
	assert.Equal(t, "Rejected", acceptanceToWire(false))

	accepted, err := acceptanceFromWire("Accepted")
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = acceptanceFromWire("Rejected")
	require.NoError(t, err)
	assert.False(t, accepted)

	_, err = acceptanceFromWire("Maybe")
	var acceptErr InvalidAcceptanceStatusError
	require.ErrorAs(t, err, &acceptErr)
	assert.Equal(t, "Maybe", acceptErr.Value)
}

func TestURIFromWire(t *testing.T) {
	u, err := uriFromWire("ftp://diag.example.com/upload")
	require.NoError(t, err)
	assert.Equal(t, "ftp", u.Scheme)
	assert.Equal(t, "diag.example.com", u.Host)

	_, err = uriFromWire("not a uri")
	var uriErr InvalidURIError
	require.ErrorAs(t, err, &uriErr)
	assert.Equal(t, "not a uri", uriErr.Value)
	assert.NotNil(t, uriErr.Cause)
}

func TestTriggerConnectorScoping(t *testing.T) {
	connector := message.ConnectorScope(2)

	// 连接器仅随MeterValues与StatusNotification下发
	name, id := triggerToWire(message.TriggerMessageReq{
		Requested: message.TriggerMeterValues,
		Connector: &connector,
	})
	assert.Equal(t, "MeterValues", name)
	require.NotNil(t, id)
	assert.Equal(t, 2, *id)

	name, id = triggerToWire(message.TriggerMessageReq{
		Requested: message.TriggerHeartbeat,
		Connector: &connector,
	})
	assert.Equal(t, "Heartbeat", name)
	assert.Nil(t, id)

	two := 2
	decoded, err := triggerFromWire("StatusNotification", &two)
	require.NoError(t, err)
	require.NotNil(t, decoded.Connector)
	assert.Equal(t, 2, decoded.Connector.ConnectorID())

	decoded, err = triggerFromWire("BootNotification", &two)
	require.NoError(t, err)
	assert.Nil(t, decoded.Connector)
}

func TestMeterRoundTrip(t *testing.T) {
	timestamp := time.Date(2024, 5, 12, 10, 30, 0, 0, time.UTC)
	soc := message.NewMeterValue("85")
	soc.Measurand = message.MeasurandSoC
	soc.Unit = message.UnitPercent

	in := []message.Meter{{
		Timestamp: timestamp,
		Values:    []message.MeterValue{message.NewMeterValue("1500"), soc},
	}}

	encoded := metersToWire(in)
	require.Len(t, encoded, 1)
	require.Len(t, encoded[0].SampledValue, 2)
	assert.Nil(t, encoded[0].SampledValue[0].Measurand)
	require.NotNil(t, encoded[0].SampledValue[1].Measurand)
	assert.Equal(t, "SoC", *encoded[0].SampledValue[1].Measurand)

	decoded, err := metersFromWire(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestIdTagInfoRoundTrip(t *testing.T) {
	expiry := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	in := message.IdTagInfo{
		Status:      message.IdTagConcurrentTx,
		ExpiryDate:  &expiry,
		ParentIdTag: "PARENT1",
	}

	decoded, err := idTagInfoFromWire(idTagInfoToWire(in))
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}

func TestAuthorisationDataRoundTrip(t *testing.T) {
	add := message.AuthorisationAdd("TAG1", message.IdTagInfo{Status: message.IdTagAccepted})
	remove := message.AuthorisationRemove("TAG2")

	encodedAdd := authorisationDataToWire(add)
	require.NotNil(t, encodedAdd.IdTagInfo)
	decodedAdd, err := authorisationDataFromWire(encodedAdd)
	require.NoError(t, err)
	assert.Equal(t, add, decodedAdd)

	encodedRemove := authorisationDataToWire(remove)
	assert.Nil(t, encodedRemove.IdTagInfo)
	decodedRemove, err := authorisationDataFromWire(encodedRemove)
	require.NoError(t, err)
	assert.Equal(t, remove, decodedRemove)
}

func TestChargingProfileRoundTrip(t *testing.T) {
	duration := 4 * time.Hour
	startsAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	minRate := 6.0
	phases := 3
	transactionID := 77

	in := message.ChargingProfile{
		ID:            5,
		TransactionID: &transactionID,
		StackLevel:    1,
		Purpose:       message.TxProfile,
		Kind:          message.KindRecurring,
		Recurrency:    message.RecurrencyWeekly,
		Schedule: message.ChargingSchedule{
			Duration:        &duration,
			StartsAt:        &startsAt,
			RateUnit:        message.RateUnitAmperes,
			MinChargingRate: &minRate,
			Periods: []message.ChargingSchedulePeriod{
				{StartOffset: 0, Limit: 32, NumberPhases: &phases},
				{StartOffset: 2 * time.Hour, Limit: 16},
			},
		},
	}

	encoded, err := chargingProfileToWire(in)
	require.NoError(t, err)
	assert.Equal(t, "Weekly", encoded.ChargingProfileKind)
	require.NotNil(t, encoded.ChargingSchedule.Duration)
	assert.Equal(t, 14400, *encoded.ChargingSchedule.Duration)
	assert.Equal(t, 7200, encoded.ChargingSchedule.ChargingSchedulePeriod[1].StartPeriod)

	decoded, err := chargingProfileFromWire(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, decoded)
}
