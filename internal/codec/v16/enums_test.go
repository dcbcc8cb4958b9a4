package v16

import (
	"testing"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumTable_RoundTrip(t *testing.T) {
	// 每个声明过的域值经wire再经domain应回到原值
	for domainValue, wireValue := range authorizationStatusTable.toWire {
		assert.Equal(t, wireValue, authorizationStatusTable.wire(domainValue))
		parsed, err := authorizationStatusTable.domain(wireValue)
		require.NoError(t, err)
		assert.Equal(t, domainValue, parsed)
	}
	for domainValue, wireValue := range measurandTable.toWire {
		parsed, err := measurandTable.domain(wireValue)
		require.NoError(t, err)
		assert.Equal(t, domainValue, parsed)
	}
	for domainValue, wireValue := range stopReasonTable.toWire {
		parsed, err := stopReasonTable.domain(wireValue)
		require.NoError(t, err)
		assert.Equal(t, domainValue, parsed)
	}
}

func TestEnumTable_Totality(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"authorization status", len(authorizationStatusTable.toWire)},
		{"charge point error code", len(chargePointErrorCodeTable.toWire)},
		{"occupancy kind", len(occupancyKindTable.toWire)},
		{"measurand", len(measurandTable.toWire)},
		{"unit of measure", len(unitOfMeasureTable.toWire)},
		{"stop reason", len(stopReasonTable.toWire)},
	}
	expected := map[string]int{
		"authorization status":    5,
		"charge point error code": 15,
		"occupancy kind":          5,
		"measurand":               22,
		"unit of measure":         16,
		"stop reason":             11,
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, expected[tt.name], tt.size)
		})
	}
}

func TestEnumTable_DomainIdentifiersDecoupled(t *testing.T) {
	// 域侧标识符与线上字面量的对应关系逐对声明
	assert.Equal(t, "Accepted", authorizationStatusTable.wire(message.IdTagAccepted))
	assert.Equal(t, "ConcurrentTx", authorizationStatusTable.wire(message.IdTagConcurrentTx))
	assert.Equal(t, "Unlocked", unlockStatusTable.wire(message.UnlockSucceeded))
	assert.Equal(t, "UnknownMessageId", dataTransferStatusTable.wire(message.DataTransferUnknownMessageID))
}

func TestEnumTable_UnknownWireValue(t *testing.T) {
	_, err := chargePointErrorCodeTable.domain("NotARealCode")
	require.Error(t, err)

	var enumErr UnrecognizedEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ChargePointErrorCode", enumErr.Enum)
	assert.Equal(t, "NotARealCode", enumErr.Value)
}

func TestEnumTable_NoErrorIsNotAnErrorCode(t *testing.T) {
	// 哨兵值"NoError"由状态分解逻辑处理，不属于错误码映射表
	_, err := chargePointErrorCodeTable.domain("NoError")
	assert.Error(t, err)
}

func TestEnumTable_UndeclaredDomainValuePanics(t *testing.T) {
	assert.Panics(t, func() {
		resetTypeTable.wire(message.ResetType(99))
	})
}

func TestNewEnumTable_DuplicateDetection(t *testing.T) {
	assert.Panics(t, func() {
		newEnumTable("Dup", []enumPair[int]{
			{1, "A"},
			{1, "B"},
		})
	})
	assert.Panics(t, func() {
		newEnumTable("Dup", []enumPair[int]{
			{1, "A"},
			{2, "A"},
		})
	})
}
