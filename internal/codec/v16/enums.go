package v16

import (
	"fmt"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
)

// enumTable 单个枚举的双向映射表。
// 域值到线上字符串与其反向均为全单射；表在包初始化时构建一次，
// 之后只读，可被并发转换无锁共享。
type enumTable[D comparable] struct {
	enum     string
	toWire   map[D]string
	toDomain map[string]D
}

type enumPair[D comparable] struct {
	domain D
	wire   string
}

func newEnumTable[D comparable](enum string, pairs []enumPair[D]) *enumTable[D] {
	t := &enumTable[D]{
		enum:     enum,
		toWire:   make(map[D]string, len(pairs)),
		toDomain: make(map[string]D, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.toWire[p.domain]; dup {
			panic(fmt.Sprintf("enum %s: duplicate domain value %v", enum, p.domain))
		}
		if _, dup := t.toDomain[p.wire]; dup {
			panic(fmt.Sprintf("enum %s: duplicate wire value %q", enum, p.wire))
		}
		t.toWire[p.domain] = p.wire
		t.toDomain[p.wire] = p.domain
	}
	return t
}

// wire 返回域值的线上字符串。对声明过的域值总是成功；
// 未声明的域值属编程错误，直接panic
func (t *enumTable[D]) wire(v D) string {
	s, ok := t.toWire[v]
	if !ok {
		panic(fmt.Sprintf("enum %s: undeclared domain value %v", t.enum, v))
	}
	return s
}

// domain 解析线上字符串，未声明的字符串返回UnrecognizedEnumValueError
func (t *enumTable[D]) domain(s string) (D, error) {
	v, ok := t.toDomain[s]
	if !ok {
		var zero D
		return zero, UnrecognizedEnumValueError{Enum: t.enum, Value: s}
	}
	return v, nil
}

// 域侧授权状态标识符与线上字面量有意解耦，对应关系逐对声明
var authorizationStatusTable = newEnumTable("AuthorizationStatus", []enumPair[message.AuthorizationStatus]{
	{message.IdTagAccepted, "Accepted"},
	{message.IdTagBlocked, "Blocked"},
	{message.IdTagExpired, "Expired"},
	{message.IdTagInvalid, "Invalid"},
	{message.IdTagConcurrentTx, "ConcurrentTx"},
})

var registrationStatusTable = newEnumTable("RegistrationStatus", []enumPair[message.RegistrationStatus]{
	{message.RegistrationAccepted, "Accepted"},
	{message.RegistrationPending, "Pending"},
	{message.RegistrationRejected, "Rejected"},
})

var resetTypeTable = newEnumTable("ResetType", []enumPair[message.ResetType]{
	{message.ResetHard, "Hard"},
	{message.ResetSoft, "Soft"},
})

var availabilityTypeTable = newEnumTable("AvailabilityType", []enumPair[message.AvailabilityType]{
	{message.AvailabilityInoperative, "Inoperative"},
	{message.AvailabilityOperative, "Operative"},
})

var availabilityStatusTable = newEnumTable("AvailabilityStatus", []enumPair[message.AvailabilityStatus]{
	{message.AvailabilityAccepted, "Accepted"},
	{message.AvailabilityRejected, "Rejected"},
	{message.AvailabilityScheduled, "Scheduled"},
})

// 线上哨兵值"NoError"不在表中，由状态分解逻辑单独处理
var chargePointErrorCodeTable = newEnumTable("ChargePointErrorCode", []enumPair[message.ChargePointErrorCode]{
	{message.ConnectorLockFailure, "ConnectorLockFailure"},
	{message.EVCommunicationError, "EVCommunicationError"},
	{message.GroundFailure, "GroundFailure"},
	{message.HighTemperature, "HighTemperature"},
	{message.InternalError, "InternalError"},
	{message.LocalListConflict, "LocalListConflict"},
	{message.OtherError, "OtherError"},
	{message.OverCurrentFailure, "OverCurrentFailure"},
	{message.OverVoltage, "OverVoltage"},
	{message.PowerMeterFailure, "PowerMeterFailure"},
	{message.PowerSwitchFailure, "PowerSwitchFailure"},
	{message.ReaderFailure, "ReaderFailure"},
	{message.ResetFailure, "ResetFailure"},
	{message.UnderVoltage, "UnderVoltage"},
	{message.WeakSignal, "WeakSignal"},
})

var occupancyKindTable = newEnumTable("OccupancyKind", []enumPair[message.OccupancyKind]{
	{message.OccupancyPreparing, "Preparing"},
	{message.OccupancyCharging, "Charging"},
	{message.OccupancySuspendedEV, "SuspendedEV"},
	{message.OccupancySuspendedEVSE, "SuspendedEVSE"},
	{message.OccupancyFinishing, "Finishing"},
})

var readingContextTable = newEnumTable("ReadingContext", []enumPair[message.ReadingContext]{
	{message.ReadingInterruptionBegin, "Interruption.Begin"},
	{message.ReadingInterruptionEnd, "Interruption.End"},
	{message.ReadingSampleClock, "Sample.Clock"},
	{message.ReadingSamplePeriodic, "Sample.Periodic"},
	{message.ReadingTransactionBegin, "Transaction.Begin"},
	{message.ReadingTransactionEnd, "Transaction.End"},
	{message.ReadingTrigger, "Trigger"},
	{message.ReadingOther, "Other"},
})

var valueFormatTable = newEnumTable("ValueFormat", []enumPair[message.ValueFormat]{
	{message.FormatRaw, "Raw"},
	{message.FormatSignedData, "SignedData"},
})

var measurandTable = newEnumTable("Measurand", []enumPair[message.Measurand]{
	{message.MeasurandCurrentExport, "Current.Export"},
	{message.MeasurandCurrentImport, "Current.Import"},
	{message.MeasurandCurrentOffered, "Current.Offered"},
	{message.MeasurandEnergyActiveExportRegister, "Energy.Active.Export.Register"},
	{message.MeasurandEnergyActiveImportRegister, "Energy.Active.Import.Register"},
	{message.MeasurandEnergyReactiveExportRegister, "Energy.Reactive.Export.Register"},
	{message.MeasurandEnergyReactiveImportRegister, "Energy.Reactive.Import.Register"},
	{message.MeasurandEnergyActiveExportInterval, "Energy.Active.Export.Interval"},
	{message.MeasurandEnergyActiveImportInterval, "Energy.Active.Import.Interval"},
	{message.MeasurandEnergyReactiveExportInterval, "Energy.Reactive.Export.Interval"},
	{message.MeasurandEnergyReactiveImportInterval, "Energy.Reactive.Import.Interval"},
	{message.MeasurandFrequency, "Frequency"},
	{message.MeasurandPowerActiveExport, "Power.Active.Export"},
	{message.MeasurandPowerActiveImport, "Power.Active.Import"},
	{message.MeasurandPowerFactor, "Power.Factor"},
	{message.MeasurandPowerOffered, "Power.Offered"},
	{message.MeasurandPowerReactiveExport, "Power.Reactive.Export"},
	{message.MeasurandPowerReactiveImport, "Power.Reactive.Import"},
	{message.MeasurandRPM, "RPM"},
	{message.MeasurandSoC, "SoC"},
	{message.MeasurandTemperature, "Temperature"},
	{message.MeasurandVoltage, "Voltage"},
})

var phaseTable = newEnumTable("Phase", []enumPair[message.Phase]{
	{message.PhaseL1, "L1"},
	{message.PhaseL2, "L2"},
	{message.PhaseL3, "L3"},
	{message.PhaseN, "N"},
	{message.PhaseL1N, "L1-N"},
	{message.PhaseL2N, "L2-N"},
	{message.PhaseL3N, "L3-N"},
	{message.PhaseL1L2, "L1-L2"},
	{message.PhaseL2L3, "L2-L3"},
	{message.PhaseL3L1, "L3-L1"},
})

var locationTable = newEnumTable("Location", []enumPair[message.Location]{
	{message.LocationBody, "Body"},
	{message.LocationCable, "Cable"},
	{message.LocationEV, "EV"},
	{message.LocationInlet, "Inlet"},
	{message.LocationOutlet, "Outlet"},
})

var unitOfMeasureTable = newEnumTable("UnitOfMeasure", []enumPair[message.UnitOfMeasure]{
	{message.UnitWh, "Wh"},
	{message.UnitKWh, "kWh"},
	{message.UnitVarh, "varh"},
	{message.UnitKvarh, "kvarh"},
	{message.UnitW, "W"},
	{message.UnitKW, "kW"},
	{message.UnitVA, "VA"},
	{message.UnitKVA, "kVA"},
	{message.UnitVar, "var"},
	{message.UnitKvar, "kvar"},
	{message.UnitA, "A"},
	{message.UnitV, "V"},
	{message.UnitCelsius, "Celsius"},
	{message.UnitFahrenheit, "Fahrenheit"},
	{message.UnitK, "K"},
	{message.UnitPercent, "Percent"},
})

var stopReasonTable = newEnumTable("Reason", []enumPair[message.StopReason]{
	{message.ReasonLocal, "Local"},
	{message.ReasonDeAuthorized, "DeAuthorized"},
	{message.ReasonEmergencyStop, "EmergencyStop"},
	{message.ReasonEVDisconnected, "EVDisconnected"},
	{message.ReasonHardReset, "HardReset"},
	{message.ReasonOther, "Other"},
	{message.ReasonPowerLoss, "PowerLoss"},
	{message.ReasonReboot, "Reboot"},
	{message.ReasonRemote, "Remote"},
	{message.ReasonSoftReset, "SoftReset"},
	{message.ReasonUnlockCommand, "UnlockCommand"},
})

var chargingRateUnitTable = newEnumTable("ChargingRateUnit", []enumPair[message.ChargingRateUnit]{
	{message.RateUnitWatts, "W"},
	{message.RateUnitAmperes, "A"},
})

var chargingProfilePurposeTable = newEnumTable("ChargingProfilePurpose", []enumPair[message.ChargingProfilePurpose]{
	{message.ChargePointMaxProfile, "ChargePointMaxProfile"},
	{message.TxDefaultProfile, "TxDefaultProfile"},
	{message.TxProfile, "TxProfile"},
})

var reservationStatusTable = newEnumTable("ReservationStatus", []enumPair[message.ReservationStatus]{
	{message.ReservationAccepted, "Accepted"},
	{message.ReservationFaulted, "Faulted"},
	{message.ReservationOccupied, "Occupied"},
	{message.ReservationRejected, "Rejected"},
	{message.ReservationUnavailable, "Unavailable"},
})

var configurationStatusTable = newEnumTable("ConfigurationStatus", []enumPair[message.ConfigurationStatus]{
	{message.ConfigurationAccepted, "Accepted"},
	{message.ConfigurationRejected, "Rejected"},
	{message.ConfigurationRebootRequired, "RebootRequired"},
	{message.ConfigurationNotSupported, "NotSupported"},
})

var unlockStatusTable = newEnumTable("UnlockStatus", []enumPair[message.UnlockStatus]{
	{message.UnlockSucceeded, "Unlocked"},
	{message.UnlockFailed, "UnlockFailed"},
	{message.UnlockNotSupported, "NotSupported"},
})

var chargingProfileStatusTable = newEnumTable("ChargingProfileStatus", []enumPair[message.ChargingProfileStatus]{
	{message.ProfileAccepted, "Accepted"},
	{message.ProfileRejected, "Rejected"},
	{message.ProfileNotSupported, "NotSupported"},
})

var clearChargingProfileStatusTable = newEnumTable("ClearChargingProfileStatus", []enumPair[message.ClearChargingProfileStatus]{
	{message.ClearProfileAccepted, "Accepted"},
	{message.ClearProfileUnknown, "Unknown"},
})

var compositeScheduleStatusTable = newEnumTable("GetCompositeScheduleStatus", []enumPair[message.CompositeScheduleStatus]{
	{message.CompositeScheduleAccepted, "Accepted"},
	{message.CompositeScheduleRejected, "Rejected"},
})

var firmwareStatusTable = newEnumTable("FirmwareStatus", []enumPair[message.FirmwareStatus]{
	{message.FirmwareDownloaded, "Downloaded"},
	{message.FirmwareDownloadFailed, "DownloadFailed"},
	{message.FirmwareDownloading, "Downloading"},
	{message.FirmwareIdle, "Idle"},
	{message.FirmwareInstallationFailed, "InstallationFailed"},
	{message.FirmwareInstalling, "Installing"},
	{message.FirmwareInstalled, "Installed"},
})

var diagnosticsStatusTable = newEnumTable("DiagnosticsStatus", []enumPair[message.DiagnosticsStatus]{
	{message.DiagnosticsIdle, "Idle"},
	{message.DiagnosticsUploaded, "Uploaded"},
	{message.DiagnosticsUploadFailed, "UploadFailed"},
	{message.DiagnosticsUploading, "Uploading"},
})

var messageTriggerTable = newEnumTable("MessageTrigger", []enumPair[message.MessageTrigger]{
	{message.TriggerBootNotification, "BootNotification"},
	{message.TriggerDiagnosticsStatusNotification, "DiagnosticsStatusNotification"},
	{message.TriggerFirmwareStatusNotification, "FirmwareStatusNotification"},
	{message.TriggerHeartbeat, "Heartbeat"},
	{message.TriggerMeterValues, "MeterValues"},
	{message.TriggerStatusNotification, "StatusNotification"},
})

var triggerMessageStatusTable = newEnumTable("TriggerMessageStatus", []enumPair[message.TriggerMessageStatus]{
	{message.TriggerAccepted, "Accepted"},
	{message.TriggerRejected, "Rejected"},
	{message.TriggerNotImplemented, "NotImplemented"},
})

var dataTransferStatusTable = newEnumTable("DataTransferStatus", []enumPair[message.DataTransferStatus]{
	{message.DataTransferAccepted, "Accepted"},
	{message.DataTransferRejected, "Rejected"},
	{message.DataTransferUnknownMessageID, "UnknownMessageId"},
	{message.DataTransferUnknownVendorID, "UnknownVendorId"},
})

var updateTypeTable = newEnumTable("UpdateType", []enumPair[message.UpdateType]{
	{message.UpdateDifferential, "Differential"},
	{message.UpdateFull, "Full"},
})

var updateStatusTable = newEnumTable("UpdateStatus", []enumPair[message.UpdateStatusKind]{
	{message.UpdateAccepted, "Accepted"},
	{message.UpdateFailed, "Failed"},
	{message.UpdateNotSupported, "NotSupported"},
	{message.UpdateVersionMismatch, "VersionMismatch"},
})
