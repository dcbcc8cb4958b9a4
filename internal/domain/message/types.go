package message

import (
	"time"
)

// Scope 消息作用域：ChargePointScope 表示整桩，连接器编号从1开始
type Scope int

// ChargePointScope 整桩作用域
const ChargePointScope Scope = 0

// ConnectorScope 返回指定连接器的作用域
func ConnectorScope(connector int) Scope {
	return Scope(connector)
}

// ConnectorID 返回线上使用的连接器编号
func (s Scope) ConnectorID() int {
	return int(s)
}

// AuthorizationStatus 授权状态
// 域侧标识符有意区别于线上字符串（"Accepted"/"Blocked"/...），
// 两者的对应关系由编解码层的映射表声明
type AuthorizationStatus int

const (
	IdTagAccepted AuthorizationStatus = iota
	IdTagBlocked
	IdTagExpired
	IdTagInvalid
	IdTagConcurrentTx
)

// RegistrationStatus 注册状态
type RegistrationStatus int

const (
	RegistrationAccepted RegistrationStatus = iota
	RegistrationPending
	RegistrationRejected
)

// ResetType 重置类型
type ResetType int

const (
	ResetHard ResetType = iota
	ResetSoft
)

// AvailabilityType 可用性变更类型
type AvailabilityType int

const (
	AvailabilityInoperative AvailabilityType = iota
	AvailabilityOperative
)

// AvailabilityStatus 可用性变更结果
type AvailabilityStatus int

const (
	AvailabilityAccepted AvailabilityStatus = iota
	AvailabilityRejected
	AvailabilityScheduled
)

// ChargePointErrorCode 充电桩错误代码
// 线上的哨兵值"NoError"不在域模型中，用nil指针表示"无显式错误码"
type ChargePointErrorCode int

const (
	ConnectorLockFailure ChargePointErrorCode = iota
	EVCommunicationError
	GroundFailure
	HighTemperature
	InternalError
	LocalListConflict
	OtherError
	OverCurrentFailure
	OverVoltage
	PowerMeterFailure
	PowerSwitchFailure
	ReaderFailure
	ResetFailure
	UnderVoltage
	WeakSignal
)

// OccupancyKind 占用状态的细分原因
type OccupancyKind int

const (
	OccupancyPreparing OccupancyKind = iota + 1
	OccupancyCharging
	OccupancySuspendedEV
	OccupancySuspendedEVSE
	OccupancyFinishing
)

// ChargePointStatus 充电桩连接器状态，封闭变体集
// 线上表示分解为(status, errorCode, info, vendorErrorCode)四个字段
type ChargePointStatus interface {
	chargePointStatus()
}

// StatusAvailable 空闲可用
type StatusAvailable struct {
	Info string
}

// StatusOccupied 占用中，Kind为必填的细分原因
type StatusOccupied struct {
	Kind OccupancyKind
	Info string
}

// StatusUnavailable 不可用
type StatusUnavailable struct {
	Info string
}

// StatusReserved 已预约
type StatusReserved struct {
	Info string
}

// StatusFaulted 故障，ErrorCode为nil表示无显式错误码
type StatusFaulted struct {
	ErrorCode       *ChargePointErrorCode
	Info            string
	VendorErrorCode string
}

func (StatusAvailable) chargePointStatus()   {}
func (StatusOccupied) chargePointStatus()    {}
func (StatusUnavailable) chargePointStatus() {}
func (StatusReserved) chargePointStatus()    {}
func (StatusFaulted) chargePointStatus()     {}

// ReadingContext 采样上下文
type ReadingContext int

const (
	ReadingInterruptionBegin ReadingContext = iota
	ReadingInterruptionEnd
	ReadingSampleClock
	ReadingSamplePeriodic
	ReadingTransactionBegin
	ReadingTransactionEnd
	ReadingTrigger
	ReadingOther
)

// ValueFormat 采样值格式
type ValueFormat int

const (
	FormatRaw ValueFormat = iota
	FormatSignedData
)

// Measurand 测量量
type Measurand int

const (
	MeasurandCurrentExport Measurand = iota
	MeasurandCurrentImport
	MeasurandCurrentOffered
	MeasurandEnergyActiveExportRegister
	MeasurandEnergyActiveImportRegister
	MeasurandEnergyReactiveExportRegister
	MeasurandEnergyReactiveImportRegister
	MeasurandEnergyActiveExportInterval
	MeasurandEnergyActiveImportInterval
	MeasurandEnergyReactiveExportInterval
	MeasurandEnergyReactiveImportInterval
	MeasurandFrequency
	MeasurandPowerActiveExport
	MeasurandPowerActiveImport
	MeasurandPowerFactor
	MeasurandPowerOffered
	MeasurandPowerReactiveExport
	MeasurandPowerReactiveImport
	MeasurandRPM
	MeasurandSoC
	MeasurandTemperature
	MeasurandVoltage
)

// Phase 相位
type Phase int

const (
	PhaseL1 Phase = iota
	PhaseL2
	PhaseL3
	PhaseN
	PhaseL1N
	PhaseL2N
	PhaseL3N
	PhaseL1L2
	PhaseL2L3
	PhaseL3L1
)

// Location 采样位置
type Location int

const (
	LocationBody Location = iota
	LocationCable
	LocationEV
	LocationInlet
	LocationOutlet
)

// UnitOfMeasure 测量单位
type UnitOfMeasure int

const (
	UnitWh UnitOfMeasure = iota
	UnitKWh
	UnitVarh
	UnitKvarh
	UnitW
	UnitKW
	UnitVA
	UnitKVA
	UnitVar
	UnitKvar
	UnitA
	UnitV
	UnitCelsius
	UnitFahrenheit
	UnitK
	UnitPercent
)

// Meter 一次电表读数：时间戳加一组采样值
type Meter struct {
	Timestamp time.Time
	Values    []MeterValue
}

// MeterValue 单个采样值
// 六个属性字段中除Phase外各有独立的默认值，编码时等于默认值则省略，
// 解码时缺省则回填，默认值由编解码层逐字段声明
type MeterValue struct {
	Value     string
	Context   ReadingContext
	Format    ValueFormat
	Measurand Measurand
	Phase     *Phase
	Location  Location
	Unit      UnitOfMeasure
}

// NewMeterValue 返回携带各字段默认属性的采样值
func NewMeterValue(value string) MeterValue {
	return MeterValue{
		Value:     value,
		Context:   ReadingSamplePeriodic,
		Format:    FormatRaw,
		Measurand: MeasurandEnergyActiveImportRegister,
		Location:  LocationOutlet,
		Unit:      UnitWh,
	}
}

// StopReason 交易停止原因
type StopReason int

const (
	ReasonLocal StopReason = iota
	ReasonDeAuthorized
	ReasonEmergencyStop
	ReasonEVDisconnected
	ReasonHardReset
	ReasonOther
	ReasonPowerLoss
	ReasonReboot
	ReasonRemote
	ReasonSoftReset
	ReasonUnlockCommand
)

// IdTagInfo 授权结果元数据
type IdTagInfo struct {
	Status      AuthorizationStatus
	ExpiryDate  *time.Time
	ParentIdTag string
}

// KeyValue 配置项
type KeyValue struct {
	Key      string
	ReadOnly bool
	Value    *string
}

// ChargingProfilePurpose 充电配置目的
type ChargingProfilePurpose int

const (
	ChargePointMaxProfile ChargingProfilePurpose = iota
	TxDefaultProfile
	TxProfile
)

// ChargingProfileKind 充电配置类型
// 线上的"Daily"/"Weekly"两个字面量折叠为Recurring一个域变体，
// 由RecurrencyKind参数区分
type ChargingProfileKind int

const (
	KindAbsolute ChargingProfileKind = iota
	KindRelative
	KindRecurring
)

// RecurrencyKind 重复周期，仅当Kind为Recurring时有意义
type RecurrencyKind int

const (
	RecurrencyDaily RecurrencyKind = iota + 1
	RecurrencyWeekly
)

// ChargingRateUnit 充电速率单位
type ChargingRateUnit int

const (
	RateUnitWatts ChargingRateUnit = iota
	RateUnitAmperes
)

// ChargingProfile 充电配置
type ChargingProfile struct {
	ID            int
	TransactionID *int
	StackLevel    int
	Purpose       ChargingProfilePurpose
	Kind          ChargingProfileKind
	Recurrency    RecurrencyKind
	ValidFrom     *time.Time
	ValidTo       *time.Time
	Schedule      ChargingSchedule
}

// ChargingSchedule 充电计划，时长在线上以整数秒表示
type ChargingSchedule struct {
	Duration        *time.Duration
	StartsAt        *time.Time
	RateUnit        ChargingRateUnit
	MinChargingRate *float64
	Periods         []ChargingSchedulePeriod
}

// ChargingSchedulePeriod 充电计划区段
type ChargingSchedulePeriod struct {
	StartOffset  time.Duration
	Limit        float64
	NumberPhases *int
}

// AuthorisationData 本地授权列表条目
// IdTagInfo为nil表示从列表删除该标签，非nil表示新增或更新
type AuthorisationData struct {
	IdTag     string
	IdTagInfo *IdTagInfo
}

// AuthorisationAdd 构造新增条目
func AuthorisationAdd(idTag string, info IdTagInfo) AuthorisationData {
	return AuthorisationData{IdTag: idTag, IdTagInfo: &info}
}

// AuthorisationRemove 构造删除条目
func AuthorisationRemove(idTag string) AuthorisationData {
	return AuthorisationData{IdTag: idTag}
}

// UpdateType 本地授权列表更新方式
type UpdateType int

const (
	UpdateDifferential UpdateType = iota
	UpdateFull
)

// UpdateStatusKind 本地授权列表更新结果
type UpdateStatusKind int

const (
	UpdateAccepted UpdateStatusKind = iota
	UpdateFailed
	UpdateNotSupported
	UpdateVersionMismatch
)

// UpdateStatus 本地授权列表更新结果
// VersionHash仅在Accepted且由本地列表更新方向携带；
// SendLocalList响应的线上表示不携带hash，编码时丢弃，解码不回填。
// 该不对称为既有行为，保持原样
type UpdateStatus struct {
	Status      UpdateStatusKind
	VersionHash string
}

// AuthListVersion 本地授权列表版本，线上以-1表示不支持
type AuthListVersion struct {
	Version   int
	Supported bool
}

// AuthListSupported 构造受支持的列表版本
func AuthListSupported(version int) AuthListVersion {
	return AuthListVersion{Version: version, Supported: true}
}

// AuthListNotSupported 不支持本地授权列表
var AuthListNotSupported = AuthListVersion{}

// ReservationStatus 预约结果
type ReservationStatus int

const (
	ReservationAccepted ReservationStatus = iota
	ReservationFaulted
	ReservationOccupied
	ReservationRejected
	ReservationUnavailable
)

// ConfigurationStatus 配置变更结果
type ConfigurationStatus int

const (
	ConfigurationAccepted ConfigurationStatus = iota
	ConfigurationRejected
	ConfigurationRebootRequired
	ConfigurationNotSupported
)

// UnlockStatus 解锁结果
type UnlockStatus int

const (
	UnlockSucceeded UnlockStatus = iota
	UnlockFailed
	UnlockNotSupported
)

// ChargingProfileStatus 下发充电配置结果
type ChargingProfileStatus int

const (
	ProfileAccepted ChargingProfileStatus = iota
	ProfileRejected
	ProfileNotSupported
)

// ClearChargingProfileStatus 清除充电配置结果
type ClearChargingProfileStatus int

const (
	ClearProfileAccepted ClearChargingProfileStatus = iota
	ClearProfileUnknown
)

// CompositeScheduleStatus 合成计划查询结果
type CompositeScheduleStatus int

const (
	CompositeScheduleAccepted CompositeScheduleStatus = iota
	CompositeScheduleRejected
)

// FirmwareStatus 固件升级状态
type FirmwareStatus int

const (
	FirmwareDownloaded FirmwareStatus = iota
	FirmwareDownloadFailed
	FirmwareDownloading
	FirmwareIdle
	FirmwareInstallationFailed
	FirmwareInstalling
	FirmwareInstalled
)

// DiagnosticsStatus 诊断上传状态
type DiagnosticsStatus int

const (
	DiagnosticsIdle DiagnosticsStatus = iota
	DiagnosticsUploaded
	DiagnosticsUploadFailed
	DiagnosticsUploading
)

// MessageTrigger 远程触发的目标消息
type MessageTrigger int

const (
	TriggerBootNotification MessageTrigger = iota
	TriggerDiagnosticsStatusNotification
	TriggerFirmwareStatusNotification
	TriggerHeartbeat
	TriggerMeterValues
	TriggerStatusNotification
)

// TriggerMessageStatus 远程触发结果
type TriggerMessageStatus int

const (
	TriggerAccepted TriggerMessageStatus = iota
	TriggerRejected
	TriggerNotImplemented
)

// DataTransferStatus 数据透传结果
type DataTransferStatus int

const (
	DataTransferAccepted DataTransferStatus = iota
	DataTransferRejected
	DataTransferUnknownMessageID
	DataTransferUnknownVendorID
)
