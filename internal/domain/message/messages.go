package message

import (
	"net/url"
	"time"
)

// Request 任一方向的请求消息
type Request interface {
	Action() string
}

// Response 任一方向的响应消息
type Response interface {
	Action() string
}

// CentralSystemRequest 发往中央系统的请求（充电桩发起）
type CentralSystemRequest interface {
	Request
	toCentralSystem()
}

// CentralSystemResponse 中央系统返回的响应
type CentralSystemResponse interface {
	Response
	fromCentralSystem()
}

// ChargePointRequest 发往充电桩的请求（中央系统发起）
type ChargePointRequest interface {
	Request
	toChargePoint()
}

// ChargePointResponse 充电桩返回的响应
type ChargePointResponse interface {
	Response
	fromChargePoint()
}

// ---- 充电桩 → 中央系统 ----

// AuthorizeReq 授权请求
type AuthorizeReq struct {
	IdTag string
}

// AuthorizeRes 授权响应
type AuthorizeRes struct {
	IdTagInfo IdTagInfo
}

// BootNotificationReq 启动通知请求
type BootNotificationReq struct {
	ChargePointVendor       string
	ChargePointModel        string
	ChargePointSerialNumber string
	ChargeBoxSerialNumber   string
	FirmwareVersion         string
	Iccid                   string
	Imsi                    string
	MeterType               string
	MeterSerialNumber       string
}

// BootNotificationRes 启动通知响应，心跳间隔在线上以整数秒表示
type BootNotificationRes struct {
	Status            RegistrationStatus
	CurrentTime       time.Time
	HeartbeatInterval time.Duration
}

// DataTransferReq 数据透传请求，两个方向共用同一域类型
type DataTransferReq struct {
	VendorID  string
	MessageID string
	Data      *string
}

// DataTransferRes 数据透传响应
type DataTransferRes struct {
	Status DataTransferStatus
	Data   *string
}

// DiagnosticsStatusNotificationReq 诊断状态通知请求
type DiagnosticsStatusNotificationReq struct {
	Status DiagnosticsStatus
}

// DiagnosticsStatusNotificationRes 诊断状态通知响应（空载荷确认）
type DiagnosticsStatusNotificationRes struct{}

// FirmwareStatusNotificationReq 固件状态通知请求
type FirmwareStatusNotificationReq struct {
	Status FirmwareStatus
}

// FirmwareStatusNotificationRes 固件状态通知响应（空载荷确认）
type FirmwareStatusNotificationRes struct{}

// HeartbeatReq 心跳请求（空载荷）
type HeartbeatReq struct{}

// HeartbeatRes 心跳响应
type HeartbeatRes struct {
	CurrentTime time.Time
}

// MeterValuesReq 电表读数上报请求
type MeterValuesReq struct {
	Scope         Scope
	TransactionID *int
	Meters        []Meter
}

// MeterValuesRes 电表读数上报响应（空载荷确认）
type MeterValuesRes struct{}

// StartTransactionReq 开始交易请求
type StartTransactionReq struct {
	Connector     Scope
	IdTag         string
	Timestamp     time.Time
	MeterStart    int
	ReservationID *int
}

// StartTransactionRes 开始交易响应
type StartTransactionRes struct {
	TransactionID int
	IdTagInfo     IdTagInfo
}

// StatusNotificationReq 状态通知请求
type StatusNotificationReq struct {
	Scope     Scope
	Status    ChargePointStatus
	Timestamp *time.Time
	VendorID  string
}

// StatusNotificationRes 状态通知响应（空载荷确认）
type StatusNotificationRes struct{}

// StopTransactionReq 停止交易请求，Reason默认为Local
type StopTransactionReq struct {
	TransactionID int
	IdTag         string
	Timestamp     time.Time
	MeterStop     int
	Reason        StopReason
	Meters        []Meter
}

// StopTransactionRes 停止交易响应
type StopTransactionRes struct {
	IdTagInfo *IdTagInfo
}

// ---- 中央系统 → 充电桩 ----

// CancelReservationReq 取消预约请求
type CancelReservationReq struct {
	ReservationID int
}

// CancelReservationRes 取消预约响应
type CancelReservationRes struct {
	Accepted bool
}

// ChangeAvailabilityReq 变更可用性请求
type ChangeAvailabilityReq struct {
	Scope Scope
	Type  AvailabilityType
}

// ChangeAvailabilityRes 变更可用性响应
type ChangeAvailabilityRes struct {
	Status AvailabilityStatus
}

// ChangeConfigurationReq 变更配置请求
type ChangeConfigurationReq struct {
	Key   string
	Value string
}

// ChangeConfigurationRes 变更配置响应
type ChangeConfigurationRes struct {
	Status ConfigurationStatus
}

// ClearCacheReq 清除授权缓存请求（空载荷）
type ClearCacheReq struct{}

// ClearCacheRes 清除授权缓存响应
type ClearCacheRes struct {
	Accepted bool
}

// ClearChargingProfileReq 清除充电配置请求，各筛选条件均可选
type ClearChargingProfileReq struct {
	ProfileID  *int
	Connector  *Scope
	Purpose    *ChargingProfilePurpose
	StackLevel *int
}

// ClearChargingProfileRes 清除充电配置响应
type ClearChargingProfileRes struct {
	Status ClearChargingProfileStatus
}

// GetCompositeScheduleReq 查询合成充电计划请求
type GetCompositeScheduleReq struct {
	Connector Scope
	Duration  time.Duration
	RateUnit  *ChargingRateUnit
}

// GetCompositeScheduleRes 查询合成充电计划响应
type GetCompositeScheduleRes struct {
	Status        CompositeScheduleStatus
	Connector     *Scope
	ScheduleStart *time.Time
	Schedule      *ChargingSchedule
}

// GetConfigurationReq 查询配置请求
type GetConfigurationReq struct {
	Keys []string
}

// GetConfigurationRes 查询配置响应
type GetConfigurationRes struct {
	Values      []KeyValue
	UnknownKeys []string
}

// GetDiagnosticsReq 获取诊断请求，上传目标以URI表示
type GetDiagnosticsReq struct {
	Location      *url.URL
	StartTime     *time.Time
	StopTime      *time.Time
	Retries       *int
	RetryInterval *time.Duration
}

// GetDiagnosticsRes 获取诊断响应，FileName为空表示无诊断可上传
type GetDiagnosticsRes struct {
	FileName string
}

// GetLocalListVersionReq 查询本地授权列表版本请求（空载荷）
type GetLocalListVersionReq struct{}

// GetLocalListVersionRes 查询本地授权列表版本响应
type GetLocalListVersionRes struct {
	Version AuthListVersion
}

// RemoteStartTransactionReq 远程开始交易请求
type RemoteStartTransactionReq struct {
	IdTag           string
	Connector       *Scope
	ChargingProfile *ChargingProfile
}

// RemoteStartTransactionRes 远程开始交易响应
type RemoteStartTransactionRes struct {
	Accepted bool
}

// RemoteStopTransactionReq 远程停止交易请求
type RemoteStopTransactionReq struct {
	TransactionID int
}

// RemoteStopTransactionRes 远程停止交易响应
type RemoteStopTransactionRes struct {
	Accepted bool
}

// ReserveNowReq 预约请求
type ReserveNowReq struct {
	Connector     Scope
	ExpiryDate    time.Time
	IdTag         string
	ParentIdTag   string
	ReservationID int
}

// ReserveNowRes 预约响应
type ReserveNowRes struct {
	Status ReservationStatus
}

// ResetReq 重置请求
type ResetReq struct {
	Type ResetType
}

// ResetRes 重置响应
type ResetRes struct {
	Accepted bool
}

// SendLocalListReq 下发本地授权列表请求
type SendLocalListReq struct {
	UpdateType             UpdateType
	ListVersion            AuthListVersion
	LocalAuthorisationList []AuthorisationData
}

// SendLocalListRes 下发本地授权列表响应
type SendLocalListRes struct {
	Status UpdateStatus
}

// SetChargingProfileReq 下发充电配置请求
type SetChargingProfileReq struct {
	Connector Scope
	Profile   ChargingProfile
}

// SetChargingProfileRes 下发充电配置响应
type SetChargingProfileRes struct {
	Status ChargingProfileStatus
}

// TriggerMessageReq 远程触发请求
// Connector仅对MeterValues与StatusNotification两个目标有意义
type TriggerMessageReq struct {
	Requested MessageTrigger
	Connector *Scope
}

// TriggerMessageRes 远程触发响应
type TriggerMessageRes struct {
	Status TriggerMessageStatus
}

// UnlockConnectorReq 解锁连接器请求
type UnlockConnectorReq struct {
	Connector Scope
}

// UnlockConnectorRes 解锁连接器响应
type UnlockConnectorRes struct {
	Status UnlockStatus
}

// UpdateFirmwareReq 固件升级请求
type UpdateFirmwareReq struct {
	RetrieveDate  time.Time
	Location      *url.URL
	Retries       *int
	RetryInterval *time.Duration
}

// UpdateFirmwareRes 固件升级响应（空载荷确认）
type UpdateFirmwareRes struct{}

// Action 实现

func (BootNotificationReq) Action() string              { return "BootNotification" }
func (BootNotificationRes) Action() string              { return "BootNotification" }
func (AuthorizeReq) Action() string                     { return "Authorize" }
func (AuthorizeRes) Action() string                     { return "Authorize" }
func (DataTransferReq) Action() string                  { return "DataTransfer" }
func (DataTransferRes) Action() string                  { return "DataTransfer" }
func (DiagnosticsStatusNotificationReq) Action() string { return "DiagnosticsStatusNotification" }
func (DiagnosticsStatusNotificationRes) Action() string { return "DiagnosticsStatusNotification" }
func (FirmwareStatusNotificationReq) Action() string    { return "FirmwareStatusNotification" }
func (FirmwareStatusNotificationRes) Action() string    { return "FirmwareStatusNotification" }
func (HeartbeatReq) Action() string                     { return "Heartbeat" }
func (HeartbeatRes) Action() string                     { return "Heartbeat" }
func (MeterValuesReq) Action() string                   { return "MeterValues" }
func (MeterValuesRes) Action() string                   { return "MeterValues" }
func (StartTransactionReq) Action() string              { return "StartTransaction" }
func (StartTransactionRes) Action() string              { return "StartTransaction" }
func (StatusNotificationReq) Action() string            { return "StatusNotification" }
func (StatusNotificationRes) Action() string            { return "StatusNotification" }
func (StopTransactionReq) Action() string               { return "StopTransaction" }
func (StopTransactionRes) Action() string               { return "StopTransaction" }

func (CancelReservationReq) Action() string      { return "CancelReservation" }
func (CancelReservationRes) Action() string      { return "CancelReservation" }
func (ChangeAvailabilityReq) Action() string     { return "ChangeAvailability" }
func (ChangeAvailabilityRes) Action() string     { return "ChangeAvailability" }
func (ChangeConfigurationReq) Action() string    { return "ChangeConfiguration" }
func (ChangeConfigurationRes) Action() string    { return "ChangeConfiguration" }
func (ClearCacheReq) Action() string             { return "ClearCache" }
func (ClearCacheRes) Action() string             { return "ClearCache" }
func (ClearChargingProfileReq) Action() string   { return "ClearChargingProfile" }
func (ClearChargingProfileRes) Action() string   { return "ClearChargingProfile" }
func (GetCompositeScheduleReq) Action() string   { return "GetCompositeSchedule" }
func (GetCompositeScheduleRes) Action() string   { return "GetCompositeSchedule" }
func (GetConfigurationReq) Action() string       { return "GetConfiguration" }
func (GetConfigurationRes) Action() string       { return "GetConfiguration" }
func (GetDiagnosticsReq) Action() string         { return "GetDiagnostics" }
func (GetDiagnosticsRes) Action() string         { return "GetDiagnostics" }
func (GetLocalListVersionReq) Action() string    { return "GetLocalListVersion" }
func (GetLocalListVersionRes) Action() string    { return "GetLocalListVersion" }
func (RemoteStartTransactionReq) Action() string { return "RemoteStartTransaction" }
func (RemoteStartTransactionRes) Action() string { return "RemoteStartTransaction" }
func (RemoteStopTransactionReq) Action() string  { return "RemoteStopTransaction" }
func (RemoteStopTransactionRes) Action() string  { return "RemoteStopTransaction" }
func (ReserveNowReq) Action() string             { return "ReserveNow" }
func (ReserveNowRes) Action() string             { return "ReserveNow" }
func (ResetReq) Action() string                  { return "Reset" }
func (ResetRes) Action() string                  { return "Reset" }
func (SendLocalListReq) Action() string          { return "SendLocalList" }
func (SendLocalListRes) Action() string          { return "SendLocalList" }
func (SetChargingProfileReq) Action() string     { return "SetChargingProfile" }
func (SetChargingProfileRes) Action() string     { return "SetChargingProfile" }
func (TriggerMessageReq) Action() string         { return "TriggerMessage" }
func (TriggerMessageRes) Action() string         { return "TriggerMessage" }
func (UnlockConnectorReq) Action() string        { return "UnlockConnector" }
func (UnlockConnectorRes) Action() string        { return "UnlockConnector" }
func (UpdateFirmwareReq) Action() string         { return "UpdateFirmware" }
func (UpdateFirmwareRes) Action() string         { return "UpdateFirmware" }

// 方向标记

func (AuthorizeReq) toCentralSystem()                     {}
func (BootNotificationReq) toCentralSystem()              {}
func (DiagnosticsStatusNotificationReq) toCentralSystem() {}
func (FirmwareStatusNotificationReq) toCentralSystem()    {}
func (HeartbeatReq) toCentralSystem()                     {}
func (MeterValuesReq) toCentralSystem()                   {}
func (StartTransactionReq) toCentralSystem()              {}
func (StatusNotificationReq) toCentralSystem()            {}
func (StopTransactionReq) toCentralSystem()               {}

func (AuthorizeRes) fromCentralSystem()                     {}
func (BootNotificationRes) fromCentralSystem()              {}
func (DiagnosticsStatusNotificationRes) fromCentralSystem() {}
func (FirmwareStatusNotificationRes) fromCentralSystem()    {}
func (HeartbeatRes) fromCentralSystem()                     {}
func (MeterValuesRes) fromCentralSystem()                   {}
func (StartTransactionRes) fromCentralSystem()              {}
func (StatusNotificationRes) fromCentralSystem()            {}
func (StopTransactionRes) fromCentralSystem()               {}

func (CancelReservationReq) toChargePoint()      {}
func (ChangeAvailabilityReq) toChargePoint()     {}
func (ChangeConfigurationReq) toChargePoint()    {}
func (ClearCacheReq) toChargePoint()             {}
func (ClearChargingProfileReq) toChargePoint()   {}
func (GetCompositeScheduleReq) toChargePoint()   {}
func (GetConfigurationReq) toChargePoint()       {}
func (GetDiagnosticsReq) toChargePoint()         {}
func (GetLocalListVersionReq) toChargePoint()    {}
func (RemoteStartTransactionReq) toChargePoint() {}
func (RemoteStopTransactionReq) toChargePoint()  {}
func (ReserveNowReq) toChargePoint()             {}
func (ResetReq) toChargePoint()                  {}
func (SendLocalListReq) toChargePoint()          {}
func (SetChargingProfileReq) toChargePoint()     {}
func (TriggerMessageReq) toChargePoint()         {}
func (UnlockConnectorReq) toChargePoint()        {}
func (UpdateFirmwareReq) toChargePoint()         {}

func (CancelReservationRes) fromChargePoint()      {}
func (ChangeAvailabilityRes) fromChargePoint()     {}
func (ChangeConfigurationRes) fromChargePoint()    {}
func (ClearCacheRes) fromChargePoint()             {}
func (ClearChargingProfileRes) fromChargePoint()   {}
func (GetCompositeScheduleRes) fromChargePoint()   {}
func (GetConfigurationRes) fromChargePoint()       {}
func (GetDiagnosticsRes) fromChargePoint()         {}
func (GetLocalListVersionRes) fromChargePoint()    {}
func (RemoteStartTransactionRes) fromChargePoint() {}
func (RemoteStopTransactionRes) fromChargePoint()  {}
func (ReserveNowRes) fromChargePoint()             {}
func (ResetRes) fromChargePoint()                  {}
func (SendLocalListRes) fromChargePoint()          {}
func (SetChargingProfileRes) fromChargePoint()     {}
func (TriggerMessageRes) fromChargePoint()         {}
func (UnlockConnectorRes) fromChargePoint()        {}
func (UpdateFirmwareRes) fromChargePoint()         {}

// DataTransfer在两个方向均存在于域模型，但本编解码集仅为
// 充电桩方向提供线上编码；中央系统方向由外层信封按原始载荷转发
func (DataTransferReq) toCentralSystem() {}
func (DataTransferReq) toChargePoint()   {}
func (DataTransferRes) fromCentralSystem() {}
func (DataTransferRes) fromChargePoint()   {}
