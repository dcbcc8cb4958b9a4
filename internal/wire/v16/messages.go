package v16

// Request 线上请求记录
type Request interface {
	Action() string
	wireRequest()
}

// Response 线上响应记录
type Response interface {
	Action() string
	wireResponse()
}

// AuthorizeRequest 授权请求
type AuthorizeRequest struct {
	IdTag string `json:"idTag" validate:"required,max=20"`
}

// AuthorizeResponse 授权响应
type AuthorizeResponse struct {
	IdTagInfo IdTagInfo `json:"idTagInfo" validate:"required"`
}

// BootNotificationRequest 启动通知请求
type BootNotificationRequest struct {
	ChargePointVendor       string  `json:"chargePointVendor" validate:"required,max=20"`
	ChargePointModel        string  `json:"chargePointModel" validate:"required,max=20"`
	ChargePointSerialNumber *string `json:"chargePointSerialNumber,omitempty" validate:"omitempty,max=25"`
	ChargeBoxSerialNumber   *string `json:"chargeBoxSerialNumber,omitempty" validate:"omitempty,max=25"`
	FirmwareVersion         *string `json:"firmwareVersion,omitempty" validate:"omitempty,max=50"`
	Iccid                   *string `json:"iccid,omitempty" validate:"omitempty,max=20"`
	Imsi                    *string `json:"imsi,omitempty" validate:"omitempty,max=20"`
	MeterType               *string `json:"meterType,omitempty" validate:"omitempty,max=25"`
	MeterSerialNumber       *string `json:"meterSerialNumber,omitempty" validate:"omitempty,max=25"`
}

// BootNotificationResponse 启动通知响应
type BootNotificationResponse struct {
	Status      string   `json:"status" validate:"required"`
	CurrentTime DateTime `json:"currentTime" validate:"required"`
	Interval    int      `json:"interval" validate:"min=0"`
}

// DataTransferRequest 数据透传请求
type DataTransferRequest struct {
	VendorID  string  `json:"vendorId" validate:"required,max=255"`
	MessageID *string `json:"messageId,omitempty" validate:"omitempty,max=50"`
	Data      *string `json:"data,omitempty"`
}

// DataTransferResponse 数据透传响应
type DataTransferResponse struct {
	Status string  `json:"status" validate:"required"`
	Data   *string `json:"data,omitempty"`
}

// DiagnosticsStatusNotificationRequest 诊断状态通知请求
type DiagnosticsStatusNotificationRequest struct {
	Status string `json:"status" validate:"required"`
}

// DiagnosticsStatusNotificationResponse 诊断状态通知响应
type DiagnosticsStatusNotificationResponse struct{}

// FirmwareStatusNotificationRequest 固件状态通知请求
type FirmwareStatusNotificationRequest struct {
	Status string `json:"status" validate:"required"`
}

// FirmwareStatusNotificationResponse 固件状态通知响应
type FirmwareStatusNotificationResponse struct{}

// HeartbeatRequest 心跳请求
type HeartbeatRequest struct{}

// HeartbeatResponse 心跳响应
type HeartbeatResponse struct {
	CurrentTime DateTime `json:"currentTime" validate:"required"`
}

// MeterValuesRequest 电表读数上报请求
type MeterValuesRequest struct {
	ConnectorID   int          `json:"connectorId" validate:"min=0"`
	TransactionID *int         `json:"transactionId,omitempty"`
	MeterValue    []MeterValue `json:"meterValue" validate:"required,min=1,dive"`
}

// MeterValuesResponse 电表读数上报响应
type MeterValuesResponse struct{}

// StartTransactionRequest 开始交易请求
type StartTransactionRequest struct {
	ConnectorID   int      `json:"connectorId" validate:"min=1"`
	IdTag         string   `json:"idTag" validate:"required,max=20"`
	MeterStart    int      `json:"meterStart" validate:"min=0"`
	ReservationID *int     `json:"reservationId,omitempty"`
	Timestamp     DateTime `json:"timestamp" validate:"required"`
}

// StartTransactionResponse 开始交易响应
type StartTransactionResponse struct {
	IdTagInfo     IdTagInfo `json:"idTagInfo" validate:"required"`
	TransactionID int       `json:"transactionId"`
}

// StatusNotificationRequest 状态通知请求
type StatusNotificationRequest struct {
	ConnectorID     int       `json:"connectorId" validate:"min=0"`
	ErrorCode       string    `json:"errorCode" validate:"required"`
	Info            *string   `json:"info,omitempty" validate:"omitempty,max=50"`
	Status          string    `json:"status" validate:"required"`
	Timestamp       *DateTime `json:"timestamp,omitempty"`
	VendorID        *string   `json:"vendorId,omitempty" validate:"omitempty,max=255"`
	VendorErrorCode *string   `json:"vendorErrorCode,omitempty" validate:"omitempty,max=50"`
}

// StatusNotificationResponse 状态通知响应
type StatusNotificationResponse struct{}

// StopTransactionRequest 停止交易请求
type StopTransactionRequest struct {
	IdTag           *string      `json:"idTag,omitempty" validate:"omitempty,max=20"`
	MeterStop       int          `json:"meterStop" validate:"min=0"`
	Timestamp       DateTime     `json:"timestamp" validate:"required"`
	TransactionID   int          `json:"transactionId"`
	Reason          *string      `json:"reason,omitempty"`
	TransactionData []MeterValue `json:"transactionData,omitempty" validate:"omitempty,dive"`
}

// StopTransactionResponse 停止交易响应
type StopTransactionResponse struct {
	IdTagInfo *IdTagInfo `json:"idTagInfo,omitempty"`
}

// CancelReservationRequest 取消预约请求
type CancelReservationRequest struct {
	ReservationID int `json:"reservationId"`
}

// CancelReservationResponse 取消预约响应
type CancelReservationResponse struct {
	Status string `json:"status" validate:"required"`
}

// ChangeAvailabilityRequest 变更可用性请求
type ChangeAvailabilityRequest struct {
	ConnectorID int    `json:"connectorId" validate:"min=0"`
	Type        string `json:"type" validate:"required"`
}

// ChangeAvailabilityResponse 变更可用性响应
type ChangeAvailabilityResponse struct {
	Status string `json:"status" validate:"required"`
}

// ChangeConfigurationRequest 变更配置请求
type ChangeConfigurationRequest struct {
	Key   string `json:"key" validate:"required,max=50"`
	Value string `json:"value" validate:"required,max=500"`
}

// ChangeConfigurationResponse 变更配置响应
type ChangeConfigurationResponse struct {
	Status string `json:"status" validate:"required"`
}

// ClearCacheRequest 清除授权缓存请求
type ClearCacheRequest struct{}

// ClearCacheResponse 清除授权缓存响应
type ClearCacheResponse struct {
	Status string `json:"status" validate:"required"`
}

// ClearChargingProfileRequest 清除充电配置请求
type ClearChargingProfileRequest struct {
	ID                     *int    `json:"id,omitempty"`
	ConnectorID            *int    `json:"connectorId,omitempty" validate:"omitempty,min=0"`
	ChargingProfilePurpose *string `json:"chargingProfilePurpose,omitempty"`
	StackLevel             *int    `json:"stackLevel,omitempty" validate:"omitempty,min=0"`
}

// ClearChargingProfileResponse 清除充电配置响应
type ClearChargingProfileResponse struct {
	Status string `json:"status" validate:"required"`
}

// GetCompositeScheduleRequest 查询合成充电计划请求
type GetCompositeScheduleRequest struct {
	ConnectorID      int     `json:"connectorId" validate:"min=0"`
	Duration         int     `json:"duration" validate:"min=0"`
	ChargingRateUnit *string `json:"chargingRateUnit,omitempty"`
}

// GetCompositeScheduleResponse 查询合成充电计划响应
type GetCompositeScheduleResponse struct {
	Status           string            `json:"status" validate:"required"`
	ConnectorID      *int              `json:"connectorId,omitempty"`
	ScheduleStart    *DateTime         `json:"scheduleStart,omitempty"`
	ChargingSchedule *ChargingSchedule `json:"chargingSchedule,omitempty"`
}

// GetConfigurationRequest 查询配置请求
type GetConfigurationRequest struct {
	Key []string `json:"key,omitempty" validate:"omitempty,dive,max=50"`
}

// GetConfigurationResponse 查询配置响应
type GetConfigurationResponse struct {
	ConfigurationKey []KeyValue `json:"configurationKey,omitempty" validate:"omitempty,dive"`
	UnknownKey       []string   `json:"unknownKey,omitempty" validate:"omitempty,dive,max=50"`
}

// GetDiagnosticsRequest 获取诊断请求
type GetDiagnosticsRequest struct {
	Location      string    `json:"location" validate:"required"`
	StartTime     *DateTime `json:"startTime,omitempty"`
	StopTime      *DateTime `json:"stopTime,omitempty"`
	Retries       *int      `json:"retries,omitempty" validate:"omitempty,min=0"`
	RetryInterval *int      `json:"retryInterval,omitempty" validate:"omitempty,min=0"`
}

// GetDiagnosticsResponse 获取诊断响应
type GetDiagnosticsResponse struct {
	FileName *string `json:"fileName,omitempty" validate:"omitempty,max=255"`
}

// GetLocalListVersionRequest 查询本地授权列表版本请求
type GetLocalListVersionRequest struct{}

// GetLocalListVersionResponse 查询本地授权列表版本响应，-1表示不支持
type GetLocalListVersionResponse struct {
	ListVersion int `json:"listVersion"`
}

// RemoteStartTransactionRequest 远程开始交易请求
type RemoteStartTransactionRequest struct {
	ConnectorID     *int             `json:"connectorId,omitempty" validate:"omitempty,min=1"`
	IdTag           string           `json:"idTag" validate:"required,max=20"`
	ChargingProfile *ChargingProfile `json:"chargingProfile,omitempty"`
}

// RemoteStartTransactionResponse 远程开始交易响应
type RemoteStartTransactionResponse struct {
	Status string `json:"status" validate:"required"`
}

// RemoteStopTransactionRequest 远程停止交易请求
type RemoteStopTransactionRequest struct {
	TransactionID int `json:"transactionId"`
}

// RemoteStopTransactionResponse 远程停止交易响应
type RemoteStopTransactionResponse struct {
	Status string `json:"status" validate:"required"`
}

// ReserveNowRequest 预约请求
type ReserveNowRequest struct {
	ConnectorID   int      `json:"connectorId" validate:"min=0"`
	ExpiryDate    DateTime `json:"expiryDate" validate:"required"`
	IdTag         string   `json:"idTag" validate:"required,max=20"`
	ParentIdTag   *string  `json:"parentIdTag,omitempty" validate:"omitempty,max=20"`
	ReservationID int      `json:"reservationId"`
}

// ReserveNowResponse 预约响应
type ReserveNowResponse struct {
	Status string `json:"status" validate:"required"`
}

// ResetRequest 重置请求
type ResetRequest struct {
	Type string `json:"type" validate:"required"`
}

// ResetResponse 重置响应
type ResetResponse struct {
	Status string `json:"status" validate:"required"`
}

// SendLocalListRequest 下发本地授权列表请求
type SendLocalListRequest struct {
	ListVersion            int                 `json:"listVersion"`
	LocalAuthorisationList []AuthorisationData `json:"localAuthorisationList,omitempty" validate:"omitempty,dive"`
	UpdateType             string              `json:"updateType" validate:"required"`
}

// SendLocalListResponse 下发本地授权列表响应
type SendLocalListResponse struct {
	Status string `json:"status" validate:"required"`
}

// SetChargingProfileRequest 下发充电配置请求
type SetChargingProfileRequest struct {
	ConnectorID        int             `json:"connectorId" validate:"min=0"`
	CsChargingProfiles ChargingProfile `json:"csChargingProfiles" validate:"required"`
}

// SetChargingProfileResponse 下发充电配置响应
type SetChargingProfileResponse struct {
	Status string `json:"status" validate:"required"`
}

// TriggerMessageRequest 远程触发请求
type TriggerMessageRequest struct {
	RequestedMessage string `json:"requestedMessage" validate:"required"`
	ConnectorID      *int   `json:"connectorId,omitempty" validate:"omitempty,min=1"`
}

// TriggerMessageResponse 远程触发响应
type TriggerMessageResponse struct {
	Status string `json:"status" validate:"required"`
}

// UnlockConnectorRequest 解锁连接器请求
type UnlockConnectorRequest struct {
	ConnectorID int `json:"connectorId" validate:"min=1"`
}

// UnlockConnectorResponse 解锁连接器响应
type UnlockConnectorResponse struct {
	Status string `json:"status" validate:"required"`
}

// UpdateFirmwareRequest 固件升级请求
type UpdateFirmwareRequest struct {
	Location      string   `json:"location" validate:"required"`
	Retries       *int     `json:"retries,omitempty" validate:"omitempty,min=0"`
	RetrieveDate  DateTime `json:"retrieveDate" validate:"required"`
	RetryInterval *int     `json:"retryInterval,omitempty" validate:"omitempty,min=0"`
}

// UpdateFirmwareResponse 固件升级响应
type UpdateFirmwareResponse struct{}

// Action 实现

func (AuthorizeRequest) Action() string                      { return "Authorize" }
func (AuthorizeResponse) Action() string                     { return "Authorize" }
func (BootNotificationRequest) Action() string               { return "BootNotification" }
func (BootNotificationResponse) Action() string              { return "BootNotification" }
func (DataTransferRequest) Action() string                   { return "DataTransfer" }
func (DataTransferResponse) Action() string                  { return "DataTransfer" }
func (DiagnosticsStatusNotificationRequest) Action() string  { return "DiagnosticsStatusNotification" }
func (DiagnosticsStatusNotificationResponse) Action() string { return "DiagnosticsStatusNotification" }
func (FirmwareStatusNotificationRequest) Action() string     { return "FirmwareStatusNotification" }
func (FirmwareStatusNotificationResponse) Action() string    { return "FirmwareStatusNotification" }
func (HeartbeatRequest) Action() string                      { return "Heartbeat" }
func (HeartbeatResponse) Action() string                     { return "Heartbeat" }
func (MeterValuesRequest) Action() string                    { return "MeterValues" }
func (MeterValuesResponse) Action() string                   { return "MeterValues" }
func (StartTransactionRequest) Action() string               { return "StartTransaction" }
func (StartTransactionResponse) Action() string              { return "StartTransaction" }
func (StatusNotificationRequest) Action() string             { return "StatusNotification" }
func (StatusNotificationResponse) Action() string            { return "StatusNotification" }
func (StopTransactionRequest) Action() string                { return "StopTransaction" }
func (StopTransactionResponse) Action() string               { return "StopTransaction" }
func (CancelReservationRequest) Action() string              { return "CancelReservation" }
func (CancelReservationResponse) Action() string             { return "CancelReservation" }
func (ChangeAvailabilityRequest) Action() string             { return "ChangeAvailability" }
func (ChangeAvailabilityResponse) Action() string            { return "ChangeAvailability" }
func (ChangeConfigurationRequest) Action() string            { return "ChangeConfiguration" }
func (ChangeConfigurationResponse) Action() string           { return "ChangeConfiguration" }
func (ClearCacheRequest) Action() string                     { return "ClearCache" }
func (ClearCacheResponse) Action() string                    { return "ClearCache" }
func (ClearChargingProfileRequest) Action() string           { return "ClearChargingProfile" }
func (ClearChargingProfileResponse) Action() string          { return "ClearChargingProfile" }
func (GetCompositeScheduleRequest) Action() string           { return "GetCompositeSchedule" }
func (GetCompositeScheduleResponse) Action() string          { return "GetCompositeSchedule" }
func (GetConfigurationRequest) Action() string               { return "GetConfiguration" }
func (GetConfigurationResponse) Action() string              { return "GetConfiguration" }
func (GetDiagnosticsRequest) Action() string                 { return "GetDiagnostics" }
func (GetDiagnosticsResponse) Action() string                { return "GetDiagnostics" }
func (GetLocalListVersionRequest) Action() string            { return "GetLocalListVersion" }
func (GetLocalListVersionResponse) Action() string           { return "GetLocalListVersion" }
func (RemoteStartTransactionRequest) Action() string         { return "RemoteStartTransaction" }
func (RemoteStartTransactionResponse) Action() string        { return "RemoteStartTransaction" }
func (RemoteStopTransactionRequest) Action() string          { return "RemoteStopTransaction" }
func (RemoteStopTransactionResponse) Action() string         { return "RemoteStopTransaction" }
func (ReserveNowRequest) Action() string                     { return "ReserveNow" }
func (ReserveNowResponse) Action() string                    { return "ReserveNow" }
func (ResetRequest) Action() string                          { return "Reset" }
func (ResetResponse) Action() string                         { return "Reset" }
func (SendLocalListRequest) Action() string                  { return "SendLocalList" }
func (SendLocalListResponse) Action() string                 { return "SendLocalList" }
func (SetChargingProfileRequest) Action() string             { return "SetChargingProfile" }
func (SetChargingProfileResponse) Action() string            { return "SetChargingProfile" }
func (TriggerMessageRequest) Action() string                 { return "TriggerMessage" }
func (TriggerMessageResponse) Action() string                { return "TriggerMessage" }
func (UnlockConnectorRequest) Action() string                { return "UnlockConnector" }
func (UnlockConnectorResponse) Action() string               { return "UnlockConnector" }
func (UpdateFirmwareRequest) Action() string                 { return "UpdateFirmware" }
func (UpdateFirmwareResponse) Action() string                { return "UpdateFirmware" }

func (AuthorizeRequest) wireRequest()                     {}
func (BootNotificationRequest) wireRequest()              {}
func (DataTransferRequest) wireRequest()                  {}
func (DiagnosticsStatusNotificationRequest) wireRequest() {}
func (FirmwareStatusNotificationRequest) wireRequest()    {}
func (HeartbeatRequest) wireRequest()                     {}
func (MeterValuesRequest) wireRequest()                   {}
func (StartTransactionRequest) wireRequest()              {}
func (StatusNotificationRequest) wireRequest()            {}
func (StopTransactionRequest) wireRequest()               {}
func (CancelReservationRequest) wireRequest()             {}
func (ChangeAvailabilityRequest) wireRequest()            {}
func (ChangeConfigurationRequest) wireRequest()           {}
func (ClearCacheRequest) wireRequest()                    {}
func (ClearChargingProfileRequest) wireRequest()          {}
func (GetCompositeScheduleRequest) wireRequest()          {}
func (GetConfigurationRequest) wireRequest()              {}
func (GetDiagnosticsRequest) wireRequest()                {}
func (GetLocalListVersionRequest) wireRequest()           {}
func (RemoteStartTransactionRequest) wireRequest()        {}
func (RemoteStopTransactionRequest) wireRequest()         {}
func (ReserveNowRequest) wireRequest()                    {}
func (ResetRequest) wireRequest()                         {}
func (SendLocalListRequest) wireRequest()                 {}
func (SetChargingProfileRequest) wireRequest()            {}
func (TriggerMessageRequest) wireRequest()                {}
func (UnlockConnectorRequest) wireRequest()               {}
func (UpdateFirmwareRequest) wireRequest()                {}

func (AuthorizeResponse) wireResponse()                     {}
func (BootNotificationResponse) wireResponse()              {}
func (DataTransferResponse) wireResponse()                  {}
func (DiagnosticsStatusNotificationResponse) wireResponse() {}
func (FirmwareStatusNotificationResponse) wireResponse()    {}
func (HeartbeatResponse) wireResponse()                     {}
func (MeterValuesResponse) wireResponse()                   {}
func (StartTransactionResponse) wireResponse()              {}
func (StatusNotificationResponse) wireResponse()            {}
func (StopTransactionResponse) wireResponse()               {}
func (CancelReservationResponse) wireResponse()             {}
func (ChangeAvailabilityResponse) wireResponse()            {}
func (ChangeConfigurationResponse) wireResponse()           {}
func (ClearCacheResponse) wireResponse()                    {}
func (ClearChargingProfileResponse) wireResponse()          {}
func (GetCompositeScheduleResponse) wireResponse()          {}
func (GetConfigurationResponse) wireResponse()              {}
func (GetDiagnosticsResponse) wireResponse()                {}
func (GetLocalListVersionResponse) wireResponse()           {}
func (RemoteStartTransactionResponse) wireResponse()        {}
func (RemoteStopTransactionResponse) wireResponse()         {}
func (ReserveNowResponse) wireResponse()                    {}
func (ResetResponse) wireResponse()                         {}
func (SendLocalListResponse) wireResponse()                 {}
func (SetChargingProfileResponse) wireResponse()            {}
func (TriggerMessageResponse) wireResponse()                {}
func (UnlockConnectorResponse) wireResponse()               {}
func (UpdateFirmwareResponse) wireResponse()                {}
