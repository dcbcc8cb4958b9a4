package v16

// 按动作名创建线上记录实例的注册表。
// 构造函数表显式声明，不依赖反射推导动作到类型的对应关系。

var chargePointBoundRequests = map[string]func() Request{
	"CancelReservation":      func() Request { return &CancelReservationRequest{} },
	"ChangeAvailability":     func() Request { return &ChangeAvailabilityRequest{} },
	"ChangeConfiguration":    func() Request { return &ChangeConfigurationRequest{} },
	"ClearCache":             func() Request { return &ClearCacheRequest{} },
	"ClearChargingProfile":   func() Request { return &ClearChargingProfileRequest{} },
	"DataTransfer":           func() Request { return &DataTransferRequest{} },
	"GetCompositeSchedule":   func() Request { return &GetCompositeScheduleRequest{} },
	"GetConfiguration":       func() Request { return &GetConfigurationRequest{} },
	"GetDiagnostics":         func() Request { return &GetDiagnosticsRequest{} },
	"GetLocalListVersion":    func() Request { return &GetLocalListVersionRequest{} },
	"RemoteStartTransaction": func() Request { return &RemoteStartTransactionRequest{} },
	"RemoteStopTransaction":  func() Request { return &RemoteStopTransactionRequest{} },
	"ReserveNow":             func() Request { return &ReserveNowRequest{} },
	"Reset":                  func() Request { return &ResetRequest{} },
	"SendLocalList":          func() Request { return &SendLocalListRequest{} },
	"SetChargingProfile":     func() Request { return &SetChargingProfileRequest{} },
	"TriggerMessage":         func() Request { return &TriggerMessageRequest{} },
	"UnlockConnector":        func() Request { return &UnlockConnectorRequest{} },
	"UpdateFirmware":         func() Request { return &UpdateFirmwareRequest{} },
}

var chargePointBoundResponses = map[string]func() Response{
	"CancelReservation":      func() Response { return &CancelReservationResponse{} },
	"ChangeAvailability":     func() Response { return &ChangeAvailabilityResponse{} },
	"ChangeConfiguration":    func() Response { return &ChangeConfigurationResponse{} },
	"ClearCache":             func() Response { return &ClearCacheResponse{} },
	"ClearChargingProfile":   func() Response { return &ClearChargingProfileResponse{} },
	"DataTransfer":           func() Response { return &DataTransferResponse{} },
	"GetCompositeSchedule":   func() Response { return &GetCompositeScheduleResponse{} },
	"GetConfiguration":       func() Response { return &GetConfigurationResponse{} },
	"GetDiagnostics":         func() Response { return &GetDiagnosticsResponse{} },
	"GetLocalListVersion":    func() Response { return &GetLocalListVersionResponse{} },
	"RemoteStartTransaction": func() Response { return &RemoteStartTransactionResponse{} },
	"RemoteStopTransaction":  func() Response { return &RemoteStopTransactionResponse{} },
	"ReserveNow":             func() Response { return &ReserveNowResponse{} },
	"Reset":                  func() Response { return &ResetResponse{} },
	"SendLocalList":          func() Response { return &SendLocalListResponse{} },
	"SetChargingProfile":     func() Response { return &SetChargingProfileResponse{} },
	"TriggerMessage":         func() Response { return &TriggerMessageResponse{} },
	"UnlockConnector":        func() Response { return &UnlockConnectorResponse{} },
	"UpdateFirmware":         func() Response { return &UpdateFirmwareResponse{} },
}

// 中央系统方向不含DataTransfer：该方向的透传由外层信封按原始载荷
// 转发，不经过本编解码集
var centralSystemBoundRequests = map[string]func() Request{
	"Authorize":                     func() Request { return &AuthorizeRequest{} },
	"BootNotification":              func() Request { return &BootNotificationRequest{} },
	"DiagnosticsStatusNotification": func() Request { return &DiagnosticsStatusNotificationRequest{} },
	"FirmwareStatusNotification":    func() Request { return &FirmwareStatusNotificationRequest{} },
	"Heartbeat":                     func() Request { return &HeartbeatRequest{} },
	"MeterValues":                   func() Request { return &MeterValuesRequest{} },
	"StartTransaction":              func() Request { return &StartTransactionRequest{} },
	"StatusNotification":            func() Request { return &StatusNotificationRequest{} },
	"StopTransaction":               func() Request { return &StopTransactionRequest{} },
}

var centralSystemBoundResponses = map[string]func() Response{
	"Authorize":                     func() Response { return &AuthorizeResponse{} },
	"BootNotification":              func() Response { return &BootNotificationResponse{} },
	"DiagnosticsStatusNotification": func() Response { return &DiagnosticsStatusNotificationResponse{} },
	"FirmwareStatusNotification":    func() Response { return &FirmwareStatusNotificationResponse{} },
	"Heartbeat":                     func() Response { return &HeartbeatResponse{} },
	"MeterValues":                   func() Response { return &MeterValuesResponse{} },
	"StartTransaction":              func() Response { return &StartTransactionResponse{} },
	"StatusNotification":            func() Response { return &StatusNotificationResponse{} },
	"StopTransaction":               func() Response { return &StopTransactionResponse{} },
}

// CentralSystemBoundRequest 创建充电桩发往中央系统方向的请求记录
func CentralSystemBoundRequest(action string) (Request, bool) {
	ctor, ok := centralSystemBoundRequests[action]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// CentralSystemBoundResponse 创建中央系统返回的响应记录
func CentralSystemBoundResponse(action string) (Response, bool) {
	ctor, ok := centralSystemBoundResponses[action]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ChargePointBoundRequest 创建中央系统发往充电桩方向的请求记录
func ChargePointBoundRequest(action string) (Request, bool) {
	ctor, ok := chargePointBoundRequests[action]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ChargePointBoundResponse 创建充电桩返回的响应记录
func ChargePointBoundResponse(action string) (Response, bool) {
	ctor, ok := chargePointBoundResponses[action]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// CentralSystemActions 充电桩发往中央系统方向支持的动作列表
func CentralSystemActions() []string {
	return actionNames(centralSystemBoundRequests)
}

// ChargePointActions 中央系统发往充电桩方向支持的动作列表
func ChargePointActions() []string {
	return actionNames(chargePointBoundRequests)
}

func actionNames(m map[string]func() Request) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}
