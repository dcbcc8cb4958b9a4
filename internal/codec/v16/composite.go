package v16

import (
	"net/url"
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
)

// noErrorCode 状态通知errorCode字段的线上哨兵值，表示无显式错误码
const noErrorCode = "NoError"

// 采样值各属性字段的默认值。五个默认策略相互独立：
// 编码时字段等于本字段默认值则省略，解码时缺省则回填本字段默认值。
// 相位无默认值，是单纯的可选字段。
const (
	defaultReadingContext = message.ReadingSamplePeriodic
	defaultValueFormat    = message.FormatRaw
	defaultMeasurand      = message.MeasurandEnergyActiveImportRegister
	defaultLocation       = message.LocationOutlet
	defaultUnit           = message.UnitWh
)

// ---- 通用辅助 ----

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fromOptString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optDateTime(t *time.Time) *wire.DateTime {
	if t == nil {
		return nil
	}
	dt := wire.NewDateTime(*t)
	return &dt
}

func fromOptDateTime(dt *wire.DateTime) *time.Time {
	if dt == nil {
		return nil
	}
	t := dt.Time
	return &t
}

func optSeconds(d *time.Duration) *int {
	if d == nil {
		return nil
	}
	sec := int(d.Seconds())
	return &sec
}

func fromOptSeconds(sec *int) *time.Duration {
	if sec == nil {
		return nil
	}
	d := time.Duration(*sec) * time.Second
	return &d
}

func optConnectorID(s *message.Scope) *int {
	if s == nil {
		return nil
	}
	id := s.ConnectorID()
	return &id
}

func fromOptConnectorID(id *int) *message.Scope {
	if id == nil {
		return nil
	}
	s := message.ConnectorScope(*id)
	return &s
}

// acceptanceToWire 布尔接受语义的线上编码
func acceptanceToWire(accepted bool) string {
	if accepted {
		return "Accepted"
	}
	return "Rejected"
}

// acceptanceFromWire 解析布尔接受语义，其它任何字符串均失败
func acceptanceFromWire(status string) (bool, error) {
	switch status {
	case "Accepted":
		return true, nil
	case "Rejected":
		return false, nil
	default:
		return false, InvalidAcceptanceStatusError{Value: status}
	}
}

// uriFromWire 解析URI字段，语法非法时返回InvalidURIError
func uriFromWire(value string) (*url.URL, error) {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return nil, InvalidURIError{Value: value, Cause: err}
	}
	return u, nil
}

// ---- IdTagInfo ----

func idTagInfoToWire(in message.IdTagInfo) wire.IdTagInfo {
	return wire.IdTagInfo{
		Status:      authorizationStatusTable.wire(in.Status),
		ExpiryDate:  optDateTime(in.ExpiryDate),
		ParentIdTag: optString(in.ParentIdTag),
	}
}

func idTagInfoFromWire(in wire.IdTagInfo) (message.IdTagInfo, error) {
	status, err := authorizationStatusTable.domain(in.Status)
	if err != nil {
		return message.IdTagInfo{}, err
	}
	return message.IdTagInfo{
		Status:      status,
		ExpiryDate:  fromOptDateTime(in.ExpiryDate),
		ParentIdTag: fromOptString(in.ParentIdTag),
	}, nil
}

func optIdTagInfoToWire(in *message.IdTagInfo) *wire.IdTagInfo {
	if in == nil {
		return nil
	}
	out := idTagInfoToWire(*in)
	return &out
}

func optIdTagInfoFromWire(in *wire.IdTagInfo) (*message.IdTagInfo, error) {
	if in == nil {
		return nil, nil
	}
	out, err := idTagInfoFromWire(*in)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- 电表读数 ----

func metersToWire(meters []message.Meter) []wire.MeterValue {
	if meters == nil {
		return nil
	}
	out := make([]wire.MeterValue, 0, len(meters))
	for _, m := range meters {
		out = append(out, meterToWire(m))
	}
	return out
}

func meterToWire(m message.Meter) wire.MeterValue {
	values := make([]wire.SampledValue, 0, len(m.Values))
	for _, v := range m.Values {
		values = append(values, sampledValueToWire(v))
	}
	return wire.MeterValue{
		Timestamp:    wire.NewDateTime(m.Timestamp),
		SampledValue: values,
	}
}

func metersFromWire(meters []wire.MeterValue) ([]message.Meter, error) {
	if meters == nil {
		return nil, nil
	}
	out := make([]message.Meter, 0, len(meters))
	for _, m := range meters {
		converted, err := meterFromWire(m)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func meterFromWire(m wire.MeterValue) (message.Meter, error) {
	values := make([]message.MeterValue, 0, len(m.SampledValue))
	for _, v := range m.SampledValue {
		converted, err := sampledValueFromWire(v)
		if err != nil {
			return message.Meter{}, err
		}
		values = append(values, converted)
	}
	return message.Meter{Timestamp: m.Timestamp.Time, Values: values}, nil
}

func sampledValueToWire(v message.MeterValue) wire.SampledValue {
	out := wire.SampledValue{Value: v.Value}
	if v.Context != defaultReadingContext {
		s := readingContextTable.wire(v.Context)
		out.Context = &s
	}
	if v.Format != defaultValueFormat {
		s := valueFormatTable.wire(v.Format)
		out.Format = &s
	}
	if v.Measurand != defaultMeasurand {
		s := measurandTable.wire(v.Measurand)
		out.Measurand = &s
	}
	if v.Phase != nil {
		s := phaseTable.wire(*v.Phase)
		out.Phase = &s
	}
	if v.Location != defaultLocation {
		s := locationTable.wire(v.Location)
		out.Location = &s
	}
	if v.Unit != defaultUnit {
		s := unitOfMeasureTable.wire(v.Unit)
		out.Unit = &s
	}
	return out
}

func sampledValueFromWire(v wire.SampledValue) (message.MeterValue, error) {
	out := message.MeterValue{
		Value:     v.Value,
		Context:   defaultReadingContext,
		Format:    defaultValueFormat,
		Measurand: defaultMeasurand,
		Location:  defaultLocation,
		Unit:      defaultUnit,
	}
	var err error
	if v.Context != nil {
		if out.Context, err = readingContextTable.domain(*v.Context); err != nil {
			return message.MeterValue{}, err
		}
	}
	if v.Format != nil {
		if out.Format, err = valueFormatTable.domain(*v.Format); err != nil {
			return message.MeterValue{}, err
		}
	}
	if v.Measurand != nil {
		if out.Measurand, err = measurandTable.domain(*v.Measurand); err != nil {
			return message.MeterValue{}, err
		}
	}
	if v.Phase != nil {
		phase, err := phaseTable.domain(*v.Phase)
		if err != nil {
			return message.MeterValue{}, err
		}
		out.Phase = &phase
	}
	if v.Location != nil {
		if out.Location, err = locationTable.domain(*v.Location); err != nil {
			return message.MeterValue{}, err
		}
	}
	if v.Unit != nil {
		if out.Unit, err = unitOfMeasureTable.domain(*v.Unit); err != nil {
			return message.MeterValue{}, err
		}
	}
	return out, nil
}

// ---- 充电配置 ----

// profileKindToWire 将域变体展开为四个字面量之一
func profileKindToWire(kind message.ChargingProfileKind, recurrency message.RecurrencyKind) (string, error) {
	switch kind {
	case message.KindAbsolute:
		return "Absolute", nil
	case message.KindRelative:
		return "Relative", nil
	case message.KindRecurring:
		switch recurrency {
		case message.RecurrencyDaily:
			return "Daily", nil
		case message.RecurrencyWeekly:
			return "Weekly", nil
		default:
			return "", UnrecognizedProfileKindError{Value: "Recurring"}
		}
	default:
		return "", UnrecognizedProfileKindError{Value: "Unknown"}
	}
}

// profileKindFromWire 解析四个字面量，其余一律失败
func profileKindFromWire(value string) (message.ChargingProfileKind, message.RecurrencyKind, error) {
	switch value {
	case "Absolute":
		return message.KindAbsolute, 0, nil
	case "Relative":
		return message.KindRelative, 0, nil
	case "Daily":
		return message.KindRecurring, message.RecurrencyDaily, nil
	case "Weekly":
		return message.KindRecurring, message.RecurrencyWeekly, nil
	default:
		return 0, 0, UnrecognizedProfileKindError{Value: value}
	}
}

func chargingProfileToWire(p message.ChargingProfile) (wire.ChargingProfile, error) {
	kind, err := profileKindToWire(p.Kind, p.Recurrency)
	if err != nil {
		return wire.ChargingProfile{}, err
	}
	return wire.ChargingProfile{
		ChargingProfileID:      p.ID,
		TransactionID:          p.TransactionID,
		StackLevel:             p.StackLevel,
		ChargingProfilePurpose: chargingProfilePurposeTable.wire(p.Purpose),
		ChargingProfileKind:    kind,
		ValidFrom:              optDateTime(p.ValidFrom),
		ValidTo:                optDateTime(p.ValidTo),
		ChargingSchedule:       chargingScheduleToWire(p.Schedule),
	}, nil
}

func chargingProfileFromWire(p wire.ChargingProfile) (message.ChargingProfile, error) {
	purpose, err := chargingProfilePurposeTable.domain(p.ChargingProfilePurpose)
	if err != nil {
		return message.ChargingProfile{}, err
	}
	kind, recurrency, err := profileKindFromWire(p.ChargingProfileKind)
	if err != nil {
		return message.ChargingProfile{}, err
	}
	schedule, err := chargingScheduleFromWire(p.ChargingSchedule)
	if err != nil {
		return message.ChargingProfile{}, err
	}
	return message.ChargingProfile{
		ID:            p.ChargingProfileID,
		TransactionID: p.TransactionID,
		StackLevel:    p.StackLevel,
		Purpose:       purpose,
		Kind:          kind,
		Recurrency:    recurrency,
		ValidFrom:     fromOptDateTime(p.ValidFrom),
		ValidTo:       fromOptDateTime(p.ValidTo),
		Schedule:      schedule,
	}, nil
}

func chargingScheduleToWire(s message.ChargingSchedule) wire.ChargingSchedule {
	periods := make([]wire.ChargingSchedulePeriod, 0, len(s.Periods))
	for _, p := range s.Periods {
		periods = append(periods, wire.ChargingSchedulePeriod{
			StartPeriod:  int(p.StartOffset.Seconds()),
			Limit:        p.Limit,
			NumberPhases: p.NumberPhases,
		})
	}
	return wire.ChargingSchedule{
		Duration:               optSeconds(s.Duration),
		StartSchedule:          optDateTime(s.StartsAt),
		ChargingRateUnit:       chargingRateUnitTable.wire(s.RateUnit),
		ChargingSchedulePeriod: periods,
		MinChargingRate:        s.MinChargingRate,
	}
}

func chargingScheduleFromWire(s wire.ChargingSchedule) (message.ChargingSchedule, error) {
	rateUnit, err := chargingRateUnitTable.domain(s.ChargingRateUnit)
	if err != nil {
		return message.ChargingSchedule{}, err
	}
	periods := make([]message.ChargingSchedulePeriod, 0, len(s.ChargingSchedulePeriod))
	for _, p := range s.ChargingSchedulePeriod {
		periods = append(periods, message.ChargingSchedulePeriod{
			StartOffset:  time.Duration(p.StartPeriod) * time.Second,
			Limit:        p.Limit,
			NumberPhases: p.NumberPhases,
		})
	}
	return message.ChargingSchedule{
		Duration:        fromOptSeconds(s.Duration),
		StartsAt:        fromOptDateTime(s.StartSchedule),
		RateUnit:        rateUnit,
		MinChargingRate: s.MinChargingRate,
		Periods:         periods,
	}, nil
}

func optChargingScheduleToWire(s *message.ChargingSchedule) *wire.ChargingSchedule {
	if s == nil {
		return nil
	}
	out := chargingScheduleToWire(*s)
	return &out
}

func optChargingScheduleFromWire(s *wire.ChargingSchedule) (*message.ChargingSchedule, error) {
	if s == nil {
		return nil, nil
	}
	out, err := chargingScheduleFromWire(*s)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- 本地授权列表 ----

func authorisationDataToWire(in message.AuthorisationData) wire.AuthorisationData {
	return wire.AuthorisationData{
		IdTag:     in.IdTag,
		IdTagInfo: optIdTagInfoToWire(in.IdTagInfo),
	}
}

// authorisationDataFromWire idTagInfo子记录的有无决定新增还是删除
func authorisationDataFromWire(in wire.AuthorisationData) (message.AuthorisationData, error) {
	info, err := optIdTagInfoFromWire(in.IdTagInfo)
	if err != nil {
		return message.AuthorisationData{}, err
	}
	return message.AuthorisationData{IdTag: in.IdTag, IdTagInfo: info}, nil
}

// listVersionToWire 不支持本地列表时编码为-1
func listVersionToWire(v message.AuthListVersion) int {
	if !v.Supported {
		return -1
	}
	return v.Version
}

// listVersionFromWire 任何负值均解码为不支持
func listVersionFromWire(v int) message.AuthListVersion {
	if v < 0 {
		return message.AuthListNotSupported
	}
	return message.AuthListSupported(v)
}

// ---- 充电桩状态分解 ----

// statusToWire 将状态变体分解为(status, errorCode, info, vendorErrorCode)。
// errorCode默认为哨兵值"NoError"，仅Faulted可携带显式错误码；
// Occupied缺少占用原因时编码失败。
func statusToWire(st message.ChargePointStatus) (status, errorCode string, info, vendorErrorCode *string, err error) {
	errorCode = noErrorCode
	switch s := st.(type) {
	case message.StatusAvailable:
		return "Available", errorCode, optString(s.Info), nil, nil
	case message.StatusOccupied:
		if s.Kind == 0 {
			return "", "", nil, nil, MissingOccupiedReasonError{}
		}
		return occupancyKindTable.wire(s.Kind), errorCode, optString(s.Info), nil, nil
	case message.StatusUnavailable:
		return "Unavailable", errorCode, optString(s.Info), nil, nil
	case message.StatusReserved:
		return "Reserved", errorCode, optString(s.Info), nil, nil
	case message.StatusFaulted:
		if s.ErrorCode != nil {
			errorCode = chargePointErrorCodeTable.wire(*s.ErrorCode)
		}
		return "Faulted", errorCode, optString(s.Info), optString(s.VendorErrorCode), nil
	default:
		return "", "", nil, nil, UnsupportedMessageVariantError{Variant: "ChargePointStatus"}
	}
}

// statusFromWire 从四个线上字段重组状态变体。
// "NoError"映射回"无显式错误码"，其它字符串经错误码映射表解析。
func statusFromWire(status, errorCode string, info, vendorErrorCode *string) (message.ChargePointStatus, error) {
	var code *message.ChargePointErrorCode
	if errorCode != noErrorCode {
		parsed, err := chargePointErrorCodeTable.domain(errorCode)
		if err != nil {
			return nil, err
		}
		code = &parsed
	}

	switch status {
	case "Available":
		return message.StatusAvailable{Info: fromOptString(info)}, nil
	case "Unavailable":
		return message.StatusUnavailable{Info: fromOptString(info)}, nil
	case "Reserved":
		return message.StatusReserved{Info: fromOptString(info)}, nil
	case "Faulted":
		return message.StatusFaulted{
			ErrorCode:       code,
			Info:            fromOptString(info),
			VendorErrorCode: fromOptString(vendorErrorCode),
		}, nil
	default:
		kind, err := occupancyKindTable.domain(status)
		if err != nil {
			return nil, UnrecognizedEnumValueError{Enum: "ChargePointStatus", Value: status}
		}
		return message.StatusOccupied{Kind: kind, Info: fromOptString(info)}, nil
	}
}

// ---- 远程触发目标 ----

// triggerToWire 触发目标编码；连接器标识仅随MeterValues与
// StatusNotification两个目标下发
func triggerToWire(req message.TriggerMessageReq) (string, *int) {
	name := messageTriggerTable.wire(req.Requested)
	switch req.Requested {
	case message.TriggerMeterValues, message.TriggerStatusNotification:
		return name, optConnectorID(req.Connector)
	default:
		return name, nil
	}
}

func triggerFromWire(requested string, connectorID *int) (message.TriggerMessageReq, error) {
	trigger, err := messageTriggerTable.domain(requested)
	if err != nil {
		return message.TriggerMessageReq{}, err
	}
	req := message.TriggerMessageReq{Requested: trigger}
	switch trigger {
	case message.TriggerMeterValues, message.TriggerStatusNotification:
		req.Connector = fromOptConnectorID(connectorID)
	}
	return req, nil
}
