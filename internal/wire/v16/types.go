// Package v16 定义OCPP-J 1.6的线上记录。
// 所有字段均为JSON原语、可选原语或嵌套线上记录，不携带域枚举、
// 时长或URI类型；与域模型的互转由codec/v16完成。
package v16

import (
	"time"
)

// DateTime 线上时间戳，序列化为ISO-8601字符串
type DateTime struct {
	time.Time
}

// NewDateTime 构造线上时间戳
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// MarshalJSON 实现JSON序列化
func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Time.Format(time.RFC3339) + `"`), nil
}

// UnmarshalJSON 实现JSON反序列化
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" {
		return nil
	}
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return err
	}
	dt.Time = t
	return nil
}

// IdTagInfo 授权结果
type IdTagInfo struct {
	Status      string    `json:"status" validate:"required"`
	ExpiryDate  *DateTime `json:"expiryDate,omitempty"`
	ParentIdTag *string   `json:"parentIdTag,omitempty" validate:"omitempty,max=20"`
}

// MeterValue 一次电表读数
type MeterValue struct {
	Timestamp    DateTime       `json:"timestamp" validate:"required"`
	SampledValue []SampledValue `json:"sampledValue" validate:"required,min=1,dive"`
}

// SampledValue 单个采样值，属性字段等于默认值时整体省略
type SampledValue struct {
	Value     string  `json:"value" validate:"required"`
	Context   *string `json:"context,omitempty"`
	Format    *string `json:"format,omitempty"`
	Measurand *string `json:"measurand,omitempty"`
	Phase     *string `json:"phase,omitempty"`
	Location  *string `json:"location,omitempty"`
	Unit      *string `json:"unit,omitempty"`
}

// KeyValue 配置项
type KeyValue struct {
	Key      string  `json:"key" validate:"required,max=50"`
	Readonly bool    `json:"readonly"`
	Value    *string `json:"value,omitempty" validate:"omitempty,max=500"`
}

// ChargingProfile 充电配置
// chargingProfileKind取四个字面量之一："Absolute"、"Relative"、
// "Daily"、"Weekly"，后两者在域模型中折叠为带重复周期参数的单一变体
type ChargingProfile struct {
	ChargingProfileID      int              `json:"chargingProfileId"`
	TransactionID          *int             `json:"transactionId,omitempty"`
	StackLevel             int              `json:"stackLevel" validate:"min=0"`
	ChargingProfilePurpose string           `json:"chargingProfilePurpose" validate:"required"`
	ChargingProfileKind    string           `json:"chargingProfileKind" validate:"required"`
	ValidFrom              *DateTime        `json:"validFrom,omitempty"`
	ValidTo                *DateTime        `json:"validTo,omitempty"`
	ChargingSchedule       ChargingSchedule `json:"chargingSchedule" validate:"required"`
}

// ChargingSchedule 充电计划，时长为整数秒
type ChargingSchedule struct {
	Duration               *int                     `json:"duration,omitempty" validate:"omitempty,min=0"`
	StartSchedule          *DateTime                `json:"startSchedule,omitempty"`
	ChargingRateUnit       string                   `json:"chargingRateUnit" validate:"required"`
	ChargingSchedulePeriod []ChargingSchedulePeriod `json:"chargingSchedulePeriod" validate:"required,min=1,dive"`
	MinChargingRate        *float64                 `json:"minChargingRate,omitempty"`
}

// ChargingSchedulePeriod 充电计划区段，起始偏移为整数秒
type ChargingSchedulePeriod struct {
	StartPeriod  int     `json:"startPeriod" validate:"min=0"`
	Limit        float64 `json:"limit"`
	NumberPhases *int    `json:"numberPhases,omitempty" validate:"omitempty,min=1,max=3"`
}

// AuthorisationData 本地授权列表条目，idTagInfo缺省表示删除
type AuthorisationData struct {
	IdTag     string     `json:"idTag" validate:"required,max=20"`
	IdTagInfo *IdTagInfo `json:"idTagInfo,omitempty"`
}
