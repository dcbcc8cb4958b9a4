// Package v16 实现域消息与OCPP-J 1.6线上记录之间的双向转换。
// 转换是纯函数：无I/O、无共享可变状态，可在任意多个goroutine间并发调用。
package v16

import (
	"fmt"
)

// UnrecognizedEnumValueError 线上字符串不在该枚举声明的映射表中
type UnrecognizedEnumValueError struct {
	Enum  string
	Value string
}

// Error 实现error接口
func (e UnrecognizedEnumValueError) Error() string {
	return fmt.Sprintf("unrecognized %s value %q", e.Enum, e.Value)
}

// InvalidAcceptanceStatusError 布尔语义状态字段既非"Accepted"也非"Rejected"
type InvalidAcceptanceStatusError struct {
	Value string
}

// Error 实现error接口
func (e InvalidAcceptanceStatusError) Error() string {
	return fmt.Sprintf("invalid acceptance status %q, want \"Accepted\" or \"Rejected\"", e.Value)
}

// InvalidURIError URI字段无法解析为合法URI
type InvalidURIError struct {
	Value string
	Cause error
}

// Error 实现error接口
func (e InvalidURIError) Error() string {
	return fmt.Sprintf("invalid URI %q: %v", e.Value, e.Cause)
}

// Unwrap 暴露底层解析错误
func (e InvalidURIError) Unwrap() error {
	return e.Cause
}

// MissingOccupiedReasonError Occupied状态缺少必填的占用原因，无法编码
type MissingOccupiedReasonError struct{}

// Error 实现error接口
func (e MissingOccupiedReasonError) Error() string {
	return "occupied charge point status requires an occupancy kind"
}

// UnsupportedMessageVariantError 域消息变体在该协议版本/方向下无线上编码
// 属有意拒绝而非遗漏，该消息应由外层信封处理
type UnsupportedMessageVariantError struct {
	Variant string
}

// Error 实现error接口
func (e UnsupportedMessageVariantError) Error() string {
	return fmt.Sprintf("message variant %s has no OCPP-J 1.6 encoding in this direction", e.Variant)
}

// UnrecognizedProfileKindError 充电配置类型字面量不在四个声明值之内
type UnrecognizedProfileKindError struct {
	Value string
}

// Error 实现error接口
func (e UnrecognizedProfileKindError) Error() string {
	return fmt.Sprintf("unrecognized charging profile kind %q", e.Value)
}
