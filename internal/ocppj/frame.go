// Package ocppj 实现OCPP-J消息信封的编解码。
// 线上帧为JSON数组：[2,id,action,payload]、[3,id,payload]、
// [4,id,errorCode,errorDescription,errorDetails]。
package ocppj

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// 消息类型
const (
	MessageTypeCall       = 2
	MessageTypeCallResult = 3
	MessageTypeCallError  = 4
)

// 标准错误码
const (
	ErrorNotImplemented       = "NotImplemented"
	ErrorNotSupported         = "NotSupported"
	ErrorInternalError        = "InternalError"
	ErrorProtocolError        = "ProtocolError"
	ErrorSecurityError        = "SecurityError"
	ErrorFormationViolation   = "FormationViolation"
	ErrorPropertyViolation    = "PropertyConstraintViolation"
	ErrorOccurrenceViolation  = "OccurrenceConstraintViolation"
	ErrorTypeViolation        = "TypeConstraintViolation"
	ErrorGenericError         = "GenericError"
)

// FramingError 信封编解码错误
type FramingError struct {
	Operation string
	Message   string
	Cause     error
}

// Error 实现error接口
func (e FramingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s (caused by: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap 返回底层错误
func (e FramingError) Unwrap() error { return e.Cause }

// Frame 任一类型的信封帧
type Frame interface {
	MessageType() int
	ID() string
}

// Call 请求帧
type Call struct {
	MessageID string
	Action    string
	Payload   json.RawMessage
}

// CallResult 响应帧
type CallResult struct {
	MessageID string
	Payload   json.RawMessage
}

// CallError 错误帧
type CallError struct {
	MessageID        string
	ErrorCode        string
	ErrorDescription string
	ErrorDetails     json.RawMessage
}

func (c Call) MessageType() int       { return MessageTypeCall }
func (c CallResult) MessageType() int { return MessageTypeCallResult }
func (c CallError) MessageType() int  { return MessageTypeCallError }

func (c Call) ID() string       { return c.MessageID }
func (c CallResult) ID() string { return c.MessageID }
func (c CallError) ID() string  { return c.MessageID }

// NewMessageID 生成消息ID
func NewMessageID() string {
	return uuid.NewString()
}

// Marshal 将帧编码为线上JSON数组
func Marshal(f Frame) ([]byte, error) {
	var message []interface{}

	switch frame := f.(type) {
	case Call:
		payload := frame.Payload
		if payload == nil {
			payload = json.RawMessage("{}")
		}
		message = []interface{}{MessageTypeCall, frame.MessageID, frame.Action, payload}
	case CallResult:
		payload := frame.Payload
		if payload == nil {
			payload = json.RawMessage("{}")
		}
		message = []interface{}{MessageTypeCallResult, frame.MessageID, payload}
	case CallError:
		details := frame.ErrorDetails
		if details == nil {
			details = json.RawMessage("{}")
		}
		message = []interface{}{MessageTypeCallError, frame.MessageID, frame.ErrorCode, frame.ErrorDescription, details}
	default:
		return nil, FramingError{
			Operation: "Marshal",
			Message:   fmt.Sprintf("Invalid message type: %d", f.MessageType()),
		}
	}

	data, err := json.Marshal(message)
	if err != nil {
		return nil, FramingError{
			Operation: "Marshal",
			Message:   "Failed to marshal JSON",
			Cause:     err,
		}
	}
	return data, nil
}

// Unmarshal 从线上JSON数组解码帧
func Unmarshal(data []byte) (Frame, error) {
	var message []json.RawMessage
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, FramingError{
			Operation: "Unmarshal",
			Message:   "Failed to unmarshal JSON array",
			Cause:     err,
		}
	}
	if len(message) < 3 {
		return nil, FramingError{
			Operation: "Unmarshal",
			Message:   "Message array too short",
		}
	}

	var msgType int
	if err := json.Unmarshal(message[0], &msgType); err != nil {
		return nil, FramingError{
			Operation: "Unmarshal",
			Message:   "Failed to parse message type",
			Cause:     err,
		}
	}

	var msgID string
	if err := json.Unmarshal(message[1], &msgID); err != nil {
		return nil, FramingError{
			Operation: "Unmarshal",
			Message:   "Failed to parse message ID",
			Cause:     err,
		}
	}

	switch msgType {
	case MessageTypeCall:
		if len(message) != 4 {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "Call message must have exactly 4 elements",
			}
		}
		var action string
		if err := json.Unmarshal(message[2], &action); err != nil {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "Failed to parse action",
				Cause:     err,
			}
		}
		return Call{MessageID: msgID, Action: action, Payload: message[3]}, nil

	case MessageTypeCallResult:
		if len(message) != 3 {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "CallResult message must have exactly 3 elements",
			}
		}
		return CallResult{MessageID: msgID, Payload: message[2]}, nil

	case MessageTypeCallError:
		if len(message) < 4 || len(message) > 5 {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "CallError message must have 4 or 5 elements",
			}
		}
		var errorCode string
		if err := json.Unmarshal(message[2], &errorCode); err != nil {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "Failed to parse error code",
				Cause:     err,
			}
		}
		var errorDescription string
		if err := json.Unmarshal(message[3], &errorDescription); err != nil {
			return nil, FramingError{
				Operation: "Unmarshal",
				Message:   "Failed to parse error description",
				Cause:     err,
			}
		}
		frame := CallError{
			MessageID:        msgID,
			ErrorCode:        errorCode,
			ErrorDescription: errorDescription,
		}
		if len(message) == 5 {
			frame.ErrorDetails = message[4]
		}
		return frame, nil

	default:
		return nil, FramingError{
			Operation: "Unmarshal",
			Message:   fmt.Sprintf("Invalid message type: %d", msgType),
		}
	}
}
