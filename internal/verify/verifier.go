// Package verify 实现OCPP-J帧的回放校验：
// 解码为域消息后重新编码，与原始载荷逐字段比对。
package verify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	codec "github.com/charging-platform/ocpp-codec/internal/codec/v16"
	"github.com/charging-platform/ocpp-codec/internal/logger"
	"github.com/charging-platform/ocpp-codec/internal/metrics"
	"github.com/charging-platform/ocpp-codec/internal/ocppj"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
)

// Direction 校验方向
type Direction string

const (
	// DirectionChargePoint 中央系统发往充电桩的消息流
	DirectionChargePoint Direction = "chargepoint"
	// DirectionCentralSystem 充电桩发往中央系统的消息流
	DirectionCentralSystem Direction = "centralsystem"
)

// Outcome 单帧校验结果
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeMismatch  Outcome = "mismatch"
	OutcomeInvalid   Outcome = "invalid"
	OutcomeUnmatched Outcome = "unmatched"
	OutcomeSkipped   Outcome = "skipped"
)

// Config 校验器配置
type Config struct {
	Direction Direction
	Strict    bool
}

// Verifier 帧回放校验器
type Verifier struct {
	config    Config
	log       *logger.Logger
	validator *wire.Validator

	// 已见Call的消息ID到action的映射，用于解析后续CallResult
	pending map[string]string

	stats Stats
}

// Stats 累计统计
type Stats struct {
	Total      int `json:"total"`
	OK         int `json:"ok"`
	Mismatched int `json:"mismatched"`
	Invalid    int `json:"invalid"`
	Unmatched  int `json:"unmatched"`
	Skipped    int `json:"skipped"`
}

// New 创建校验器
func New(config Config, log *logger.Logger) *Verifier {
	return &Verifier{
		config:    config,
		log:       log,
		validator: wire.NewValidator(),
		pending:   make(map[string]string),
	}
}

// Stats 返回当前统计快照
func (v *Verifier) Stats() Stats {
	return v.stats
}

// VerifyLine 校验一行OCPP-J帧，返回该帧的结果
func (v *Verifier) VerifyLine(line []byte) Outcome {
	v.stats.Total++

	frame, err := ocppj.Unmarshal(line)
	if err != nil {
		v.stats.Invalid++
		v.log.ErrorWithErr(err, "Failed to parse frame")
		metrics.FramesProcessed.WithLabelValues(string(v.config.Direction), string(OutcomeInvalid)).Inc()
		return OutcomeInvalid
	}

	var outcome Outcome
	switch f := frame.(type) {
	case ocppj.Call:
		outcome = v.verifyCall(f)
	case ocppj.CallResult:
		outcome = v.verifyCallResult(f)
	case ocppj.CallError:
		// 错误帧不承载业务载荷
		v.stats.Skipped++
		outcome = OutcomeSkipped
	}

	metrics.FramesProcessed.WithLabelValues(string(v.config.Direction), string(outcome)).Inc()
	return outcome
}

func (v *Verifier) verifyCall(call ocppj.Call) Outcome {
	start := time.Now()
	defer func() {
		metrics.FrameProcessingDuration.WithLabelValues(call.Action).Observe(time.Since(start).Seconds())
	}()

	record, ok := v.lookupRequest(call.Action)
	if !ok {
		v.stats.Unmatched++
		v.log.Warnf("Unknown action %s for %s direction", call.Action, v.config.Direction)
		return OutcomeUnmatched
	}

	if err := json.Unmarshal(call.Payload, record); err != nil {
		return v.fail(call.Action, "payload", err)
	}
	if v.config.Strict {
		if err := v.validator.ValidateRequest(record); err != nil {
			return v.fail(call.Action, "validation", err)
		}
	}

	reencoded, err := v.roundTripRequest(record)
	if err != nil {
		return v.fail(call.Action, failureKind(err), err)
	}

	v.pending[call.MessageID] = call.Action
	return v.compare(call.Action, call.Payload, reencoded)
}

func (v *Verifier) verifyCallResult(result ocppj.CallResult) Outcome {
	action, ok := v.pending[result.MessageID]
	if !ok {
		v.stats.Unmatched++
		v.log.Warnf("CallResult %s has no matching Call", result.MessageID)
		return OutcomeUnmatched
	}
	delete(v.pending, result.MessageID)

	start := time.Now()
	defer func() {
		metrics.FrameProcessingDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	}()

	record, ok := v.lookupResponse(action)
	if !ok {
		v.stats.Unmatched++
		return OutcomeUnmatched
	}

	if err := json.Unmarshal(result.Payload, record); err != nil {
		return v.fail(action, "payload", err)
	}
	if v.config.Strict {
		if err := v.validator.ValidateResponse(record); err != nil {
			return v.fail(action, "validation", err)
		}
	}

	reencoded, err := v.roundTripResponse(record)
	if err != nil {
		return v.fail(action, failureKind(err), err)
	}

	return v.compare(action, result.Payload, reencoded)
}

// lookupRequest 按方向解析action对应的线上请求记录。
// 响应帧的流向与请求帧相反：发往充电桩的Call对应充电桩回应的CallResult。
func (v *Verifier) lookupRequest(action string) (wire.Request, bool) {
	if v.config.Direction == DirectionChargePoint {
		return wire.ChargePointBoundRequest(action)
	}
	return wire.CentralSystemBoundRequest(action)
}

func (v *Verifier) lookupResponse(action string) (wire.Response, bool) {
	if v.config.Direction == DirectionChargePoint {
		return wire.ChargePointBoundResponse(action)
	}
	return wire.CentralSystemBoundResponse(action)
}

func (v *Verifier) roundTripRequest(record wire.Request) (wire.Request, error) {
	if v.config.Direction == DirectionChargePoint {
		decoded, err := codec.DecodeChargePointRequest(record)
		if err != nil {
			return nil, err
		}
		return codec.EncodeChargePointRequest(decoded)
	}
	decoded, err := codec.DecodeCentralSystemRequest(record)
	if err != nil {
		return nil, err
	}
	return codec.EncodeCentralSystemRequest(decoded)
}

func (v *Verifier) roundTripResponse(record wire.Response) (wire.Response, error) {
	if v.config.Direction == DirectionChargePoint {
		decoded, err := codec.DecodeChargePointResponse(record)
		if err != nil {
			return nil, err
		}
		return codec.EncodeChargePointResponse(decoded)
	}
	decoded, err := codec.DecodeCentralSystemResponse(record)
	if err != nil {
		return nil, err
	}
	return codec.EncodeCentralSystemResponse(decoded)
}

// compare 对原始载荷与重编码载荷做规范化JSON比对
func (v *Verifier) compare(action string, original json.RawMessage, reencoded interface{}) Outcome {
	got, err := json.Marshal(reencoded)
	if err != nil {
		return v.fail(action, "marshal", err)
	}
	want, err := canonicalize(original)
	if err != nil {
		return v.fail(action, "payload", err)
	}
	gotCanonical, err := canonicalize(got)
	if err != nil {
		return v.fail(action, "marshal", err)
	}

	if !bytes.Equal(want, gotCanonical) {
		v.stats.Mismatched++
		v.log.Warnf("Round-trip mismatch for %s: original %s, reencoded %s", action, want, gotCanonical)
		metrics.RoundTripMismatches.WithLabelValues(action).Inc()
		return OutcomeMismatch
	}

	v.stats.OK++
	return OutcomeOK
}

func (v *Verifier) fail(action, kind string, err error) Outcome {
	v.stats.Invalid++
	v.log.ErrorWithErr(err, fmt.Sprintf("Failed to verify %s payload", action))
	metrics.DecodeFailures.WithLabelValues(action, kind).Inc()
	return OutcomeInvalid
}

// failureKind 将编解码失败归入指标标签
func failureKind(err error) string {
	var enumErr codec.UnrecognizedEnumValueError
	var acceptErr codec.InvalidAcceptanceStatusError
	var uriErr codec.InvalidURIError
	var occupiedErr codec.MissingOccupiedReasonError
	var variantErr codec.UnsupportedMessageVariantError
	var kindErr codec.UnrecognizedProfileKindError

	switch {
	case errors.As(err, &enumErr):
		return "enum"
	case errors.As(err, &acceptErr):
		return "acceptance"
	case errors.As(err, &uriErr):
		return "uri"
	case errors.As(err, &occupiedErr):
		return "occupied"
	case errors.As(err, &variantErr):
		return "variant"
	case errors.As(err, &kindErr):
		return "profile_kind"
	default:
		return "other"
	}
}

// canonicalize 以确定的键序重排JSON对象
func canonicalize(data []byte) ([]byte, error) {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return json.Marshal(value)
}
