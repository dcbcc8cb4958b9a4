package v16

import (
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
)

// EncodeCentralSystemRequest 将充电桩发往中央系统的域请求编码为线上记录。
// 中央系统方向的DataTransfer变体在本版本无线上编码，显式拒绝，
// 由外层信封转发处理。
func EncodeCentralSystemRequest(req message.CentralSystemRequest) (wire.Request, error) {
	switch r := req.(type) {
	case message.AuthorizeReq:
		return &wire.AuthorizeRequest{IdTag: r.IdTag}, nil

	case message.BootNotificationReq:
		return &wire.BootNotificationRequest{
			ChargePointVendor:       r.ChargePointVendor,
			ChargePointModel:        r.ChargePointModel,
			ChargePointSerialNumber: optString(r.ChargePointSerialNumber),
			ChargeBoxSerialNumber:   optString(r.ChargeBoxSerialNumber),
			FirmwareVersion:         optString(r.FirmwareVersion),
			Iccid:                   optString(r.Iccid),
			Imsi:                    optString(r.Imsi),
			MeterType:               optString(r.MeterType),
			MeterSerialNumber:       optString(r.MeterSerialNumber),
		}, nil

	case message.DiagnosticsStatusNotificationReq:
		return &wire.DiagnosticsStatusNotificationRequest{
			Status: diagnosticsStatusTable.wire(r.Status),
		}, nil

	case message.FirmwareStatusNotificationReq:
		return &wire.FirmwareStatusNotificationRequest{
			Status: firmwareStatusTable.wire(r.Status),
		}, nil

	case message.HeartbeatReq:
		return &wire.HeartbeatRequest{}, nil

	case message.MeterValuesReq:
		return &wire.MeterValuesRequest{
			ConnectorID:   r.Scope.ConnectorID(),
			TransactionID: r.TransactionID,
			MeterValue:    metersToWire(r.Meters),
		}, nil

	case message.StartTransactionReq:
		return &wire.StartTransactionRequest{
			ConnectorID:   r.Connector.ConnectorID(),
			IdTag:         r.IdTag,
			MeterStart:    r.MeterStart,
			ReservationID: r.ReservationID,
			Timestamp:     wire.NewDateTime(r.Timestamp),
		}, nil

	case message.StatusNotificationReq:
		status, errorCode, info, vendorErrorCode, err := statusToWire(r.Status)
		if err != nil {
			return nil, err
		}
		return &wire.StatusNotificationRequest{
			ConnectorID:     r.Scope.ConnectorID(),
			Status:          status,
			ErrorCode:       errorCode,
			Info:            info,
			Timestamp:       optDateTime(r.Timestamp),
			VendorID:        optString(r.VendorID),
			VendorErrorCode: vendorErrorCode,
		}, nil

	case message.StopTransactionReq:
		out := &wire.StopTransactionRequest{
			IdTag:           optString(r.IdTag),
			MeterStop:       r.MeterStop,
			Timestamp:       wire.NewDateTime(r.Timestamp),
			TransactionID:   r.TransactionID,
			TransactionData: metersToWire(r.Meters),
		}
		// 停止原因等于默认值Local时省略
		if r.Reason != message.ReasonLocal {
			s := stopReasonTable.wire(r.Reason)
			out.Reason = &s
		}
		return out, nil

	case message.DataTransferReq:
		return nil, UnsupportedMessageVariantError{Variant: "CentralSystemDataTransfer"}

	default:
		return nil, UnsupportedMessageVariantError{Variant: req.Action()}
	}
}

// DecodeCentralSystemRequest 将线上请求记录解码为域请求
func DecodeCentralSystemRequest(in wire.Request) (message.CentralSystemRequest, error) {
	switch r := in.(type) {
	case *wire.AuthorizeRequest:
		return message.AuthorizeReq{IdTag: r.IdTag}, nil

	case *wire.BootNotificationRequest:
		return message.BootNotificationReq{
			ChargePointVendor:       r.ChargePointVendor,
			ChargePointModel:        r.ChargePointModel,
			ChargePointSerialNumber: fromOptString(r.ChargePointSerialNumber),
			ChargeBoxSerialNumber:   fromOptString(r.ChargeBoxSerialNumber),
			FirmwareVersion:         fromOptString(r.FirmwareVersion),
			Iccid:                   fromOptString(r.Iccid),
			Imsi:                    fromOptString(r.Imsi),
			MeterType:               fromOptString(r.MeterType),
			MeterSerialNumber:       fromOptString(r.MeterSerialNumber),
		}, nil

	case *wire.DiagnosticsStatusNotificationRequest:
		status, err := diagnosticsStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.DiagnosticsStatusNotificationReq{Status: status}, nil

	case *wire.FirmwareStatusNotificationRequest:
		status, err := firmwareStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.FirmwareStatusNotificationReq{Status: status}, nil

	case *wire.HeartbeatRequest:
		return message.HeartbeatReq{}, nil

	case *wire.MeterValuesRequest:
		meters, err := metersFromWire(r.MeterValue)
		if err != nil {
			return nil, err
		}
		return message.MeterValuesReq{
			Scope:         message.ConnectorScope(r.ConnectorID),
			TransactionID: r.TransactionID,
			Meters:        meters,
		}, nil

	case *wire.StartTransactionRequest:
		return message.StartTransactionReq{
			Connector:     message.ConnectorScope(r.ConnectorID),
			IdTag:         r.IdTag,
			Timestamp:     r.Timestamp.Time,
			MeterStart:    r.MeterStart,
			ReservationID: r.ReservationID,
		}, nil

	case *wire.StatusNotificationRequest:
		status, err := statusFromWire(r.Status, r.ErrorCode, r.Info, r.VendorErrorCode)
		if err != nil {
			return nil, err
		}
		return message.StatusNotificationReq{
			Scope:     message.ConnectorScope(r.ConnectorID),
			Status:    status,
			Timestamp: fromOptDateTime(r.Timestamp),
			VendorID:  fromOptString(r.VendorID),
		}, nil

	case *wire.StopTransactionRequest:
		meters, err := metersFromWire(r.TransactionData)
		if err != nil {
			return nil, err
		}
		reason := message.ReasonLocal
		if r.Reason != nil {
			if reason, err = stopReasonTable.domain(*r.Reason); err != nil {
				return nil, err
			}
		}
		return message.StopTransactionReq{
			TransactionID: r.TransactionID,
			IdTag:         fromOptString(r.IdTag),
			Timestamp:     r.Timestamp.Time,
			MeterStop:     r.MeterStop,
			Reason:        reason,
			Meters:        meters,
		}, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: in.Action()}
	}
}

// EncodeCentralSystemResponse 将中央系统的域响应编码为线上记录
func EncodeCentralSystemResponse(res message.CentralSystemResponse) (wire.Response, error) {
	switch r := res.(type) {
	case message.AuthorizeRes:
		return &wire.AuthorizeResponse{IdTagInfo: idTagInfoToWire(r.IdTagInfo)}, nil

	case message.BootNotificationRes:
		return &wire.BootNotificationResponse{
			Status:      registrationStatusTable.wire(r.Status),
			CurrentTime: wire.NewDateTime(r.CurrentTime),
			Interval:    int(r.HeartbeatInterval.Seconds()),
		}, nil

	case message.DiagnosticsStatusNotificationRes:
		return &wire.DiagnosticsStatusNotificationResponse{}, nil

	case message.FirmwareStatusNotificationRes:
		return &wire.FirmwareStatusNotificationResponse{}, nil

	case message.HeartbeatRes:
		return &wire.HeartbeatResponse{CurrentTime: wire.NewDateTime(r.CurrentTime)}, nil

	case message.MeterValuesRes:
		return &wire.MeterValuesResponse{}, nil

	case message.StartTransactionRes:
		return &wire.StartTransactionResponse{
			IdTagInfo:     idTagInfoToWire(r.IdTagInfo),
			TransactionID: r.TransactionID,
		}, nil

	case message.StatusNotificationRes:
		return &wire.StatusNotificationResponse{}, nil

	case message.StopTransactionRes:
		return &wire.StopTransactionResponse{IdTagInfo: optIdTagInfoToWire(r.IdTagInfo)}, nil

	case message.DataTransferRes:
		return nil, UnsupportedMessageVariantError{Variant: "CentralSystemDataTransfer"}

	default:
		return nil, UnsupportedMessageVariantError{Variant: res.Action()}
	}
}

// DecodeCentralSystemResponse 将线上响应记录解码为域响应
func DecodeCentralSystemResponse(in wire.Response) (message.CentralSystemResponse, error) {
	switch r := in.(type) {
	case *wire.AuthorizeResponse:
		info, err := idTagInfoFromWire(r.IdTagInfo)
		if err != nil {
			return nil, err
		}
		return message.AuthorizeRes{IdTagInfo: info}, nil

	case *wire.BootNotificationResponse:
		status, err := registrationStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.BootNotificationRes{
			Status:            status,
			CurrentTime:       r.CurrentTime.Time,
			HeartbeatInterval: time.Duration(r.Interval) * time.Second,
		}, nil

	case *wire.DiagnosticsStatusNotificationResponse:
		return message.DiagnosticsStatusNotificationRes{}, nil

	case *wire.FirmwareStatusNotificationResponse:
		return message.FirmwareStatusNotificationRes{}, nil

	case *wire.HeartbeatResponse:
		return message.HeartbeatRes{CurrentTime: r.CurrentTime.Time}, nil

	case *wire.MeterValuesResponse:
		return message.MeterValuesRes{}, nil

	case *wire.StartTransactionResponse:
		info, err := idTagInfoFromWire(r.IdTagInfo)
		if err != nil {
			return nil, err
		}
		return message.StartTransactionRes{
			TransactionID: r.TransactionID,
			IdTagInfo:     info,
		}, nil

	case *wire.StatusNotificationResponse:
		return message.StatusNotificationRes{}, nil

	case *wire.StopTransactionResponse:
		info, err := optIdTagInfoFromWire(r.IdTagInfo)
		if err != nil {
			return nil, err
		}
		return message.StopTransactionRes{IdTagInfo: info}, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: in.Action()}
	}
}
