package v16

import (
	"time"

	"github.com/charging-platform/ocpp-codec/internal/domain/message"
	wire "github.com/charging-platform/ocpp-codec/internal/wire/v16"
)

// EncodeChargePointRequest 将中央系统发往充电桩的域请求编码为线上记录
func EncodeChargePointRequest(req message.ChargePointRequest) (wire.Request, error) {
	switch r := req.(type) {
	case message.CancelReservationReq:
		return &wire.CancelReservationRequest{ReservationID: r.ReservationID}, nil

	case message.ChangeAvailabilityReq:
		return &wire.ChangeAvailabilityRequest{
			ConnectorID: r.Scope.ConnectorID(),
			Type:        availabilityTypeTable.wire(r.Type),
		}, nil

	case message.ChangeConfigurationReq:
		return &wire.ChangeConfigurationRequest{Key: r.Key, Value: r.Value}, nil

	case message.ClearCacheReq:
		return &wire.ClearCacheRequest{}, nil

	case message.ClearChargingProfileReq:
		out := &wire.ClearChargingProfileRequest{
			ID:          r.ProfileID,
			ConnectorID: optConnectorID(r.Connector),
			StackLevel:  r.StackLevel,
		}
		if r.Purpose != nil {
			s := chargingProfilePurposeTable.wire(*r.Purpose)
			out.ChargingProfilePurpose = &s
		}
		return out, nil

	case message.DataTransferReq:
		return &wire.DataTransferRequest{
			VendorID:  r.VendorID,
			MessageID: optString(r.MessageID),
			Data:      r.Data,
		}, nil

	case message.GetCompositeScheduleReq:
		out := &wire.GetCompositeScheduleRequest{
			ConnectorID: r.Connector.ConnectorID(),
			Duration:    int(r.Duration.Seconds()),
		}
		if r.RateUnit != nil {
			s := chargingRateUnitTable.wire(*r.RateUnit)
			out.ChargingRateUnit = &s
		}
		return out, nil

	case message.GetConfigurationReq:
		return &wire.GetConfigurationRequest{Key: r.Keys}, nil

	case message.GetDiagnosticsReq:
		out := &wire.GetDiagnosticsRequest{
			StartTime:     optDateTime(r.StartTime),
			StopTime:      optDateTime(r.StopTime),
			Retries:       r.Retries,
			RetryInterval: optSeconds(r.RetryInterval),
		}
		if r.Location != nil {
			out.Location = r.Location.String()
		}
		return out, nil

	case message.GetLocalListVersionReq:
		return &wire.GetLocalListVersionRequest{}, nil

	case message.RemoteStartTransactionReq:
		out := &wire.RemoteStartTransactionRequest{
			IdTag:       r.IdTag,
			ConnectorID: optConnectorID(r.Connector),
		}
		if r.ChargingProfile != nil {
			profile, err := chargingProfileToWire(*r.ChargingProfile)
			if err != nil {
				return nil, err
			}
			out.ChargingProfile = &profile
		}
		return out, nil

	case message.RemoteStopTransactionReq:
		return &wire.RemoteStopTransactionRequest{TransactionID: r.TransactionID}, nil

	case message.ReserveNowReq:
		return &wire.ReserveNowRequest{
			ConnectorID:   r.Connector.ConnectorID(),
			ExpiryDate:    wire.NewDateTime(r.ExpiryDate),
			IdTag:         r.IdTag,
			ParentIdTag:   optString(r.ParentIdTag),
			ReservationID: r.ReservationID,
		}, nil

	case message.ResetReq:
		return &wire.ResetRequest{Type: resetTypeTable.wire(r.Type)}, nil

	case message.SendLocalListReq:
		entries := make([]wire.AuthorisationData, 0, len(r.LocalAuthorisationList))
		for _, entry := range r.LocalAuthorisationList {
			entries = append(entries, authorisationDataToWire(entry))
		}
		if len(entries) == 0 {
			entries = nil
		}
		return &wire.SendLocalListRequest{
			ListVersion:            listVersionToWire(r.ListVersion),
			LocalAuthorisationList: entries,
			UpdateType:             updateTypeTable.wire(r.UpdateType),
		}, nil

	case message.SetChargingProfileReq:
		profile, err := chargingProfileToWire(r.Profile)
		if err != nil {
			return nil, err
		}
		return &wire.SetChargingProfileRequest{
			ConnectorID:        r.Connector.ConnectorID(),
			CsChargingProfiles: profile,
		}, nil

	case message.TriggerMessageReq:
		requested, connectorID := triggerToWire(r)
		return &wire.TriggerMessageRequest{
			RequestedMessage: requested,
			ConnectorID:      connectorID,
		}, nil

	case message.UnlockConnectorReq:
		return &wire.UnlockConnectorRequest{ConnectorID: r.Connector.ConnectorID()}, nil

	case message.UpdateFirmwareReq:
		out := &wire.UpdateFirmwareRequest{
			Retries:       r.Retries,
			RetrieveDate:  wire.NewDateTime(r.RetrieveDate),
			RetryInterval: optSeconds(r.RetryInterval),
		}
		if r.Location != nil {
			out.Location = r.Location.String()
		}
		return out, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: req.Action()}
	}
}

// DecodeChargePointRequest 将线上请求记录解码为域请求
func DecodeChargePointRequest(in wire.Request) (message.ChargePointRequest, error) {
	switch r := in.(type) {
	case *wire.CancelReservationRequest:
		return message.CancelReservationReq{ReservationID: r.ReservationID}, nil

	case *wire.ChangeAvailabilityRequest:
		kind, err := availabilityTypeTable.domain(r.Type)
		if err != nil {
			return nil, err
		}
		return message.ChangeAvailabilityReq{
			Scope: message.ConnectorScope(r.ConnectorID),
			Type:  kind,
		}, nil

	case *wire.ChangeConfigurationRequest:
		return message.ChangeConfigurationReq{Key: r.Key, Value: r.Value}, nil

	case *wire.ClearCacheRequest:
		return message.ClearCacheReq{}, nil

	case *wire.ClearChargingProfileRequest:
		out := message.ClearChargingProfileReq{
			ProfileID:  r.ID,
			Connector:  fromOptConnectorID(r.ConnectorID),
			StackLevel: r.StackLevel,
		}
		if r.ChargingProfilePurpose != nil {
			purpose, err := chargingProfilePurposeTable.domain(*r.ChargingProfilePurpose)
			if err != nil {
				return nil, err
			}
			out.Purpose = &purpose
		}
		return out, nil

	case *wire.DataTransferRequest:
		return message.DataTransferReq{
			VendorID:  r.VendorID,
			MessageID: fromOptString(r.MessageID),
			Data:      r.Data,
		}, nil

	case *wire.GetCompositeScheduleRequest:
		out := message.GetCompositeScheduleReq{
			Connector: message.ConnectorScope(r.ConnectorID),
			Duration:  time.Duration(r.Duration) * time.Second,
		}
		if r.ChargingRateUnit != nil {
			unit, err := chargingRateUnitTable.domain(*r.ChargingRateUnit)
			if err != nil {
				return nil, err
			}
			out.RateUnit = &unit
		}
		return out, nil

	case *wire.GetConfigurationRequest:
		return message.GetConfigurationReq{Keys: r.Key}, nil

	case *wire.GetDiagnosticsRequest:
		location, err := uriFromWire(r.Location)
		if err != nil {
			return nil, err
		}
		return message.GetDiagnosticsReq{
			Location:      location,
			StartTime:     fromOptDateTime(r.StartTime),
			StopTime:      fromOptDateTime(r.StopTime),
			Retries:       r.Retries,
			RetryInterval: fromOptSeconds(r.RetryInterval),
		}, nil

	case *wire.GetLocalListVersionRequest:
		return message.GetLocalListVersionReq{}, nil

	case *wire.RemoteStartTransactionRequest:
		out := message.RemoteStartTransactionReq{
			IdTag:     r.IdTag,
			Connector: fromOptConnectorID(r.ConnectorID),
		}
		if r.ChargingProfile != nil {
			profile, err := chargingProfileFromWire(*r.ChargingProfile)
			if err != nil {
				return nil, err
			}
			out.ChargingProfile = &profile
		}
		return out, nil

	case *wire.RemoteStopTransactionRequest:
		return message.RemoteStopTransactionReq{TransactionID: r.TransactionID}, nil

	case *wire.ReserveNowRequest:
		return message.ReserveNowReq{
			Connector:     message.ConnectorScope(r.ConnectorID),
			ExpiryDate:    r.ExpiryDate.Time,
			IdTag:         r.IdTag,
			ParentIdTag:   fromOptString(r.ParentIdTag),
			ReservationID: r.ReservationID,
		}, nil

	case *wire.ResetRequest:
		kind, err := resetTypeTable.domain(r.Type)
		if err != nil {
			return nil, err
		}
		return message.ResetReq{Type: kind}, nil

	case *wire.SendLocalListRequest:
		updateType, err := updateTypeTable.domain(r.UpdateType)
		if err != nil {
			return nil, err
		}
		var entries []message.AuthorisationData
		for _, entry := range r.LocalAuthorisationList {
			converted, err := authorisationDataFromWire(entry)
			if err != nil {
				return nil, err
			}
			entries = append(entries, converted)
		}
		return message.SendLocalListReq{
			UpdateType:             updateType,
			ListVersion:            listVersionFromWire(r.ListVersion),
			LocalAuthorisationList: entries,
		}, nil

	case *wire.SetChargingProfileRequest:
		profile, err := chargingProfileFromWire(r.CsChargingProfiles)
		if err != nil {
			return nil, err
		}
		return message.SetChargingProfileReq{
			Connector: message.ConnectorScope(r.ConnectorID),
			Profile:   profile,
		}, nil

	case *wire.TriggerMessageRequest:
		req, err := triggerFromWire(r.RequestedMessage, r.ConnectorID)
		if err != nil {
			return nil, err
		}
		return req, nil

	case *wire.UnlockConnectorRequest:
		return message.UnlockConnectorReq{Connector: message.ConnectorScope(r.ConnectorID)}, nil

	case *wire.UpdateFirmwareRequest:
		location, err := uriFromWire(r.Location)
		if err != nil {
			return nil, err
		}
		return message.UpdateFirmwareReq{
			RetrieveDate:  r.RetrieveDate.Time,
			Location:      location,
			Retries:       r.Retries,
			RetryInterval: fromOptSeconds(r.RetryInterval),
		}, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: in.Action()}
	}
}

// EncodeChargePointResponse 将充电桩的域响应编码为线上记录。
// SendLocalList响应不携带版本hash：Accepted变体的hash在编码时丢弃，
// 解码不回填，该不对称为既有行为。
func EncodeChargePointResponse(res message.ChargePointResponse) (wire.Response, error) {
	switch r := res.(type) {
	case message.CancelReservationRes:
		return &wire.CancelReservationResponse{Status: acceptanceToWire(r.Accepted)}, nil

	case message.ChangeAvailabilityRes:
		return &wire.ChangeAvailabilityResponse{Status: availabilityStatusTable.wire(r.Status)}, nil

	case message.ChangeConfigurationRes:
		return &wire.ChangeConfigurationResponse{Status: configurationStatusTable.wire(r.Status)}, nil

	case message.ClearCacheRes:
		return &wire.ClearCacheResponse{Status: acceptanceToWire(r.Accepted)}, nil

	case message.ClearChargingProfileRes:
		return &wire.ClearChargingProfileResponse{Status: clearChargingProfileStatusTable.wire(r.Status)}, nil

	case message.DataTransferRes:
		return &wire.DataTransferResponse{
			Status: dataTransferStatusTable.wire(r.Status),
			Data:   r.Data,
		}, nil

	case message.GetCompositeScheduleRes:
		return &wire.GetCompositeScheduleResponse{
			Status:           compositeScheduleStatusTable.wire(r.Status),
			ConnectorID:      optConnectorID(r.Connector),
			ScheduleStart:    optDateTime(r.ScheduleStart),
			ChargingSchedule: optChargingScheduleToWire(r.Schedule),
		}, nil

	case message.GetConfigurationRes:
		values := make([]wire.KeyValue, 0, len(r.Values))
		for _, kv := range r.Values {
			values = append(values, wire.KeyValue{Key: kv.Key, Readonly: kv.ReadOnly, Value: kv.Value})
		}
		if len(values) == 0 {
			values = nil
		}
		return &wire.GetConfigurationResponse{
			ConfigurationKey: values,
			UnknownKey:       r.UnknownKeys,
		}, nil

	case message.GetDiagnosticsRes:
		return &wire.GetDiagnosticsResponse{FileName: optString(r.FileName)}, nil

	case message.GetLocalListVersionRes:
		return &wire.GetLocalListVersionResponse{ListVersion: listVersionToWire(r.Version)}, nil

	case message.RemoteStartTransactionRes:
		return &wire.RemoteStartTransactionResponse{Status: acceptanceToWire(r.Accepted)}, nil

	case message.RemoteStopTransactionRes:
		return &wire.RemoteStopTransactionResponse{Status: acceptanceToWire(r.Accepted)}, nil

	case message.ReserveNowRes:
		return &wire.ReserveNowResponse{Status: reservationStatusTable.wire(r.Status)}, nil

	case message.ResetRes:
		return &wire.ResetResponse{Status: acceptanceToWire(r.Accepted)}, nil

	case message.SendLocalListRes:
		return &wire.SendLocalListResponse{Status: updateStatusTable.wire(r.Status.Status)}, nil

	case message.SetChargingProfileRes:
		return &wire.SetChargingProfileResponse{Status: chargingProfileStatusTable.wire(r.Status)}, nil

	case message.TriggerMessageRes:
		return &wire.TriggerMessageResponse{Status: triggerMessageStatusTable.wire(r.Status)}, nil

	case message.UnlockConnectorRes:
		return &wire.UnlockConnectorResponse{Status: unlockStatusTable.wire(r.Status)}, nil

	case message.UpdateFirmwareRes:
		return &wire.UpdateFirmwareResponse{}, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: res.Action()}
	}
}

// DecodeChargePointResponse 将线上响应记录解码为域响应
func DecodeChargePointResponse(in wire.Response) (message.ChargePointResponse, error) {
	switch r := in.(type) {
	case *wire.CancelReservationResponse:
		accepted, err := acceptanceFromWire(r.Status)
		if err != nil {
			return nil, err
		}
		return message.CancelReservationRes{Accepted: accepted}, nil

	case *wire.ChangeAvailabilityResponse:
		status, err := availabilityStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ChangeAvailabilityRes{Status: status}, nil

	case *wire.ChangeConfigurationResponse:
		status, err := configurationStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ChangeConfigurationRes{Status: status}, nil

	case *wire.ClearCacheResponse:
		accepted, err := acceptanceFromWire(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ClearCacheRes{Accepted: accepted}, nil

	case *wire.ClearChargingProfileResponse:
		status, err := clearChargingProfileStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ClearChargingProfileRes{Status: status}, nil

	case *wire.DataTransferResponse:
		status, err := dataTransferStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.DataTransferRes{Status: status, Data: r.Data}, nil

	case *wire.GetCompositeScheduleResponse:
		status, err := compositeScheduleStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		schedule, err := optChargingScheduleFromWire(r.ChargingSchedule)
		if err != nil {
			return nil, err
		}
		return message.GetCompositeScheduleRes{
			Status:        status,
			Connector:     fromOptConnectorID(r.ConnectorID),
			ScheduleStart: fromOptDateTime(r.ScheduleStart),
			Schedule:      schedule,
		}, nil

	case *wire.GetConfigurationResponse:
		var values []message.KeyValue
		for _, kv := range r.ConfigurationKey {
			values = append(values, message.KeyValue{Key: kv.Key, ReadOnly: kv.Readonly, Value: kv.Value})
		}
		return message.GetConfigurationRes{
			Values:      values,
			UnknownKeys: r.UnknownKey,
		}, nil

	case *wire.GetDiagnosticsResponse:
		return message.GetDiagnosticsRes{FileName: fromOptString(r.FileName)}, nil

	case *wire.GetLocalListVersionResponse:
		return message.GetLocalListVersionRes{Version: listVersionFromWire(r.ListVersion)}, nil

	case *wire.RemoteStartTransactionResponse:
		accepted, err := acceptanceFromWire(r.Status)
		if err != nil {
			return nil, err
		}
		return message.RemoteStartTransactionRes{Accepted: accepted}, nil

	case *wire.RemoteStopTransactionResponse:
		accepted, err := acceptanceFromWire(r.Status)
		if err != nil {
			return nil, err
		}
		return message.RemoteStopTransactionRes{Accepted: accepted}, nil

	case *wire.ReserveNowResponse:
		status, err := reservationStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ReserveNowRes{Status: status}, nil

	case *wire.ResetResponse:
		accepted, err := acceptanceFromWire(r.Status)
		if err != nil {
			return nil, err
		}
		return message.ResetRes{Accepted: accepted}, nil

	case *wire.SendLocalListResponse:
		status, err := updateStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.SendLocalListRes{Status: message.UpdateStatus{Status: status}}, nil

	case *wire.SetChargingProfileResponse:
		status, err := chargingProfileStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.SetChargingProfileRes{Status: status}, nil

	case *wire.TriggerMessageResponse:
		status, err := triggerMessageStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.TriggerMessageRes{Status: status}, nil

	case *wire.UnlockConnectorResponse:
		status, err := unlockStatusTable.domain(r.Status)
		if err != nil {
			return nil, err
		}
		return message.UnlockConnectorRes{Status: status}, nil

	case *wire.UpdateFirmwareResponse:
		return message.UpdateFirmwareRes{}, nil

	default:
		return nil, UnsupportedMessageVariantError{Variant: in.Action()}
	}
}
