package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/notify"
	"cab-dispatch/internal/usecase"
	"cab-dispatch/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// SendSMS handles POST /api/notifications/sms
func (h *NotificationHandler) SendSMS(w http.ResponseWriter, r *http.Request) {
	var req request.SendSMSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendSMS(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrInvalidArgument) || errors.Is(err, notify.ErrDisabled) {
			handleServiceError(w, h.log, err, "send sms")
			return
		}
		h.log.Error("SMS gateway rejected message", zap.Error(err))
		utils.ResponseBadGateway(w, "Failed to send SMS")
		return
	}

	utils.ResponseAccepted(w, "SMS sent", nil)
}
