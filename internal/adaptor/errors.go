package adaptor

import (
	"errors"
	"net/http"

	"cab-dispatch/internal/notify"
	"cab-dispatch/internal/usecase"
	"cab-dispatch/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps use case errors onto HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidArgument):
		log.Warn("Invalid input for "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err), zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, notify.ErrDisabled):
		log.Warn(operation+" failed - channel disabled", zap.Error(err), zap.String("operation", operation))
		utils.ResponseServiceUnavailable(w, "Notification channel is not configured")

	default:
		log.Error(operation+" failed", zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
