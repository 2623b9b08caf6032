package wire

import (
	"errors"

	"cab-dispatch/internal/adaptor"
	"cab-dispatch/internal/notify"
	"cab-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(r chi.Router, notificationHandler *adaptor.NotificationHandler) {
	// POST /api/notifications/sms - ad-hoc SMS
	r.Post("/api/notifications/sms", notificationHandler.SendSMS)
}

// wireNotifications builds the confirmation fan-out (email, SMS, Telegram)
// and the standalone SMS sink. Unconfigured channels are skipped; a nil
// sink means the channel is off.
func wireNotifications(config *utils.Config, logger *zap.Logger) (confirm, sms notify.Sink) {
	multi := notify.NewMulti(logger)

	if email, err := notify.NewEmailSink(config.Email); err == nil {
		multi.Add("email", email)
	} else {
		logSkipped(logger, "email", err)
	}

	if smsSink, err := notify.NewSMSSink(config.SMS); err == nil {
		multi.Add("sms", smsSink)
		sms = smsSink
	} else {
		logSkipped(logger, "sms", err)
	}

	if tg, err := notify.NewTelegramSink(config.Telegram.Token, config.Telegram.ChatID); err == nil {
		multi.Add("telegram", tg)
	} else {
		logSkipped(logger, "telegram", err)
	}

	if multi.Len() > 0 {
		confirm = multi
	}
	return confirm, sms
}

func logSkipped(logger *zap.Logger, channel string, err error) {
	if errors.Is(err, notify.ErrDisabled) {
		logger.Info("Notification channel not configured", zap.String("channel", channel))
		return
	}
	logger.Warn("Notification channel unavailable", zap.String("channel", channel), zap.Error(err))
}
