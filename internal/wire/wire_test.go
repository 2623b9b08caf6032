package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cab-dispatch/internal/data/repository"
	"cab-dispatch/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Relay:  utils.RelayConfig{SubscriberBuffer: 4},
		Notify: utils.NotifyConfig{Timeout: time.Second},
	}
}

func TestWiring_WithoutKafka(t *testing.T) {
	repo := repository.NewRepository(nil, zap.NewNop())

	app, err := Wiring(repo, testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.Consumer)
	assert.NotNil(t, app.Hub)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), `"relay_dropped":0`)

	rec = httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/bookings/x/vendor/1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// no channel configured, ad-hoc SMS is unavailable
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/sms", strings.NewReader(`{"phone":"9000000001","message":"hi"}`))
	app.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestWireNotifications(t *testing.T) {
	confirm, sms := wireNotifications(testConfig(), zap.NewNop())
	assert.Nil(t, confirm)
	assert.Nil(t, sms)

	cfg := testConfig()
	cfg.SMS = utils.SMSConfig{GatewayURL: "http://sms.local/send"}
	cfg.Email = utils.EmailConfig{Host: "smtp.local", Port: 25, From: "desk@example.com"}

	confirm, sms = wireNotifications(cfg, zap.NewNop())
	assert.NotNil(t, confirm)
	assert.NotNil(t, sms)
}
