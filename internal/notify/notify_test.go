package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cab-dispatch/pkg/utils"
)

func sampleConfirmation() Confirmation {
	return Confirmation{
		BookID:        "WTL-20250101-ABCDEF12",
		Name:          "Asha",
		Email:         "asha@example.com",
		Phone:         "9000000001",
		Pickup:        "Pune",
		Drop:          "Mumbai",
		TripType:      "oneWay",
		Date:          "2025-01-01",
		Time:          "10:30",
		Amount:        2450,
		CabName:       "Dzire",
		VehicleNo:     "MH12AB1234",
		DriverName:    "Ravi",
		DriverContact: "9000000009",
	}
}

func TestRenderConfirmation(t *testing.T) {
	c := sampleConfirmation()

	subject, body := RenderConfirmation(c)
	assert.Equal(t, "Booking Confirmation - WTL-20250101-ABCDEF12", subject)
	for _, want := range []string{"Hello Asha", "Pune", "Mumbai", "Dzire", "MH12AB1234", "Ravi", "9000000009", "2450.00"} {
		assert.Contains(t, body, want)
	}

	// pure: identical output for identical input
	subject2, body2 := RenderConfirmation(c)
	assert.Equal(t, subject, subject2)
	assert.Equal(t, body, body2)
}

func TestRenderConfirmationEscapesHTML(t *testing.T) {
	c := sampleConfirmation()
	c.Name = "<script>alert(1)</script>"

	_, body := RenderConfirmation(c)
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(sampleConfirmation())
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Equal(t, "9000000001", msg.Phone)
	assert.Contains(t, msg.Text, "WTL-20250101-ABCDEF12")
	assert.Contains(t, msg.HTML, "<html")
}

func TestMultiSend(t *testing.T) {
	ok := SinkFunc(func(ctx context.Context, msg Message) error { return nil })
	bad := SinkFunc(func(ctx context.Context, msg Message) error { return errors.New("boom") })

	t.Run("no sinks", func(t *testing.T) {
		err := NewMulti(zap.NewNop()).Send(context.Background(), Message{})
		assert.ErrorIs(t, err, ErrDisabled)
	})

	t.Run("one accepts", func(t *testing.T) {
		m := NewMulti(zap.NewNop()).Add("bad", bad).Add("ok", ok)
		assert.NoError(t, m.Send(context.Background(), Message{}))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("all fail", func(t *testing.T) {
		m := NewMulti(zap.NewNop()).Add("a", bad).Add("b", bad)
		err := m.Send(context.Background(), Message{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a: boom")
		assert.Contains(t, err.Error(), "b: boom")
	})

	t.Run("panicking sink is contained", func(t *testing.T) {
		boom := SinkFunc(func(ctx context.Context, msg Message) error { panic("smtp exploded") })
		m := NewMulti(zap.NewNop()).Add("email", boom).Add("sms", ok)
		assert.NoError(t, m.Send(context.Background(), Message{}))

		err := NewMulti(zap.NewNop()).Add("email", boom).Send(context.Background(), Message{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email: panic")
	})

	t.Run("slow sink does not starve the others", func(t *testing.T) {
		slow := SinkFunc(func(ctx context.Context, msg Message) error {
			<-ctx.Done()
			return ctx.Err()
		})
		delivered := make(chan struct{}, 1)
		fast := SinkFunc(func(ctx context.Context, msg Message) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			delivered <- struct{}{}
			return nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		m := NewMulti(zap.NewNop()).Add("email", slow).Add("sms", fast)
		assert.NoError(t, m.Send(ctx, Message{}))
		assert.Len(t, delivered, 1)
	})
}

func TestEmailSink(t *testing.T) {
	_, err := NewEmailSink(utils.EmailConfig{})
	assert.ErrorIs(t, err, ErrDisabled)

	sink, err := NewEmailSink(utils.EmailConfig{Host: "smtp.local", Port: 2525, From: "desk@example.com"})
	require.NoError(t, err)

	var gotAddr string
	var gotTo []string
	var gotRaw string
	sink.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotRaw = addr, to, string(msg)
		return nil
	}

	err = sink.Send(context.Background(), Message{To: "asha@example.com", Subject: "Hi", HTML: "<p>x</p>"})
	require.NoError(t, err)
	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Equal(t, []string{"asha@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotRaw, "From: desk@example.com\r\n"))
	assert.Contains(t, gotRaw, "Content-Type: text/html")

	assert.ErrorIs(t, sink.Send(context.Background(), Message{}), ErrNoRecipient)
}

func TestEmailSinkTimeout(t *testing.T) {
	sink, err := NewEmailSink(utils.EmailConfig{Host: "smtp.local", Port: 25, From: "desk@example.com"})
	require.NoError(t, err)

	release := make(chan struct{})
	defer close(release)
	sink.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = sink.Send(ctx, Message{To: "asha@example.com"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSMSSink(t *testing.T) {
	var gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink, err := NewSMSSink(utils.SMSConfig{GatewayURL: srv.URL, APIKey: "k", Sender: "WTLCAB"})
	require.NoError(t, err)

	require.NoError(t, sink.Send(context.Background(), Message{Phone: "9000000001", Text: "hello"}))
	assert.Equal(t, "Bearer k", gotAuth)
	assert.JSONEq(t, `{"to":"9000000001","from":"WTLCAB","message":"hello"}`, gotBody)

	assert.ErrorIs(t, sink.Send(context.Background(), Message{Text: "x"}), ErrNoRecipient)
}

func TestSMSSinkGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink, err := NewSMSSink(utils.SMSConfig{GatewayURL: srv.URL})
	require.NoError(t, err)

	err = sink.Send(context.Background(), Message{Phone: "1", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.err
}

func TestTelegramSink(t *testing.T) {
	_, err := NewTelegramSink("", 0)
	assert.ErrorIs(t, err, ErrDisabled)

	bot := &fakeBot{}
	sink := &TelegramSink{bot: bot, chatID: 77}

	require.NoError(t, sink.Send(context.Background(), Message{Text: "booking confirmed"}))
	require.Len(t, bot.sent, 1)
	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(77), msg.ChatID)
	assert.Equal(t, "booking confirmed", msg.Text)

	bot.err = errors.New("forbidden")
	assert.Error(t, sink.Send(context.Background(), Message{Text: "x"}))
	assert.Error(t, sink.Send(context.Background(), Message{}))
}
