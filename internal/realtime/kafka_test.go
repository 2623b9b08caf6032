package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisher_KeysByRecipientTopic(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, zap.NewNop())

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msg := LocationMessage{Latitude: 12.9, Longitude: 77.6, UserID: 7, Role: "RIDER", RecipientID: 9, Timestamp: ts}

	require.NoError(t, p.Publish(context.Background(), DriverTopic(9), msg))
	require.Len(t, w.msgs, 1)

	got := w.msgs[0]
	assert.Equal(t, "driver-location/9", string(got.Key))
	assert.Equal(t, "driver-location/9", header(got, HeaderTopic))
	assert.NotEmpty(t, header(got, HeaderEventID))
	assert.Equal(t, ts, got.Time)

	var decoded LocationMessage
	require.NoError(t, json.Unmarshal(got.Value, &decoded))
	assert.Equal(t, msg, decoded)
}

func TestKafkaPublisher_WrapsWriterError(t *testing.T) {
	errBroker := errors.New("leader not available")
	p := newKafkaPublisher(&fakeWriter{err: errBroker}, zap.NewNop())

	err := p.Publish(context.Background(), UserTopic(7), LocationMessage{})
	assert.ErrorIs(t, err, errBroker)
}

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.msgs) == 0 {
		r.cancel()
		return kafka.Message{}, context.Canceled
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaConsumer_HandlesAndCommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	valid, _ := json.Marshal(InboundLocation{BookingID: 42, UserID: 7, Role: "RIDER", Latitude: 12.9, Longitude: 77.6})
	rejected, _ := json.Marshal(InboundLocation{BookingID: 42, UserID: 8, Role: "DRIVER"})

	reader := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 1, Value: valid},
			{Offset: 2, Value: []byte("{not json")},
			{Offset: 3, Value: rejected},
		},
		cancel: cancel,
	}

	var handled []InboundLocation
	handler := func(_ context.Context, in InboundLocation) error {
		handled = append(handled, in)
		if in.UserID == 8 {
			return errors.New("not a participant")
		}
		return nil
	}

	c := newKafkaConsumer(reader, handler, zap.NewNop())
	err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, handled, 2)
	assert.Equal(t, int64(42), handled[0].BookingID)
	assert.Equal(t, 12.9, handled[0].Latitude)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}
