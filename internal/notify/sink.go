// Package notify renders booking confirmations and hands them to outbound
// channels (email, SMS, Telegram).
package notify

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoRecipient = errors.New("no recipient")
	ErrDisabled    = errors.New("sink disabled")
)

// Message is one outbound notification. Email sinks use To/Subject/HTML,
// SMS and chat sinks use Phone/Text.
type Message struct {
	To      string
	Phone   string
	Subject string
	HTML    string
	Text    string
}

type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, msg Message) error

func (f SinkFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

type namedSink struct {
	name string
	sink Sink
}

// Multi delivers to every configured sink. It reports success when at least
// one sink accepted the message; individual failures are logged.
type Multi struct {
	sinks []namedSink
	log   *zap.Logger
}

func NewMulti(log *zap.Logger) *Multi {
	return &Multi{log: log.With(zap.String("component", "notify"))}
}

func (m *Multi) Add(name string, sink Sink) *Multi {
	m.sinks = append(m.sinks, namedSink{name: name, sink: sink})
	return m
}

func (m *Multi) Len() int {
	return len(m.sinks)
}

// Send hands msg to every sink concurrently so a slow channel cannot use up
// the deadline of the others.
func (m *Multi) Send(ctx context.Context, msg Message) error {
	if len(m.sinks) == 0 {
		return ErrDisabled
	}

	errs := make([]error, len(m.sinks))
	var g errgroup.Group
	for i, s := range m.sinks {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					m.log.Error("Sink panicked", zap.String("sink", s.name), zap.Any("panic", r))
					errs[i] = fmt.Errorf("%s: panic: %v", s.name, r)
				}
			}()
			if err := s.sink.Send(ctx, msg); err != nil {
				m.log.Warn("Sink rejected notification", zap.String("sink", s.name), zap.Error(err))
				errs[i] = fmt.Errorf("%s: %w", s.name, err)
			}
			return nil
		})
	}
	g.Wait()

	for _, err := range errs {
		if err == nil {
			return nil
		}
	}
	return errors.Join(errs...)
}

// runBounded runs a blocking send that has no context support and gives up
// waiting once ctx is done.
func runBounded(ctx context.Context, send func() error) error {
	done := make(chan error, 1)
	go func() { done <- send() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
