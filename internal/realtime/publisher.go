package realtime

import (
	"context"
	"errors"
)

// Publisher delivers a location push to a topic. Delivery is at most once:
// implementations must not block on slow consumers and must not retry.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg LocationMessage) error
}

type multiPublisher []Publisher

// Fanout publishes to every publisher and joins their errors.
func Fanout(publishers ...Publisher) Publisher {
	return multiPublisher(publishers)
}

func (m multiPublisher) Publish(ctx context.Context, topic string, msg LocationMessage) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, topic, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
