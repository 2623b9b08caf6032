package response

import "cab-dispatch/internal/realtime"

// RelayResult reports what a location update did. Topic and Message are
// set only when a push went out.
type RelayResult struct {
	Persisted bool                      `json:"persisted"`
	Pushed    bool                      `json:"pushed"`
	Topic     string                    `json:"topic,omitempty"`
	Message   *realtime.LocationMessage `json:"message,omitempty"`
}
