package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cab-dispatch/internal/dto/request"
	"cab-dispatch/internal/realtime"
	"cab-dispatch/internal/usecase"
	"cab-dispatch/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const streamHeartbeat = 25 * time.Second

type LocationHandler struct {
	service usecase.LocationService
	hub     *realtime.Hub
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, hub *realtime.Hub, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		hub:     hub,
		log:     log.With(zap.String("handler", "location")),
	}
}

// UpdateLocation handles POST /api/location
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req request.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.UpdateLocation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update location")
		return
	}

	utils.ResponseSuccess(w, "Location updated", result)
}

// Stream handles GET /api/topics/{kind}/{id} as a server-sent event stream
// of location pushes for one participant.
func (h *LocationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid participant ID", nil)
		return
	}

	var topic string
	switch chi.URLParam(r, "kind") {
	case realtime.DriverTopicPrefix:
		topic = realtime.DriverTopic(id)
	case realtime.UserTopicPrefix:
		topic = realtime.UserTopic(id)
	default:
		utils.ResponseNotFound(w, "Unknown topic")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	sub := h.hub.Subscribe(topic)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case msg, ok := <-sub.C():
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				h.log.Error("Failed to encode location push", zap.Error(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: location\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()

		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
