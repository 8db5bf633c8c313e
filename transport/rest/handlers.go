package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/herochess-backend/internal/apperror"
	"github.com/rocketscienceinc/herochess-backend/internal/entity"
	"github.com/rocketscienceinc/herochess-backend/pkg/handlers"
)

type Handlers interface {
	RoomHandler(w http.ResponseWriter, r *http.Request)
	ResultsHandler(w http.ResponseWriter, r *http.Request)
}

type roomRegistry interface {
	Room(roomID string) (entity.RoomSummary, error)
}

type resultStats interface {
	Stats(ctx context.Context) (*entity.ResultStats, error)
}

type restHandlers struct {
	logger  *slog.Logger
	rooms   roomRegistry
	results resultStats
}

func NewHandlers(logger *slog.Logger, rooms roomRegistry, results resultStats) Handlers {
	return &restHandlers{
		logger:  logger.With("component", "rest"),
		rooms:   rooms,
		results: results,
	}
}

// RoomHandler - lobby summary of a live room; the board is not exposed.
func (that *restHandlers) RoomHandler(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomID"]

	summary, err := that.rooms.Room(roomID)
	if errors.Is(err, apperror.ErrRoomNotFound) {
		handlers.RespondError(w, http.StatusNotFound, apperror.Reason(err), err.Error())
		return
	}

	if err != nil {
		that.logger.Error("failed to get room", "roomID", roomID, "error", err)
		handlers.RespondError(w, http.StatusInternalServerError, apperror.ReasonInternal, "failed to get room")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, summary)
}

// ResultsHandler - win tally and recent finished games.
func (that *restHandlers) ResultsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := that.results.Stats(r.Context())
	if err != nil {
		that.logger.Error("failed to get results", "error", err)
		handlers.RespondError(w, http.StatusInternalServerError, apperror.ReasonInternal, "failed to get results")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
