package health

import (
	"context"
	"net/http"
	"time"

	"ppob-api/pkg/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func New(db Pinger) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

type statusDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Check godoc
//
//	@Summary	Liveness and database connectivity check
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Failure	503	{object}	utils.Response	"Database unreachable"
//	@Router		/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, utils.StatusInternalError, "Database connection failed")
		return
	}
	utils.RespondWithSuccess(w, http.StatusOK, "OK", statusDTO{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
