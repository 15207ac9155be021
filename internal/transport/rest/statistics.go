package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/studydeck-backend/internal/domain"
	"github.com/heartmarshall/studydeck-backend/internal/service/statistics"
)

type statisticsService interface {
	GetUserStatistics(ctx context.Context, input statistics.GetStatisticsInput) (*domain.StatisticsReport, error)
}

// StatisticsHandler serves the study overview report.
type StatisticsHandler struct {
	svc statisticsService
	log *slog.Logger
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(svc statisticsService, log *slog.Logger) *StatisticsHandler {
	return &StatisticsHandler{svc: svc, log: log.With("handler", "statistics")}
}

// GetUserStatistics handles GET /api/v1/statistics?range=7d|30d|90d|all.
// Unknown ranges fall back to 7d.
func (h *StatisticsHandler) GetUserStatistics(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetUserStatistics(r.Context(), statistics.GetStatisticsInput{
		Range: r.URL.Query().Get("range"),
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatisticsResponse(report))
}
