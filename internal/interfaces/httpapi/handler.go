package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/ipl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/ipl-dashboard/internal/usecase"
)

const matchNotFoundMessage = "Match not found"

type Handler struct {
	queryService *usecase.QueryService
	logger       *logging.Logger
}

func NewHandler(queryService *usecase.QueryService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		queryService: queryService,
		logger:       logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	items, err := h.queryService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toTeamDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPointsTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPointsTable")
	defer span.End()

	items, err := h.queryService.PointsTable(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list points table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pointsTableEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toPointsTableEntryDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	items, err := h.queryService.Schedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchDTOs(items))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	limit := parseLimit(r.URL.Query().Get("limit"))
	items, err := h.queryService.Upcoming(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming matches failed", "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchDTOs(items))
}

func (h *Handler) GetLiveMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveMatch")
	defer span.End()

	item, err := h.queryService.Live(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get live match failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if item == nil {
		writeJSON(ctx, w, http.StatusOK, nil)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toLiveMatchDTO(*item))
}

func (h *Handler) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchByID")
	defer span.End()

	// Any id without a match, blank or oversized included, is a 404.
	matchID := strings.TrimSpace(r.PathValue("id"))
	item, err := h.queryService.MatchByID(ctx, matchID)
	if errors.Is(err, usecase.ErrNotFound) {
		writeErrorMessage(ctx, w, http.StatusNotFound, matchNotFoundMessage)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchDTO(item))
}

// parseLimit falls back to the default for missing, non-numeric and non-positive values.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return usecase.DefaultUpcomingLimit
	}
	return limit
}
