package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/sales-pulse/pkg/adapters"
	"github.com/de-tools/sales-pulse/pkg/models/api"
	"github.com/de-tools/sales-pulse/pkg/models/domain"
	svc "github.com/de-tools/sales-pulse/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

const (
	defaultTopN      = 10
	defaultRangeDays = 180

	dateLayout = "2006-01-02"
)

type Service interface {
	Refresh(ctx context.Context, r domain.DateRange) (*domain.Dashboard, error)
	Snapshot() (*domain.Dashboard, error)
	TopProducts(n int) ([]domain.ProductSales, error)
	TopChannels(n int) ([]domain.ChannelPerformance, error)
}

type Handler struct {
	svc Service
}

func NewHandler(s Service) *Handler {
	return &Handler{svc: s}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Snapshot()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDashboardDomainToApi(d))
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	dateRange, err := parseRange(r)
	if err != nil {
		writeStatus(w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.svc.Refresh(r.Context(), dateRange)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, adapters.MapDashboardDomainToApi(d))
}

func (h *Handler) GetTopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.TopProducts(parseLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.ProductSales, 0, len(products))
	for _, p := range products {
		response = append(response, adapters.MapProductSalesDomainToApi(p))
	}
	writeJSON(w, r, response)
}

func (h *Handler) GetTopChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.svc.TopChannels(parseLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	response := make([]api.ChannelPerformance, 0, len(channels))
	for _, c := range channels {
		response = append(response, adapters.MapChannelPerformanceDomainToApi(c))
	}
	writeJSON(w, r, response)
}

func parseLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return defaultTopN
	}
	return limit
}

func parseRange(r *http.Request) (domain.DateRange, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -defaultRangeDays)

	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return domain.DateRange{}, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			return domain.DateRange{}, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		end = parsed
	}
	if end.Before(start) {
		return domain.DateRange{}, errors.New("end date before start date")
	}
	return domain.DateRange{Start: start, End: end}, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, svc.ErrNoData):
		writeStatus(w, r, http.StatusNotFound, "no data available")
	case errors.Is(err, svc.ErrSchemaMismatch):
		writeStatus(w, r, http.StatusBadGateway, err.Error())
	case errors.Is(err, context.Canceled):
		writeStatus(w, r, http.StatusConflict, "request superseded by a newer refresh")
	default:
		writeStatus(w, r, http.StatusBadGateway, err.Error())
	}
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	logger := zerolog.Ctx(r.Context())
	if err := json.NewEncoder(w).Encode(api.Error{Error: msg}); err != nil {
		logger.Error().Err(err).Msg("failed to encode error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	logger := zerolog.Ctx(r.Context())
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
