package handler

import (
	"log/slog"
	"net/http"

	"github.com/restaurant-backoffice/internal/dto"
	"github.com/restaurant-backoffice/internal/service"
)

// ReportHandler отдаёт отчёты только для чтения
type ReportHandler struct {
	base
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		base:          newBase(logger),
		reportService: reportService,
	}
}

func (h *ReportHandler) OrderLedger(w http.ResponseWriter, r *http.Request) {
	query := dto.OrderLedgerQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if !h.validate(w, &query) {
		return
	}

	rows, err := h.reportService.OrderLedger(r.Context(), query.From, query.To)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewOrderLedgerResponses(rows))
}

func (h *ReportHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	query := dto.DailyRevenueQuery{Days: service.DefaultRevenueDays}
	if r.URL.Query().Has("days") {
		days, err := queryInt(r, "days")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid days", err.Error())
			return
		}
		query.Days = days
	}
	if !h.validate(w, &query) {
		return
	}

	rows, err := h.reportService.DailyRevenue(r.Context(), query.Days)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewDailyRevenueResponses(rows))
}

func (h *ReportHandler) RevenueByCategory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.RevenueByCategory(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewCategoryRevenueResponses(rows))
}

func (h *ReportHandler) RevenueByServer(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.RevenueByServer(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewServerRevenueResponses(rows))
}

func (h *ReportHandler) PopularItems(w http.ResponseWriter, r *http.Request) {
	query := dto.PopularItemsQuery{Limit: service.DefaultPopularLimit}
	if r.URL.Query().Has("limit") {
		limit, err := queryInt(r, "limit")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid limit", err.Error())
			return
		}
		query.Limit = limit
	}
	if !h.validate(w, &query) {
		return
	}

	rows, err := h.reportService.PopularItems(r.Context(), query.Limit)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewPopularItemResponses(rows))
}

func (h *ReportHandler) AboveAverageCustomers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.AboveAverageCustomers(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewCustomerSpendResponses(rows))
}

func (h *ReportHandler) OverbookedReservations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.OverbookedReservations(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewOverbookedResponses(rows))
}

func (h *ReportHandler) UpcomingReservations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.UpcomingReservations(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.NewUpcomingReservationResponses(rows))
}

func (h *ReportHandler) Status(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportService.Status(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Counts: counts})
}
