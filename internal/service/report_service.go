package service

import (
	"context"

	"github.com/restaurant-backoffice/internal/domain"
	"github.com/restaurant-backoffice/internal/repository"
)

const (
	// DefaultRevenueDays - глубина отчёта по дням без явного параметра
	DefaultRevenueDays = 30
	// DefaultPopularLimit - размер рейтинга позиций без явного параметра
	DefaultPopularLimit = 10
)

// ReportService определяет интерфейс отчётов
type ReportService interface {
	OrderLedger(ctx context.Context, from, to string) ([]domain.OrderLedgerRow, error)
	DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenueRow, error)
	RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error)
	RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error)
	PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error)
	AboveAverageCustomers(ctx context.Context) ([]domain.CustomerSpendRow, error)
	OverbookedReservations(ctx context.Context) ([]domain.OverbookedRow, error)
	UpcomingReservations(ctx context.Context) ([]domain.UpcomingReservationRow, error)
	Status(ctx context.Context) (map[string]int64, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	now        Clock
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(reportRepo repository.ReportRepository, now Clock) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		now:        now,
	}
}

func (s *reportService) OrderLedger(ctx context.Context, from, to string) ([]domain.OrderLedgerRow, error) {
	start, err := domain.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, domain.ErrInvalidPeriod
	}
	return s.reportRepo.OrderLedger(ctx, start, end)
}

// DailyRevenue считает выручку за последние days дней, включая сегодняшний
func (s *reportService) DailyRevenue(ctx context.Context, days int) ([]domain.DailyRevenueRow, error) {
	if days <= 0 {
		days = DefaultRevenueDays
	}
	since := domain.DateOnly(s.now()).AddDate(0, 0, -(days - 1))
	return s.reportRepo.DailyRevenue(ctx, since)
}

func (s *reportService) RevenueByCategory(ctx context.Context) ([]domain.CategoryRevenueRow, error) {
	return s.reportRepo.RevenueByCategory(ctx)
}

func (s *reportService) RevenueByServer(ctx context.Context) ([]domain.ServerRevenueRow, error) {
	return s.reportRepo.RevenueByServer(ctx)
}

func (s *reportService) PopularItems(ctx context.Context, limit int) ([]domain.PopularItemRow, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	return s.reportRepo.PopularItems(ctx, limit)
}

func (s *reportService) AboveAverageCustomers(ctx context.Context) ([]domain.CustomerSpendRow, error) {
	return s.reportRepo.AboveAverageCustomers(ctx)
}

func (s *reportService) OverbookedReservations(ctx context.Context) ([]domain.OverbookedRow, error) {
	return s.reportRepo.OverbookedReservations(ctx)
}

// UpcomingReservations - действующие брони начиная с сегодняшнего дня
func (s *reportService) UpcomingReservations(ctx context.Context) ([]domain.UpcomingReservationRow, error) {
	return s.reportRepo.UpcomingReservations(ctx, domain.DateOnly(s.now()))
}

func (s *reportService) Status(ctx context.Context) (map[string]int64, error) {
	return s.reportRepo.TableCounts(ctx)
}
