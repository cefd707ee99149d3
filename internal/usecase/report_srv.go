package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/data/repository"

	"go.uber.org/zap"
)

type ReportService interface {
	StatusReport() string
	SummaryReport() string
}

type reportService struct {
	reportID string
	repo     *repository.Repository
	log      *zap.Logger
}

func NewReportService(reportID string, repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		reportID: reportID,
		repo:     repo,
		log:      log.With(zap.String("service", "report")),
	}
}

func (s *reportService) StatusReport() string {
	metrics := s.repo.Slots.Metrics()
	return s.render("PARKING LOT STATUS REPORT",
		fmt.Sprintf("Total Slots: %d", metrics.TotalSlots),
		fmt.Sprintf("Available Slots: %d", metrics.AvailableSlots),
		fmt.Sprintf("Occupied Slots: %d", metrics.OccupiedSlots),
		fmt.Sprintf("Occupancy Rate: %.2f%%", metrics.OccupancyRate),
		fmt.Sprintf("Total Bookings: %d", s.repo.Bookings.Count()),
		fmt.Sprintf("Total Payments Processed: %d", s.repo.Payments.Count()),
	)
}

func (s *reportService) SummaryReport() string {
	return s.render("SYSTEM SUMMARY",
		"System Status: Operational",
		fmt.Sprintf("Total Users: %d", s.repo.Users.Count()),
		fmt.Sprintf("Active Bookings: %d", s.repo.Bookings.CountByStatus(entity.BookingStatusActive)),
		fmt.Sprintf("Completed Bookings: %d", s.repo.Bookings.CountByStatus(entity.BookingStatusCompleted)),
		fmt.Sprintf("Cancelled Bookings: %d", s.repo.Bookings.CountByStatus(entity.BookingStatusCancelled)),
	)
}

func (s *reportService) render(title string, rows ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ===\n", title)
	fmt.Fprintf(&b, "Report ID: %s\n", s.reportID)
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString("---\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("---")
	return b.String()
}
