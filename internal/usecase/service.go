package usecase

import (
	"smart-parking/internal/data/repository"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Parking ParkingService
	Billing BillingService
	Report  ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	billing := NewBillingService(config.Lot.HourlyRate, log)

	return &Service{
		Auth:    NewAuthService(repo, log),
		Parking: NewParkingService(repo, billing, log),
		Billing: billing,
		Report:  NewReportService("REPORT-001", repo, log),
	}
}
