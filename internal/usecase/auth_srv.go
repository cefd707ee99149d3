package usecase

import (
	"errors"
	"fmt"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/data/repository"
	"smart-parking/internal/dto/request"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(req *request.RegisterRequest) (entity.User, error)
	Login(req *request.LoginRequest) (entity.User, error)
	SeedSampleUsers() error
	Users() []entity.User
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

// Register creates a customer account. Admin and attendant accounts are
// seeded, not self-registered.
func (s *authService) Register(req *request.RegisterRequest) (entity.User, error) {
	// Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return entity.User{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return entity.User{}, fmt.Errorf("failed to process password")
	}

	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = "Car"
	}

	user := entity.User{
		ID:            utils.GenerateCustomerID(),
		Username:      req.Username,
		PasswordHash:  hashedPassword,
		FullName:      req.FullName,
		Role:          entity.RoleCustomer,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   vehicleType,
	}

	if err := s.repo.Users.Add(user); err != nil {
		return entity.User{}, err
	}

	s.log.Info("Customer registered",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)
	return user, nil
}

func (s *authService) Login(req *request.LoginRequest) (entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return entity.User{}, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, ok := s.repo.Users.FindByUsername(req.Username)
	if !ok || !utils.CheckPassword(user.PasswordHash, req.Password) {
		s.log.Warn("Login failed", zap.String("username", req.Username))
		return entity.User{}, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

// SeedSampleUsers fills an empty directory with one account per role so a
// fresh installation is usable right away.
func (s *authService) SeedSampleUsers() error {
	if s.repo.Users.Count() > 0 {
		return nil
	}

	samples := []struct {
		user     entity.User
		password string
	}{
		{entity.User{ID: "ADMIN-001", Username: "admin", FullName: "John Manager", Role: entity.RoleAdmin}, "admin123"},
		{entity.User{ID: "ATT-001", Username: "attendant", FullName: "Mike Attendant", Role: entity.RoleAttendant}, "att123"},
		{entity.User{ID: "CUST-001", Username: "customer1", FullName: "Alice Johnson", Role: entity.RoleCustomer, VehicleNumber: "ABC-1234", VehicleType: "Car"}, "cust123"},
		{entity.User{ID: "CUST-002", Username: "customer2", FullName: "Bob Smith", Role: entity.RoleCustomer, VehicleNumber: "XYZ-5678", VehicleType: "Car"}, "cust456"},
	}

	for _, sample := range samples {
		hash, err := utils.HashPassword(sample.password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", sample.user.Username, err)
		}
		user := sample.user
		user.PasswordHash = hash
		if err := s.repo.Users.Add(user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Username, err)
		}
	}

	s.log.Info("Sample users seeded", zap.Int("count", len(samples)))
	return nil
}

func (s *authService) Users() []entity.User {
	return s.repo.Users.All()
}
