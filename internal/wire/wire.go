// internal/wire/wire.go
package wire

import (
	"io"

	"smart-parking/internal/adaptor"
	"smart-parking/internal/data/repository"
	"smart-parking/internal/usecase"
	"smart-parking/pkg/utils"

	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Service *usecase.Service
	Console *adaptor.Console
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, in io.Reader, out io.Writer) *App {
	service := usecase.NewService(repo, config, logger)
	console := adaptor.NewConsole(service, logger, in, out)

	return &App{
		Service: service,
		Console: console,
	}
}
