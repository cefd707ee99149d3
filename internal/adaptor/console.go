package adaptor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"smart-parking/internal/data/entity"
	"smart-parking/internal/dto/request"
	"smart-parking/internal/usecase"

	"go.uber.org/zap"
)

// Console is the interactive menu surface. It owns presentation only; every
// state change goes through the usecase layer. Reader/writer are injected
// so the whole flow is scriptable in tests.
type Console struct {
	service *usecase.Service
	log     *zap.Logger
	in      *bufio.Scanner
	out     io.Writer
	current *entity.User
}

func NewConsole(service *usecase.Service, log *zap.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		log:     log.With(zap.String("adaptor", "console")),
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (c *Console) Run() {
	running := true
	for running {
		if c.current == nil {
			running = c.loginMenu()
		} else {
			running = c.dashboard()
		}
	}
	c.printf("Thank you for using Smart Parking Management System. Goodbye!\n")
}

func (c *Console) loginMenu() bool {
	c.printf("\n========================================\n")
	c.printf("  SMART PARKING MANAGEMENT SYSTEM\n")
	c.printf("========================================\n")
	c.printf("1. Login\n")
	c.printf("2. Register\n")
	c.printf("3. Exit\n")

	choice, ok := c.prompt("Enter your choice: ")
	if !ok {
		return false
	}

	switch choice {
	case "1":
		c.login()
	case "2":
		c.register()
	case "3":
		return false
	default:
		c.printf("Invalid choice. Please try again.\n")
	}
	return true
}

// Role dispatch is a plain switch over the closed role set; each role maps
// to exactly one dashboard.
func (c *Console) dashboard() bool {
	switch c.current.Role {
	case entity.RoleAdmin:
		return c.adminDashboard()
	case entity.RoleAttendant:
		return c.attendantDashboard()
	case entity.RoleCustomer:
		return c.customerDashboard()
	default:
		c.log.Error("Unknown role, forcing logout", zap.String("role", string(c.current.Role)))
		c.current = nil
		return true
	}
}

func (c *Console) login() {
	username, ok := c.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Enter password: ")
	if !ok {
		return
	}

	user, err := c.service.Auth.Login(&request.LoginRequest{Username: username, Password: password})
	if err != nil {
		c.printf("Invalid credentials. Please try again.\n")
		return
	}

	c.current = &user
	c.printf("Login successful! Welcome, %s\n", user.FullName)
}

func (c *Console) register() {
	username, ok := c.prompt("Enter username: ")
	if !ok {
		return
	}
	password, ok := c.prompt("Enter password: ")
	if !ok {
		return
	}
	fullName, ok := c.prompt("Enter full name: ")
	if !ok {
		return
	}
	vehicleNumber, ok := c.prompt("Enter vehicle number: ")
	if !ok {
		return
	}

	_, err := c.service.Auth.Register(&request.RegisterRequest{
		Username:      username,
		Password:      password,
		FullName:      fullName,
		VehicleNumber: vehicleNumber,
	})
	if err != nil {
		c.printf("Registration failed: %v\n", err)
		return
	}

	c.printf("Registration successful! You can now login.\n")
}

func (c *Console) logout() {
	c.log.Info("User logged out", zap.String("username", c.current.Username))
	c.current = nil
	c.printf("Logged out successfully.\n")
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}
