package store

import (
	"context"
	"fmt"

	"smart-parking/internal/data/entity"
	"smart-parking/pkg/database"

	"go.uber.org/zap"
)

// PostgresStore persists the snapshot in Postgres. Still a simple
// load/store collaborator: Save replaces the whole snapshot in one
// transaction, Load reads it back in insertion order.
type PostgresStore struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresStore(ctx context.Context, db database.PgxIface, log *zap.Logger) (*PostgresStore, error) {
	s := &PostgresStore{
		db:  db,
		log: log.With(zap.String("store", "postgres")),
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL,
			role TEXT NOT NULL,
			vehicle_number TEXT NOT NULL DEFAULT '',
			vehicle_type TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			slot_number INT NOT NULL,
			vehicle_number TEXT NOT NULL,
			check_in_time TIMESTAMPTZ NOT NULL,
			check_out_time TIMESTAMPTZ,
			status TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			booking_id TEXT NOT NULL,
			parked_hours INT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			status TEXT NOT NULL,
			paid_at TIMESTAMPTZ
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{}

	rows, err := s.db.Query(ctx, `
		SELECT id, username, password_hash, full_name, role, vehicle_number, vehicle_type
		FROM users ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Role, &u.VehicleNumber, &u.VehicleType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan user: %w", err)
		}
		snapshot.Users = append(snapshot.Users, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	rows, err = s.db.Query(ctx, `
		SELECT id, customer_id, slot_number, vehicle_number, check_in_time, check_out_time, status, updated_at
		FROM bookings ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.SlotNumber, &b.VehicleNumber, &b.CheckInTime, &b.CheckOutTime, &b.Status, &b.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		snapshot.Bookings = append(snapshot.Bookings, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	rows, err = s.db.Query(ctx, `
		SELECT id, booking_id, parked_hours, amount, status, paid_at
		FROM payments ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.ParkedHours, &p.Amount, &p.Status, &p.PaidAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		snapshot.Payments = append(snapshot.Payments, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}

	s.log.Info("Snapshot loaded",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("bookings", len(snapshot.Bookings)),
		zap.Int("payments", len(snapshot.Payments)),
	)
	return snapshot, nil
}

func (s *PostgresStore) Save(ctx context.Context, snapshot *Snapshot) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"users", "bookings", "payments"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, u := range snapshot.Users {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, username, password_hash, full_name, role, vehicle_number, vehicle_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, u.ID, u.Username, u.PasswordHash, u.FullName, u.Role, u.VehicleNumber, u.VehicleType)
		if err != nil {
			return fmt.Errorf("save user %s: %w", u.ID, err)
		}
	}

	for _, b := range snapshot.Bookings {
		_, err := tx.Exec(ctx, `
			INSERT INTO bookings (id, customer_id, slot_number, vehicle_number, check_in_time, check_out_time, status, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, b.ID, b.CustomerID, b.SlotNumber, b.VehicleNumber, b.CheckInTime, b.CheckOutTime, b.Status, b.UpdatedAt)
		if err != nil {
			return fmt.Errorf("save booking %s: %w", b.ID, err)
		}
	}

	for _, p := range snapshot.Payments {
		_, err := tx.Exec(ctx, `
			INSERT INTO payments (id, booking_id, parked_hours, amount, status, paid_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, p.BookingID, p.ParkedHours, p.Amount, p.Status, p.PaidAt)
		if err != nil {
			return fmt.Errorf("save payment %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	s.log.Info("Snapshot saved",
		zap.Int("users", len(snapshot.Users)),
		zap.Int("bookings", len(snapshot.Bookings)),
		zap.Int("payments", len(snapshot.Payments)),
	)
	return nil
}
