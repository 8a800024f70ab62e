package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All seven tables exist with InnoDB foreign keys enforced
func InitDB(db *sql.DB) error {
	// Referential integrity is enforced here, at the store layer: every
	// foreign key below is a real InnoDB constraint, so a create that
	// references a missing row fails instead of producing an orphan.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS Members (
			member_id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			gender VARCHAR(10) NOT NULL,
			phone VARCHAR(20) NOT NULL DEFAULT '',
			email VARCHAR(120) NOT NULL DEFAULT '',
			join_date DATE NOT NULL DEFAULT (CURRENT_DATE)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Trainers (
			trainer_id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			specialization VARCHAR(100) NOT NULL,
			contact_no VARCHAR(20) NOT NULL DEFAULT ''
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Membership_Plans (
			plan_id INT AUTO_INCREMENT PRIMARY KEY,
			plan_name VARCHAR(100) NOT NULL,
			duration_months INT NOT NULL,
			fee DECIMAL(10,2) NOT NULL
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Member_Plan (
			member_id INT NOT NULL,
			plan_id INT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			FOREIGN KEY (member_id) REFERENCES Members(member_id),
			FOREIGN KEY (plan_id) REFERENCES Membership_Plans(plan_id)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Workout_Schedule (
			schedule_id INT AUTO_INCREMENT PRIMARY KEY,
			trainer_id INT NOT NULL,
			schedule_name VARCHAR(100) NOT NULL,
			time_slot VARCHAR(100) NOT NULL,
			FOREIGN KEY (trainer_id) REFERENCES Trainers(trainer_id)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Payments (
			payment_id INT AUTO_INCREMENT PRIMARY KEY,
			member_id INT NOT NULL,
			schedule_id INT NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			payment_date DATE NOT NULL DEFAULT (CURRENT_DATE),
			mode_of_payment VARCHAR(50) NOT NULL,
			FOREIGN KEY (member_id) REFERENCES Members(member_id),
			FOREIGN KEY (schedule_id) REFERENCES Workout_Schedule(schedule_id)
		) ENGINE=InnoDB`,

		`CREATE TABLE IF NOT EXISTS Attendance (
			attendance_id INT AUTO_INCREMENT PRIMARY KEY,
			attender_id INT NOT NULL,
			schedule_id INT NOT NULL,
			attendance_date DATE NOT NULL DEFAULT (CURRENT_DATE),
			status VARCHAR(50) NOT NULL,
			FOREIGN KEY (attender_id) REFERENCES Members(member_id),
			FOREIGN KEY (schedule_id) REFERENCES Workout_Schedule(schedule_id)
		) ENGINE=InnoDB`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
