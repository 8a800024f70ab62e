package main

import (
	"log"
	"net/http"

	emailPkg "gymdesk/internal/adapters/email"
	web "gymdesk/internal/adapters/http"
	"gymdesk/internal/adapters/storage"
	attendanceStore "gymdesk/internal/adapters/storage/attendance"
	memberStore "gymdesk/internal/adapters/storage/member"
	paymentStore "gymdesk/internal/adapters/storage/payment"
	planStore "gymdesk/internal/adapters/storage/plan"
	scheduleStore "gymdesk/internal/adapters/storage/schedule"
	statsStore "gymdesk/internal/adapters/storage/stats"
	trainerStore "gymdesk/internal/adapters/storage/trainer"
	"gymdesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()

	db, err := storage.Open(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with slow-query instrumentation
	timedDB := storage.NewTimedDB(db)

	stores := &web.Stores{
		MemberStore:     memberStore.NewMySQLStore(timedDB),
		TrainerStore:    trainerStore.NewMySQLStore(timedDB),
		PlanStore:       planStore.NewMySQLStore(timedDB),
		AssignmentStore: planStore.NewAssignmentMySQLStore(timedDB),
		ScheduleStore:   scheduleStore.NewMySQLStore(timedDB),
		PaymentStore:    paymentStore.NewMySQLStore(timedDB),
		AttendanceStore: attendanceStore.NewMySQLStore(timedDB),
		StatsStore:      statsStore.NewMySQLStore(timedDB),
	}

	// Configure email sender for payment receipts
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.ResendFrom), cfg.ResendFrom, cfg.ReplyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.ResendFrom, cfg.ReplyTo)
		if cfg.Env == "production" {
			log.Println("WARNING: RESEND_API_KEY is not set — receipt delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set RESEND_API_KEY for real delivery)")
		}
	}

	mux := web.NewMux(cfg.SecretKey, stores)

	log.Printf("GymDesk %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
