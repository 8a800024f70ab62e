package web

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"gymdesk/internal/adapters/email"
	"gymdesk/internal/adapters/http/middleware"
	attendanceStore "gymdesk/internal/adapters/storage/attendance"
	memberStore "gymdesk/internal/adapters/storage/member"
	paymentStore "gymdesk/internal/adapters/storage/payment"
	planStore "gymdesk/internal/adapters/storage/plan"
	scheduleStore "gymdesk/internal/adapters/storage/schedule"
	statsStore "gymdesk/internal/adapters/storage/stats"
	trainerStore "gymdesk/internal/adapters/storage/trainer"
)

// Stores holds all storage dependencies.
type Stores struct {
	MemberStore     memberStore.Store
	TrainerStore    trainerStore.Store
	PlanStore       planStore.Store
	AssignmentStore planStore.AssignmentStore
	ScheduleStore   scheduleStore.Store
	PaymentStore    paymentStore.Store
	AttendanceStore attendanceStore.Store
	StatsStore      statsStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global flash cookie codec (set by NewMux)
var flashCodec *securecookie.SecureCookie

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Email configuration
var emailFromAddress string
var emailReplyTo string

// SetEmailSender sets the global email sender for payment receipts.
func SetEmailSender(sender email.Sender, from, replyTo string) {
	emailSender = sender
	emailFromAddress = from
	emailReplyTo = replyTo
}

// deriveKey stretches the configured secret into a 32-byte key for the given
// purpose, so the CSRF and flash keys differ even with one shared secret.
func deriveKey(secret, purpose string) []byte {
	sum := sha256.Sum256([]byte(secret + ":" + purpose))
	return sum[:]
}

// NewMux wires HTTP handlers for the app. secret is the session-signing
// secret from configuration; it keys both CSRF tokens and the flash cookie.
func NewMux(secret string, s *Stores) http.Handler {
	stores = s
	flashCodec = securecookie.New(deriveKey(secret, "flash"), nil)

	mux := http.NewServeMux()
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(deriveKey(secret, "csrf")),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
}
