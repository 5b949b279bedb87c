package store

import (
	"context"
	"errors"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Sessions() Sessions
	OtpCodes() OtpCodes
	Whitelist() Whitelist
	KycDocuments() KycDocuments
	Solutions() Solutions
	Orders() Orders
	Library() Library

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByIdentifier matches the identifier against both phone and
	// email, as OTP login accepts either.
	GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateRoleAndKycStatus applies a whitelist override and bumps updated_at.
	UpdateRoleAndKycStatus(ctx context.Context, userID, role, kycStatus string) error

	// UpdateKycProfile writes the identity fields captured at KYC submission
	// and sets kyc_status.
	UpdateKycProfile(ctx context.Context, userID, name, surname, idNumber, dateOfBirth, kycStatus string) error

	// TouchLastLogin stamps last_login.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

type Sessions interface {
	// UpsertSession replaces any existing session for the user, enforcing a
	// single active session per user.
	UpsertSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session with the given fingerprint
	// regardless of expiry; the caller checks ExpiresAt.
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// DeleteSessionByTokenHash removes a session. Deleting an unknown
	// fingerprint is not an error (logout is idempotent).
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type OtpCodes interface {
	// CreateOtpCode stores a freshly issued code (hash only).
	CreateOtpCode(ctx context.Context, c domain.OtpCode) error

	// GetLatestActiveOtpCode returns the newest unverified row matching
	// (identifier, codeHash) whose expiry is after now.
	GetLatestActiveOtpCode(ctx context.Context, identifier, codeHash string, now time.Time) (domain.OtpCode, error)

	// MarkOtpCodeVerified consumes a code; a consumed code never matches again.
	MarkOtpCodeVerified(ctx context.Context, id string) error

	// DeleteExpiredOtpCodes is housekeeping.
	DeleteExpiredOtpCodes(ctx context.Context, now time.Time) error
}

type Whitelist interface {
	// GetEntryByIdentifier matches against both phone and email.
	GetEntryByIdentifier(ctx context.Context, identifier string) (domain.WhitelistEntry, error)

	// ListEntries returns all entries, newest first.
	ListEntries(ctx context.Context) ([]domain.WhitelistEntry, error)

	// CreateEntry inserts an entry; returns ErrAlreadyExists when the phone
	// or email is already whitelisted.
	CreateEntry(ctx context.Context, e domain.WhitelistEntry) error

	// DeleteEntry removes an entry by id.
	DeleteEntry(ctx context.Context, id string) error
}

type KycDocuments interface {
	// CreateDocument appends a submission row.
	CreateDocument(ctx context.Context, d domain.KycDocument) error

	// ListDocumentsByUser returns a user's submissions, newest first.
	ListDocumentsByUser(ctx context.Context, userID string) ([]domain.KycDocument, error)
}

type Solutions interface {
	// GetSolutionByID returns a solution by id regardless of owner; the
	// service enforces ownership.
	GetSolutionByID(ctx context.Context, id string) (domain.Solution, error)

	// ListSolutionsByUser returns a user's solutions, newest first.
	ListSolutionsByUser(ctx context.Context, userID string) ([]domain.Solution, error)

	// CreateSolution inserts a new solution.
	CreateSolution(ctx context.Context, s domain.Solution) error

	// UpdateSolution overwrites the mutable fields and bumps updated_at.
	UpdateSolution(ctx context.Context, s domain.Solution) error

	// UpdateSolutionStatus flips the lifecycle status only.
	UpdateSolutionStatus(ctx context.Context, id, status string) error

	// DeleteSolution hard-deletes a solution row.
	DeleteSolution(ctx context.Context, id string) error
}

type Orders interface {
	// CreateOrder inserts an order; returns ErrAlreadyExists on an
	// order_number collision so the service can retry.
	CreateOrder(ctx context.Context, o domain.Order) error

	// GetOrderByID returns an order by id regardless of owner.
	GetOrderByID(ctx context.Context, id string) (domain.Order, error)

	// GetOrderWithSolution joins the order with its parent solution.
	GetOrderWithSolution(ctx context.Context, id string) (domain.OrderWithSolution, error)

	// ListOrdersByUser returns a user's orders joined with solution
	// summaries, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.OrderWithSolution, error)

	// MarkOrderPaid sets payment_status=completed, the method and the date.
	MarkOrderPaid(ctx context.Context, id, paymentMethod string, paidAt time.Time) error
}

type Library interface {
	// ListProducts returns the whole catalog ordered by solution, product.
	ListProducts(ctx context.Context) ([]domain.LibraryProduct, error)

	// GetProduct returns the catalog row for (solution, product).
	GetProduct(ctx context.Context, solution, product string) (domain.LibraryProduct, error)

	// CreateProduct inserts a catalog row.
	CreateProduct(ctx context.Context, p domain.LibraryProduct) error

	// UpdateProduct overwrites a catalog row by id.
	UpdateProduct(ctx context.Context, p domain.LibraryProduct) error

	// DeleteProduct removes a catalog row by id.
	DeleteProduct(ctx context.Context, id string) error
}
