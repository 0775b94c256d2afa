package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/domain/repository"
)

// PgxPool is the subset of pgxpool.Pool the storage uses; tests substitute a
// pgxmock pool through it.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            site TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            supplier TEXT NOT NULL,
            description TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            submitter TEXT NOT NULL,
            site TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            status TEXT NOT NULL DEFAULT 'pending',
            approver TEXT,
            approved_at TIMESTAMPTZ,
            submitter_emp_number TEXT NOT NULL,
            submitter_emp_name TEXT NOT NULL,
            approver_emp_number TEXT,
            approver_emp_name TEXT
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_site_role ON users(site, role)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_site ON orders(site, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_pending ON orders(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

const userColumns = `id, username, email, password_hash, role, site, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Site, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash, role, site)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *user
	err := r.storage.pool.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.Role, user.Site).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) FindBySiteAndRole(ctx context.Context, site string, role model.Role) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE site=$1 AND role=$2 ORDER BY id LIMIT 1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, site, role))
}

func (r *userRepository) FindByEmailAndSite(ctx context.Context, email, site string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1 AND site=$2 ORDER BY id LIMIT 1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email, site))
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$1 WHERE username=$2`
	tag, err := r.storage.pool.Exec(ctx, query, passwordHash, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, supplier, description, amount, submitter, site, created_at, status,
                      approver, approved_at, submitter_emp_number, submitter_emp_name,
                      approver_emp_number, approver_emp_name`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Supplier, &o.Description, &o.Amount, &o.Submitter, &o.Site,
		&o.CreatedAt, &o.Status, &o.Approver, &o.ApprovedAt,
		&o.SubmitterEmpNumber, &o.SubmitterEmpName, &o.ApproverEmpNumber, &o.ApproverEmpName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (supplier, description, amount, submitter, site, status,
                                       submitter_emp_number, submitter_emp_name)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at`
	created := *order
	err := r.storage.pool.QueryRow(ctx, query,
		order.Supplier, order.Description, order.Amount, order.Submitter, order.Site,
		order.Status, order.SubmitterEmpNumber, order.SubmitterEmpName).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListBySite(ctx context.Context, site string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE site=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

// Decide is the race guard: the update is conditioned on the order still
// being pending, so the losing side of two concurrent decisions observes
// zero affected rows and is told the order was already processed.
func (r *orderRepository) Decide(ctx context.Context, orderID int64, decision model.Decision) (*model.Order, error) {
	const query = `UPDATE orders
                   SET status=$1, approver=$2, approved_at=$3,
                       approver_emp_number=$4, approver_emp_name=$5
                   WHERE id=$6 AND status='pending'
                   RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query,
		decision.Status, decision.Approver, decision.DecidedAt,
		decision.EmpNumber, decision.EmpName, orderID))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	// No pending row matched: distinguish a missing order from a lost race.
	if _, getErr := r.GetByID(ctx, orderID); getErr != nil {
		return nil, getErr
	}
	return nil, domainErrors.ErrAlreadyProcessed
}

func (r *orderRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE status='pending' AND created_at < $1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
