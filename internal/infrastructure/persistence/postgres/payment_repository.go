package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/payment-records/internal/domain"
	"github.com/jackc/pgx/v5"
)

var ErrDuplicatePaymentID = errors.New("payment ID already exists")

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, amount, currency, created_at)
		VALUES ($1, $2, $3, $4)
	`

	p := toDBModel(payment)
	_, err := r.db.Pool.Exec(ctx, query, p.ID, p.Amount, p.Currency, p.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicatePaymentID, p.ID)
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// FindByID retrieves a payment. Returns domain.ErrPaymentNotFound if no row matches.
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `
		SELECT id, amount, currency, created_at
		FROM payments WHERE id = $1
	`

	var m PaymentModel
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Amount, &m.Currency, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	return toDomainModel(m), nil
}

// Scan returns one window of payments ordered by creation, plus the number of
// payments matching the filter.
func (r *PaymentRepository) Scan(ctx context.Context, filter domain.ListFilter) (*domain.PaymentPage, error) {
	countQuery := `
		SELECT COUNT(*) FROM payments
		WHERE ($1::text = '' OR currency = $1::text)
	`
	pageQuery := `
		SELECT id, amount, currency, created_at
		FROM payments
		WHERE ($1::text = '' OR currency = $1::text)
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`

	var total int
	if err := r.db.Pool.QueryRow(ctx, countQuery, filter.Currency).Scan(&total); err != nil {
		return nil, fmt.Errorf("count payments: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, pageQuery, filter.Currency, filter.Limit, filter.Skip)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Payment, error) {
		var m PaymentModel
		err := row.Scan(&m.ID, &m.Amount, &m.Currency, &m.CreatedAt)
		return toDomainModel(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payments: %w", err)
	}

	return &domain.PaymentPage{Items: items, Total: total}, nil
}
