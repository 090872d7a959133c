package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
	"github.com/mattcann1/ccx-marketplace-api/internal/core/security"
)

// LedgerRepository owns the append-only transaction trail and runs the
// purchase flow against it.
type LedgerRepository struct {
	Db *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{Db: db}
}

const insertTransactionSQL = `
	INSERT INTO transactions
		(id, credit_id, buyer_id, quantity, price_per_ton, total_cost, status, transaction_hash, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Purchase buys quantity tons of a credit for buyerID. The stock decrement and
// the ledger append run in one database transaction: either both commit or
// neither does, so quantity_available never drifts from the sum of recorded
// purchases.
func (r *LedgerRepository) Purchase(ctx context.Context, creditID string, quantity int64, buyerID string) (*domain.CreditTransaction, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	tx, err := r.Db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin purchase: %w", err)
	}
	defer tx.Rollback(ctx)

	// Atomic check-and-decrement; errors propagate unclamped.
	credit, err := reserveCredit(ctx, tx, creditID, quantity)
	if err != nil {
		return nil, err
	}

	// Postgres keeps microseconds, so truncate now: the stored timestamp must
	// reproduce the exact bytes the hash was computed over.
	record := &domain.CreditTransaction{
		ID:          uuid.New(),
		CreditID:    credit.ID,
		BuyerID:     buyerID,
		Quantity:    quantity,
		PricePerTon: credit.PricePerTon,
		TotalCost:   credit.TotalFor(quantity),
		Status:      domain.StatusCompleted,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}
	record.Hash = security.FingerprintTransaction(record)

	_, err = tx.Exec(ctx, insertTransactionSQL,
		record.ID, record.CreditID, record.BuyerID, record.Quantity,
		record.PricePerTon, record.TotalCost, record.Status, record.Hash, record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		// A failed commit aborts the reservation together with the append, but
		// the server-side outcome is unknown. Flag it loudly for reconciliation.
		slog.Error("‼️ Purchase commit failed, ledger may need manual reconciliation",
			"error", err, "credit_id", creditID, "buyer_id", buyerID, "quantity", quantity)
		return nil, fmt.Errorf("purchase commit failed: %w", err)
	}

	return record, nil
}

const transactionColumns = `id, credit_id, buyer_id, quantity, price_per_ton, total_cost, status, transaction_hash, created_at`

func scanTransactions(rows pgx.Rows) ([]*domain.CreditTransaction, error) {
	defer rows.Close()
	var list []*domain.CreditTransaction
	for rows.Next() {
		var t domain.CreditTransaction
		err := rows.Scan(&t.ID, &t.CreditID, &t.BuyerID, &t.Quantity,
			&t.PricePerTon, &t.TotalCost, &t.Status, &t.Hash, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		// The trail is tamper-evident: a stored row whose contents no longer
		// match its hash is surfaced, never silently returned.
		if err := security.VerifyTransaction(&t); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListTransactions returns the full trail in insertion (chronological) order.
func (r *LedgerRepository) ListTransactions(ctx context.Context) ([]*domain.CreditTransaction, error) {
	rows, err := r.Db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return scanTransactions(rows)
}

// ListTransactionsByBuyer returns one buyer's purchases, oldest first.
func (r *LedgerRepository) ListTransactionsByBuyer(ctx context.Context, buyerID string) ([]*domain.CreditTransaction, error) {
	rows, err := r.Db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE buyer_id = $1 ORDER BY created_at, id`, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return scanTransactions(rows)
}

// QueueWebhookJob enqueues a payload for the background webhook worker.
func (r *LedgerRepository) QueueWebhookJob(ctx context.Context, url string, payload []byte) error {
	_, err := r.Db.Exec(ctx,
		`INSERT INTO webhook_jobs (url, payload) VALUES ($1, $2)`, url, payload)
	if err != nil {
		return fmt.Errorf("failed to queue webhook job: %w", err)
	}
	return nil
}
