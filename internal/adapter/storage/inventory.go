package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

// InventoryRepository is the unit of truth for credit stock.
type InventoryRepository struct {
	Db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{Db: db}
}

const creditColumns = `id, project_name, supplier, credit_type, vintage, total_issued,
	quantity_available, price_per_ton, location, verification_status, methodology,
	public_details, private_details, created_at, updated_at`

// reserveSQL is the single stock-mutating statement in the whole service. The
// quantity check and the decrement happen in one conditional UPDATE, so two
// concurrent purchases can never both win the same stock.
const reserveSQL = `
	UPDATE carbon_credits
	SET quantity_available = quantity_available - $1, updated_at = NOW()
	WHERE id = $2 AND quantity_available >= $1
	RETURNING ` + creditColumns

// rowQuerier lets the reserve statement run on the pool or inside a pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanCredit(row pgx.Row) (*domain.CarbonCredit, error) {
	var c domain.CarbonCredit
	err := row.Scan(
		&c.ID, &c.ProjectName, &c.Supplier, &c.CreditType, &c.Vintage, &c.TotalIssued,
		&c.QuantityAvailable, &c.PricePerTon, &c.Location, &c.VerificationStatus, &c.Methodology,
		&c.PublicDetails, &c.PrivateDetails, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// reserveCredit runs the conditional decrement and turns the "no row" outcome
// into the right domain error: unknown id vs. not enough stock.
func reserveCredit(ctx context.Context, q rowQuerier, creditID string, quantity int64) (*domain.CarbonCredit, error) {
	credit, err := scanCredit(q.QueryRow(ctx, reserveSQL, quantity, creditID))
	if err == nil {
		return credit, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reserve failed: %w", err)
	}

	// The UPDATE matched nothing. Figure out which error to report.
	var available int64
	err = q.QueryRow(ctx, `SELECT quantity_available FROM carbon_credits WHERE id = $1`, creditID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reserve failed: %w", err)
	}
	return nil, domain.ErrInsufficientStock
}

// GetCredit fetches a single credit by id.
func (r *InventoryRepository) GetCredit(ctx context.Context, creditID string) (*domain.CarbonCredit, error) {
	query := `SELECT ` + creditColumns + ` FROM carbon_credits WHERE id = $1`
	credit, err := scanCredit(r.Db.QueryRow(ctx, query, creditID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCreditNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credit: %w", err)
	}
	return credit, nil
}

// ListCredits fetches all credits in stable id order. Exhausted credits stay
// in the listing.
func (r *InventoryRepository) ListCredits(ctx context.Context) ([]*domain.CarbonCredit, error) {
	query := `SELECT ` + creditColumns + ` FROM carbon_credits ORDER BY id`
	rows, err := r.Db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list credits: %w", err)
	}
	defer rows.Close()

	var credits []*domain.CarbonCredit
	for rows.Next() {
		credit, err := scanCredit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit: %w", err)
		}
		credits = append(credits, credit)
	}
	return credits, rows.Err()
}

// TotalAvailable sums the remaining stock across every credit.
func (r *InventoryRepository) TotalAvailable(ctx context.Context) (int64, error) {
	var total int64
	err := r.Db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_available), 0) FROM carbon_credits`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum available credits: %w", err)
	}
	return total, nil
}

// Reserve atomically takes quantity tons off a credit's stock and returns the
// post-decrement record. Reports ErrCreditNotFound or ErrInsufficientStock;
// the requested amount is never clamped.
func (r *InventoryRepository) Reserve(ctx context.Context, creditID string, quantity int64) (*domain.CarbonCredit, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return reserveCredit(ctx, r.Db, creditID, quantity)
}
