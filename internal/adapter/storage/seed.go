package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mattcann1/ccx-marketplace-api/internal/core/domain"
)

// sampleCredits is the demo inventory loaded on first boot. Credits are only
// ever created at seed/ingest time; purchases decrement them, nothing deletes
// them.
func sampleCredits() []*domain.CarbonCredit {
	return []*domain.CarbonCredit{
		{
			ID:                 "CC-001",
			ProjectName:        "Amazon Rainforest Conservation",
			Supplier:           "Rainforest Trust",
			CreditType:         "Forestry",
			Vintage:            2023,
			TotalIssued:        5000,
			QuantityAvailable:  5000,
			PricePerTon:        decimal.NewFromFloat(25.50),
			Location:           "Brazil",
			VerificationStatus: "Verified",
			Methodology:        "VM0015",
			PublicDetails: map[string]any{
				"project_area_ha": 12000,
				"co_benefits":     []string{"biodiversity", "community employment"},
			},
			PrivateDetails: map[string]any{
				"supplier_contact": "contracts@rainforesttrust.example",
				"audit_notes":      "Q3 site visit complete, no findings",
				"reserve_price":    22.00,
			},
		},
		{
			ID:                 "CC-002",
			ProjectName:        "Gujarat Solar Park",
			Supplier:           "SunGrid Energy",
			CreditType:         "Renewable Energy",
			Vintage:            2024,
			TotalIssued:        8000,
			QuantityAvailable:  8000,
			PricePerTon:        decimal.NewFromFloat(14.75),
			Location:           "India",
			VerificationStatus: "Verified",
			Methodology:        "ACM0002",
			PublicDetails: map[string]any{
				"capacity_mw":     750,
				"grid_connection": "2023-11",
			},
			PrivateDetails: map[string]any{
				"supplier_contact": "ops@sungrid.example",
				"audit_notes":      "Metering data reconciled monthly",
				"reserve_price":    12.00,
			},
		},
		{
			ID:                 "CC-003",
			ProjectName:        "Icelandic Direct Air Capture",
			Supplier:           "NorthCapture",
			CreditType:         "Engineered Removal",
			Vintage:            2024,
			TotalIssued:        1200,
			QuantityAvailable:  1200,
			PricePerTon:        decimal.NewFromFloat(310.00),
			Location:           "Iceland",
			VerificationStatus: "Pending",
			Methodology:        "Puro.earth Geologically Stored Carbon",
			PublicDetails: map[string]any{
				"storage_type":     "basalt mineralization",
				"durability_years": 10000,
			},
			PrivateDetails: map[string]any{
				"supplier_contact": "sales@northcapture.example",
				"audit_notes":      "Verification audit scheduled",
				"reserve_price":    280.00,
			},
		},
	}
}

// SeedSampleData populates the inventory on an empty database. A database
// that already has credits is left untouched.
func SeedSampleData(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM carbon_credits`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing credits: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO carbon_credits
			(id, project_name, supplier, credit_type, vintage, total_issued, quantity_available,
			 price_per_ton, location, verification_status, methodology, public_details, private_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	for _, c := range sampleCredits() {
		_, err := db.Exec(ctx, query,
			c.ID, c.ProjectName, c.Supplier, c.CreditType, c.Vintage, c.TotalIssued,
			c.QuantityAvailable, c.PricePerTon, c.Location, c.VerificationStatus,
			c.Methodology, c.PublicDetails, c.PrivateDetails,
		)
		if err != nil {
			return fmt.Errorf("failed to seed credit %s: %w", c.ID, err)
		}
	}

	slog.Info("🌱 Sample credits seeded", "count", len(sampleCredits()))
	return nil
}
