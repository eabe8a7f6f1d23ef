// Package identifiergen issues business identifiers (AWB, bag and manifest
// numbers) with database-backed uniqueness. A candidate is generated from the
// issue date plus random digits, then claimed by inserting it into the issued
// identifiers table; a duplicate insert means another writer claimed the same
// candidate first and the generator retries with a fresh one.
package identifiergen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"exportflow/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxAttempts = 10

// IssuedIdentifierDTO records every identifier ever handed out. The value is
// the primary key, so the insert is the uniqueness claim.
type IssuedIdentifierDTO struct {
	Value    string `gorm:"primaryKey"`
	Kind     string `gorm:"index"`
	IssuedAt time.Time
}

// TableName specifies the database table name for issued identifiers.
func (IssuedIdentifierDTO) TableName() string {
	return "issued_identifiers"
}

// GormIdentifierGenerator implements IdentifierGenerator using GORM.
type GormIdentifierGenerator struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormIdentifierGenerator creates a database-backed identifier generator.
func NewGormIdentifierGenerator(db *gorm.DB) *GormIdentifierGenerator {
	return &GormIdentifierGenerator{
		db:  db,
		now: time.Now,
	}
}

// IssueAWB returns a fresh air waybill number: "DH" + issue date + five
// random digits.
func (g *GormIdentifierGenerator) IssueAWB(ctx context.Context) (string, error) {
	return g.issue(ctx, "awb", func(date string) string {
		return fmt.Sprintf("DH%s%05d", date, rand.IntN(100000))
	})
}

// IssueBagNumber returns a fresh bag number: "BG" + issue date + four random
// digits.
func (g *GormIdentifierGenerator) IssueBagNumber(ctx context.Context) (string, error) {
	return g.issue(ctx, "bag", func(date string) string {
		return fmt.Sprintf("BG%s%04d", date, rand.IntN(10000))
	})
}

// IssueManifestNumber returns a fresh manifest number: "MF" + issue date +
// four random digits.
func (g *GormIdentifierGenerator) IssueManifestNumber(ctx context.Context) (string, error) {
	return g.issue(ctx, "manifest", func(date string) string {
		return fmt.Sprintf("MF%s%04d", date, rand.IntN(10000))
	})
}

func (g *GormIdentifierGenerator) issue(ctx context.Context, kind string, candidate func(date string) string) (string, error) {
	date := g.now().UTC().Format("20060102")

	for attempt := 0; attempt < maxAttempts; attempt++ {
		value := candidate(date)

		result := g.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&IssuedIdentifierDTO{
				Value:    value,
				Kind:     kind,
				IssuedAt: g.now(),
			})
		if result.Error != nil {
			return "", result.Error
		}
		if result.RowsAffected == 1 {
			return value, nil
		}
		// Candidate already claimed, try another.
	}

	return "", ports.ErrIdentifierExhausted
}
