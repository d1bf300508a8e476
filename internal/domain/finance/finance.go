// Package finance derives commission records from signed deals.
package finance

import (
	"errors"
	"math"
	"strings"
	"time"

	"solar_portal/internal/domain/entities"
)

// DefaultCommissionRate applies until an admin sets another rate.
const DefaultCommissionRate = 0.10

const recordIDPrefix = "fin-"

var (
	ErrInvalidRate      = errors.New("commission rate must be between 0 and 1")
	ErrInvalidPrice     = errors.New("final price must be positive")
	ErrMissingWinner    = errors.New("winning installer is required")
	ErrMissingProject   = errors.New("project id is required")
	ErrAlreadyCollected = errors.New("commission already collected")
)

func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || rate <= 0 || rate >= 1 {
		return ErrInvalidRate
	}
	return nil
}

// RecordID is derived from the project id so a project can own at most one
// record; storage enforces uniqueness on it.
func RecordID(projectID string) string {
	return recordIDPrefix + projectID
}

func CommissionAmount(finalPrice, rate float64) float64 {
	return math.Round(finalPrice*rate*100) / 100
}

// RecordSigning builds the commission record for a deal. It depends only on
// its arguments: rate is the value in effect at signing and is copied into
// the record.
func RecordSigning(p entities.Project, finalPrice float64, winningInstallerID string, rate float64, signedAt time.Time) (entities.FinancialRecord, error) {
	if strings.TrimSpace(p.ID) == "" {
		return entities.FinancialRecord{}, ErrMissingProject
	}
	if strings.TrimSpace(winningInstallerID) == "" {
		return entities.FinancialRecord{}, ErrMissingWinner
	}
	if math.IsNaN(finalPrice) || finalPrice <= 0 {
		return entities.FinancialRecord{}, ErrInvalidPrice
	}
	if err := ValidateRate(rate); err != nil {
		return entities.FinancialRecord{}, err
	}

	return entities.FinancialRecord{
		ID:               RecordID(p.ID),
		ProjectID:        p.ID,
		ProjectCity:      p.Address.City,
		InstallerID:      winningInstallerID,
		FinalPrice:       finalPrice,
		CommissionRate:   rate,
		CommissionAmount: CommissionAmount(finalPrice, rate),
		Status:           entities.FinancialRecordStatusPending,
		SignedAt:         signedAt.UTC(),
	}, nil
}

// MarkCollected flips a pending record to paid. reference is the payment
// provider id when the commission went through the gateway, empty otherwise.
func MarkCollected(rec entities.FinancialRecord, paidAt time.Time, reference string) (entities.FinancialRecord, error) {
	if rec.Status == entities.FinancialRecordStatusPaid {
		return rec, ErrAlreadyCollected
	}
	at := paidAt.UTC()
	rec.Status = entities.FinancialRecordStatusPaid
	rec.PaidAt = &at
	rec.PaymentReference = reference
	return rec, nil
}
