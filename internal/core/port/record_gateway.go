package port

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"spotplan/internal/core/domain"
)

var (
	ErrInvalidRecordID   = errors.New("invalid record id")
	ErrRecordStore       = errors.New("record store error")
	ErrMissingCredential = errors.New("record store credential is not configured")
)

// RecordStoreError describes a failed call to the record store. Detail holds
// the best effort message extracted from the response body and Hint a short
// operator facing suggestion.
type RecordStoreError struct {
	Op     string
	Status int
	Detail string
	Hint   string
}

func (e *RecordStoreError) Error() string {
	msg := fmt.Sprintf("%s: status %d", e.Op, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *RecordStoreError) Unwrap() error { return ErrRecordStore }

// NormalizeRecordID accepts a record id as 32 hexadecimal characters or as a
// dashed UUID and returns the 32 character form.
func NormalizeRecordID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if len(id) != 32 && len(id) != 36 {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecordID, id)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidRecordID, id)
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}

// RecordGateway is the outbound port to the document database that stores
// campaigns. Implementations hide the external property schema entirely.
type RecordGateway interface {
	// Fetch returns the campaign with every missing field defaulted.
	Fetch(ctx context.Context, id string) (*domain.CampaignRecord, error)
	// Update applies the non nil fields of patch to the stored record.
	Update(ctx context.Context, id string, patch RecordPatch) error
}

// RecordPatch is a partial campaign update. Nil fields are left untouched.
type RecordPatch struct {
	Quantities         domain.Quantities
	PeriodStart        *time.Time
	PeriodEnd          *time.Time
	Weekdays           []time.Weekday
	CustomDistribution *string
}

// Empty reports whether the patch changes nothing.
func (p RecordPatch) Empty() bool {
	return p.Quantities == nil && p.PeriodStart == nil && p.PeriodEnd == nil &&
		p.Weekdays == nil && p.CustomDistribution == nil
}
