package promocode

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrAlreadyUsed          = errors.New("promo code already used")
	ErrEmptyUsedBy          = errors.New("usedBy is required to redeem a promo code")
	ErrInconsistentRedeemed = errors.New("usedBy and usedAt must be set together with status used")
)

type PromoCode struct {
	code      Code
	lead      Lead
	createdAt time.Time
	status    Status
	usedBy    *string
	usedAt    *time.Time
}

// New builds a freshly issued, unused promo code.
func New(code Code, lead Lead, createdAt time.Time) *PromoCode {
	return &PromoCode{
		code:      code,
		lead:      lead,
		createdAt: createdAt,
		status:    StatusUnused,
	}
}

// Reconstruct rebuilds a persisted promo code and rejects records that break
// the redemption invariants.
func Reconstruct(
	code string,
	leadName, productInterest, contact string,
	createdAt time.Time,
	status string,
	usedBy *string,
	usedAt *time.Time,
) (*PromoCode, error) {
	c, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	st, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	redeemed := usedBy != nil && usedAt != nil
	pristine := usedBy == nil && usedAt == nil
	if (st == StatusUsed && !redeemed) || (st == StatusUnused && !pristine) {
		return nil, ErrInconsistentRedeemed
	}

	return &PromoCode{
		code: c,
		lead: Lead{
			name:            leadName,
			productInterest: productInterest,
			contact:         contact,
		},
		createdAt: createdAt,
		status:    st,
		usedBy:    usedBy,
		usedAt:    usedAt,
	}, nil
}

// MarkUsed performs the only allowed transition, unused -> used.
func (p *PromoCode) MarkUsed(usedBy string, at time.Time) error {
	if p.status == StatusUsed {
		return ErrAlreadyUsed
	}
	usedBy = strings.TrimSpace(usedBy)
	if usedBy == "" {
		return ErrEmptyUsedBy
	}

	p.status = StatusUsed
	p.usedBy = &usedBy
	p.usedAt = &at
	return nil
}

func (p *PromoCode) IsUsed() bool { return p.status == StatusUsed }

func (p *PromoCode) Code() Code              { return p.code }
func (p *PromoCode) Lead() Lead              { return p.lead }
func (p *PromoCode) CreatedAt() time.Time    { return p.createdAt }
func (p *PromoCode) Status() Status          { return p.status }
func (p *PromoCode) UsedBy() *string         { return p.usedBy }
func (p *PromoCode) UsedAt() *time.Time      { return p.usedAt }
func (p *PromoCode) LeadName() string        { return p.lead.name }
func (p *PromoCode) ProductInterest() string { return p.lead.productInterest }
func (p *PromoCode) Contact() string         { return p.lead.contact }
