//go:build unit || e2e

package builder

import (
	"time"

	"promo-code-service/internal/domain/promocode"
	reqdto "promo-code-service/internal/handler/dto/request"
)

type PromoCodeBuilder struct {
	Code            string
	LeadName        string
	ProductInterest string
	Contact         string
	CreatedAt       time.Time
	UsedBy          *string
	UsedAt          *time.Time
}

func NewPromoCodeBuilder() *PromoCodeBuilder {
	return &PromoCodeBuilder{
		Code:            "PROMO-AB2C-D3EF",
		LeadName:        "Jane Doe",
		ProductInterest: "Premium Plan",
		Contact:         "jane@example.com",
		CreatedAt:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PromoCodeBuilder) With(mutate func(*PromoCodeBuilder)) *PromoCodeBuilder {
	mutate(b)
	return b
}

func (b *PromoCodeBuilder) Used(by string, at time.Time) *PromoCodeBuilder {
	b.UsedBy = &by
	b.UsedAt = &at
	return b
}

// Build methods
func (b *PromoCodeBuilder) BuildDomain() *promocode.PromoCode {
	status := promocode.StatusUnused.String()
	if b.UsedBy != nil {
		status = promocode.StatusUsed.String()
	}
	pc, err := promocode.Reconstruct(b.Code, b.LeadName, b.ProductInterest, b.Contact, b.CreatedAt, status, b.UsedBy, b.UsedAt)
	if err != nil {
		panic(err)
	}
	return pc
}

func (b *PromoCodeBuilder) BuildGenerateRequestDTO() reqdto.GenerateRequest {
	return reqdto.GenerateRequest{
		LeadName:        b.LeadName,
		ProductInterest: b.ProductInterest,
		Contact:         b.Contact,
	}
}
