package kvstore

import (
	"encoding/json"
	"time"

	"promo-code-service/internal/domain/promocode"
)

// record is the JSON document stored under each code's hash field.
type record struct {
	Code            string     `json:"code"`
	LeadName        string     `json:"leadName"`
	ProductInterest string     `json:"productInterest"`
	Contact         string     `json:"contact"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          string     `json:"status"`
	UsedBy          *string    `json:"usedBy,omitempty"`
	UsedAt          *time.Time `json:"usedAt,omitempty"`
}

func encode(pc *promocode.PromoCode) (string, error) {
	b, err := json.Marshal(record{
		Code:            pc.Code().String(),
		LeadName:        pc.LeadName(),
		ProductInterest: pc.ProductInterest(),
		Contact:         pc.Contact(),
		CreatedAt:       pc.CreatedAt().UTC(),
		Status:          pc.Status().String(),
		UsedBy:          pc.UsedBy(),
		UsedAt:          pc.UsedAt(),
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decode(raw string) (*promocode.PromoCode, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}
	var usedAt *time.Time
	if rec.UsedAt != nil {
		t := rec.UsedAt.UTC()
		usedAt = &t
	}
	return promocode.Reconstruct(
		rec.Code,
		rec.LeadName,
		rec.ProductInterest,
		rec.Contact,
		rec.CreatedAt.UTC(),
		rec.Status,
		rec.UsedBy,
		usedAt,
	)
}
