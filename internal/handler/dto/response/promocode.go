package response

import (
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/usecase/commands"
	"promo-code-service/internal/usecase/queries"
	"promo-code-service/internal/usecase/shared"
)

type PromoCodeResponse struct {
	Code            string     `json:"code"`
	LeadName        string     `json:"leadName"`
	ProductInterest string     `json:"productInterest"`
	Contact         string     `json:"contact"`
	CreatedAt       time.Time  `json:"createdAt"`
	Status          string     `json:"status"`
	UsedBy          *string    `json:"usedBy,omitempty"`
	UsedAt          *time.Time `json:"usedAt,omitempty"`
}

func FromPromoCode(pc *promocode.PromoCode) *PromoCodeResponse {
	if pc == nil {
		return nil
	}
	return &PromoCodeResponse{
		Code:            pc.Code().String(),
		LeadName:        pc.LeadName(),
		ProductInterest: pc.ProductInterest(),
		Contact:         pc.Contact(),
		CreatedAt:       pc.CreatedAt(),
		Status:          pc.Status().String(),
		UsedBy:          pc.UsedBy(),
		UsedAt:          pc.UsedAt(),
	}
}

func FromPromoCodeList(items []*promocode.PromoCode) []*PromoCodeResponse {
	res := make([]*PromoCodeResponse, len(items))
	for i, it := range items {
		res[i] = FromPromoCode(it)
	}
	return res
}

type GenerateResponse struct {
	Success bool               `json:"success"`
	Code    string             `json:"code"`
	Record  *PromoCodeResponse `json:"record"`
}

func FromIssueResult(r *commands.IssueResult) *GenerateResponse {
	return &GenerateResponse{
		Success: true,
		Code:    r.PromoCode.Code().String(),
		Record:  FromPromoCode(r.PromoCode),
	}
}

type ValidateResponse struct {
	Valid   bool               `json:"valid"`
	Reason  string             `json:"reason,omitempty"`
	Message string             `json:"message"`
	UsedBy  *string            `json:"usedBy,omitempty"`
	UsedAt  *time.Time         `json:"usedAt,omitempty"`
	Record  *PromoCodeResponse `json:"record,omitempty"`
}

func FromValidationResult(r *queries.ValidationResult) *ValidateResponse {
	switch r.Outcome {
	case queries.ValidationValid:
		return &ValidateResponse{
			Valid:   true,
			Message: "Promo code is valid",
			Record:  FromPromoCode(r.PromoCode),
		}
	case queries.ValidationAlreadyUsed:
		return &ValidateResponse{
			Reason:  string(r.Outcome),
			Message: "Promo code has already been used",
			UsedBy:  r.PromoCode.UsedBy(),
			UsedAt:  r.PromoCode.UsedAt(),
			Record:  FromPromoCode(r.PromoCode),
		}
	default:
		return &ValidateResponse{
			Reason:  string(queries.ValidationNotFound),
			Message: "Invalid promo code",
		}
	}
}

type RedeemResponse struct {
	Success bool               `json:"success"`
	Result  string             `json:"result"`
	Message string             `json:"message"`
	Record  *PromoCodeResponse `json:"record,omitempty"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	resp := &RedeemResponse{
		Success: r.Result == shared.MarkRedeemed,
		Result:  r.Result.String(),
		Record:  FromPromoCode(r.PromoCode),
	}
	switch r.Result {
	case shared.MarkRedeemed:
		resp.Message = "Promo code marked as used"
	case shared.MarkAlreadyUsed:
		resp.Message = "Promo code has already been used"
	default:
		resp.Message = "Invalid promo code"
	}
	return resp
}

type ListResponse struct {
	Success bool                 `json:"success"`
	Data    []*PromoCodeResponse `json:"data"`
	Count   int                  `json:"count"`
}

type StatsBody struct {
	Total     int64 `json:"total"`
	Used      int64 `json:"used"`
	Available int64 `json:"available"`
}

type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   StatsBody `json:"stats"`
}

func FromStats(s shared.PromoCodeStats) *StatsResponse {
	return &StatsResponse{
		Success: true,
		Stats:   StatsBody{Total: s.Total, Used: s.Used, Available: s.Available},
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Backend   string    `json:"backend"`
	Reachable bool      `json:"reachable"`
	Timestamp time.Time `json:"timestamp"`
}

func FromHealthReport(r queries.HealthReport, service string) *HealthResponse {
	status := "ok"
	if !r.Reachable {
		status = "unavailable"
	}
	return &HealthResponse{
		Status:    status,
		Service:   service,
		Backend:   r.Backend,
		Reachable: r.Reachable,
		Timestamp: r.CheckedAt,
	}
}
