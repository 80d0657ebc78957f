package request

import "promo-code-service/internal/usecase/commands"

type GenerateRequest struct {
	LeadName        string `json:"leadName" binding:"required,max=200"`
	ProductInterest string `json:"productInterest" binding:"required,max=200"`
	Contact         string `json:"contact" binding:"required,max=320"`
}

func (r *GenerateRequest) ToCommand() commands.IssueRequest {
	return commands.IssueRequest{
		LeadName:        r.LeadName,
		ProductInterest: r.ProductInterest,
		Contact:         r.Contact,
	}
}

type ValidateRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}

// RedeemRequest is optional; an empty usedBy falls back to the configured label.
type RedeemRequest struct {
	UsedBy string `json:"usedBy" binding:"max=200"`
}
