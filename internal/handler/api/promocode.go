package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "promo-code-service/internal/handler/dto/request"
	resdto "promo-code-service/internal/handler/dto/response"
	"promo-code-service/internal/handler/httperr"
	"promo-code-service/internal/usecase/commands"
	"promo-code-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoCodeHandler struct {
	cmds commands.PromoCodeCommands
	q    queries.PromoCodeQueries
}

func NewPromoCodeHandler(cmds commands.PromoCodeCommands, q queries.PromoCodeQueries) *PromoCodeHandler {
	return &PromoCodeHandler{cmds: cmds, q: q}
}

// @Summary Generate promo code
// @Description Issue a new single-use promo code for a lead
// @Tags promocodes
// @Accept json
// @Produce json
// @Param request body reqdto.GenerateRequest true "Lead details"
// @Success 201 {object} resdto.GenerateResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/generate [post]
func (h *PromoCodeHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_input", "Invalid request", nil)
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIssueResult(result))
}

// @Summary Validate promo code
// @Description Look up a code's status without changing it
// @Tags promocodes
// @Produce json
// @Param code path string true "Promo code"
// @Success 200 {object} resdto.ValidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/validate/{code} [get]
func (h *PromoCodeHandler) ValidateByPath(c *gin.Context) {
	h.validate(c, c.Param("code"))
}

// @Summary Validate promo code
// @Description Look up a code's status without changing it
// @Tags promocodes
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateRequest true "Code to validate"
// @Success 200 {object} resdto.ValidateResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/validate [post]
func (h *PromoCodeHandler) ValidateByBody(c *gin.Context) {
	var req reqdto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_input", "Invalid request", nil)
		return
	}
	h.validate(c, req.Code)
}

func (h *PromoCodeHandler) validate(c *gin.Context, code string) {
	result, err := h.q.Validate(c.Request.Context(), code)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}

// @Summary Redeem promo code
// @Description Mark a code as used. Only the first redemption succeeds.
// @Tags promocodes
// @Accept json
// @Produce json
// @Param code path string true "Promo code"
// @Param request body reqdto.RedeemRequest false "Redeeming agent"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/use/{code} [post]
func (h *PromoCodeHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_input", "Invalid request", nil)
			return
		}
	}

	result, err := h.cmds.Redeem(c.Request.Context(), c.Param("code"), req.UsedBy)
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

// @Summary List promo codes
// @Description All issued codes, newest first
// @Tags promocodes
// @Produce json
// @Success 200 {object} resdto.ListResponse
// @Failure 503 {object} httperr.Response
// @Router /api/promocodes [get]
func (h *PromoCodeHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ListResponse{
		Success: true,
		Data:    resdto.FromPromoCodeList(items),
		Count:   len(items),
	})
}

// @Summary Promo code statistics
// @Tags promocodes
// @Produce json
// @Success 200 {object} resdto.StatsResponse
// @Failure 503 {object} httperr.Response
// @Router /api/stats [get]
func (h *PromoCodeHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		httperr.AbortWithEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStats(stats))
}
