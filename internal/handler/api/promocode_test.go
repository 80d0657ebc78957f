//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"promo-code-service/internal/domain/promocode"
	"promo-code-service/internal/handler/api"
	resdto "promo-code-service/internal/handler/dto/response"
	"promo-code-service/internal/handler/middleware"
	"promo-code-service/internal/infra"
	"promo-code-service/internal/pkg/errs"
	"promo-code-service/internal/usecase/commands"
	"promo-code-service/internal/usecase/queries"
	"promo-code-service/internal/usecase/shared"
	"promo-code-service/tests/common/builder"
	"promo-code-service/tests/common/httptest"
	"promo-code-service/tests/common/testutil"
	commandsmock "promo-code-service/tests/mock/commands"
	queriesmock "promo-code-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PromoCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPromoCodeCommands
	mockQueries  *queriesmock.MockPromoCodeQueries
	handler      *api.PromoCodeHandler
}

func (s *PromoCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPromoCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPromoCodeQueries(s.mockCtrl)
	s.handler = api.NewPromoCodeHandler(s.mockCommands, s.mockQueries)
	health := api.NewHealthHandler(s.mockQueries)

	s.router.POST("/api/generate", s.handler.Generate)
	s.router.GET("/api/validate/:code", s.handler.ValidateByPath)
	s.router.POST("/api/validate", s.handler.ValidateByBody)
	s.router.POST("/api/use/:code", s.handler.Redeem)
	s.router.GET("/api/promocodes", s.handler.List)
	s.router.GET("/api/stats", s.handler.Stats)
	s.router.GET("/api/health", health.Check)
}

func (s *PromoCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPromoCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PromoCodeHandlerTestSuite))
}

type testCasePromo struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestGenerate
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestGenerate() {
	url := "/api/generate"
	b := builder.NewPromoCodeBuilder()
	reqBody := b.BuildGenerateRequestDTO()
	issued := &commands.IssueResult{PromoCode: b.BuildDomain(), Attempts: 1}

	s.Run("success: returns 201 with code and record", func() {
		s.mockCommands.EXPECT().Issue(gomock.Any(), commands.IssueRequest{
			LeadName:        "Jane Doe",
			ProductInterest: "Premium Plan",
			Contact:         "jane@example.com",
		}).Return(issued, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.GenerateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal("PROMO-AB2C-D3EF", body.Code)
		s.Equal("unused", body.Record.Status)
		s.Equal("Jane Doe", body.Record.LeadName)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []testCasePromo{
			{name: "missing leadName", mutate: testutil.Field("leadName", nil), expectCode: http.StatusBadRequest},
			{name: "missing productInterest", mutate: testutil.Field("productInterest", nil), expectCode: http.StatusBadRequest},
			{name: "missing contact", mutate: testutil.Field("contact", nil), expectCode: http.StatusBadRequest},
			{name: "empty leadName", mutate: testutil.Field("leadName", ""), expectCode: http.StatusBadRequest},
			{name: "leadName too long", mutate: testutil.Field("leadName", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "invalid_input", "Invalid request")
			})
		}
	})

	s.Run("error: maps engine errors to statuses", func() {
		cases := []struct {
			name       string
			err        error
			wantStatus int
			wantKind   string
		}{
			{
				name:       "domain validation",
				err:        errs.Mark(errs.New("contact must be a valid email"), shared.ErrInvalidInput),
				wantStatus: http.StatusBadRequest,
				wantKind:   "invalid_input",
			},
			{
				name:       "generation exhausted",
				err:        errs.Wrap(shared.ErrGenerationExhausted, "no unique code after 10 attempts"),
				wantStatus: http.StatusInternalServerError,
				wantKind:   "generation_exhausted",
			},
			{
				name:       "storage unavailable",
				err:        shared.StorageError(infra.WrapRepoErr("dial tcp 10.0.0.7:5432: connection refused", nil), "insert promo code"),
				wantStatus: http.StatusServiceUnavailable,
				wantKind:   "storage_unavailable",
			},
			{
				name:       "unclassified",
				err:        errs.New("boom"),
				wantStatus: http.StatusInternalServerError,
				wantKind:   "internal",
			},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Issue(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

				httptest.AssertErrorResponse(s.T(), rec, tc.wantStatus, tc.wantKind, "")
				s.NotContains(rec.Body.String(), "10.0.0.7", "backend detail must not leak")
			})
		}
	})
}

// ================================================================================
// TestValidate
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestValidate() {
	usedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	unused := builder.NewPromoCodeBuilder().BuildDomain()
	used := builder.NewPromoCodeBuilder().Used("agent1", usedAt).BuildDomain()

	s.Run("valid code by path", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "promo-ab2c-d3ef").
			Return(&queries.ValidationResult{Outcome: queries.ValidationValid, PromoCode: unused}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/validate/promo-ab2c-d3ef", nil)

		var body resdto.ValidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Empty(body.Reason)
		s.Equal("Premium Plan", body.Record.ProductInterest)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
	})

	s.Run("used code reports who redeemed it", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "PROMO-AB2C-D3EF").
			Return(&queries.ValidationResult{Outcome: queries.ValidationAlreadyUsed, PromoCode: used}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/validate", map[string]any{"code": "PROMO-AB2C-D3EF"})

		var body resdto.ValidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal("already_used", body.Reason)
		s.Require().NotNil(body.UsedBy)
		s.Equal("agent1", *body.UsedBy)
		s.Equal(usedAt, body.UsedAt.UTC())
	})

	s.Run("unknown code is a 200 not_found result", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "NOT-A-REAL-CODE").
			Return(&queries.ValidationResult{Outcome: queries.ValidationNotFound}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/validate/NOT-A-REAL-CODE", nil)

		var body resdto.ValidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal("not_found", body.Reason)
		s.Nil(body.Record)
	})

	s.Run("body without code is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/validate", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_input", "")
	})

	s.Run("storage failure is 503", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), "PROMO-AB2C-D3EF").
			Return(nil, shared.StorageError(errs.New("redis: connection pool timeout"), "get promo code"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/validate/PROMO-AB2C-D3EF", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "storage_unavailable", "Storage temporarily unavailable")
		s.NotContains(rec.Body.String(), "redis")
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestRedeem() {
	usedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	used := builder.NewPromoCodeBuilder().Used("agent1", usedAt).BuildDomain()

	s.Run("redeemed with usedBy", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "PROMO-AB2C-D3EF", "agent1").
			Return(&commands.RedeemResult{Result: shared.MarkRedeemed, PromoCode: used}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/use/PROMO-AB2C-D3EF", map[string]any{"usedBy": "agent1"})

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("redeemed", body.Result)
		s.Equal("used", body.Record.Status)
	})

	s.Run("body is optional", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "PROMO-AB2C-D3EF", "").
			Return(&commands.RedeemResult{Result: shared.MarkAlreadyUsed, PromoCode: used}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/use/PROMO-AB2C-D3EF", nil)

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Success)
		s.Equal("already_used", body.Result)
	})

	s.Run("unknown code", func() {
		s.mockCommands.EXPECT().Redeem(gomock.Any(), "NOPE", "").
			Return(&commands.RedeemResult{Result: shared.MarkNotFound}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/use/NOPE", nil)

		var body resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("not_found", body.Result)
		s.Nil(body.Record)
	})

	s.Run("usedBy too long is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/use/PROMO-AB2C-D3EF",
			map[string]any{"usedBy": strings.Repeat("x", 201)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid_input", "")
	})
}

// ================================================================================
// TestListStatsHealth
// ================================================================================

func (s *PromoCodeHandlerTestSuite) TestListStatsHealth() {
	s.Run("list", func() {
		newer := builder.NewPromoCodeBuilder().With(func(b *builder.PromoCodeBuilder) {
			b.Code = "PROMO-BBBB-BBBB"
			b.CreatedAt = b.CreatedAt.Add(time.Hour)
		}).BuildDomain()
		older := builder.NewPromoCodeBuilder().With(func(b *builder.PromoCodeBuilder) {
			b.Code = "PROMO-AAAA-AAAA"
		}).BuildDomain()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*promocode.PromoCode{newer, older}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promocodes", nil)

		var body resdto.ListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(2, body.Count)
		s.Equal("PROMO-BBBB-BBBB", body.Data[0].Code)
	})

	s.Run("empty list renders as an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/promocodes", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"data":[]`)
	})

	s.Run("stats", func() {
		s.mockQueries.EXPECT().Stats(gomock.Any()).Return(shared.PromoCodeStats{Total: 5, Used: 2, Available: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/stats", nil)

		var body resdto.StatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.StatsBody{Total: 5, Used: 2, Available: 3}, body.Stats)
	})

	s.Run("health reachable", func() {
		s.mockQueries.EXPECT().Health(gomock.Any()).Return(queries.HealthReport{Backend: "postgres", Reachable: true, CheckedAt: time.Now()})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/health", nil)

		var body resdto.HealthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ok", body.Status)
		s.Equal("postgres", body.Backend)
	})

	s.Run("health unreachable is 503", func() {
		s.mockQueries.EXPECT().Health(gomock.Any()).Return(queries.HealthReport{Backend: "redis", Reachable: false, CheckedAt: time.Now()})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/health", nil)

		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Contains(rec.Body.String(), `"reachable":false`)
	})
}
