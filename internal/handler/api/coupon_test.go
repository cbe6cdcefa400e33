package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arcade-booking/internal/handler/api"
	"arcade-booking/internal/handler/middleware"
	"arcade-booking/internal/infra/memstore"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	ledger *memstore.CouponLedger
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.ledger = memstore.NewCouponLedger()
	handler := api.NewCouponHandler(s.ledger)

	admin := s.router.Group("/coupons")
	admin.Use(middleware.RequireUser(), middleware.RequireAdmin())
	admin.GET("", handler.List)
	admin.POST("", handler.Create)
	admin.PATCH("/:code", handler.Update)
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "admin-1")
	req.Header.Set("X-User-Role", "admin")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CouponHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"title":      "Power Up",
		"code":       "BOOST20",
		"percentage": 20,
		"max_claims": 50,
	}
}

func (s *CouponHandlerTestSuite) TestCreate() {
	s.Run("creates inactive coupon", func() {
		w := s.do(http.MethodPost, "/coupons", s.createBody())
		s.Equal(http.StatusCreated, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("BOOST20", resp["code"])
		s.Equal(false, resp["active"])
		s.Equal(float64(50), resp["remainingClaims"])
	})

	s.Run("duplicate code conflicts even with different casing", func() {
		body := s.createBody()
		body["code"] = "boost20"
		w := s.do(http.MethodPost, "/coupons", body)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("missing fields rejected", func() {
		w := s.do(http.MethodPost, "/coupons", map[string]any{"title": "X"})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *CouponHandlerTestSuite) TestUpdate() {
	w := s.do(http.MethodPost, "/coupons", s.createBody())
	s.Require().Equal(http.StatusCreated, w.Code)

	s.Run("activates", func() {
		w := s.do(http.MethodPatch, "/coupons/BOOST20", map[string]any{"active": true})
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), `"active":true`)
	})

	s.Run("reconfigures one field, keeping the other", func() {
		w := s.do(http.MethodPatch, "/coupons/BOOST20", map[string]any{"max_claims": 10})
		s.Equal(http.StatusOK, w.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal(float64(10), resp["maxClaims"])
		s.Equal(float64(20), resp["percentage"])
	})

	s.Run("empty body rejected", func() {
		w := s.do(http.MethodPatch, "/coupons/BOOST20", map[string]any{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown code", func() {
		w := s.do(http.MethodPatch, "/coupons/NOPE", map[string]any{"active": true})
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *CouponHandlerTestSuite) TestRequiresAdmin() {
	req := httptest.NewRequest(http.MethodGet, "/coupons", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusForbidden, w.Code)
}
