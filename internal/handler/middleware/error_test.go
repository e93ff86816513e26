//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"cinema-tickets/internal/handler/httperr"
	"cinema-tickets/internal/handler/middleware"
	"cinema-tickets/internal/pkg/errs"
	"cinema-tickets/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type envelopeBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aborted handler responds with the error envelope", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("capacity exhausted"), "Not enough tickets available", nil)
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/boom", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body envelopeBody
		httptest.DecodeResponseBody(t, rec.Body, &body)
		assert.Equal(t, "Not enough tickets available", body.Error.Message)
	})

	t.Run("recorded but unwritten error is replayed from the stack", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/silent", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusUnprocessableEntity}
			resp.Error.Message = "Domain validation failed"
			_ = c.Error(&gin.Error{
				Err:  errs.New("title must not be empty"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var body envelopeBody
		httptest.DecodeResponseBody(t, rec.Body, &body)
		assert.Equal(t, "Domain validation failed", body.Error.Message)
	})
}
