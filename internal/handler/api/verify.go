package api

import (
	"net/http"

	resdto "arcade-booking/internal/handler/dto/response"
	"arcade-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VerifyHandler struct {
	verifier *usecase.VerificationService
}

func NewVerifyHandler(verifier *usecase.VerificationService) *VerifyHandler {
	return &VerifyHandler{verifier: verifier}
}

// Verify resolves a scanned entry token. Unknown or malformed tokens are a
// normal outcome for a gate scanner, so the response is always 200 with the
// verdict in the body.
func (h *VerifyHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.Query("bid")
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "token query parameter required",
		})
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}
