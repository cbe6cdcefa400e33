package api

import (
	"errors"
	"net/http"

	reqdto "arcade-booking/internal/handler/dto/request"
	resdto "arcade-booking/internal/handler/dto/response"
	"arcade-booking/internal/pkg/errs"
	"arcade-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GameHandler struct {
	catalog usecase.GameCatalog
}

func NewGameHandler(catalog usecase.GameCatalog) *GameHandler {
	return &GameHandler{catalog: catalog}
}

func (h *GameHandler) List(c *gin.Context) {
	games, err := h.catalog.ListVisible(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGames(games))
}

func (h *GameHandler) ListAll(c *gin.Context) {
	games, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromGamesAdmin(games))
}

func (h *GameHandler) SetAvailability(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req reqdto.SetGameAvailableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalog.SetAvailable(c.Request.Context(), id, *req.Available); err != nil {
		writeGameError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GameHandler) SetRate(c *gin.Context) {
	id, ok := parseGameID(c)
	if !ok {
		return
	}

	var req reqdto.SetGameRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.catalog.SetRate(c.Request.Context(), id, *req.PricePerHour); err != nil {
		writeGameError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseGameID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid game ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func writeGameError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Game not found",
		})
	case errors.Is(err, errs.ErrInvalidBooking):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rate",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
