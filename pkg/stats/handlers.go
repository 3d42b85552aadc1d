package stats

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estantebooks/estante/pkg/auth"
	"github.com/estantebooks/estante/pkg/errcodes"
)

type StatsResponse struct {
	Stats *Stats `json:"stats"`
}

type handler struct {
	statsService *Service
}

func (h *handler) collectionStats(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return errcodes.Unauthorized("Token not provided")
	}

	stats, err := h.statsService.CollectionStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &StatsResponse{Stats: stats})
}
