package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"shopfront/internal/domain"
	"shopfront/internal/format"
)

func cartInformationHandler(logger zerolog.Logger, svc CartInfoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("cartId"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart id must be a positive integer"})
			return
		}

		info, err := svc.Information(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
				return
			}

			event := logger.Error().Err(err).Int("cart_id", id).
				Str("request_id", requestIDFromContext(c))
			var locErr *format.LocalizationError
			if errors.As(err, &locErr) {
				event.Str("locale", locErr.Locale).Str("currency", locErr.Currency)
			}
			event.Msg("cart information failed")

			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, info)
	}
}
