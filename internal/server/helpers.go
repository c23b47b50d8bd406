package server

import (
	"errors"
	"strconv"

	"scribe/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPage  = 1
	defaultLimit = 60
)

// parsePositiveInt reads a query parameter as a positive integer. An absent
// or blank parameter yields the default; junk or non-positive values write a
// 400 response and return errResponseWritten.
func parsePositiveInt(c *fiber.Ctx, param string, def int) (int, error) {
	raw := c.Query(param)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		_ = models.RespondWithError(c,
			models.NewValidationError(param+" must be a positive integer"))
		return 0, errResponseWritten
	}
	return n, nil
}
