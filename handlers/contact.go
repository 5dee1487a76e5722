package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"marketing_site_go/config"
	"marketing_site_go/models"
	"marketing_site_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SubmissionIDHeader carries the reference id logged for an accepted submission
const SubmissionIDHeader = "X-Submission-Id"

// sleep is swapped in tests to observe the simulated delay
var sleep = time.Sleep

// ContactHandler validates a contact form submission and echoes it back.
// Nothing is stored or forwarded.
func ContactHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		c.Logger().Errorf("Failed to read contact request body: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ContactResponse{
			Success: false,
			Message: models.ContactFailureMessage,
		})
	}

	validated, err := services.ParseContactSubmission(body)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrInvalidBody):
			c.Logger().Warnf("Invalid contact request body: %v", err)
			return c.JSON(http.StatusBadRequest, models.ContactResponse{
				Success: false,
				Message: models.InvalidBodyMessage,
			})
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, models.ContactResponse{
				Success: false,
				Message: models.ValidationFailedPrefix + verr.Error(),
			})
		}
		c.Logger().Errorf("Contact submission failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ContactResponse{
			Success: false,
			Message: models.ContactFailureMessage,
		})
	}

	id := uuid.New().String()
	c.Logger().Infof("Contact submission %s received: %s", id, services.DescribeSubmission(validated))

	if cfg.ContactSubmitDelay > 0 {
		sleep(cfg.ContactSubmitDelay)
	}

	c.Response().Header().Set(SubmissionIDHeader, id)
	return c.JSON(http.StatusOK, models.ContactResponse{
		Success: true,
		Message: models.ContactSuccessMessage,
		Data:    validated,
	})
}
