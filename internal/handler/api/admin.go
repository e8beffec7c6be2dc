package api

import (
	"context"
	"errors"
	"net/http"

	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	venueCommands commands.VenueCommands
	venueQueries  queries.VenueQueries
}

func NewAdminHandler(venueCommands commands.VenueCommands, venueQueries queries.VenueQueries) *AdminHandler {
	return &AdminHandler{
		venueCommands: venueCommands,
		venueQueries:  venueQueries,
	}
}

// @Summary Pending venues
// @Description List venues awaiting review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VenueListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/venues/pending [get]
func (h *AdminHandler) ListPendingVenues(c *gin.Context) {
	items, err := h.venueQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromVenueListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Approve venue
// @Description Approve a pending venue so it becomes bookable
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/venues/{id}/approve [post]
func (h *AdminHandler) ApproveVenue(c *gin.Context) {
	h.review(c, h.venueCommands.ApproveVenue)
}

// @Summary Reject venue
// @Description Reject a pending venue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/venues/{id}/reject [post]
func (h *AdminHandler) RejectVenue(c *gin.Context) {
	h.review(c, h.venueCommands.RejectVenue)
}

func (h *AdminHandler) review(c *gin.Context, decide func(ctx context.Context, venueID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	if err := decide(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		case errors.Is(err, commands.ErrVenueNotPending):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Venue is not pending review",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
