package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VenueHandler struct {
	venueCommands       commands.VenueCommands
	venueQueries        queries.VenueQueries
	availabilityQueries queries.AvailabilityQueries
	bookingQueries      queries.BookingQueries
	venueLocation       *time.Location
}

func NewVenueHandler(
	venueCommands commands.VenueCommands,
	venueQueries queries.VenueQueries,
	availabilityQueries queries.AvailabilityQueries,
	bookingQueries queries.BookingQueries,
	venueLocation *time.Location,
) *VenueHandler {
	return &VenueHandler{
		venueCommands:       venueCommands,
		venueQueries:        venueQueries,
		availabilityQueries: availabilityQueries,
		bookingQueries:      bookingQueries,
		venueLocation:       venueLocation,
	}
}

// @Summary Register venue
// @Description Register a new venue; it stays pending until approved
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVenueRequest true "Venue request"
// @Success 201 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /venues [post]
func (h *VenueHandler) RegisterVenue(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RegisterVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.venueCommands.RegisterVenue(c.Request.Context(), req, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidVenueInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid venue details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromVenueView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List venues
// @Description List approved venues, optionally filtered by city
// @Tags venues
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} resdto.VenueListResponse
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	items, err := h.venueQueries.ListApproved(c.Request.Context(), c.Query("city"))
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

// @Summary Get venue
// @Description Get venue details by ID
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} resdto.VenueResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	view, err := h.venueQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromVenueView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Day slots
// @Description Get the generated slot board for a venue and date
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/slots [get]
func (h *VenueHandler) GetDaySlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.venueLocation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityQueries.DaySlots(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Venue not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromDaySlotsView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update schedule
// @Description Replace the venue's weekly recurring hours
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.UpdateScheduleRequest true "Schedule request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/schedule [put]
func (h *VenueHandler) UpdateSchedule(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.venueCommands.UpdateSchedule(c.Request.Context(), id, ownerID, req); err != nil {
		h.respondVenueError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Add blockout
// @Description Add a blockout window to the venue's calendar
// @Tags venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param request body reqdto.AddBlockoutRequest true "Blockout request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/blockouts [post]
func (h *VenueHandler) AddBlockout(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	var req reqdto.AddBlockoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	blockoutID, err := h.venueCommands.AddBlockout(c.Request.Context(), id, ownerID, req)
	if err != nil {
		h.respondVenueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": blockoutID.String()})
}

// @Summary Remove blockout
// @Description Remove a blockout window from the venue's calendar
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param blockoutId path string true "Blockout ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/blockouts/{blockoutId} [delete]
func (h *VenueHandler) RemoveBlockout(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	blockoutID, err := uuid.Parse(c.Param("blockoutId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid blockout ID format",
		})
		return
	}

	if err := h.venueCommands.RemoveBlockout(c.Request.Context(), id, ownerID, blockoutID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBlockoutNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Blockout not found",
			})
		default:
			h.respondVenueError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List blockouts
// @Description List all blockout windows for the venue
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {array} resdto.BlockoutResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/blockouts [get]
func (h *VenueHandler) ListBlockouts(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	views, err := h.venueQueries.ListBlockouts(c.Request.Context(), ownerID, id)
	if err != nil {
		h.respondVenueReadError(c, err)
		return
	}

	resp, err := resdto.FromBlockoutViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Venue bookings
// @Description List bookings for a venue (owner dashboard)
// @Tags venues
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /venues/{id}/bookings [get]
func (h *VenueHandler) ListVenueBookings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue ID format",
		})
		return
	}

	items, err := h.bookingQueries.ListByVenue(c.Request.Context(), ownerID, id)
	if err != nil {
		h.respondVenueReadError(c, err)
		return
	}

	resp, err := resdto.FromBookingListItems(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VenueHandler) respondVenueReadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, queries.ErrNotVenueOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Venue belongs to another owner",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func (h *VenueHandler) respondVenueError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrVenueNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Venue not found",
		})
	case errors.Is(err, commands.ErrNotVenueOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Venue belongs to another owner",
		})
	case errors.Is(err, commands.ErrInvalidVenueInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid venue details",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
