package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/models/dto"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/app/services"
	"github.com/khaleegram/Alqalam-University-Katsina-Web/internal/middleware"
)

// VenueController handles venue-related operations
type VenueController struct {
	venueService services.VenueService
}

// NewVenueController creates a new VenueController
func NewVenueController(venueService services.VenueService) *VenueController {
	return &VenueController{venueService: venueService}
}

// GetAllVenues lists every venue
func (c *VenueController) GetAllVenues(ctx *gin.Context) {
	venues, err := c.venueService.GetAllVenues(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(venues))
}

// CreateVenue handles venue creation
func (c *VenueController) CreateVenue(ctx *gin.Context) {
	var venue models.Venue
	if err := ctx.ShouldBindJSON(&venue); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid venue data"))
		return
	}

	if err := c.venueService.CreateVenue(ctx, &venue); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.Success(venue))
}

// UpdateVenue handles venue updates
func (c *VenueController) UpdateVenue(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Venue ID must be a positive number"))
		return
	}

	var venue models.Venue
	if err := ctx.ShouldBindJSON(&venue); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("Invalid venue data"))
		return
	}
	venue.ID = id

	if err := c.venueService.UpdateVenue(ctx, &venue); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.Success(venue))
}

// DeleteVenue handles venue deletion
func (c *VenueController) DeleteVenue(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.Error("Venue ID must be a positive number"))
		return
	}

	if err := c.venueService.DeleteVenue(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessMessage("Venue deleted"))
}
