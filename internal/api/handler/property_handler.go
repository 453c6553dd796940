package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/homeandown/listings-api/internal/api/metrics"
	"github.com/homeandown/listings-api/internal/core/domain"
	"github.com/homeandown/listings-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// parseListFilter turns the optional query parameters into the query
// specification. Malformed numeric values are a caller error.
func parseListFilter(c echo.Context) (ports.ListPropertiesFilter, error) {
	filter := ports.ListPropertiesFilter{
		ListingType:  c.QueryParam("listing_type"),
		City:         c.QueryParam("city"),
		PropertyType: c.QueryParam("property_type"),
	}

	for _, p := range []struct {
		name string
		dst  **float64
	}{
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
	} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a number", p.name))
		}
		*p.dst = &v
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"bedrooms", &filter.Bedrooms},
		{"bathrooms", &filter.Bathrooms},
	} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be an integer", p.name))
		}
		*p.dst = &v
	}

	return filter, nil
}

// List handles GET /api/properties.
//
// @Summary      List active properties
// @Tags         properties
// @Produce      json
// @Param        listing_type   query  string  false  "SALE or RENT"
// @Param        city           query  string  false  "Case-insensitive substring match"
// @Param        property_type  query  string  false  "Exact match"
// @Param        min_price      query  number  false  "price >= min_price"
// @Param        max_price      query  number  false  "price <= max_price"
// @Param        bedrooms       query  int     false  "Exact match"
// @Param        bathrooms      query  int     false  "Exact match"
// @Success      200  {array}   domain.Property
// @Failure      400  {object}  map[string]string
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	props, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, props)
}

// getPropertyResponse is the property document plus the resolved owner block.
type getPropertyResponse struct {
	*domain.Property
	Owner *domain.Owner `json:"owner"`
}

// Get handles GET /api/properties/:id.
//
// @Summary      Get a property by ID
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  getPropertyResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, getPropertyResponse{
		Property: detail.Property,
		Owner:    detail.Owner,
	})
}

// Create handles POST /api/properties (bearer token required).
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Listing details"
// @Success      201   {object}  createPropertyResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	ownerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Title:            req.Title,
		Description:      req.Description,
		PropertyType:     req.PropertyType,
		ListingType:      req.ListingType,
		AreaSqft:         req.AreaSqft,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		Price:            req.Price,
		MonthlyRent:      req.MonthlyRent,
		SecurityDeposit:  req.SecurityDeposit,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Images:           req.Images,
		Amenities:        req.Amenities,
		AvailableFrom:    req.AvailableFrom,
		FurnishingStatus: req.FurnishingStatus,
		Balcony:          req.Balcony,
		Possession:       req.Possession,
		OwnerID:          ownerID,
	})
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(req.ListingType).Inc()

	return c.JSON(http.StatusCreated, createPropertyResponse{
		Message:    "Created",
		PropertyID: id,
	})
}
