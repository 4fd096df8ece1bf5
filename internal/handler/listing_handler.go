package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "clearplot/internal/errors"
	"clearplot/internal/model"
	"clearplot/internal/query"
	"clearplot/internal/service"
	"clearplot/internal/upload"
)

// ListingHandler handles listing search, retrieval and submission.
type ListingHandler struct {
	listingService service.ListingService
	uploader       upload.Uploader
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listingService service.ListingService, uploader upload.Uploader) *ListingHandler {
	return &ListingHandler{listingService: listingService, uploader: uploader}
}

// SearchResponse is the paginated search envelope.
type SearchResponse struct {
	Properties      []model.Listing `json:"properties"`
	TotalProperties int64           `json:"totalProperties"`
	TotalPages      int64           `json:"totalPages"`
	CurrentPage     int             `json:"currentPage"`
}

// Search godoc
// @Summary Search listings with filters and pagination
// @Description Authenticated callers never see their own listings; anonymous callers see everything.
// @Tags properties
// @Produce json
// @Param city query string false "Exact city match"
// @Param minPrice query number false "Minimum price, inclusive"
// @Param maxPrice query number false "Maximum price, inclusive"
// @Param minArea query number false "Minimum area in sqft, inclusive"
// @Param maxArea query number false "Maximum area in sqft, inclusive"
// @Param propertyType query string false "Exact property type match"
// @Param listingType query string false "Buy or Rent"
// @Param amenities query string false "Comma-separated amenity constraints, e.g. Gymnasium,Wifi:No"
// @Param page query int false "Page number, 1-indexed"
// @Param limit query int false "Page size"
// @Success 200 {object} SearchResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /properties [get]
func (h *ListingHandler) Search(c echo.Context) error {
	filter := query.Filter{
		City:         c.QueryParam("city"),
		PropertyType: c.QueryParam("propertyType"),
		ListingType:  c.QueryParam("listingType"),
		MinPrice:     optionalFloat(c, "minPrice"),
		MaxPrice:     optionalFloat(c, "maxPrice"),
		MinArea:      optionalFloat(c, "minArea"),
		MaxArea:      optionalFloat(c, "maxArea"),
		Amenities:    query.ParseAmenities(c.QueryParam("amenities")),
	}
	page := query.NewPage(intParam(c, "page"), intParam(c, "limit"))

	var caller *uuid.UUID
	if id, ok := CallerID(c); ok {
		caller = &id
	}

	res, err := h.listingService.Search(c.Request().Context(), filter, page, caller)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SearchResponse{
		Properties:      res.Items,
		TotalProperties: res.Meta.TotalCount,
		TotalPages:      res.Meta.TotalPages,
		CurrentPage:     res.Meta.CurrentPage,
	})
}

// Get godoc
// @Summary Get a listing by id
// @Tags properties
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} model.Listing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	listing, err := h.listingService.GetListing(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

// Create godoc
// @Summary Post a new listing
// @Description Multipart form submission with up to 5 images. Images are uploaded before the listing is stored; an upload failure fails the whole submission.
// @Tags properties
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /properties [post]
func (h *ListingHandler) Create(c echo.Context) error {
	ownerID, ok := CallerID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}

	files := form.File["images"]
	if len(files) > model.MaxListingImages {
		return respondError(c, apperrors.ErrTooManyImages)
	}

	sub, err := service.ParseListingForm(url.Values(form.Value))
	if err != nil {
		return respondError(c, err)
	}

	imageURLs, err := h.uploader.Upload(c.Request().Context(), files)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusBadGateway, apperrors.ErrorResponse{
			Error: "image upload failed",
			Code:  "UPLOAD_FAILED",
		})
	}

	listing, err := h.listingService.Submit(c.Request().Context(), ownerID, sub, imageURLs)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "property posted",
		"property": listing,
	})
}

// optionalFloat parses a float query parameter, treating absent or
// unparsable values as "no constraint".
func optionalFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// intParam parses an int query parameter; invalid values become 0 and
// are normalized by query.NewPage.
func intParam(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}
