package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/api/metrics"
	"github.com/localspot/directory-api/internal/core/ports"
)

// BusinessHandler handles HTTP requests for listings.
type BusinessHandler struct {
	service ports.BusinessService
}

func NewBusinessHandler(service ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// List handles GET /api/businesses.
//
// @Summary      Browse and search listings
// @Tags         businesses
// @Produce      json
// @Param        category  query  string  false  "Exact category filter"
// @Param        city      query  string  false  "City substring filter (case-insensitive)"
// @Param        keyword   query  string  false  "Keyword across name, description and service names"
// @Param        sortBy    query  string  false  "newest (default) or popular"
// @Param        page      query  int     false  "1-based page, default 1"
// @Param        limit     query  int     false  "Page size, default 10"
// @Success      200  {object}  listResponse
// @Failure      500  {object}  dataResponse
// @Router       /businesses [get]
func (h *BusinessHandler) List(c echo.Context) error {
	in := ports.ListBusinessesInput{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
		Keyword:  c.QueryParam("keyword"),
		SortBy:   c.QueryParam("sortBy"),
		Page:     intQueryParam(c, "page"),
		Limit:    intQueryParam(c, "limit"),
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	sort := in.SortBy
	if sort != ports.SortPopular {
		sort = ports.SortNewest
	}
	metrics.ListingQueriesTotal.WithLabelValues(sort).Inc()

	return c.JSON(http.StatusOK, listResponse{
		Success:     true,
		Count:       len(result.Items),
		Total:       result.Total,
		TotalPages:  result.TotalPages,
		CurrentPage: result.Page,
		Data:        toListData(result.Items),
	})
}

// Get handles GET /api/businesses/:id. Reading a listing increments its view
// counter; the response carries the incremented value.
//
// @Summary      Get a single listing
// @Tags         businesses
// @Produce      json
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /businesses/{id} [get]
func (h *BusinessHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BusinessViewsTotal.WithLabelValues(string(view.Business.Category)).Inc()

	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toViewResponse(view)})
}

// GetMine handles GET /api/businesses/my/profile.
//
// @Summary      Get the caller's own listing
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /businesses/my/profile [get]
func (h *BusinessHandler) GetMine(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetMine(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toViewResponse(view)})
}

// Create handles POST /api/businesses.
//
// @Summary      Create a listing
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  businessRequest  true  "Listing details"
// @Success      201  {object}  dataResponse
// @Failure      400  {object}  dataResponse
// @Router       /businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	business, err := h.service.Create(c.Request().Context(), user.ID, toBusinessInput(req))
	if err != nil {
		return err
	}

	metrics.BusinessesCreatedTotal.WithLabelValues(string(business.Category)).Inc()

	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: toBusinessResponse(business, nil)})
}

// Update handles PUT /api/businesses/:id.
//
// @Summary      Update a listing
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string           true  "Business id"
// @Param        body  body  businessRequest  true  "Listing details"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /businesses/{id} [put]
func (h *BusinessHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req businessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	business, err := h.service.Update(c.Request().Context(), c.Param("id"), user.ID, toBusinessInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toBusinessResponse(business, nil)})
}

// Delete handles DELETE /api/businesses/:id.
//
// @Summary      Delete a listing
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Business id"
// @Success      200  {object}  dataResponse
// @Failure      403  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /businesses/{id} [delete]
func (h *BusinessHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), user.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "business deleted successfully"})
}

// UploadLogo handles POST /api/businesses/my/logo (multipart form, field "logo").
//
// @Summary      Upload the caller's listing logo
// @Tags         businesses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        logo  formData  file  true  "Logo image"
// @Success      200  {object}  dataResponse
// @Failure      400  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /businesses/my/logo [post]
func (h *BusinessHandler) UploadLogo(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "logo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read logo file")
	}
	defer file.Close()

	business, err := h.service.SetLogo(c.Request().Context(), user.ID, ports.LogoUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: toBusinessResponse(business, nil)})
}

// intQueryParam parses a positive integer query parameter. Anything that
// fails to parse falls back to 0 and picks up the service default — the
// original API treated garbage page numbers as page 1, and that weak
// contract is kept.
func intQueryParam(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0
	}
	return n
}
