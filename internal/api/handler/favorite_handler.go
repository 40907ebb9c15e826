package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localspot/directory-api/internal/api/metrics"
	"github.com/localspot/directory-api/internal/core/ports"
)

// FavoriteHandler handles a regular user's bookmark routes.
type FavoriteHandler struct {
	service ports.FavoriteService
}

func NewFavoriteHandler(service ports.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// favoritesListResponse mirrors the list envelope minus pagination; the
// favorites list is not paginated.
type favoritesListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

type checkFavoriteResponse struct {
	IsFavorited bool `json:"isFavorited"`
}

// List handles GET /api/favorites.
//
// @Summary      List the caller's favorites
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  favoritesListResponse
// @Failure      401  {object}  dataResponse
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, favoritesListResponse{
		Success: true,
		Count:   len(views),
		Data:    toFavoriteResponses(views),
	})
}

// Add handles POST /api/favorites/:businessId.
//
// @Summary      Favorite a business
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        businessId  path  string  true  "Business id"
// @Success      201  {object}  dataResponse
// @Failure      400  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /favorites/{businessId} [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	favorite, err := h.service.Add(c.Request().Context(), user.ID, c.Param("businessId"))
	if err != nil {
		return err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: favorite})
}

// Remove handles DELETE /api/favorites/:businessId.
//
// @Summary      Unfavorite a business
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        businessId  path  string  true  "Business id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  dataResponse
// @Router       /favorites/{businessId} [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), user.ID, c.Param("businessId")); err != nil {
		return err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, dataResponse{Success: true, Message: "business removed from favorites"})
}

// Check handles GET /api/favorites/check/:businessId. Always 200; an unknown
// business id is simply not favorited.
//
// @Summary      Check whether a business is favorited
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Param        businessId  path  string  true  "Business id"
// @Success      200  {object}  dataResponse
// @Router       /favorites/check/{businessId} [get]
func (h *FavoriteHandler) Check(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	favorited, err := h.service.Check(c.Request().Context(), user.ID, c.Param("businessId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: checkFavoriteResponse{IsFavorited: favorited}})
}
