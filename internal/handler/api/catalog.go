package api

import (
	"net/http"

	reqdto "glamping-api/internal/handler/dto/request"
	resdto "glamping-api/internal/handler/dto/response"
	"glamping-api/internal/pkg/ptr"
	"glamping-api/internal/usecase/commands"
	"glamping-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgLocationNotFound = "Location not found"

type CatalogHandler struct {
	catalogQueries  queries.CatalogQueries
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries, catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries:  catalogQueries,
		catalogCommands: catalogCommands,
	}
}

// @Summary List locations
// @Description Active locations with their active packages
// @Tags locations
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.LocationResponse}
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	views, err := h.catalogQueries.ListLocations(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLocationViews(views)))
}

// @Summary Get location
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LocationResponse}
// @Failure 404 {object} httperr.Response
// @Router /locations/{id} [get]
func (h *CatalogHandler) GetLocation(c *gin.Context) {
	id, ok := parseID(c, msgLocationNotFound)
	if !ok {
		return
	}
	view, err := h.catalogQueries.GetLocation(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLocationView(view)))
}

// @Summary List packages
// @Tags packages
// @Produce json
// @Param location_id query string false "Location ID"
// @Param search query string false "Name or short description"
// @Success 200 {object} resdto.Envelope{data=[]resdto.PackageResponse}
// @Failure 422 {object} httperr.Response
// @Router /packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	var q reqdto.ListPackagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithBindError(c, err)
		return
	}

	views, err := h.catalogQueries.ListPackages(c.Request.Context(), queries.PackageFilter{
		LocationID: q.LocationUUID(),
		Search:     ptr.NonBlank(&q.Search),
	})
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPackageViews(views)))
}

// @Summary Featured packages
// @Tags packages
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.PackageResponse}
// @Router /packages/featured [get]
func (h *CatalogHandler) FeaturedPackages(c *gin.Context) {
	views, err := h.catalogQueries.FeaturedPackages(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPackageViews(views)))
}

// @Summary Get package by slug
// @Tags packages
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} resdto.Envelope{data=resdto.PackageResponse}
// @Failure 404 {object} httperr.Response
// @Router /packages/{slug} [get]
func (h *CatalogHandler) GetPackageBySlug(c *gin.Context) {
	// the segment is registered as :id because /packages/:id/availability shares it
	slug := c.Param("id")

	view, err := h.catalogQueries.GetPackageBySlug(c.Request.Context(), slug)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPackageView(view)))
}

// @Summary Admin: list packages
// @Tags admin-packages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.PackageResponse}
// @Router /admin/packages [get]
func (h *CatalogHandler) AdminListPackages(c *gin.Context) {
	views, err := h.catalogQueries.AdminListPackages(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPackageViews(views)))
}

// @Summary Admin: get package
// @Tags admin-packages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.Envelope{data=resdto.PackageResponse}
// @Failure 404 {object} httperr.Response
// @Router /admin/packages/{id} [get]
func (h *CatalogHandler) AdminGetPackage(c *gin.Context) {
	id, ok := parseID(c, msgPackageNotFound)
	if !ok {
		return
	}
	view, err := h.catalogQueries.AdminGetPackage(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromPackageView(view)))
}

// @Summary Admin: create package
// @Tags admin-packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePackageRequest true "Package"
// @Success 201 {object} resdto.Envelope{data=resdto.PackageResponse}
// @Failure 422 {object} httperr.Response
// @Router /admin/packages [post]
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	view, err := h.catalogCommands.CreatePackage(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage("Package created successfully", resdto.FromPackageView(view)))
}

// @Summary Admin: update package
// @Tags admin-packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope{data=resdto.PackageResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/packages/{id} [put]
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c, msgPackageNotFound)
	if !ok {
		return
	}
	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	view, err := h.catalogCommands.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Package updated successfully", resdto.FromPackageView(view)))
}

// @Summary Admin: delete package
// @Tags admin-packages
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/packages/{id} [delete]
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c, msgPackageNotFound)
	if !ok {
		return
	}
	if err := h.catalogCommands.DeletePackage(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, msgPackageNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Package deleted successfully", nil))
}

// @Summary Admin: list locations
// @Tags admin-locations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.LocationResponse}
// @Router /admin/locations [get]
func (h *CatalogHandler) AdminListLocations(c *gin.Context) {
	views, err := h.catalogQueries.AdminListLocations(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLocationViews(views)))
}

// @Summary Admin: get location
// @Tags admin-locations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LocationResponse}
// @Failure 404 {object} httperr.Response
// @Router /admin/locations/{id} [get]
func (h *CatalogHandler) AdminGetLocation(c *gin.Context) {
	id, ok := parseID(c, msgLocationNotFound)
	if !ok {
		return
	}
	view, err := h.catalogQueries.AdminGetLocation(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromLocationView(view)))
}

// @Summary Admin: create location
// @Tags admin-locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.Envelope{data=resdto.LocationResponse}
// @Failure 422 {object} httperr.Response
// @Router /admin/locations [post]
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	view, err := h.catalogCommands.CreateLocation(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage("Location created successfully", resdto.FromLocationView(view)))
}

// @Summary Admin: update location
// @Tags admin-locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body reqdto.UpdateLocationRequest true "Fields to change"
// @Success 200 {object} resdto.Envelope{data=resdto.LocationResponse}
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseID(c, msgLocationNotFound)
	if !ok {
		return
	}
	var req reqdto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	view, err := h.catalogCommands.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Location updated successfully", resdto.FromLocationView(view)))
}

// @Summary Admin: delete location
// @Tags admin-locations
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/locations/{id} [delete]
func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c, msgLocationNotFound)
	if !ok {
		return
	}
	if err := h.catalogCommands.DeleteLocation(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, msgLocationNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage("Location deleted successfully", nil))
}
