package routes

import (
	"net/http"

	"Vaquinha/internal/contracts"
	"Vaquinha/internal/domain/category"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	entity := category.Category{
		Name:        body.Name,
		Description: body.Description,
		Icon:        body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Create(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	categoryID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := category.Category{
		Id:          categoryID,
		Name:        body.Name,
		Description: body.Description,
		Icon:        body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Update(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria atualizada com sucesso"})
}

func (h *Handler) ListCategories(c *gin.Context) {
	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	categories, total, err := h.CategoryService.GetAll(ctx, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(categories, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CategoryService.GetByID(ctx, categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.Delete(ctx, categoryID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoria removida com sucesso"})
}
