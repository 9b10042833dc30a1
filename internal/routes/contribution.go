package routes

import (
	"net/http"

	"Vaquinha/internal/contracts"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ContributeToCampaign(c *gin.Context) {
	var body contracts.ContributionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.ContributionService.MakeContribution(ctx, campaignID, userID, body.Amount, body.Message, body.Anonymous)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entity)
}

func (h *Handler) CancelContribution(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	contributionID, err := h.parseIDParam(c, "contribution_id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.ContributionService.CancelContribution(ctx, contributionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Contribuição estornada com sucesso"})
}

func (h *Handler) GetCampaignContributions(c *gin.Context) {
	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	contributions, total, err := h.ContributionService.GetContributions(ctx, campaignID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(contributions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) MyContributions(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	contributions, total, err := h.ContributionService.GetContributionsByUser(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(contributions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}
