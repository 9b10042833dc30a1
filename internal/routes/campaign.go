package routes

import (
	"io"
	"net/http"
	"time"

	"Vaquinha/internal/contracts"
	"Vaquinha/internal/domain/campaign"
	domaincontracts "Vaquinha/internal/domain/contracts"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const maxImageSize = 5 << 20

func (h *Handler) CreateCampaign(c *gin.Context) {
	var body contracts.CampaignCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req, err := h.buildCampaignRequest(userID, &body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CampaignService.CreateCampaign(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCampaignResponse(entity))
}

func (h *Handler) UpdateCampaign(c *gin.Context) {
	var body contracts.CampaignUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	createBody := contracts.CampaignCreateRequest(body)
	req, err := h.buildCampaignRequest(userID, &createBody)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	entity, err := h.CampaignService.UpdateCampaign(ctx, &domaincontracts.CampaignUpdateRequest{
		Id:          campaignID,
		UserId:      req.UserId,
		CategoryId:  req.CategoryId,
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCampaignResponse(entity))
}

func (h *Handler) ListCampaigns(c *gin.Context) {
	filters := &campaign.Filters{
		Search: c.Query("search"),
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := pkg.ParseULID(categoryIDStr)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		filters.CategoryId = &categoryID
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := campaign.CampaignStatus(statusStr)
		if !status.IsValid() {
			h.respondError(c, appErrors.NewValidationError("status", "deve ser draft, active, funded ou closed"))
			return
		}
		filters.Status = &status
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	campaigns, total, err := h.CampaignService.ListCampaigns(ctx, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(newCampaignResponseList(campaigns), pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetCampaign(c *gin.Context) {
	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	details, err := h.CampaignService.GetCampaignDetails(ctx, campaignID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondCampaignDetails(c, details)
}

func (h *Handler) GetCampaignBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.respondError(c, appErrors.NewValidationError("slug", "é obrigatório"))
		return
	}

	ctx := c.Request.Context()
	details, err := h.CampaignService.GetCampaignDetailsBySlug(ctx, slug)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondCampaignDetails(c, details)
}

func (h *Handler) respondCampaignDetails(c *gin.Context, details *campaign.CampaignDetails) {
	ctx := c.Request.Context()
	recent, _, err := h.ContributionService.GetContributions(ctx, details.Campaign.Id, &pkg.PaginationParams{Page: 1, Limit: 10})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CampaignDetailResponse{
		CampaignDetails:     details,
		RecentContributions: recent,
	})
}

func (h *Handler) MyCampaigns(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	campaigns, total, err := h.CampaignService.GetCampaignsByUserID(ctx, userID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(newCampaignResponseList(campaigns), pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) DeleteCampaign(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CampaignService.DeleteCampaign(ctx, campaignID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Campanha removida com sucesso"})
}

func (h *Handler) UploadCampaignImage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("image", "é obrigatório"))
		return
	}

	if fileHeader.Size > maxImageSize {
		h.respondError(c, appErrors.NewValidationError("image", "deve ter no máximo 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")

	ctx := c.Request.Context()
	url, err := h.CampaignService.UploadImage(ctx, campaignID, userID, data, contentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, CampaignImageResponse{
		Message:  "Imagem enviada com sucesso",
		ImageURL: url,
	})
}

func (h *Handler) RemoveCampaignImage(c *gin.Context) {
	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	campaignID, err := h.parseIDParam(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CampaignService.RemoveImage(ctx, campaignID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Imagem removida com sucesso"})
}

func (h *Handler) buildCampaignRequest(userID ulid.ULID, body *contracts.CampaignCreateRequest) (*domaincontracts.CampaignCreateRequest, error) {
	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		return nil, appErrors.NewValidationError("start_date", "formato inválido, use AAAA-MM-DD")
	}

	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		return nil, appErrors.NewValidationError("end_date", "formato inválido, use AAAA-MM-DD")
	}

	var categoryID *ulid.ULID
	if body.CategoryID != "" {
		parsed, err := pkg.ParseULID(body.CategoryID)
		if err != nil {
			return nil, appErrors.NewValidationError("category_id", "formato inválido")
		}
		categoryID = &parsed
	}

	return &domaincontracts.CampaignCreateRequest{
		UserId:      userID,
		CategoryId:  categoryID,
		Title:       body.Title,
		Description: body.Description,
		GoalAmount:  body.GoalAmount,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      body.Status,
	}, nil
}

func (h *Handler) parseIDParam(c *gin.Context, name string) (ulid.ULID, error) {
	id := c.Param(name)
	if id == "" {
		return ulid.ULID{}, appErrors.NewValidationError(name, "é obrigatório")
	}

	parsed, err := pkg.ParseULID(id)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(name, "formato inválido")
	}

	return parsed, nil
}
