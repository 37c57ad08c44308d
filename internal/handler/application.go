package handler

import (
	"net/http"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/stpnv0/TravelDesk/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) SubmitApplication(c *ginext.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.SubmitApplicationInput{
		UserID: middleware.UserID(c),
		Type:   domain.ApplicationType(req.Type),
		Amount: req.Amount,
	}
	if req.BankName != "" || req.AccountNumber != "" || req.AccountHolder != "" {
		input.Bank = &domain.BankDetails{
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			AccountHolder: req.AccountHolder,
		}
	}

	app, err := h.applicationService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

func (h *Handler) MyApplications(c *ginext.Context) {
	h.listApplications(c, middleware.UserID(c))
}

func (h *Handler) ListApplications(c *ginext.Context) {
	h.listApplications(c, c.Query("user_id"))
}

func (h *Handler) listApplications(c *ginext.Context, userID string) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	filter := domain.ApplicationFilter{
		UserID: userID,
		Status: domain.ApplicationStatus(c.Query("status")),
		Type:   domain.ApplicationType(c.Query("type")),
		Page:   page,
	}

	res, err := h.applicationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(res, dto.ToApplicationResponse))
}

func (h *Handler) MarkApplicationProcessing(c *ginext.Context) {
	id, notes, ok := decisionParams(c)
	if !ok {
		return
	}

	app, err := h.applicationService.MarkProcessing(c.Request.Context(), id, notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

func (h *Handler) ApproveApplication(c *ginext.Context) {
	id, notes, ok := decisionParams(c)
	if !ok {
		return
	}

	app, entry, err := h.applicationService.Approve(c.Request.Context(), id, notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApproveResponse{
		Application: dto.ToApplicationResponse(app),
		Transaction: dto.ToMileageTransactionResponse(entry),
	})
}

func (h *Handler) RejectApplication(c *ginext.Context) {
	id, notes, ok := decisionParams(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Reject(c.Request.Context(), id, notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

// decisionParams reads the application id and the optional notes body.
func decisionParams(c *ginext.Context) (string, string, bool) {
	id, ok := pathID(c, "id", "application")
	if !ok {
		return "", "", false
	}

	var req dto.DecisionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return "", "", false
		}
	}
	return id, req.Notes, true
}
