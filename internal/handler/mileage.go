package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/stpnv0/TravelDesk/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) MyBalance(c *ginext.Context) {
	h.balance(c, middleware.UserID(c))
}

func (h *Handler) MyTransactions(c *ginext.Context) {
	h.transactions(c, middleware.UserID(c))
}

func (h *Handler) UserBalance(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	h.balance(c, id)
}

func (h *Handler) UserTransactions(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	h.transactions(c, id)
}

func (h *Handler) ReconcileUser(c *ginext.Context) {
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	report, err := h.ledgerService.Reconcile(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) PostMileage(c *ginext.Context) {
	var req dto.PostMileageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.PostInput{
		UserID:      req.UserID,
		Type:        domain.TransactionType(req.Type),
		Amount:      req.Amount,
		Description: req.Description,
		ReferenceID: req.ReferenceID,
	}

	entry, err := h.ledgerService.Post(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMileageTransactionResponse(entry))
}

func (h *Handler) balance(c *ginext.Context, userID string) {
	balance, err := h.ledgerService.BalanceOf(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{UserID: userID, Balance: balance})
}

func (h *Handler) transactions(c *ginext.Context, userID string) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	filter := domain.TransactionFilter{UserID: userID, Page: page}
	// ?type=deposit,reward and ?type=deposit&type=reward are both accepted
	for _, raw := range c.QueryArray("type") {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Types = append(filter.Types, domain.TransactionType(t))
			}
		}
	}
	if filter.From, ok = queryTime(c, "from"); !ok {
		return
	}
	if filter.To, ok = queryTime(c, "to"); !ok {
		return
	}

	res, err := h.ledgerService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(res, dto.ToMileageTransactionResponse))
}

// queryTime accepts RFC3339 or a bare date.
func queryTime(c *ginext.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	badRequest(c, "invalid "+key+", expected RFC3339 or YYYY-MM-DD")
	return nil, false
}
