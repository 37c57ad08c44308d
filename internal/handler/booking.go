package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Customer side

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	input := domain.CreateBookingInput{
		TourID:          req.TourID,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		Participants:    req.Participants,
		SpecialRequests: req.SpecialRequests,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) LookupBooking(c *ginext.Context) {
	var req dto.LookupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	lookup, err := h.bookingService.Lookup(c.Request.Context(), req.BookingNumber, req.CustomerName, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingLookupResponse(lookup))
}

func (h *Handler) RequestCancellation(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.CancelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	lookup, err := h.bookingService.CancelRequest(c.Request.Context(), id, req.CustomerName, req.Phone, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingLookupResponse(lookup))
}

// Admin side

func (h *Handler) ListBookings(c *ginext.Context) {
	page, ok := pageFromQuery(c)
	if !ok {
		return
	}

	filter := domain.BookingFilter{
		TourID: c.Query("tour_id"),
		Status: domain.BookingStatus(c.Query("status")),
		Page:   page,
	}
	if filter.TourID != "" {
		if _, err := uuid.Parse(filter.TourID); err != nil {
			badRequest(c, "invalid tour id")
			return
		}
	}

	res, err := h.bookingService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPageResponse(res, dto.ToBookingResponse))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) BookingHistory(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	events, err := h.bookingService.History(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.StatusEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToStatusEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) TransitionBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), id,
		domain.BookingStatus(req.Status), domain.ActorAdmin, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
