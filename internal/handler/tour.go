package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/TravelDesk/internal/domain"
	"github.com/stpnv0/TravelDesk/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateTour(c *ginext.Context) {
	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	departure, err := time.Parse(time.DateOnly, req.DepartureDate)
	if err != nil {
		badRequest(c, "invalid departure_date format, expected YYYY-MM-DD")
		return
	}

	input := domain.CreateTourInput{
		Title:           req.Title,
		Price:           req.Price,
		DepartureDate:   departure,
		Status:          domain.TourStatus(req.Status),
		MaxParticipants: req.MaxParticipants,
	}

	tour, err := h.tourService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTourResponse(tour))
}

func (h *Handler) UpdateTourStatus(c *ginext.Context) {
	id, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	var req dto.UpdateTourStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	tour, err := h.tourService.UpdateStatus(c.Request.Context(), id, domain.TourStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) GetTour(c *ginext.Context) {
	id, ok := pathID(c, "id", "tour")
	if !ok {
		return
	}

	tour, err := h.tourService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTourResponse(tour))
}

func (h *Handler) ListTours(c *ginext.Context) {
	tours, err := h.tourService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, dto.ToTourResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}
