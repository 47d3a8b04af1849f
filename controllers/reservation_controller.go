package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-records/services"
	"hotel-records/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// entityRef accepts a full embedded guest/room object; only its id is read.
type entityRef struct {
	ID string `json:"id" binding:"omitempty,len=36"`
}

type createReservationRequest struct {
	Start       string     `json:"start" binding:"required"`
	End         string     `json:"end" binding:"required"`
	PricePerDay *float64   `json:"pricePerDay" binding:"required"`
	Note        *string    `json:"note"`
	Guest       *entityRef `json:"guest"`
	Room        *entityRef `json:"room"`
}

type updateReservationRequest struct {
	GuestID     *string  `json:"guestId" binding:"omitempty,len=36"`
	RoomID      *string  `json:"roomId" binding:"omitempty,len=36"`
	Start       *string  `json:"start"`
	End         *string  `json:"end"`
	PricePerDay *float64 `json:"pricePerDay"`
	Note        *string  `json:"note"`
}

// A last name without a first name (or the reverse) is ignored, not rejected.
type searchReservationRequest struct {
	ReservationID string `json:"reservationId" binding:"omitempty,len=36"`
	RoomID        string `json:"roomId" binding:"omitempty,len=36"`
	GuestID       string `json:"guestId" binding:"omitempty,len=36"`
	LastName      string `json:"lastName" binding:"omitempty,max=60"`
	FirstName     string `json:"firstName" binding:"omitempty,max=60"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{ReservationSvc: svc}
}

func parseOptionalTimestamp(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := utils.ParseTimestamp(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// POST /api/reservations/search
func (ctrl *ReservationController) SearchReservations(c *gin.Context) {
	var req searchReservationRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	list, err := ctrl.ReservationSvc.Search(c.Request.Context(), services.ReservationCriteria{
		ReservationID: req.ReservationID,
		RoomID:        req.RoomID,
		GuestID:       req.GuestID,
		LastName:      req.LastName,
		FirstName:     req.FirstName,
	})
	if err != nil {
		respondServiceError(c, "SearchReservations", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	r, err := ctrl.ReservationSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetReservation", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	start, err := utils.ParseTimestamp(req.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start: "+err.Error())
		return
	}
	end, err := utils.ParseTimestamp(req.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end: "+err.Error())
		return
	}

	in := services.ReservationInput{
		Start:       start,
		End:         end,
		PricePerDay: *req.PricePerDay,
		Note:        req.Note,
	}
	if req.Guest != nil {
		in.Guest = &services.GuestRef{ID: req.Guest.ID}
	}
	if req.Room != nil {
		in.Room = &services.RoomRef{ID: req.Room.ID}
	}

	r, err := ctrl.ReservationSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, "CreateReservation", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}

// PUT /api/reservations/:id
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	start, err := parseOptionalTimestamp(req.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start: "+err.Error())
		return
	}
	end, err := parseOptionalTimestamp(req.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end: "+err.Error())
		return
	}

	r, err := ctrl.ReservationSvc.Update(c.Request.Context(), id, services.ReservationPatch{
		GuestID:     req.GuestID,
		RoomID:      req.RoomID,
		Start:       start,
		End:         end,
		PricePerDay: req.PricePerDay,
		Note:        req.Note,
	})
	if err != nil {
		respondServiceError(c, "UpdateReservation", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

// DELETE /api/reservations/:id
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := ctrl.ReservationSvc.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "DeleteReservation", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "reservation not found")
		return
	}
	c.Status(http.StatusNoContent)
}
