package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-records/services"
	"hotel-records/utils"
)

type createGuestRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=50"`
	LastName  string `json:"lastName" binding:"required,min=1,max=50"`
	Address   string `json:"address" binding:"required,min=1,max=100"`
	Mobile    string `json:"mobile" binding:"required,min=1,max=15"`
	Password  string `json:"password" binding:"required,min=1,max=60"`
	Role      string `json:"role" binding:"required,min=1,max=50"`
}

type updateGuestRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=50"`
	Address   *string `json:"address" binding:"omitempty,min=1,max=100"`
	Mobile    *string `json:"mobile" binding:"omitempty,min=1,max=15"`
	Password  *string `json:"password" binding:"omitempty,min=1,max=60"`
	Role      *string `json:"role" binding:"omitempty,min=1,max=50"`
}

type searchGuestRequest struct {
	ID        string `json:"id" binding:"omitempty,len=36"`
	FirstName string `json:"firstName" binding:"omitempty,max=50"`
	LastName  string `json:"lastName" binding:"omitempty,max=50"`
	Mobile    string `json:"mobile" binding:"omitempty,max=15"`
	Role      string `json:"role" binding:"omitempty,max=50"`
}

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// POST /api/guests: 201 when inserted, 200 when the same guest already existed
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req createGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	guest, outcome, err := ctrl.GuestSvc.Create(c.Request.Context(), services.GuestInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Mobile:    req.Mobile,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		respondServiceError(c, "CreateGuest", err)
		return
	}
	utils.JSONSuccess(c, createdStatus(outcome), guest)
}

// GET /api/guests/:id
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	guest, found, err := ctrl.GuestSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetGuestByID", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "guest not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// POST /api/guests/search
func (ctrl *GuestController) SearchGuests(c *gin.Context) {
	var req searchGuestRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	guests, err := ctrl.GuestSvc.Search(c.Request.Context(), services.GuestCriteria{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Mobile:    req.Mobile,
		Role:      req.Role,
	})
	if err != nil {
		respondServiceError(c, "SearchGuests", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// PUT /api/guests/:id
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	guest, err := ctrl.GuestSvc.Update(c.Request.Context(), id, services.GuestPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Mobile:    req.Mobile,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		respondServiceError(c, "UpdateGuest", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// DELETE /api/guests/:id
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := ctrl.GuestSvc.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "DeleteGuest", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "guest not found")
		return
	}
	c.Status(http.StatusNoContent)
}
