package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-records/services"
	"hotel-records/utils"
)

type createRoomTypeRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=50"`
	FloorPrice   *float64 `json:"floorPrice" binding:"required"`
	CeilingPrice *string  `json:"ceilingPrice" binding:"omitempty,max=10"`
	Description  *string  `json:"description" binding:"omitempty,max=200"`
}

type updateRoomTypeRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=50"`
	FloorPrice   *float64 `json:"floorPrice"`
	CeilingPrice *string  `json:"ceilingPrice" binding:"omitempty,max=10"`
	Description  *string  `json:"description" binding:"omitempty,max=200"`
}

type searchRoomTypeRequest struct {
	ID   string `json:"id" binding:"omitempty,len=36"`
	Name string `json:"name" binding:"omitempty,max=50"`
}

type RoomTypeController struct {
	CatalogSvc *services.RoomCatalogService
}

func NewRoomTypeController(svc *services.RoomCatalogService) *RoomTypeController {
	return &RoomTypeController{CatalogSvc: svc}
}

// GET /api/room-types
func (ctrl *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := ctrl.CatalogSvc.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListRoomTypes", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// POST /api/room-types: 201 when inserted, 200 when the name already existed
func (ctrl *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req createRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rt, outcome, err := ctrl.CatalogSvc.CreateRoomType(c.Request.Context(), services.RoomTypeInput{
		Name:         req.Name,
		FloorPrice:   *req.FloorPrice,
		CeilingPrice: req.CeilingPrice,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, "CreateRoomType", err)
		return
	}
	utils.JSONSuccess(c, createdStatus(outcome), rt)
}

// POST /api/room-types/search
func (ctrl *RoomTypeController) SearchRoomTypes(c *gin.Context) {
	var req searchRoomTypeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	types, err := ctrl.CatalogSvc.SearchRoomTypes(c.Request.Context(), services.RoomTypeCriteria{ID: req.ID, Name: req.Name})
	if err != nil {
		respondServiceError(c, "SearchRoomTypes", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// PUT /api/room-types/:id
func (ctrl *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rt, err := ctrl.CatalogSvc.UpdateRoomType(c.Request.Context(), id, services.RoomTypePatch{
		Name:         req.Name,
		FloorPrice:   req.FloorPrice,
		CeilingPrice: req.CeilingPrice,
		Description:  req.Description,
	})
	if err != nil {
		respondServiceError(c, "UpdateRoomType", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// DELETE /api/room-types/:id
func (ctrl *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := ctrl.CatalogSvc.DeleteRoomType(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "DeleteRoomType", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, "room type not found")
		return
	}
	c.Status(http.StatusNoContent)
}
