package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-records/services"
	"hotel-records/utils"
)

type createRoomRequest struct {
	Number    *int    `json:"number" binding:"required"`
	Available *bool   `json:"available" binding:"required"`
	Notes     *string `json:"notes"`
	TypeName  string  `json:"typeName" binding:"required,min=1,max=50"`
}

type updateRoomRequest struct {
	Number    *int    `json:"number"`
	Available *bool   `json:"available"`
	Notes     *string `json:"notes"`
	TypeName  *string `json:"typeName" binding:"omitempty,min=1,max=50"`
}

type RoomController struct {
	CatalogSvc *services.RoomCatalogService
}

func NewRoomController(svc *services.RoomCatalogService) *RoomController {
	return &RoomController{CatalogSvc: svc}
}

// ----------------------------------------------------
// 1. Get Rooms (GET /api/rooms)
// ----------------------------------------------------
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.CatalogSvc.ListRooms(c.Request.Context())
	if err != nil {
		respondServiceError(c, "ListRooms", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room by number (GET /api/rooms/number/:number)
// ----------------------------------------------------
func (ctrl *RoomController) GetRoomByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}

	room, found, err := ctrl.CatalogSvc.GetRoomByNumber(c.Request.Context(), number)
	if err != nil {
		respondServiceError(c, "GetRoomByNumber", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d not found", number))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 3. Get Room (GET /api/rooms/:id)
// ----------------------------------------------------
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	room, found, err := ctrl.CatalogSvc.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "GetRoom", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 4. Create Room (POST /api/rooms)
// ----------------------------------------------------
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.CatalogSvc.CreateRoom(c.Request.Context(), services.RoomInput{
		Number:    *req.Number,
		Available: *req.Available,
		Notes:     req.Notes,
		TypeName:  req.TypeName,
	})
	if err != nil {
		respondServiceError(c, "CreateRoom", err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ----------------------------------------------------
// 5. Update Room (PUT|PATCH /api/rooms/:id)
// ----------------------------------------------------
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	room, err := ctrl.CatalogSvc.UpdateRoom(c.Request.Context(), id, services.RoomPatch{
		Number:    req.Number,
		Available: req.Available,
		Notes:     req.Notes,
		TypeName:  req.TypeName,
	})
	if err != nil {
		respondServiceError(c, "UpdateRoom", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ----------------------------------------------------
// 6. Delete Room (DELETE /api/rooms/:id)
// ----------------------------------------------------
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := ctrl.CatalogSvc.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "DeleteRoom", err)
		return
	}
	if !deleted {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Room with ID %s not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}
