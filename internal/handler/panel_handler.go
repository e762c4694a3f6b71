package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"panelboard/internal/model"
	"panelboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type PanelHandler struct {
	panelRepo repository.PanelRepositoryInterface
	logger    *slog.Logger
}

func NewPanelHandler(panelRepo repository.PanelRepositoryInterface, logger *slog.Logger) *PanelHandler {
	return &PanelHandler{panelRepo: panelRepo, logger: logger}
}

type PanelRequest struct {
	Name *string `json:"name" binding:"required"`
}

type PanelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toPanelResponse(p *model.Panel) PanelResponse {
	return PanelResponse{ID: p.ID, Name: p.Name}
}

// ownedPanel loads the panel named by the :panel_id path segment and checks
// it belongs to the caller. It writes the error response itself.
func ownedPanel(c *gin.Context, panelRepo repository.PanelRepositoryInterface, logger *slog.Logger) (*model.Panel, bool) {
	caller, ok := identity(c)
	if !ok {
		return nil, false
	}
	panelID, ok := parseID(c, "panel_id")
	if !ok {
		return nil, false
	}

	panel, err := panelRepo.GetByID(c.Request.Context(), panelID)
	if err != nil {
		respondStoreFailure(c, logger, "panel lookup failed", err)
		return nil, false
	}
	if panel == nil {
		respondMessage(c, http.StatusNotFound, "panel not found")
		return nil, false
	}
	if panel.UserID != caller.ID {
		respondMessage(c, http.StatusForbidden, "you don't have permission to access this panel")
		return nil, false
	}
	return panel, true
}

// Create godoc
// @Summary      Create a panel owned by the caller
// @Tags         panel
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      PanelRequest  true  "panel"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /panel/ [post]
func (h *PanelHandler) Create(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if *req.Name == "" {
		respondMessage(c, http.StatusConflict, "provided name for panel is empty")
		return
	}

	panel := &model.Panel{Name: *req.Name, UserID: caller.ID}
	if err := h.panelRepo.Create(c.Request.Context(), panel); err != nil {
		respondStoreFailure(c, h.logger, "panel create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "new panel created successfully",
		"data":    toPanelResponse(panel),
	})
}

// GetAll godoc
// @Summary      List the caller's panels
// @Tags         panel
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  map[string]any
// @Router       /panel/ [get]
func (h *PanelHandler) GetAll(c *gin.Context) {
	caller, ok := identity(c)
	if !ok {
		return
	}

	panels, err := h.panelRepo.GetOwned(c.Request.Context(), caller.ID)
	if err != nil {
		respondStoreFailure(c, h.logger, "panel list failed", err)
		return
	}

	data := make([]PanelResponse, 0, len(panels))
	for i := range panels {
		data = append(data, toPanelResponse(&panels[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
}

// GetByID godoc
// @Summary      Get one of the caller's panels
// @Tags         panel
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int  true  "panel id"
// @Success      200       {object}  map[string]any
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /panel/{panel_id} [get]
func (h *PanelHandler) GetByID(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toPanelResponse(panel)})
}

// Update godoc
// @Summary      Rename one of the caller's panels
// @Tags         panel
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int           true  "panel id"
// @Param        body      body      PanelRequest  true  "panel"
// @Success      200       {object}  map[string]any
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /panel/{panel_id} [put]
func (h *PanelHandler) Update(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}

	var req PanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if *req.Name == "" {
		respondMessage(c, http.StatusConflict, "provided name for panel is empty")
		return
	}

	panel.Name = *req.Name
	if err := h.panelRepo.Update(c.Request.Context(), panel); err != nil {
		if errors.Is(err, repository.ErrPanelNotFound) {
			respondMessage(c, http.StatusNotFound, "panel not found")
			return
		}
		respondStoreFailure(c, h.logger, "panel update failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "panel was successfully updated",
		"data":    toPanelResponse(panel),
	})
}

// Delete godoc
// @Summary      Delete a panel and every card in it
// @Tags         panel
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int  true  "panel id"
// @Success      200       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /panel/{panel_id} [delete]
func (h *PanelHandler) Delete(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}

	if err := h.panelRepo.Delete(c.Request.Context(), panel.ID); err != nil {
		if errors.Is(err, repository.ErrPanelNotFound) {
			respondMessage(c, http.StatusNotFound, "panel not found")
			return
		}
		respondStoreFailure(c, h.logger, "panel delete failed", err)
		return
	}

	respondMessage(c, http.StatusOK, "panel was successfully deleted")
}
