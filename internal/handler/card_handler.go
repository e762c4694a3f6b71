package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"panelboard/internal/model"
	"panelboard/internal/repository"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardRepo  repository.CardRepositoryInterface
	panelRepo repository.PanelRepositoryInterface
	logger    *slog.Logger
}

func NewCardHandler(cardRepo repository.CardRepositoryInterface, panelRepo repository.PanelRepositoryInterface, logger *slog.Logger) *CardHandler {
	return &CardHandler{cardRepo: cardRepo, panelRepo: panelRepo, logger: logger}
}

// CardRequest uses pointers so that a zero coordinate is told apart from a
// missing key.
type CardRequest struct {
	Title  *string `json:"title" binding:"required"`
	CoordX *int    `json:"coord_x" binding:"required"`
	CoordY *int    `json:"coord_y" binding:"required"`
	Width  *int    `json:"width" binding:"required"`
	Height *int    `json:"height" binding:"required"`
}

type CardResponse struct {
	ID     uint   `json:"_id"`
	Title  string `json:"title"`
	CoordX int    `json:"coord_x"`
	CoordY int    `json:"coord_y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func toCardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:     card.ID,
		Title:  card.Title,
		CoordX: card.CoordX,
		CoordY: card.CoordY,
		Width:  card.Width,
		Height: card.Height,
	}
}

func (r *CardRequest) apply(card *model.Card) {
	card.Title = *r.Title
	card.CoordX = *r.CoordX
	card.CoordY = *r.CoordY
	card.Width = *r.Width
	card.Height = *r.Height
}

func cardMissing(c *gin.Context, panelID, cardID uint) {
	respondMessage(c, http.StatusNotFound, fmt.Sprintf("card %d does not exist in panel %d", cardID, panelID))
}

// GetAll godoc
// @Summary      List the cards of a panel
// @Tags         card
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int  true  "panel id"
// @Success      200       {object}  map[string]any
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /panel/{panel_id}/cards [get]
func (h *CardHandler) GetAll(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}

	cards, err := h.cardRepo.GetByPanelID(c.Request.Context(), panel.ID)
	if err != nil {
		respondStoreFailure(c, h.logger, "card list failed", err)
		return
	}

	data := make([]CardResponse, 0, len(cards))
	for i := range cards {
		data = append(data, toCardResponse(&cards[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
}

// Create godoc
// @Summary      Add a card to a panel
// @Tags         card
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int          true  "panel id"
// @Param        body      body      CardRequest  true  "card"
// @Success      200       {object}  map[string]any
// @Failure      400       {object}  map[string]string
// @Router       /panel/{panel_id}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	card := &model.Card{PanelID: panel.ID}
	req.apply(card)
	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		respondStoreFailure(c, h.logger, "card create failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "the card was successfully registered",
		"data":    toCardResponse(card),
	})
}

// Update godoc
// @Summary      Replace a card's title, position and size
// @Tags         card
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int          true  "panel id"
// @Param        card_id   path      int          true  "card id"
// @Param        body      body      CardRequest  true  "card"
// @Success      202       {object}  map[string]any
// @Failure      400       {object}  map[string]string
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /panel/{panel_id}/cards/{card_id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}
	cardID, ok := parseID(c, "card_id")
	if !ok {
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	card := &model.Card{ID: cardID, PanelID: panel.ID}
	req.apply(card)
	if err := h.cardRepo.Update(c.Request.Context(), card); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			cardMissing(c, panel.ID, cardID)
			return
		}
		respondStoreFailure(c, h.logger, "card update failed", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "the card was successfully updated",
		"data":    toCardResponse(card),
	})
}

// Delete godoc
// @Summary      Remove a card from a panel
// @Tags         card
// @Produce      json
// @Security     TokenAuth
// @Param        panel_id  path      int  true  "panel id"
// @Param        card_id   path      int  true  "card id"
// @Success      202       {object}  map[string]any
// @Failure      403       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Router       /panel/{panel_id}/cards/{card_id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	panel, ok := ownedPanel(c, h.panelRepo, h.logger)
	if !ok {
		return
	}
	cardID, ok := parseID(c, "card_id")
	if !ok {
		return
	}

	card, err := h.cardRepo.GetInPanel(c.Request.Context(), panel.ID, cardID)
	if err != nil {
		respondStoreFailure(c, h.logger, "card lookup failed", err)
		return
	}
	if card == nil {
		cardMissing(c, panel.ID, cardID)
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), panel.ID, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			cardMissing(c, panel.ID, cardID)
			return
		}
		respondStoreFailure(c, h.logger, "card delete failed", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "the card was successfully deleted",
		"data":    toCardResponse(card),
	})
}
