package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"panelboard/internal/handler"
	"panelboard/internal/model"
	"panelboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCardRouter() (*gin.Engine, *MockCardRepository, *MockPanelRepository) {
	r := newRouter()
	cardRepo := new(MockCardRepository)
	panelRepo := new(MockPanelRepository)
	cardHandler := handler.NewCardHandler(cardRepo, panelRepo, discardLogger())

	panelRepo.On("GetByID", mock.Anything, uint(1)).Return(&model.Panel{ID: 1, Name: "mine", UserID: alice.ID}, nil).Maybe()
	panelRepo.On("GetByID", mock.Anything, uint(2)).Return(&model.Panel{ID: 2, Name: "bob's", UserID: 2}, nil).Maybe()
	panelRepo.On("GetByID", mock.Anything, uint(3)).Return(nil, nil).Maybe()

	cards := r.Group("/panel/:panel_id/cards", asUser(alice))
	cards.GET("", cardHandler.GetAll)
	cards.POST("", cardHandler.Create)
	cards.PUT("/:card_id", cardHandler.Update)
	cards.DELETE("/:card_id", cardHandler.Delete)
	return r, cardRepo, panelRepo
}

const cardBody = `{"title":"write tests","coord_x":0,"coord_y":10,"width":200,"height":80}`

func TestCardCreate(t *testing.T) {
	// Arrange
	router, cardRepo, _ := setupCardRouter()
	cardRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.PanelID == 1 && c.Title == "write tests" && c.CoordX == 0 && c.Width == 200
	})).Return(nil)

	// Act
	resp := doJSON(router, "POST", "/panel/1/cards", cardBody)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"message":"the card was successfully registered",
		"data":{"_id":1,"title":"write tests","coord_x":0,"coord_y":10,"width":200,"height":80}
	}`, resp.Body.String())
	cardRepo.AssertExpectations(t)
}

func TestCardCreate_InvalidBody(t *testing.T) {
	router, cardRepo, _ := setupCardRouter()

	resp := doJSON(router, "POST", "/panel/1/cards", `{"title":"x","coord_x":0}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "POST", "/panel/1/cards", `{"title":"x","coord_x":0,"coord_y":0,"width":1,"height":1,"color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	cardRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCardRoutes_PanelOwnership(t *testing.T) {
	router, cardRepo, _ := setupCardRouter()

	cases := []struct{ method, path string }{
		{"GET", "/panel/%s/cards"},
		{"POST", "/panel/%s/cards"},
		{"PUT", "/panel/%s/cards/7"},
		{"DELETE", "/panel/%s/cards/7"},
	}
	for _, tc := range cases {
		resp := doJSON(router, tc.method, fmt.Sprintf(tc.path, "2"), cardBody)
		assert.Equal(t, http.StatusForbidden, resp.Code, tc.method)

		resp = doJSON(router, tc.method, fmt.Sprintf(tc.path, "3"), cardBody)
		assert.Equal(t, http.StatusNotFound, resp.Code, tc.method)
	}

	assert.Empty(t, cardRepo.Calls)
}

func TestCardGetAll(t *testing.T) {
	router, cardRepo, _ := setupCardRouter()
	cardRepo.On("GetByPanelID", mock.Anything, uint(1)).Return([]model.Card{
		{ID: 7, Title: "a", CoordX: 1, CoordY: 2, Width: 3, Height: 4, PanelID: 1},
	}, nil)

	resp := doJSON(router, "GET", "/panel/1/cards", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":[{"_id":7,"title":"a","coord_x":1,"coord_y":2,"width":3,"height":4}],"count":1}`, resp.Body.String())
}

func TestCardUpdate(t *testing.T) {
	router, cardRepo, _ := setupCardRouter()
	cardRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.ID == 7 && c.PanelID == 1 && c.CoordY == 10
	})).Return(nil)
	cardRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Card) bool {
		return c.ID == 8
	})).Return(repository.ErrCardNotFound)

	resp := doJSON(router, "PUT", "/panel/1/cards/7", cardBody)
	assert.Equal(t, http.StatusAccepted, resp.Code)
	assert.Equal(t, "the card was successfully updated", decode(t, resp)["message"])

	resp = doJSON(router, "PUT", "/panel/1/cards/8", cardBody)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "card 8 does not exist in panel 1", decode(t, resp)["message"])
}

func TestCardDelete(t *testing.T) {
	router, cardRepo, _ := setupCardRouter()
	card := &model.Card{ID: 7, Title: "a", PanelID: 1}
	cardRepo.On("GetInPanel", mock.Anything, uint(1), uint(7)).Return(card, nil)
	cardRepo.On("GetInPanel", mock.Anything, uint(1), uint(8)).Return(nil, nil)
	cardRepo.On("Delete", mock.Anything, uint(1), uint(7)).Return(nil)

	resp := doJSON(router, "DELETE", "/panel/1/cards/7", "")
	assert.Equal(t, http.StatusAccepted, resp.Code)
	assert.Equal(t, "the card was successfully deleted", decode(t, resp)["message"])

	resp = doJSON(router, "DELETE", "/panel/1/cards/8", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	cardRepo.AssertNumberOfCalls(t, "Delete", 1)
}
