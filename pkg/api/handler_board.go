package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/buildsquads/squads/pkg/models"
)

// createCardHandler handles POST /api/v1/cards. New cards land in todo.
func (s *Server) createCardHandler(c *echo.Context) error {
	var req models.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	card, err := s.cardService.CreateCard(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, card)
}

// listCardsHandler handles GET /api/v1/cards.
func (s *Server) listCardsHandler(c *echo.Context) error {
	filters := models.CardFilters{
		ProjectID: c.QueryParam("project_id"),
		SquadID:   c.QueryParam("squad_id"),
		Lane:      c.QueryParam("lane"),
	}
	if filters.Lane != "" {
		if _, ok := models.LaneOrder[filters.Lane]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lane: "+filters.Lane)
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}

	result, err := s.cardService.ListCards(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getCardHandler handles GET /api/v1/cards/:id.
func (s *Server) getCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	card, err := s.cardService.GetCard(c.Request().Context(), cardID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, card)
}

// updateCardHandler handles PUT /api/v1/cards/:id.
func (s *Server) updateCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	var req models.UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	card, err := s.cardService.UpdateCard(c.Request().Context(), cardID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, card)
}

// deleteCardHandler handles DELETE /api/v1/cards/:id.
func (s *Server) deleteCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	if err := s.cardService.DeleteCard(c.Request().Context(), cardID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// moveCardHandler handles POST /api/v1/cards/:id/move: a lane move with
// preconditions enforced by the board engine, optimistic on Version.
func (s *Server) moveCardHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	var req models.MoveCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	card, err := s.engine.MoveCard(c.Request().Context(), cardID, req, "user")
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, card)
}

// humanReviewHandler handles POST /api/v1/cards/:id/review: records the
// human verdict on a card awaiting review.
func (s *Server) humanReviewHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	var req models.HumanReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	card, err := s.cardService.SetHumanReview(c.Request().Context(), cardID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, card)
}

// boardHandler handles GET /api/v1/squads/:id/board.
func (s *Server) boardHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	board, err := s.cardService.GetBoard(c.Request().Context(), squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, board)
}

// laneAssignmentsHandler handles GET /api/v1/squads/:id/lanes.
func (s *Server) laneAssignmentsHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	squad, err := s.squadService.GetSquad(c.Request().Context(), squadID, false)
	if err != nil {
		return mapServiceError(err)
	}

	assignments, err := s.cardService.GetLaneAssignments(c.Request().Context(), squad.ProjectID, squadID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, assignments)
}

// assignLaneHandler handles PUT /api/v1/squads/:id/lanes: pins a lane to
// an agent or clears the pin.
func (s *Server) assignLaneHandler(c *echo.Context) error {
	squadID := c.Param("id")
	if squadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "squad id is required")
	}

	var req models.AssignLaneRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	squad, err := s.squadService.GetSquad(c.Request().Context(), squadID, false)
	if err != nil {
		return mapServiceError(err)
	}

	assignment, err := s.cardService.AssignLane(c.Request().Context(), squad.ProjectID, squadID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, assignment)
}
