package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/planner"
	"github.com/tripjournal/trip-wizard-backend/internal/service"
	"github.com/tripjournal/trip-wizard-backend/internal/util"
)

// PlannerHandler exposes the in-process planning engine under the same
// contract the wizard expects from the remote planning service, so the
// process can be its own planner.
type PlannerHandler struct {
	planning *service.PlanningService
}

func RegisterPlanner(e *echo.Echo, planning *service.PlanningService) {
	handler := &PlannerHandler{planning: planning}

	g := e.Group("/api")
	g.POST("/recommend-destinations", handler.recommendDestinations)
	g.POST("/generate-itinerary", handler.generateItinerary)
	g.POST("/nearby-expansions", handler.nearbyExpansions)
}

func (h *PlannerHandler) recommendDestinations(c echo.Context) error {
	var prefs domain.PreferenceSet
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	destinations, err := h.planning.Recommend(c.Request().Context(), prefs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanningValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrNoDestinationData):
			return c.JSON(http.StatusInternalServerError, util.Error("no destination data available"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not rank destinations"))
		}
	}

	// The contract returns a bare array, not an envelope.
	return c.JSON(http.StatusOK, destinations)
}

func (h *PlannerHandler) generateItinerary(c echo.Context) error {
	var req planner.ItineraryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	itinerary, err := h.planning.GenerateItinerary(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanningValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not generate itinerary"))
		}
	}

	return c.JSON(http.StatusOK, itinerary)
}

func (h *PlannerHandler) nearbyExpansions(c echo.Context) error {
	var req planner.NearbyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	resp, err := h.planning.NearbyExpansions(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanningValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrDestinationNotFound):
			return c.JSON(http.StatusNotFound, util.Error("destination not found"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not compute nearby expansions"))
		}
	}

	return c.JSON(http.StatusOK, resp)
}
