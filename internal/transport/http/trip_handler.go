package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripjournal/trip-wizard-backend/internal/domain"
	"github.com/tripjournal/trip-wizard-backend/internal/service"
	"github.com/tripjournal/trip-wizard-backend/internal/session"
	"github.com/tripjournal/trip-wizard-backend/internal/util"
	"github.com/tripjournal/trip-wizard-backend/internal/wizard"
)

// SessionHeader carries the wizard session id. A request without one (or with
// an expired id) gets a fresh session; the response always echoes the id back.
const SessionHeader = "X-Trip-Session"

const contextTripKey = "trip"

type TripHandler struct {
	registry *session.Registry
	trips    *service.TripService
}

func RegisterTrip(e *echo.Echo, registry *session.Registry, trips *service.TripService) {
	handler := &TripHandler{registry: registry, trips: trips}

	g := e.Group("/api/v1/trip", handler.resolveSession)
	g.GET("", handler.getTrip)
	g.POST("/reset", handler.resetTrip)
	g.POST("/preferences", handler.submitPreferences)
	g.GET("/recommendations", handler.listRecommendations, handler.requireStage(wizard.StageRecommendations))
	g.POST("/destination", handler.selectDestination, handler.requireStage(wizard.StageRecommendations))
	g.DELETE("/destination", handler.clearDestination)
	g.POST("/customization", handler.submitCustomization, handler.requireStage(wizard.StageCustomize))
	g.GET("/itinerary", handler.getItinerary, handler.requireStage(wizard.StageItinerary))
	g.GET("/map", handler.getMap, handler.requireStage(wizard.StageItinerary))
}

func (h *TripHandler) resolveSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		trip := h.registry.Resolve(c.Request().Header.Get(SessionHeader))
		c.Set(contextTripKey, trip)
		c.Response().Header().Set(SessionHeader, trip.ID().String())
		return next(c)
	}
}

// requireStage enforces the stage prefix chain on every request, exactly as
// the wizard guards each render. A violation never yields partial content,
// only the earliest stage to go back to.
func (h *TripHandler) requireStage(stage wizard.Stage) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			trip := currentTrip(c)
			if redirect, ok := wizard.Check(stage, trip.Snapshot()); !ok {
				return c.JSON(http.StatusConflict, util.Envelope{
					"error":       "stage prerequisites not met",
					"redirect_to": redirect.Path(),
				})
			}
			return next(c)
		}
	}
}

func currentTrip(c echo.Context) *session.Trip {
	return c.Get(contextTripKey).(*session.Trip)
}

// stageConflict answers for a session that lost its prerequisites between the
// guard check and the handler body, pointing at the furthest stage it may
// still render.
func stageConflict(c echo.Context, trip *session.Trip) error {
	return c.JSON(http.StatusConflict, util.Envelope{
		"error":       "stage prerequisites not met",
		"redirect_to": wizard.Current(trip.Snapshot()).Path(),
	})
}

func (h *TripHandler) getTrip(c echo.Context) error {
	trip := currentTrip(c)
	snap := trip.Snapshot()

	return c.JSON(http.StatusOK, util.Envelope{
		"session_id":           trip.ID(),
		"stage":                wizard.Current(snap),
		"preferences":          snap.Preferences,
		"selected_destination": snap.Destination,
		"customization":        snap.Customization,
	})
}

func (h *TripHandler) resetTrip(c echo.Context) error {
	trip := currentTrip(c)
	h.trips.Reset(trip)

	return c.JSON(http.StatusOK, util.Envelope{
		"message":     "trip reset",
		"redirect_to": wizard.StagePreferences.Path(),
	})
}

func (h *TripHandler) submitPreferences(c echo.Context) error {
	trip := currentTrip(c)

	var prefs domain.PreferenceSet
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.trips.SubmitPreferences(trip, prefs); err != nil {
		if errors.Is(err, service.ErrPreferenceValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not save preferences"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"preferences": trip.Preferences(),
		"next":        wizard.StageRecommendations.Path(),
	})
}

func (h *TripHandler) listRecommendations(c echo.Context) error {
	trip := currentTrip(c)

	destinations, err := h.trips.Recommendations(c.Request().Context(), trip)
	if err != nil {
		if errors.Is(err, service.ErrStageConflict) {
			return stageConflict(c, trip)
		}
		return c.JSON(http.StatusBadGateway, util.Error("Could not reach API. Showing no destinations."))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"destinations": destinations,
	})
}

func (h *TripHandler) selectDestination(c echo.Context) error {
	trip := currentTrip(c)

	var dest domain.Destination
	if err := c.Bind(&dest); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if dest.ID == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("destination id is required"))
	}

	h.trips.SelectDestination(trip, dest)
	return c.JSON(http.StatusOK, util.Envelope{
		"selected_destination": trip.Destination(),
		"next":                 wizard.StageCustomize.Path(),
	})
}

func (h *TripHandler) clearDestination(c echo.Context) error {
	trip := currentTrip(c)
	h.trips.ClearDestination(trip)

	return c.JSON(http.StatusOK, util.Envelope{
		"selected_destination": nil,
	})
}

func (h *TripHandler) submitCustomization(c echo.Context) error {
	trip := currentTrip(c)

	var customization domain.Customization
	if err := c.Bind(&customization); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	if err := h.trips.SubmitCustomization(trip, customization); err != nil {
		if errors.Is(err, service.ErrCustomizationValidation) {
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not save customization"))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"customization": trip.Customization(),
		"next":          wizard.StageItinerary.Path(),
	})
}

func (h *TripHandler) getItinerary(c echo.Context) error {
	trip := currentTrip(c)

	snap, err := h.trips.FetchItinerary(c.Request().Context(), trip)
	if err != nil {
		return stageConflict(c, trip)
	}
	nearby := snap.Nearby
	if nearby == nil {
		nearby = []domain.NearbySuggestion{}
	}

	payload := util.Envelope{
		"itinerary":          snap.Itinerary,
		"nearby_suggestions": nearby,
		"map":                h.trips.MapView(trip),
	}

	// The itinerary call is required; with nothing to show the failure is the
	// answer. Nearby failures never surface.
	if snap.Itinerary == nil && snap.ItineraryErr != "" {
		payload["error"] = snap.ItineraryErr
		return c.JSON(http.StatusBadGateway, payload)
	}
	if snap.ItineraryErr != "" {
		payload["error"] = snap.ItineraryErr
	}
	return c.JSON(http.StatusOK, payload)
}

func (h *TripHandler) getMap(c echo.Context) error {
	trip := currentTrip(c)
	return c.JSON(http.StatusOK, h.trips.MapView(trip))
}
