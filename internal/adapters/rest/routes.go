package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrescamacho/nations-go/internal/application/country/commands"
	"github.com/andrescamacho/nations-go/internal/application/country/queries"
	"github.com/andrescamacho/nations-go/internal/application/mediator"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withLogger)
	r.Use(s.instrument)

	r.Get("/api/health", s.handleHealth)
	if s.metricsHandler != nil && s.metricsPath != "" {
		r.Method(http.MethodGet, s.metricsPath, s.metricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(s.authenticated)

		r.Route("/api/buildings", func(r chi.Router) {
			r.Get("/types", s.handleBuildingTypes)
			r.Get("/status", s.handleBuildingStatus)
			r.Post("/construct", s.handleConstruct)
		})

		r.Route("/api/countries", func(r chi.Router) {
			r.Post("/", s.handleCreateCountry)
			r.Get("/my-country", s.handleMyCountry)
			r.Get("/production", s.handleProduction)
			r.Patch("/{id}", s.handleUpdateCountry)
			r.Delete("/{id}", s.handleDeleteCountry)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBuildingTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.SendTyped[*queries.ListBuildingTypesResponse](r.Context(), s.mediator, &queries.ListBuildingTypesQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, buildingTypesDTO(resp.Definitions))
}

func (s *Server) handleBuildingStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.SendTyped[*queries.GetBuildingStatusResponse](r.Context(), s.mediator, &queries.GetBuildingStatusQuery{
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BuildingStatusDTO{
		Buildings:         nonNilBuildings(resp.Buildings),
		ConstructionQueue: nonNilQueue(resp.ConstructionQueue),
	})
}

func (s *Server) handleConstruct(w http.ResponseWriter, r *http.Request) {
	var body constructRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	resp, err := mediator.SendTyped[*commands.ConstructBuildingResponse](r.Context(), s.mediator, &commands.ConstructBuildingCommand{
		UserID:       userIDFrom(r.Context()),
		BuildingType: body.BuildingType,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resources := resp.Resources
	writeJSON(w, http.StatusOK, BuildingStatusDTO{
		Buildings:         nonNilBuildings(resp.Buildings),
		ConstructionQueue: nonNilQueue(resp.ConstructionQueue),
		Resources:         &resources,
	})
}

type createCountryRequest struct {
	Name       string              `json:"name"`
	Government string              `json:"government"`
	Values     []string            `json:"values"`
	Flag       *commands.FlagInput `json:"flag"`
}

func (s *Server) handleCreateCountry(w http.ResponseWriter, r *http.Request) {
	var body createCountryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	resp, err := mediator.SendTyped[*commands.CreateCountryResponse](r.Context(), s.mediator, &commands.CreateCountryCommand{
		UserID:     userIDFrom(r.Context()),
		Name:       body.Name,
		Government: body.Government,
		Values:     body.Values,
		Flag:       body.Flag,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryDTO(resp.Country))
}

func (s *Server) handleMyCountry(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.SendTyped[*queries.GetCountryResponse](r.Context(), s.mediator, &queries.GetCountryQuery{
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryDTO(resp.Country))
}

func (s *Server) handleProduction(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.SendTyped[*queries.GetProductionResponse](r.Context(), s.mediator, &queries.GetProductionQuery{
		UserID: userIDFrom(r.Context()),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Production)
}

// handleUpdateCountry accepts only the flag; any other key rejects the whole update
func (s *Server) handleUpdateCountry(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	for key := range body {
		if key != "flag" {
			writeMessage(w, http.StatusBadRequest, msgInvalidUpdates)
			return
		}
	}

	var flag *commands.FlagInput
	if raw, ok := body["flag"]; ok {
		if err := json.Unmarshal(raw, &flag); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
	}

	resp, err := mediator.SendTyped[*commands.UpdateFlagResponse](r.Context(), s.mediator, &commands.UpdateFlagCommand{
		UserID:    userIDFrom(r.Context()),
		CountryID: chi.URLParam(r, "id"),
		Flag:      flag,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCountryDTO(resp.Country))
}

func (s *Server) handleDeleteCountry(w http.ResponseWriter, r *http.Request) {
	_, err := mediator.SendTyped[*commands.DeleteCountryResponse](r.Context(), s.mediator, &commands.DeleteCountryCommand{
		UserID:    userIDFrom(r.Context()),
		CountryID: chi.URLParam(r, "id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Country deleted")
}
