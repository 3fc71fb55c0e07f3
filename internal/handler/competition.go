package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/thepitchdeck/pitchdeck-api/internal/payload"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
	"github.com/thepitchdeck/pitchdeck-api/internal/usecase"
	"github.com/thepitchdeck/pitchdeck-api/internal/validation"
)

func (h *Handler) listCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := h.competitions.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to list competitions")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, competitions)
}

func (h *Handler) createCompetition(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	var req payload.CompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.validate.Check(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	// The deadline format was already validated.
	deadline, err := validation.ParseDate(req.Deadline)
	if err != nil {
		h.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	competition, err := h.competitions.Create(r.Context(), usecase.CreateCompetitionParams{
		Title:            req.Title,
		Organizer:        req.Organizer,
		Logo:             req.Logo,
		GradeEligibility: req.GradeEligibility,
		Deadline:         deadline,
		Prize:            req.Prize,
		Status:           req.Status,
		Description:      req.Description,
		ApplicationType:  req.ApplicationType,
		ApplyURL:         req.ApplyURL,
		Frequency:        req.Frequency,
		Dates:            req.Dates,
		Location:         req.Location,
		Cost:             req.Cost,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create competition")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"message":     "Competition created",
		"competition": competition,
	})
}

func (h *Handler) competitionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.competitions.Stats(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to compute competition stats")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) getCompetition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	competition, err := h.competitions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			h.respondMessage(w, http.StatusNotFound, "Competition not found")
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to get competition")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, competition)
}

func (h *Handler) updateCompetition(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())
	id := chi.URLParam(r, "id")

	var req payload.CompetitionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.ID != nil && *req.ID != id {
		h.respondMessage(w, http.StatusBadRequest, "Cannot change competition ID")
		return
	}

	params := repository.UpdateCompetitionParams{
		Title:            req.Title,
		Organizer:        req.Organizer,
		Logo:             req.Logo,
		GradeEligibility: req.GradeEligibility,
		Prize:            req.Prize,
		Status:           req.Status,
		Description:      req.Description,
		ApplicationType:  req.ApplicationType,
		ApplyURL:         req.ApplyURL,
		Frequency:        req.Frequency,
		Dates:            req.Dates,
		Location:         req.Location,
		Cost:             req.Cost,
	}

	if req.Deadline != nil {
		deadline, err := validation.ParseDate(*req.Deadline)
		if err != nil {
			h.respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		params.Deadline = &deadline
	}

	if _, err := h.competitions.Update(r.Context(), id, params); err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			h.respondMessage(w, http.StatusNotFound, "Competition not found")
			return
		}

		log.Error().Err(err).Msg("failed to update competition")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondMessage(w, http.StatusOK, "Competition updated successfully")
}

func (h *Handler) deleteCompetition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.competitions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCompetitionNotFound) {
			h.respondMessage(w, http.StatusNotFound, "Competition not found")
			return
		}

		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to delete competition")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondMessage(w, http.StatusOK, "Competition deleted successfully")
}
