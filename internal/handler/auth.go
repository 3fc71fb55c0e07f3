package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/thepitchdeck/pitchdeck-api/internal/auth"
	"github.com/thepitchdeck/pitchdeck-api/internal/model"
	"github.com/thepitchdeck/pitchdeck-api/internal/payload"
	"github.com/thepitchdeck/pitchdeck-api/internal/repository"
	"github.com/thepitchdeck/pitchdeck-api/internal/usecase"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	var req payload.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.validate.Check(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.auth.SignUp(r.Context(), usecase.SignUpParams{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		School:     req.School,
		Grade:      req.Grade,
		Approved:   req.Approved,
		Favourites: req.Favourites,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			h.respondMessage(w, http.StatusBadRequest, "User already exists")
			return
		}

		log.Error().Err(err).Msg("failed to create user")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondMessage(w, http.StatusCreated, "User created successfully")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.validate.Check(req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.auth.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.respondMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}

		log.Error().Err(err).Msg("failed to log user in")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	auth.SetSessionCookie(w, token, h.secureCookies)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	// Clearing the cookie needs no store and no valid session.
	auth.ClearSessionCookie(w, h.secureCookies)
	h.respondMessage(w, http.StatusOK, "Logged out")
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	claims, ok := sessionFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.respondMessage(w, http.StatusNotFound, "User not found")
			return
		}

		log.Error().Err(err).Msg("failed to load current user")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]*model.User{"user": user})
}

func (h *Handler) toggleFavourite(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	claims, ok := sessionFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	var req payload.ToggleFavouriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.CompetitionID == "" {
		h.respondMessage(w, http.StatusBadRequest, "Competition ID required")
		return
	}

	favourites, err := h.auth.ToggleFavourite(r.Context(), claims.UserID, req.CompetitionID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.respondMessage(w, http.StatusNotFound, "User not found")
			return
		}

		log.Error().Err(err).Msg("failed to toggle favourite")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string][]string{"favourites": favourites})
}

func (h *Handler) listFavourites(w http.ResponseWriter, r *http.Request) {
	log := zerolog.Ctx(r.Context())

	claims, ok := sessionFromContext(r.Context())
	if !ok {
		h.respondMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	favourites, err := h.auth.ListFavourites(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			h.respondMessage(w, http.StatusNotFound, "User not found")
			return
		}

		log.Error().Err(err).Msg("failed to list favourites")
		h.respondMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string][]model.Competition{"favourites": favourites})
}
