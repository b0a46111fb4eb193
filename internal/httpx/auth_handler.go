package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shooid/shoo-shop/internal/accounts"
	"github.com/shooid/shoo-shop/internal/session"
)

type registerReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginReq struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type authResp struct {
	Token string         `json:"token"`
	User  session.Record `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" || req.Confirm == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	if req.Password != req.Confirm {
		writeError(w, http.StatusBadRequest, "password confirmation does not match")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a, err := h.Accounts.Register(ctx, req.Email, req.Username, req.Password)
	if errors.Is(err, accounts.ErrDuplicateEmail) || errors.Is(err, accounts.ErrDuplicateUsername) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// auto-login after register
	token, err := h.Sessions.Create(ctx, a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, authResp{
		Token: token,
		User:  session.Record{Email: a.Email, Username: a.Username, Avatar: a.Avatar},
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Identifier == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	a, err := h.Accounts.Authenticate(ctx, req.Identifier, req.Password)
	if errors.Is(err, accounts.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.Sessions.Create(ctx, a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, authResp{
		Token: token,
		User:  session.Record{Email: a.Email, Username: a.Username, Avatar: a.Avatar},
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), tokenFrom(r.Context())); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r.Context()))
}

type profileReq struct {
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email != nil && *req.Email == "" {
		writeError(w, http.StatusBadRequest, "email must not be empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rec := sessionFrom(r.Context())
	a, err := h.Accounts.UpdateProfile(ctx, rec.Username, accounts.ProfilePatch{
		Email:  req.Email,
		Avatar: req.Avatar,
	})
	if errors.Is(err, accounts.ErrNotFound) {
		// session points at an account that no longer exists: force logout
		_ = h.Sessions.Delete(ctx, tokenFrom(r.Context()))
		writeError(w, http.StatusUnauthorized, "invalid or expired session")
		return
	}
	if errors.Is(err, accounts.ErrDuplicateEmail) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	updated, err := h.Sessions.Refresh(ctx, tokenFrom(r.Context()), a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
