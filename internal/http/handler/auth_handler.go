package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/http/middleware"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

const maxUploadMemory = 8 << 20

type AuthHandler struct {
	auth    service.AuthServiceInterface
	users   service.UserServiceInterface
	storage service.ProfilePictureStorage
}

func NewAuthHandler(auth service.AuthServiceInterface, users service.UserServiceInterface, storage service.ProfilePictureStorage) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, storage: storage}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(
		fieldIfEmpty(body.Username, "username", apperr.MsgUsernameRequired),
		fieldIfEmpty(body.Password, "password", apperr.MsgPasswordRequired),
	); err != nil {
		response.AppError(w, r, err)
		return
	}

	result, err := h.auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{
		"user":       result.User,
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Format(time.RFC3339),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, principal)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	var body struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(
		fieldIfEmpty(body.CurrentPassword, "current_password", apperr.MsgCurrentPasswordRequired),
		fieldIfEmpty(body.NewPassword, "new_password", apperr.MsgNewPasswordRequired),
	); err != nil {
		response.AppError(w, r, err)
		return
	}

	user, err := h.users.ChangePassword(principal.Code, body.CurrentPassword, body.NewPassword)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

// ChangeProfilePicture accepts a multipart form with a "picture" part,
// stores the object, then swaps the key on the user record. The previous
// object is removed best effort after the swap commits.
func (h *AuthHandler) ChangeProfilePicture(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid multipart payload", nil)
		return
	}
	file, header, err := r.FormFile("picture")
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "picture file is required", nil)
		return
	}
	defer file.Close()

	objectKey, err := h.storage.Upload(r.Context(), principal.Code, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		observability.RecordProfilePictureEvent(r.Context(), "rejected")
		if errors.Is(err, service.ErrInvalidFileType) {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", apperr.MsgImageInvalidType, nil)
			return
		}
		if errors.Is(err, service.ErrFileTooBig) {
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		response.AppError(w, r, err)
		return
	}

	user, previousKey, err := h.users.ChangeProfilePicture(principal.Code, objectKey)
	if err != nil {
		if cleanupErr := h.storage.Delete(r.Context(), objectKey); cleanupErr != nil {
			slog.WarnContext(r.Context(), "orphaned profile picture", "object_key", objectKey, "error", cleanupErr)
		}
		response.AppError(w, r, err)
		return
	}
	if previousKey != "" {
		if err := h.storage.Delete(r.Context(), previousKey); err != nil {
			slog.WarnContext(r.Context(), "stale profile picture not removed", "object_key", previousKey, "error", err)
		}
	}
	observability.RecordProfilePictureEvent(r.Context(), "replaced")
	response.JSON(w, r, http.StatusOK, user)
}

func (h *AuthHandler) ProfilePictureURL(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		return
	}
	if principal.ProfilePicture == "" {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "no profile picture set", nil)
		return
	}
	url, err := h.storage.URL(r.Context(), principal.ProfilePicture)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]string{"url": url})
}
