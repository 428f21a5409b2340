package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/domain"
	"github.com/anbessa/iam-backend/internal/http/middleware"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

type UserHandler struct {
	users service.UserServiceInterface
}

func NewUserHandler(users service.UserServiceInterface) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserTypeID     uint   `json:"user_type_id"`
		Name           string `json:"name"`
		Username       string `json:"username"`
		Password       string `json:"password"`
		Email          string `json:"email"`
		ProfilePicture string `json:"profile_picture"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(
		fieldIfEmpty(body.Name, "name", apperr.MsgUserNameRequired),
		fieldIfZero(body.UserTypeID, "user_type_id", apperr.MsgUserTypeRequired),
		fieldIfEmpty(body.Username, "username", apperr.MsgUsernameRequired),
		fieldIfEmpty(body.Password, "password", apperr.MsgPasswordRequired),
	); err != nil {
		response.AppError(w, r, err)
		return
	}

	created, err := h.users.Create(service.CreateUserInput{
		UserTypeID:     body.UserTypeID,
		Name:           body.Name,
		Username:       body.Username,
		Password:       body.Password,
		Email:          body.Email,
		ProfilePicture: body.ProfilePicture,
		CreatedBy:      actorID(r),
	})
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.Audit(r, "user.create", "user_code", created.Code, "actor_id", actorID(r))
	observability.RecordDirectoryMutation(r.Context(), "user", "create")
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *UserHandler) FindByCode(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByCode(chi.URLParam(r, "code"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Search(searchFilter(r, "name", "username", "email"), []string{"name asc"})
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) SearchPaged(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	res, err := h.users.SearchPaged(searchFilter(r, "name", "username", "email"), []string{"name asc"}, pageReq)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, res)
}

func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "user.activate", h.users.Activate)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "user.deactivate", h.users.Deactivate)
}

func (h *UserHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "user.lock", h.users.Lock)
}

func (h *UserHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "user.unlock", h.users.Unlock)
}

func (h *UserHandler) lifecycle(w http.ResponseWriter, r *http.Request, event string, op func(code string) (*domain.User, error)) {
	user, err := op(chi.URLParam(r, "code"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.Audit(r, event, "user_code", user.Code, "actor_id", actorID(r))
	observability.RecordDirectoryMutation(r.Context(), "user", "update")
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RoleID uint `json:"role_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(fieldIfZero(body.RoleID, "role_id", apperr.MsgPolicyRoleRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	user, err := h.users.AssignRole(chi.URLParam(r, "code"), body.RoleID, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.Audit(r, "user.role.assign", "user_code", user.Code, "role_id", body.RoleID, "actor_id", actorID(r))
	response.JSON(w, r, http.StatusOK, user)
}

func (h *UserHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	roleID, err := parsePathID(chi.URLParam(r, "roleID"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	removed, err := h.users.RemoveRole(chi.URLParam(r, "code"), roleID)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	if removed {
		observability.Audit(r, "user.role.remove", "user_code", chi.URLParam(r, "code"), "role_id", roleID, "actor_id", actorID(r))
	}
	response.JSON(w, r, http.StatusOK, map[string]bool{"removed": removed})
}

func actorID(r *http.Request) uint {
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		return principal.ID
	}
	return 0
}
