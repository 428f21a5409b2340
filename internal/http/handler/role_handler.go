package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

type RoleHandler struct {
	roles service.RoleServiceInterface
}

func NewRoleHandler(roles service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// Create resolves by name first, so posting an existing role name returns
// that role instead of a duplicate error.
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(fieldIfEmpty(body.Name, "name", apperr.MsgRoleNameRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	role, err := h.roles.Create(body.Name, body.Description, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "role", "create")
	response.JSON(w, r, http.StatusCreated, role)
}

func (h *RoleHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	role, err := h.roles.FindByID(id)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, role)
}

func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(fieldIfEmpty(body.Name, "name", apperr.MsgRoleNameRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	role, err := h.roles.Update(id, body.Name, body.Description, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, role)
}

func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := h.roles.Delete(id); err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "role", "delete")
	response.JSON(w, r, http.StatusNoContent, nil)
}

func (h *RoleHandler) AssignPermission(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	var body struct {
		PermissionID uint `json:"permission_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(fieldIfZero(body.PermissionID, "permission_id", apperr.MsgPermissionNameRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	role, err := h.roles.AssignPermission(id, body.PermissionID, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.Audit(r, "role.permission.assign", "role_id", id, "permission_id", body.PermissionID, "actor_id", actorID(r))
	response.JSON(w, r, http.StatusOK, role)
}

func (h *RoleHandler) RemovePermission(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	permissionID, err := parsePathID(chi.URLParam(r, "permissionID"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	removed, err := h.roles.RemovePermission(id, permissionID)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	if removed {
		observability.Audit(r, "role.permission.remove", "role_id", id, "permission_id", permissionID, "actor_id", actorID(r))
	}
	response.JSON(w, r, http.StatusOK, map[string]bool{"removed": removed})
}

func (h *RoleHandler) Search(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.Search(searchFilter(r, "name"), []string{"name asc"})
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, roles)
}

func (h *RoleHandler) SearchPaged(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	res, err := h.roles.SearchPaged(searchFilter(r, "name"), []string{"name asc"}, pageReq)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, res)
}
