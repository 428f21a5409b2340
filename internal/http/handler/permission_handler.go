package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

type PermissionHandler struct {
	permissions service.PermissionServiceInterface
}

func NewPermissionHandler(permissions service.PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{permissions: permissions}
}

func (h *PermissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Resource string `json:"resource"`
		Code     string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(
		fieldIfEmpty(body.Name, "name", apperr.MsgPermissionNameRequired),
		fieldIfEmpty(body.Type, "type", apperr.MsgPermissionTypeRequired),
		fieldIfEmpty(body.Resource, "resource", apperr.MsgPermissionResourceRequired),
		fieldIfEmpty(body.Code, "code", apperr.MsgPermissionCodeRequired),
	); err != nil {
		response.AppError(w, r, err)
		return
	}
	created, err := h.permissions.Create(body.Name, body.Type, body.Resource, body.Code, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "permission", "create")
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *PermissionHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	permission, err := h.permissions.FindByID(id)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, permission)
}

func (h *PermissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	var body struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(
		fieldIfEmpty(body.Name, "name", apperr.MsgPermissionNameRequired),
		fieldIfEmpty(body.Code, "code", apperr.MsgPermissionCodeRequired),
	); err != nil {
		response.AppError(w, r, err)
		return
	}
	updated, err := h.permissions.Update(id, body.Name, body.Code, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *PermissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := h.permissions.Delete(id); err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "permission", "delete")
	response.JSON(w, r, http.StatusNoContent, nil)
}

func (h *PermissionHandler) Search(w http.ResponseWriter, r *http.Request) {
	permissions, err := h.permissions.Search(searchFilter(r, "name", "type", "resource"), []string{"resource asc", "type asc"})
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, permissions)
}

func (h *PermissionHandler) SearchPaged(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	res, err := h.permissions.SearchPaged(searchFilter(r, "name", "type", "resource"), []string{"resource asc", "type asc"}, pageReq)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, res)
}
