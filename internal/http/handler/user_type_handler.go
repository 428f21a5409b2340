package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anbessa/iam-backend/internal/apperr"
	"github.com/anbessa/iam-backend/internal/http/response"
	"github.com/anbessa/iam-backend/internal/observability"
	"github.com/anbessa/iam-backend/internal/service"
)

type UserTypeHandler struct {
	userTypes service.UserTypeServiceInterface
}

func NewUserTypeHandler(userTypes service.UserTypeServiceInterface) *UserTypeHandler {
	return &UserTypeHandler{userTypes: userTypes}
}

func (h *UserTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := decodeJSON(r, &body); err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := requireFields(fieldIfEmpty(body.Name, "name", apperr.MsgUserTypeNameRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	created, err := h.userTypes.Create(body.Name, body.Description, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "user_type", "create")
	response.JSON(w, r, http.StatusCreated, created)
}

func (h *UserTypeHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	userType, err := h.userTypes.FindByID(id)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, userType)
}

func (h *UserTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	if err := requireFields(fieldIfEmpty(body.Name, "name", apperr.MsgUserTypeNameRequired)); err != nil {
		response.AppError(w, r, err)
		return
	}
	updated, err := h.userTypes.Update(id, body.Name, body.Description, actorID(r))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *UserTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	if err := h.userTypes.Delete(id); err != nil {
		response.AppError(w, r, err)
		return
	}
	observability.RecordDirectoryMutation(r.Context(), "user_type", "delete")
	response.JSON(w, r, http.StatusNoContent, nil)
}

func (h *UserTypeHandler) Search(w http.ResponseWriter, r *http.Request) {
	userTypes, err := h.userTypes.Search(searchFilter(r, "name"), []string{"name asc"})
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, userTypes)
}

func (h *UserTypeHandler) SearchPaged(w http.ResponseWriter, r *http.Request) {
	pageReq, err := parsePageRequest(r)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	res, err := h.userTypes.SearchPaged(searchFilter(r, "name"), []string{"name asc"}, pageReq)
	if err != nil {
		response.AppError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, res)
}
