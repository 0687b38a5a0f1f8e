package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

// UserHandler serves the member administration screen.
type UserHandler struct {
	users    *service.UserService
	renderer *Renderer
}

func NewUserHandler(users *service.UserService, renderer *Renderer) *UserHandler {
	return &UserHandler{users: users, renderer: renderer}
}

type usersView struct {
	AdminEmail string
	Users      []domain.User
	Error      string
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderUsers(w, r, http.StatusOK, "")
}

func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderUsers(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	name := r.FormValue("name")
	if _, err := h.users.Create(r.Context(), name); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.renderUsers(w, r, http.StatusUnprocessableEntity, "Member name is required.")
			return
		}
		slog.Error("create user failed", "error", err)
		h.renderUsers(w, r, http.StatusInternalServerError, "Could not add member. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *UserHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderUsers(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	id := r.PathValue("id")
	name := r.FormValue("name")

	if _, err := h.users.Rename(r.Context(), id, name); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderUsers(w, r, http.StatusUnprocessableEntity, "Member name is required.")
		case errors.Is(err, domain.ErrNotFound):
			h.renderUsers(w, r, http.StatusNotFound, "Member not found.")
		default:
			slog.Error("rename user failed", "error", err, "user_id", id)
			h.renderUsers(w, r, http.StatusInternalServerError, "Could not rename member. Please try again.")
		}
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderUsers(w, r, http.StatusNotFound, "Member not found.")
			return
		}
		slog.Error("delete user failed", "error", err, "user_id", id)
		h.renderUsers(w, r, http.StatusInternalServerError, "Could not remove member. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *UserHandler) renderUsers(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	view := usersView{Error: errMsg}
	if admin := AdminFromContext(r.Context()); admin != nil {
		view.AdminEmail = admin.Email
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		if view.Error == "" {
			view.Error = "Could not load members. Please try again."
		}
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}
	view.Users = users

	h.renderer.Render(w, status, "users.html", view)
}
