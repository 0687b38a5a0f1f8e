package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/nobijoy/hedge-fund-app/internal/domain"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

// ContributionHandler serves the monthly contribution entry screen.
type ContributionHandler struct {
	contributions *service.ContributionService
	renderer      *Renderer
}

func NewContributionHandler(contributions *service.ContributionService, renderer *Renderer) *ContributionHandler {
	return &ContributionHandler{contributions: contributions, renderer: renderer}
}

type monthlyView struct {
	AdminEmail string
	Entries    []domain.Contribution
	Users      []domain.User
	Months     []string
	Year       string
	Error      string
}

func (h *ContributionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.renderMonthly(w, r, http.StatusOK, "")
}

func (h *ContributionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderMonthly(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	user := r.FormValue("user")
	amount := r.FormValue("amount")
	month := r.FormValue("month")
	year := r.FormValue("year")

	if _, err := h.contributions.Create(r.Context(), user, amount, month, year); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.renderMonthly(w, r, http.StatusUnprocessableEntity, "All fields are required and amount must be a number.")
			return
		}
		slog.Error("create contribution failed", "error", err)
		h.renderMonthly(w, r, http.StatusInternalServerError, "Could not record contribution. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin/monthly", http.StatusSeeOther)
}

func (h *ContributionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.contributions.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.renderMonthly(w, r, http.StatusNotFound, "Entry not found.")
			return
		}
		slog.Error("delete contribution failed", "error", err, "contribution_id", id)
		h.renderMonthly(w, r, http.StatusInternalServerError, "Could not remove entry. Please try again.")
		return
	}

	http.Redirect(w, r, "/admin/monthly", http.StatusSeeOther)
}

func (h *ContributionHandler) renderMonthly(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	view := monthlyView{
		Months: domain.MonthNames,
		Year:   strconv.Itoa(time.Now().Year()),
		Error:  errMsg,
	}
	if admin := AdminFromContext(r.Context()); admin != nil {
		view.AdminEmail = admin.Email
	}

	entries, err := h.contributions.List(r.Context())
	if err != nil {
		slog.Error("list contributions failed", "error", err)
		if view.Error == "" {
			view.Error = "Could not load entries. Please try again."
		}
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
	}
	view.Entries = entries

	users, err := h.contributions.ListUsers(r.Context())
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

	h.renderer.Render(w, status, "monthly.html", view)
}
