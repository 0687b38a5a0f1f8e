package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nobijoy/hedge-fund-app/internal/report"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

// DashboardHandler serves the contribution table with filtering, sorting,
// pagination, and export links.
type DashboardHandler struct {
	contributions *service.ContributionService
	renderer      *Renderer
}

func NewDashboardHandler(contributions *service.ContributionService, renderer *Renderer) *DashboardHandler {
	return &DashboardHandler{contributions: contributions, renderer: renderer}
}

type contributionRow struct {
	ID     string
	User   string
	Month  string
	Year   string
	Amount string
}

type dashboardView struct {
	AdminEmail string
	Rows       []contributionRow
	Options    report.Options
	Filter     report.Filter
	Sort       report.Sort
	Page       int
	TotalPages int
	PageSize   int
	PageSizes  []int
	Total      int

	SortLinks      map[string]template.URL
	PrevLink       template.URL
	NextLink       template.URL
	ExportCSVLink  template.URL
	ExportXLSXLink template.URL

	Error string
}

// parseTableQuery decodes the filter, sort, and pagination parameters
// shared by the dashboard and the export endpoints.
func parseTableQuery(r *http.Request) (report.Filter, report.Sort, int, int) {
	q := r.URL.Query()

	filter := report.Filter{
		User:  q.Get("user"),
		Month: q.Get("month"),
		Year:  q.Get("year"),
	}

	sort := report.Sort{
		Column: q.Get("sort"),
		Desc:   q.Get("dir") == "desc",
	}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		page = p
	}

	size := report.NormalizeSize(atoiDefault(q.Get("size"), report.DefaultPageSize))

	return filter, sort, page, size
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// HandleDashboard renders the contribution table.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	filter, sort, page, size := parseTableQuery(r)

	view := dashboardView{
		Filter:    filter,
		Sort:      sort,
		PageSize:  size,
		PageSizes: report.PageSizes,
	}
	if admin := AdminFromContext(r.Context()); admin != nil {
		view.AdminEmail = admin.Email
	}

	all, err := h.contributions.List(r.Context())
	if err != nil {
		slog.Error("list contributions failed", "error", err)
		view.Error = "Could not load contributions. Please try again."
		h.renderer.Render(w, http.StatusInternalServerError, "dashboard.html", view)
		return
	}

	view.Options = report.CollectOptions(all)

	filtered := report.Apply(all, filter)
	sorted := report.SortRows(filtered, sort)
	window, pageIdx, totalPages := report.Paginate(sorted, page-1, size)
	page = pageIdx + 1

	view.Rows = make([]contributionRow, 0, len(window))
	for _, c := range window {
		view.Rows = append(view.Rows, contributionRow{
			ID:     c.ID,
			User:   c.User,
			Month:  c.Month,
			Year:   c.Year,
			Amount: fmt.Sprintf("$%.2f", c.Amount),
		})
	}

	view.Page = page
	view.TotalPages = totalPages
	view.Total = len(filtered)

	base := url.Values{}
	if filter.User != "" {
		base.Set("user", filter.User)
	}
	if filter.Month != "" {
		base.Set("month", filter.Month)
	}
	if filter.Year != "" {
		base.Set("year", filter.Year)
	}
	if size != report.DefaultPageSize {
		base.Set("size", strconv.Itoa(size))
	}

	view.SortLinks = map[string]template.URL{
		report.ColumnUser:   sortLink(base, sort, report.ColumnUser),
		report.ColumnMonth:  sortLink(base, sort, report.ColumnMonth),
		report.ColumnYear:   sortLink(base, sort, report.ColumnYear),
		report.ColumnAmount: sortLink(base, sort, report.ColumnAmount),
	}

	if page > 1 {
		view.PrevLink = pageLink(base, sort, page-1)
	}
	if page < totalPages {
		view.NextLink = pageLink(base, sort, page+1)
	}

	export := url.Values{}
	if filter.User != "" {
		export.Set("user", filter.User)
	}
	if filter.Month != "" {
		export.Set("month", filter.Month)
	}
	if filter.Year != "" {
		export.Set("year", filter.Year)
	}
	query := ""
	if len(export) > 0 {
		query = "?" + export.Encode()
	}
	view.ExportCSVLink = template.URL("/export/contributions.csv" + query)
	view.ExportXLSXLink = template.URL("/export/contributions.xlsx" + query)

	h.renderer.Render(w, http.StatusOK, "dashboard.html", view)
}

// sortLink builds a dashboard link that sorts by the given column,
// toggling direction when the column is already active.
func sortLink(base url.Values, current report.Sort, column string) template.URL {
	v := url.Values{}
	for key, vals := range base {
		v[key] = vals
	}
	v.Set("sort", column)
	if current.Column == column && !current.Desc {
		v.Set("dir", "desc")
	}
	return template.URL("/?" + v.Encode())
}

func pageLink(base url.Values, sort report.Sort, page int) template.URL {
	v := url.Values{}
	for key, vals := range base {
		v[key] = vals
	}
	if sort.Column != "" {
		v.Set("sort", sort.Column)
		if sort.Desc {
			v.Set("dir", "desc")
		}
	}
	v.Set("page", strconv.Itoa(page))
	return template.URL("/?" + v.Encode())
}
