package handler

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/nobijoy/hedge-fund-app/internal/repository/memory"
	"github.com/nobijoy/hedge-fund-app/internal/service"
)

const (
	testAdminEmail    = "admin@fund.test"
	testAdminPassword = "hunter22"
)

type testApp struct {
	server        *httptest.Server
	client        *http.Client
	contributions *service.ContributionService
	users         *service.UserService
}

// newTestApp starts the full application against an in-memory store with a
// seeded administrator. The client carries cookies but does not follow
// redirects, so tests can assert on them directly.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := memory.New()
	auth := service.NewAuthService(store.Admins(), "test-secret-test-secret-test-secret!", 4)
	users := service.NewUserService(store.Users(), store.Contributions())
	contributions := service.NewContributionService(store.Contributions(), store.Users())

	if err := auth.SeedAdmin(context.Background(), testAdminEmail, testAdminPassword); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	mux := http.NewServeMux()
	RegisterRoutes(mux, renderer, auth, users, contributions, false)

	server := httptest.NewServer(SecurityHeaders(mux))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: server, client: client, contributions: contributions, users: users}
}

func (app *testApp) login(t *testing.T) {
	t.Helper()
	resp := app.postForm(t, "/login", url.Values{
		"email":    {testAdminEmail},
		"password": {testAdminPassword},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("login redirect = %q, want /", loc)
	}
}

func (app *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := app.client.Get(app.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func (app *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := app.client.PostForm(app.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/",
		"/admin",
		"/admin/users",
		"/admin/monthly",
		"/export/contributions.csv",
		"/export/contributions.xlsx",
	} {
		resp := app.get(t, path)
		resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther {
			t.Errorf("GET %s status = %d, want 303", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Errorf("GET %s redirect = %q, want /login", path, loc)
		}
	}
}

func TestLoginGrantsAccess(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, "/")
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Contributions") {
		t.Error("dashboard missing heading")
	}
	if !strings.Contains(body, testAdminEmail) {
		t.Error("dashboard missing signed-in admin email")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := app.postForm(t, "/login", url.Values{
		"email":    {testAdminEmail},
		"password": {"wrong"},
	})
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if !strings.Contains(body, "Invalid email or password.") {
		t.Error("missing generic error message")
	}

	// Still locked out.
	resp = app.get(t, "/")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("dashboard after failed login status = %d, want 303", resp.StatusCode)
	}
}

func TestLoginPageBouncesAuthenticatedVisitor(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, "/login")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, "/logout", url.Values{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("logout redirect = %q, want /login", loc)
	}

	resp = app.get(t, "/")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("dashboard after logout status = %d, want 303", resp.StatusCode)
	}
}

func TestUserAdminFlow(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, "/admin/users", url.Values{"name": {"Alice"}})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	resp = app.get(t, "/admin/users")
	body := readBody(t, resp)
	if !strings.Contains(body, "Alice") {
		t.Fatal("created member not listed")
	}

	id := extractUserID(t, body)

	resp = app.postForm(t, "/admin/users/"+id, url.Values{"name": {"Alicia"}})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("rename status = %d", resp.StatusCode)
	}

	resp = app.postForm(t, "/admin/users/"+id+"/delete", url.Values{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	resp = app.get(t, "/admin/users")
	body = readBody(t, resp)
	if strings.Contains(body, "Alicia") {
		t.Error("deleted member still listed")
	}
}

func TestUserCreateBlankNameShowsError(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, "/admin/users", url.Values{"name": {"   "}})
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
	if !strings.Contains(body, "Member name is required.") {
		t.Error("missing validation message")
	}
}

func TestMonthlyFlow(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, "/admin/users", url.Values{"name": {"Alice"}})
	resp.Body.Close()

	resp = app.postForm(t, "/admin/monthly", url.Values{
		"user":   {"Alice"},
		"amount": {"150.25"},
		"month":  {"March"},
		"year":   {"2026"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	resp = app.get(t, "/admin/monthly")
	body := readBody(t, resp)
	for _, want := range []string{"Alice", "March", "2026", "$150.25"} {
		if !strings.Contains(body, want) {
			t.Errorf("entry list missing %q", want)
		}
	}

	list, err := app.contributions.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("have %d entries, want 1", len(list))
	}

	resp = app.postForm(t, "/admin/monthly/"+list[0].ID+"/delete", url.Values{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
}

func TestMonthlyCreateRejectsIncompleteForm(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.postForm(t, "/admin/monthly", url.Values{
		"user":  {"Alice"},
		"month": {"March"},
		"year":  {"2026"},
	})
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
	if !strings.Contains(body, "All fields are required") {
		t.Error("missing validation message")
	}

	list, err := app.contributions.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("incomplete submission stored: %v", list)
	}
}

func TestDashboardFilterAndPagination(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	ctx := context.Background()
	for i := 0; i < 12; i++ {
		user := "Alice"
		if i%2 == 1 {
			user = "Bob"
		}
		if _, err := app.contributions.Create(ctx, user, "100", "January", "2024"); err != nil {
			t.Fatalf("seed contribution: %v", err)
		}
	}

	resp := app.get(t, "/?user=Bob")
	body := readBody(t, resp)
	if strings.Contains(body, "<td>Alice</td>") {
		t.Error("filtered view still shows Alice rows")
	}
	if !strings.Contains(body, "<td>Bob</td>") {
		t.Error("filtered view missing Bob rows")
	}
	if !strings.Contains(body, "(6 entries)") {
		t.Error("filtered total not reported")
	}

	resp = app.get(t, "/?size=5&page=3")
	body = readBody(t, resp)
	if !strings.Contains(body, "Page 3 of 3") {
		t.Error("last page indicator missing")
	}
	if strings.Contains(body, ">Next<") {
		t.Error("next link shown on last page")
	}
}

func TestExportCSVHonorsFilters(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	ctx := context.Background()
	app.contributions.Create(ctx, "Alice", "100", "January", "2024")
	app.contributions.Create(ctx, "Bob", "200", "February", "2024")

	resp := app.get(t, "/export/contributions.csv?user=Alice")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "contributions.csv") {
		t.Errorf("content disposition = %q", cd)
	}

	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := [][]string{
		{"user", "month", "year", "amount"},
		{"Alice", "January", "2024", "100"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("csv = %v, want %v", records, want)
	}
}

func TestExportXLSXHeaders(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, "/export/contributions.xlsx")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "contributions.xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	app := newTestApp(t)

	resp := app.get(t, "/nonexistent")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestAdminRedirectsToUsers(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, "/admin")
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/admin/users" {
		t.Errorf("redirect = %q, want /admin/users", loc)
	}
}

var userFormRe = regexp.MustCompile(`/admin/users/([0-9a-f-]+)"`)

func extractUserID(t *testing.T, body string) string {
	t.Helper()
	m := userFormRe.FindStringSubmatch(body)
	if m == nil {
		t.Fatal("no user form action found in page")
	}
	return m[1]
}
