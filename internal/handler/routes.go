package handler

import (
	"io/fs"
	"net/http"

	"github.com/nobijoy/hedge-fund-app/internal/service"
	"github.com/nobijoy/hedge-fund-app/web"
)

// RegisterRoutes wires all application routes onto the mux.
func RegisterRoutes(
	mux *http.ServeMux,
	renderer *Renderer,
	auth *service.AuthService,
	users *service.UserService,
	contributions *service.ContributionService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, renderer, cookieSecure)
	dashboard := NewDashboardHandler(contributions, renderer)
	export := NewExportHandler(contributions)
	userHandler := NewUserHandler(users, renderer)
	contributionHandler := NewContributionHandler(contributions, renderer)

	requireAuth := func(next http.HandlerFunc) http.Handler {
		return RequireAuth(auth, next)
	}

	mux.Handle("GET /login", OptionalAuth(auth, http.HandlerFunc(authHandler.HandleLoginPage)))
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)

	mux.Handle("GET /{$}", requireAuth(dashboard.HandleDashboard))

	mux.Handle("GET /export/contributions.csv", requireAuth(export.HandleCSV))
	mux.Handle("GET /export/contributions.xlsx", requireAuth(export.HandleXLSX))

	mux.Handle("GET /admin", requireAuth(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
	}))
	mux.Handle("GET /admin/users", requireAuth(userHandler.HandleList))
	mux.Handle("POST /admin/users", requireAuth(userHandler.HandleCreate))
	mux.Handle("POST /admin/users/{id}", requireAuth(userHandler.HandleRename))
	mux.Handle("POST /admin/users/{id}/delete", requireAuth(userHandler.HandleDelete))

	mux.Handle("GET /admin/monthly", requireAuth(contributionHandler.HandleList))
	mux.Handle("POST /admin/monthly", requireAuth(contributionHandler.HandleCreate))
	mux.Handle("POST /admin/monthly/{id}/delete", requireAuth(contributionHandler.HandleDelete))

	mux.HandleFunc("GET /healthz", HandleHealthz)

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Unknown paths fall back to the dashboard.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}
