package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the non-handler settings of the HTTP surface.
type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// UploadsPath is served read-only under /uploads when set.
	UploadsPath string
}

type Handlers struct {
	Auth          AuthHandler
	Employee      EmployeeHandler
	Master        MasterHandler
	Vacation      VacationHandler
	Report        ReportHandler
	SystemSetting SystemSettingHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadsPath != "" {
		serveUploads(r, "/uploads", http.Dir(opts.UploadsPath))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/employees", func(r chi.Router) {
				// Scoped per caller by the service
				r.Get("/", h.Employee.ListEmployees)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.CreateEmployee)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Get("/vacations", h.Vacation.GetBalance)
					r.Get("/shift-exceptions", h.Vacation.ListShiftExceptions)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
						r.Put("/", h.Employee.UpdateEmployee)
						r.Delete("/", h.Employee.DeleteEmployee)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionVacationManage))
						r.Post("/shift-exceptions", h.Vacation.CreateShiftException)
					})
				})
			})

			r.With(middleware.RequirePermission(user.PermissionVacationManage)).
				Delete("/shift-exceptions/{id}", h.Vacation.DeleteShiftException)

			r.Get("/vacation-settings", h.Vacation.ListSettings)

			r.Route("/master", func(r chi.Router) {
				r.Get("/business-units", h.Master.ListBusinessUnits)
				r.Get("/business-units/{id}", h.Master.GetBusinessUnit)
				r.Get("/departments", h.Master.ListDepartments)
				r.Get("/departments/{id}", h.Master.GetDepartment)
				r.Get("/positions", h.Master.ListPositions)
				r.Get("/positions/{id}", h.Master.GetPosition)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionMasterManage))

					r.Post("/business-units", h.Master.CreateBusinessUnit)
					r.Put("/business-units/{id}", h.Master.UpdateBusinessUnit)
					r.Delete("/business-units/{id}", h.Master.DeleteBusinessUnit)

					r.Post("/departments", h.Master.CreateDepartment)
					r.Put("/departments/{id}", h.Master.UpdateDepartment)
					r.Delete("/departments/{id}", h.Master.DeleteDepartment)

					r.Post("/positions", h.Master.CreatePosition)
					r.Put("/positions/{id}", h.Master.UpdatePosition)
					r.Delete("/positions/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionReportsView))
				r.Get("/vacations", h.Report.GetVacationReport)
				r.Get("/vacations/used-days", h.Report.GetUsedDaysReport)
				r.Get("/vacations/summary", h.Report.GetVacationSummaryReport)
			})

			r.Route("/system-settings", func(r chi.Router) {
				r.Get("/", h.SystemSetting.GetActive)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSettingsManage))
					r.Put("/", h.SystemSetting.UpdateActive)
					r.Post("/logo", h.SystemSetting.UploadLogo)
				})
			})
		})
	})
	return r
}

// serveUploads exposes stored files such as uploaded logos.
func serveUploads(r chi.Router, path string, root http.FileSystem) {
	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, r)
	})
}
