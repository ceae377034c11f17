package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/branding"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/access"
	serviceAuth "github.com/cmlabs-hris/hris-backoffice-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-backoffice-go/internal/service/employee"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/file"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/service/master"
	reportService "github.com/cmlabs-hris/hris-backoffice-go/internal/service/report"
	systemSettingService "github.com/cmlabs-hris/hris-backoffice-go/internal/service/systemsetting"
	vacationService "github.com/cmlabs-hris/hris-backoffice-go/internal/service/vacation"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db, cfg.Report.SystemBusiness)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	businessUnitRepo := postgresql.NewBusinessUnitRepository(db)
	vacationSettingRepo := postgresql.NewVacationSettingRepository(db)
	shiftExceptionRepo := postgresql.NewShiftExceptionRepository(db)
	systemSettingRepo := postgresql.NewSystemSettingRepository(db)

	var fileStorage *storage.LocalStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage types: ", cfg.Storage.Type)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.App.Env == "production")
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	guard := access.NewGuard(userRepo)
	fileService := file.NewFileService(fileStorage)
	calculator := vacationService.NewAccrualCalculator(vacationSettingRepo, shiftExceptionRepo)

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, guard)
	masterService := master.NewMasterService(businessUnitRepo, departmentRepo, positionRepo, cfg.Report.SystemBusiness)
	vacationSvc := vacationService.NewVacationService(employeeRepo, vacationSettingRepo, shiftExceptionRepo, calculator, guard)
	settingSvc := systemSettingService.NewSystemSettingService(systemSettingRepo, fileService, cfg.Report.LogoURL)
	reportSvc := reportService.NewReportService(
		employeeRepo,
		shiftExceptionRepo,
		calculator,
		guard,
		settingSvc,
		branding.NewInjector(cfg.Report.LogoTimeout),
	)

	handlers := appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Master:        appHTTP.NewMasterHandler(masterService),
		Vacation:      appHTTP.NewVacationHandler(vacationSvc),
		Report:        appHTTP.NewReportHandler(reportSvc),
		SystemSetting: appHTTP.NewSystemSettingHandler(settingSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
		UploadsPath:    fileStorage.BasePath(),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
