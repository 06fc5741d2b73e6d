package main

import (
	"fmt"
	"net/http"

	"github.com/kintai-hq/kintai-backend-go/internal/config"
	appHTTP "github.com/kintai-hq/kintai-backend-go/internal/handler/http"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/cron"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/database"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-hq/kintai-backend-go/internal/repository/postgresql"
	locationService "github.com/kintai-hq/kintai-backend-go/internal/service/location"
	reportService "github.com/kintai-hq/kintai-backend-go/internal/service/report"
	workruleService "github.com/kintai-hq/kintai-backend-go/internal/service/workrule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workRuleRepo := postgresql.NewWorkRuleRepository(db)
	locationPingRepo := postgresql.NewLocationPingRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	resolver := workruleService.NewResolver(workRuleRepo)
	locationSvc := locationService.NewLocationService(locationPingRepo)
	reportSvc := reportService.NewReportService(reportRepo, locationPingRepo, resolver, cfg.Report.StrictLocation)

	scheduler := cron.NewScheduler()
	reportJobs := cron.NewReportJobs(reportRepo, reportSvc, cfg.Report.DraftRegenInterval)
	reportJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	locationHandler := appHTTP.NewLocationHandler(locationSvc)
	workRuleHandler := appHTTP.NewWorkRuleHandler(resolver)

	router := appHTTP.NewRouter(
		JWTService,
		reportHandler,
		locationHandler,
		workRuleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
