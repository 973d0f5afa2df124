package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/controllers"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/middleware"
	"maintenance-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	userRepo := repositories.NewUserRepository(dbConn)
	companyRepo := repositories.NewCompanyRepository(dbConn)
	departmentRepo := repositories.NewDepartmentRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	workcenterRepo := repositories.NewWorkcenterRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authService := services.NewAuthService(userRepo, companyRepo, cacheRepo, jwtSvc, logger)
	maintenanceService := services.NewMaintenanceService(txManager, requestRepo, equipmentRepo,
		workcenterRepo, teamRepo, userRepo, nil, logger)
	teamService := services.NewTeamService(txManager, teamRepo, equipmentRepo, requestRepo,
		userRepo, companyRepo, logger)
	categoryService := services.NewCategoryService(txManager, categoryRepo, equipmentRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, requestRepo, categoryRepo,
		departmentRepo, userRepo, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, userRepo,
		cfg.Maintenance.TechnicianCapacity, logger)

	authController := controllers.NewAuthController(authService, logger)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService, logger)
	teamController := controllers.NewTeamController(teamService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)

	runAuthRouter(api, authController, authMW)

	protected := api.Group("", authMW.Auth)
	runMaintenanceRouter(protected, maintenanceController)
	runTeamRouter(protected, teamController)
	runCategoryRouter(protected, categoryController)
	runEquipmentRouter(protected, equipmentController)
	runDashboardRouter(protected, dashboardController)
}
