package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogUC "github.com/lamaran-inc/lamaran/internal/application/catalog/usecases"
	pricingUC "github.com/lamaran-inc/lamaran/internal/application/pricing/usecases"
	showcaseUC "github.com/lamaran-inc/lamaran/internal/application/showcase/usecases"
	testimonialUC "github.com/lamaran-inc/lamaran/internal/application/testimonial/usecases"
	userUC "github.com/lamaran-inc/lamaran/internal/application/user/usecases"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/auth"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/config"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/repository"
	"github.com/lamaran-inc/lamaran/internal/infrastructure/storage"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/handlers"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/middleware"
	"github.com/lamaran-inc/lamaran/internal/interfaces/http/routes"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
	"github.com/lamaran-inc/lamaran/internal/shared/utils"
)

// Router wires the application together and exposes the Gin engine.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	authHandler        *handlers.AuthHandler
	categoryHandler    *handlers.CategoryHandler
	tagHandler         *handlers.TagHandler
	themeHandler       *handlers.ThemeHandler
	serviceHandler     *handlers.ServiceHandler
	planHandler        *handlers.PlanHandler
	testimonialHandler *handlers.TestimonialHandler

	authMiddleware *middleware.AuthMiddleware
	loginLimiter   *middleware.RateLimiter
	submitLimiter  *middleware.RateLimiter
}

// NewRouter builds every repository, use case and handler against the given
// database handle. redisClient may be nil; rate limiting then passes through.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	categoryRepo := repository.NewCategoryRepository(db, log)
	tagRepo := repository.NewTagRepository(db, log)
	themeRepo := repository.NewThemeRepository(db, log)
	serviceRepo := repository.NewServiceRepository(db, log)
	serviceSettingsRepo := repository.NewServiceSettingsRepository(db, log)
	planRepo := repository.NewPricingPlanRepository(db, log)
	pricingSettingsRepo := repository.NewPricingSettingsRepository(db, log)
	testimonialRepo := repository.NewTestimonialRepository(db, log)
	testimonialSettingsRepo := repository.NewTestimonialSettingsRepository(db, log)
	userRepo := repository.NewUserRepository(db, log)

	assets := storage.NewLocalStore(&cfg.Storage, log)
	hasher := auth.NewPasswordHasher(cfg.Auth.Bcrypt.Cost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiresInHours)

	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	registerUC := userUC.NewRegisterUseCase(userRepo, hasher, log)
	currentUserUC := userUC.NewGetCurrentUserUseCase(userRepo, log)
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, currentUserUC, cfg.Auth.Cookie, log)

	categoryHandler := handlers.NewCategoryHandler(
		catalogUC.NewCreateCategoryUseCase(categoryRepo, log),
		catalogUC.NewUpdateCategoryUseCase(categoryRepo, log),
		catalogUC.NewDeleteCategoryUseCase(categoryRepo, log),
		catalogUC.NewListCategoriesUseCase(categoryRepo, log),
		log,
	)

	tagHandler := handlers.NewTagHandler(
		catalogUC.NewCreateTagUseCase(tagRepo, log),
		catalogUC.NewUpdateTagUseCase(tagRepo, log),
		catalogUC.NewDeleteTagUseCase(tagRepo, log),
		catalogUC.NewListTagsUseCase(tagRepo, log),
		log,
	)

	themeHandler := handlers.NewThemeHandler(
		catalogUC.NewCreateThemeUseCase(themeRepo, categoryRepo, tagRepo, assets, log),
		catalogUC.NewUpdateThemeUseCase(themeRepo, categoryRepo, tagRepo, assets, log),
		catalogUC.NewDeleteThemeUseCase(themeRepo, assets, log),
		catalogUC.NewListThemesUseCase(themeRepo, log),
		catalogUC.NewGetThemeUseCase(themeRepo, log),
		log,
	)

	serviceHandler := handlers.NewServiceHandler(
		showcaseUC.NewCreateServiceUseCase(serviceRepo, assets, log),
		showcaseUC.NewUpdateServiceUseCase(serviceRepo, assets, log),
		showcaseUC.NewDeleteServiceUseCase(serviceRepo, assets, log),
		showcaseUC.NewListServicesUseCase(serviceRepo, log),
		showcaseUC.NewGetPublicServicesUseCase(serviceRepo, serviceSettingsRepo, log),
		showcaseUC.NewGetServiceSettingsUseCase(serviceSettingsRepo, log),
		showcaseUC.NewUpdateServiceSettingsUseCase(serviceSettingsRepo, log),
		log,
	)

	planHandler := handlers.NewPlanHandler(
		pricingUC.NewCreatePlanUseCase(planRepo, log),
		pricingUC.NewUpdatePlanUseCase(planRepo, log),
		pricingUC.NewDeletePlanUseCase(planRepo, log),
		pricingUC.NewListPlansUseCase(planRepo, log),
		pricingUC.NewGetPublicPricingUseCase(planRepo, pricingSettingsRepo, log),
		pricingUC.NewGetPricingSettingsUseCase(pricingSettingsRepo, log),
		pricingUC.NewUpdatePricingSettingsUseCase(pricingSettingsRepo, log),
		log,
	)

	testimonialHandler := handlers.NewTestimonialHandler(
		testimonialUC.NewCreateTestimonialUseCase(testimonialRepo, themeRepo, assets, log),
		testimonialUC.NewSubmitTestimonialUseCase(testimonialRepo, testimonialSettingsRepo, themeRepo, log),
		testimonialUC.NewUpdateTestimonialUseCase(testimonialRepo, themeRepo, assets, log),
		testimonialUC.NewApproveTestimonialUseCase(testimonialRepo, themeRepo, log),
		testimonialUC.NewDeleteTestimonialUseCase(testimonialRepo, assets, log),
		testimonialUC.NewListTestimonialsUseCase(testimonialRepo, themeRepo, log),
		testimonialUC.NewGetPublicTestimonialsUseCase(testimonialRepo, testimonialSettingsRepo, themeRepo, log),
		testimonialUC.NewGetTestimonialSettingsUseCase(testimonialSettingsRepo, log),
		testimonialUC.NewUpdateTestimonialSettingsUseCase(testimonialSettingsRepo, log),
		log,
	)

	return &Router{
		engine:             engine,
		cfg:                cfg,
		logger:             log,
		authHandler:        authHandler,
		categoryHandler:    categoryHandler,
		tagHandler:         tagHandler,
		themeHandler:       themeHandler,
		serviceHandler:     serviceHandler,
		planHandler:        planHandler,
		testimonialHandler: testimonialHandler,
		authMiddleware:     middleware.NewAuthMiddleware(jwtService, cfg.Auth.Cookie, log),
		loginLimiter:       middleware.NewRateLimiter(redisClient, 10, 1*time.Minute),
		submitLimiter:      middleware.NewRateLimiter(redisClient, 5, 1*time.Minute),
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	// Uploaded assets are served straight off disk.
	r.engine.Static(r.cfg.Storage.BaseURL, r.cfg.Storage.BaseDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.loginLimiter,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		CategoryHandler: r.categoryHandler,
		TagHandler:      r.tagHandler,
		ThemeHandler:    r.themeHandler,
		AuthMiddleware:  r.authMiddleware,
	})

	routes.SetupServiceRoutes(r.engine, &routes.ServiceRouteConfig{
		ServiceHandler: r.serviceHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupPricingRoutes(r.engine, &routes.PricingRouteConfig{
		PlanHandler:    r.planHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupTestimonialRoutes(r.engine, &routes.TestimonialRouteConfig{
		TestimonialHandler: r.testimonialHandler,
		AuthMiddleware:     r.authMiddleware,
		RateLimiter:        r.submitLimiter,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
