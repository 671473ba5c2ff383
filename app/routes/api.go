package routes

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/controllers"
	"github.com/shashiranjanraj/storerating/app/models"
	"github.com/shashiranjanraj/storerating/app/repositories"
	"github.com/shashiranjanraj/storerating/app/services"
	"github.com/shashiranjanraj/storerating/pkg/ctx"
	"github.com/shashiranjanraj/storerating/pkg/middleware"
	"github.com/shashiranjanraj/storerating/pkg/rbac"
	"github.com/shashiranjanraj/storerating/pkg/router"
)

// RegisterAPI mounts every /api route against db.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	users := repositories.NewUserRepository(db)
	stores := repositories.NewStoreRepository(db)
	ratings := repositories.NewRatingRepository(db)

	authController := controllers.NewAuthController(services.NewAuthService(users))
	userController := controllers.NewUserController(services.NewUserService(users))
	storeController := controllers.NewStoreController(services.NewStoreService(stores, users, ratings))
	ratingController := controllers.NewRatingController(services.NewRatingService(ratings, stores))
	dashboardController := controllers.NewDashboardController(services.NewDashboardService(users, stores, ratings))

	admin := rbac.HasRole(models.RoleAdmin)

	api := r.Group("/api")
	api.Get("/", "health", ctx.Wrap(controllers.Health))
	api.Post("/auth/signup", "auth.signup", ctx.Wrap(authController.Signup))
	api.Post("/auth/login", "auth.login", ctx.Wrap(authController.Login))

	protected := api.Group("", middleware.AuthMiddleware)
	protected.Put("/auth/change-password", "auth.password", ctx.Wrap(authController.ChangePassword))

	protected.Get("/users", "users.index", ctx.Wrap(userController.Index), admin)
	protected.Get("/users/{id}", "users.show", ctx.Wrap(userController.Show), admin)
	protected.Post("/users", "users.store", ctx.Wrap(userController.Store), admin)

	protected.Get("/stores", "stores.index", ctx.Wrap(storeController.Index))
	protected.Get("/stores/mine", "stores.mine", ctx.Wrap(storeController.Mine), rbac.HasRole(models.RoleStoreOwner))
	protected.Get("/stores/{id}", "stores.show", ctx.Wrap(storeController.Show), rbac.HasRole(models.RoleAdmin, models.RoleStoreOwner))
	protected.Post("/stores", "stores.store", ctx.Wrap(storeController.Store), admin)

	protected.Post("/ratings", "ratings.submit", ctx.Wrap(ratingController.Submit), rbac.HasRole(models.RoleNormalUser))
	protected.Get("/ratings", "ratings.index", ctx.Wrap(ratingController.Index))
	protected.Get("/ratings/user", "ratings.user", ctx.Wrap(ratingController.UserStores), rbac.HasRole(models.RoleNormalUser))

	protected.Get("/dashboard", "dashboard", ctx.Wrap(dashboardController.Show), admin)
}
