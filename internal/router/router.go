package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Vorongor/users-api/internal/controllers"
	"github.com/Vorongor/users-api/internal/httperr"
	"github.com/Vorongor/users-api/internal/middleware"
	"github.com/Vorongor/users-api/internal/ratelimit"
	"github.com/Vorongor/users-api/internal/validation"
)

// Setup registers validation rules, middleware and every route on r.
// The limiter may be nil, in which case the credential routes are
// unthrottled.
func Setup(r *gin.Engine, uc *controllers.UserController, db *gorm.DB, secret []byte, limiter *ratelimit.Limiter, avatarsDir string) {
	validation.Register()

	r.Use(httperr.ErrorHandler())

	credentials := r.Group("/")
	if limiter != nil {
		credentials.Use(limiter.Middleware())
	}
	credentials.POST("/register", uc.Register)
	credentials.POST("/login", uc.Login)

	r.POST("/logout", uc.Logout)

	protected := r.Group("/")
	protected.Use(middleware.Authenticate(db, secret))
	protected.GET("/current", uc.Current)
	protected.PATCH("/", uc.UpdateSubscription)
	protected.PATCH("/avatars", uc.UpdateAvatar)

	// uploaded avatars are served from the public dir
	r.Static("/avatars", avatarsDir)
}
