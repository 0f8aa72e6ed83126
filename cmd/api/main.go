package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonbook/internal/database"
	"salonbook/internal/middleware"
	"salonbook/internal/modules/auth"
	"salonbook/internal/modules/live"
	"salonbook/internal/modules/reservation"
	"salonbook/internal/modules/salon"
	"salonbook/internal/modules/user"
	jwtsvc "salonbook/internal/pkg/jwt"
	"salonbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	ttl := time.Hour
	if v := os.Getenv("JWT_TTL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid JWT_TTL %q: %v", v, err)
		}
		ttl = parsed
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	salonRepo := repository.NewSalonRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New(secret, ttl)

	hub := live.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	salonService := salon.NewService(salonRepo)
	salonHandler := salon.NewHandler(salonService)

	reservationService := reservation.NewService(reservationRepo, salonRepo, live.NewBroadcaster(hub))
	reservationHandler := reservation.NewHandler(reservationService)

	liveHandler := live.NewHandler(hub)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.ErrorLogger(), middleware.CORS())

	api := r.Group("/api")
	{
		authHandler.RegisterRoutes(api)
		salonHandler.RegisterPublicRoutes(api)
		reservationHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
			liveHandler.RegisterRoutes(protected)

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				reservationHandler.RegisterAdminRoutes(admin)
				userHandler.RegisterAdminRoutes(admin)
				salonHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
