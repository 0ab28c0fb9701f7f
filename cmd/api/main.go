package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/fightwisdom/storefront-backend/internal/modules/admin"
	"github.com/fightwisdom/storefront-backend/internal/modules/auth"
	"github.com/fightwisdom/storefront-backend/internal/modules/cart"
	"github.com/fightwisdom/storefront-backend/internal/modules/catalog"
	"github.com/fightwisdom/storefront-backend/internal/modules/coupon"
	"github.com/fightwisdom/storefront-backend/internal/modules/order"
	"github.com/fightwisdom/storefront-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, jwtSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	mw := auth.NewMiddleware(userRepo, jwtSecret)
	user.NewHandler(userService).RegisterRoutes(router, mw.Protect, mw.AdminOnly)

	// ── Catalog & Cart ──────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, mw.Protect, mw.AdminOnly)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo)
	cart.NewHandler(cartService).RegisterRoutes(router, mw.Protect)

	// ── Coupons & Orders ────────────────────────────────────
	couponRepo := coupon.NewPostgresRepository(db)
	couponService := coupon.NewService(couponRepo)
	coupon.NewHandler(couponService).RegisterRoutes(router, mw.Protect, mw.AdminOnly)

	upiCfg := order.UPIConfig{
		PayeeVPA:  getenv("UPI_PAYEE_VPA", "store@upi"),
		PayeeName: getenv("UPI_PAYEE_NAME", "Storefront"),
	}
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, couponRepo, cartRepo, upiCfg)
	order.NewHandler(orderService).RegisterRoutes(router, mw.Protect, mw.AdminOnly)

	// ── Admin Dashboard ─────────────────────────────────────
	adminRepo := admin.NewPostgresRepository(db)
	adminService := admin.NewService(adminRepo)
	admin.NewHandler(adminService).RegisterRoutes(router, mw.Protect, mw.AdminOnly)

	// ── Start Server ────────────────────────────────────────
	port := getenv("APP_PORT", "8080")
	fmt.Printf("Storefront API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
