package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/deExistent98/clinic-booking/internal/config"
	"github.com/deExistent98/clinic-booking/internal/db"
	"github.com/deExistent98/clinic-booking/internal/handler"
	"github.com/deExistent98/clinic-booking/internal/model"
	"github.com/deExistent98/clinic-booking/internal/repository"
	"github.com/deExistent98/clinic-booking/internal/seed"
	"github.com/deExistent98/clinic-booking/internal/service"
)

func main() {
	// .env опционален: в контейнере всё приходит через окружение.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment variables")
	}

	// 1. Конфигурация.
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	httpCfg := config.LoadHTTPConfig()

	// 2. Подключение к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграция схемы.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Демо-данные при пустых таблицах.
	if err := seed.Run(context.Background(), gormDB); err != nil {
		log.Fatalf("seed: %v", err)
	}

	// 5. Репозитории (реализации на GORM).
	userRepo := repository.NewGormUserRepository(gormDB)
	doctorRepo := repository.NewGormDoctorRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	eventRepo := repository.NewGormEventRepository(gormDB)

	// 6. Сервис бронирований и HTTP-обработчики.
	bookingSvc := service.NewBookingService(bookingRepo, userRepo, doctorRepo, eventRepo)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	userHandler := handler.NewUserHandler(userRepo)
	doctorHandler := handler.NewDoctorHandler(doctorRepo)

	// 7. Gin-роутер с CORS для фронтенда.
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     httpCfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	handler.RegisterRoutes(r, bookingHandler, userHandler, doctorHandler)

	srv := &http.Server{
		Addr:    ":" + httpCfg.Port,
		Handler: r,
	}

	log.Printf("clinic booking API listening on %s", srv.Addr)

	// 8. Сервер в горутине, основной поток ждёт сигнала.
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	// 9. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(httpCfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
