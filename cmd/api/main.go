package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cryptochat/internal/app"
	"cryptochat/internal/config"
	"cryptochat/internal/handler"
	"cryptochat/internal/metrics"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error starting chat: %v", err)
	}
	defer a.Close()

	var turns handler.TurnStore
	if a.Turns != nil {
		turns = a.Turns
	}
	chatHandler := handler.NewChatHandler(a.Router, a.Sessions, turns)

	r := gin.Default()

	allowedOrigins := cfg.AllowedOrigins()
	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.POST("/get-response", chatHandler.GetResponse)
	r.GET("/sessions/:id/turns", chatHandler.GetTurns)
	r.GET("/health", chatHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
