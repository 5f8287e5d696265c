package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"

	"cryptochat/internal/app"
	"cryptochat/internal/config"
	"cryptochat/internal/memory"
	"cryptochat/internal/router"
)

func main() {

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("error starting chat: %v", err)
	}
	defer a.Close()

	sess := memory.NewSession(uuid.NewString())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Ask about prices, charts, exchanges, NFTs or crypto news. Type exit to quit.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return
		}

		reply := a.Router.Handle(ctx, sess, router.Request{Message: line})
		fmt.Println(reply.PlainText())
		fmt.Println()

		if ctx.Err() != nil {
			return
		}
	}
}
