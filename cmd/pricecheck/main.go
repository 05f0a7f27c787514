// Command pricecheck searches a running price checker from the terminal.
//
//	pricecheck -addr http://localhost:8080 "iPhone 15"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"price_checker/internal/presenter"
	"price_checker/pkg/logx"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "price checker base URL")
	timeout := flag.Duration("timeout", 30*time.Second, "search timeout") //nolint:mnd
	flag.Parse()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn})))

	keyword := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(keyword) == "" {
		fmt.Fprintln(os.Stderr, "usage: pricecheck [-addr URL] keyword")
		os.Exit(2) //nolint:mnd
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := presenter.NewAPIClient(*addr, &http.Client{Timeout: *timeout})

	session := presenter.NewSession(client).WithObserver(func(state presenter.State) {
		if state.Loading {
			fmt.Fprintf(os.Stderr, "Checking prices for %q...\n", state.Keyword)
		}
	})

	state := session.Submit(ctx, keyword)
	if len(state.Entries) == 0 {
		os.Exit(1)
	}

	if err := presenter.RenderText(os.Stdout, state.Cards()); err != nil {
		slog.Error("presenter.RenderText", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
