// Command boardclient-smoke drives a live TaskHive backend through the core
// client lifecycle and prints what happened. It is a manual smoke check, not
// a load generator: one login, a handful of authenticated reads, one logout.
//
// Credentials and the target URL come from flags, the environment, or a
// .env file (loaded via godotenv). With -redis-addr empty and no REDIS_ADDR
// in the environment, the token is persisted in an embedded miniredis so the
// Redis-backed store path is still exercised.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	boardclient "github.com/taskhive/boardclient"
	"github.com/taskhive/boardclient/credstore"
	"github.com/taskhive/boardclient/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	var (
		baseURL   = flag.String("base-url", "", "backend base URL; if empty, BOARDCLIENT_API_BASE_URL env or http://localhost:8000")
		email     = flag.String("email", os.Getenv("BOARDCLIENT_EMAIL"), "account email")
		password  = flag.String("password", os.Getenv("BOARDCLIENT_PASSWORD"), "account password")
		redisAddr = flag.String("redis-addr", "", "redis address for the token store; if empty, REDIS_ADDR env or miniredis is used")
		timeout   = flag.Duration("timeout", 30*time.Second, "per-request timeout")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required (flags or BOARDCLIENT_EMAIL / BOARDCLIENT_PASSWORD)")
		os.Exit(2)
	}

	url := *baseURL
	if url == "" {
		url = os.Getenv("BOARDCLIENT_API_BASE_URL")
	}
	if url == "" {
		url = "http://localhost:8000"
	}

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		rdb     *redis.Client
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		cleanup = func() {
			_ = rdb.Close()
			mr.Close()
		}
		fmt.Printf("token store: miniredis at %s\n", mr.Addr())
	} else {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() { _ = rdb.Close() }
		fmt.Printf("token store: redis at %s\n", addr)
	}
	defer cleanup()

	cfg := boardclient.DefaultConfig()
	cfg.API.BaseURL = url
	cfg.API.Timeout = *timeout
	cfg.Metrics.Enabled = true

	client, err := boardclient.New().
		WithConfig(cfg).
		WithTokenStore(credstore.NewRedis(rdb, "boardclient-smoke")).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "client build: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Printf("login %s against %s\n", *email, url)
	user, err := client.Session().Login(ctx, session.Credentials{Email: *email, Password: *password})
	if err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ok: user id %d, name %q\n", user.ID, user.Name)

	teams, err := client.Teams(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "teams: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ok: %d teams\n", len(teams))

	for _, t := range teams {
		projects, err := client.TeamProjects(ctx, t.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "projects for team %d: %v\n", t.ID, err)
			os.Exit(1)
		}
		fmt.Printf("ok: team %q has %d projects\n", t.Name, len(projects))
	}

	list, err := client.Notifications(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "notifications: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ok: %d notifications, %d unread\n", len(list.Notifications), list.UnreadCount)

	dash, err := client.PersonalDashboardData(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dashboard: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ok: %d issues due soon\n", len(dash.DueSoon))

	client.Logout(ctx)
	fmt.Println("ok: logged out")

	fmt.Println("---- metrics ----")
	snap := client.MetricsSnapshot()
	fmt.Printf("requests issued:   %d\n", snap.Counters[boardclient.MetricRequestIssued])
	fmt.Printf("request failures:  %d\n", snap.Counters[boardclient.MetricRequestFailure])
	fmt.Printf("401 responses:     %d\n", snap.Counters[boardclient.MetricUnauthorizedResponse])
}
