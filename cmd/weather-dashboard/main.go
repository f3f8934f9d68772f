package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/NishantDas0079/weather-dashboard/internal/api/http"
	"github.com/NishantDas0079/weather-dashboard/internal/config"
	"github.com/NishantDas0079/weather-dashboard/internal/dashboard"
	"github.com/NishantDas0079/weather-dashboard/internal/report"
	"github.com/NishantDas0079/weather-dashboard/internal/scheduler"
	"github.com/NishantDas0079/weather-dashboard/internal/store"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
	"github.com/NishantDas0079/weather-dashboard/internal/weather/providers"
)

func main() {
	serve := flag.Bool("serve", false, "expose the JSON API instead of the interactive menu")
	rateLimit := flag.Bool("rate-limit", true, "apply client-side rate limiting to provider calls")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var provider weather.Provider = providers.NewOpenWeatherProvider(httpClient, cfg.APIKey, cfg.Units, cfg.Lang)
	if *rateLimit {
		// OpenWeatherMap free tier allows 60 calls/minute.
		provider = providers.NewRateLimitedProvider(provider, 1.0, 5)
	}

	cache := store.NewMemoryStore(cfg.CacheMaxAge)

	if *serve {
		runServer(cfg, provider, cache)
		return
	}

	session := dashboard.NewSession(provider, cache, dashboard.Options{
		Units:      cfg.Units,
		ChartWidth: cfg.ChartWidth,
		ReportDir:  cfg.ReportDir,
		HistSize:   cfg.HistorySize,
	})
	runMenu(session)
}

const menu = `
Weather Dashboard
  [1] Current weather
  [2] 5-day forecast
  [3] Temperature trend chart
  [4] Search history
  [5] Save last report
  [q] Quit
`

func runMenu(session *dashboard.Session) {
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(menu + "> ")
		if !in.Scan() {
			return
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			showCurrent(session, in)
		case "2":
			showForecast(session, in)
		case "3":
			showChart(session, in)
		case "4":
			showHistory(session)
		case "5":
			saveReport(session)
		case "q", "Q":
			return
		case "":
			// re-print the menu
		default:
			fmt.Println("Unknown choice")
		}
	}
}

// promptCity reads a city name; an empty line falls back to the last
// searched city when one exists.
func promptCity(session *dashboard.Session, in *bufio.Scanner) (string, bool) {
	last, hasLast := session.LastCity()
	if hasLast {
		fmt.Printf("City [%s]: ", last)
	} else {
		fmt.Print("City: ")
	}
	if !in.Scan() {
		return "", false
	}
	city := strings.TrimSpace(in.Text())
	if city == "" {
		if !hasLast {
			fmt.Println("No city given and nothing searched yet")
			return "", false
		}
		city = last
	}
	return city, true
}

func showCurrent(session *dashboard.Session, in *bufio.Scanner) {
	city, ok := promptCity(session, in)
	if !ok {
		return
	}

	ctx, cancel := fetchContext()
	defer cancel()

	cw, err := session.CurrentWeather(ctx, city)
	if err != nil {
		printFetchError(err)
		return
	}
	fmt.Println()
	fmt.Print(report.FormatCurrent(cw))
}

func showForecast(session *dashboard.Session, in *bufio.Scanner) {
	city, ok := promptCity(session, in)
	if !ok {
		return
	}

	ctx, cancel := fetchContext()
	defer cancel()

	summaries, err := session.Forecast(ctx, city)
	if err != nil {
		printFetchError(err)
		return
	}
	if len(summaries) == 0 {
		fmt.Println("No forecast data available")
		return
	}
	fmt.Println()
	fmt.Print(report.FormatDailySummaries(summaries, session.Units()))
}

func showChart(session *dashboard.Session, in *bufio.Scanner) {
	city, ok := promptCity(session, in)
	if !ok {
		return
	}

	ctx, cancel := fetchContext()
	defer cancel()

	lines, err := session.TrendChart(ctx, city)
	if err != nil {
		printFetchError(err)
		return
	}
	if len(lines) == 0 {
		fmt.Println("Not enough midday readings to draw a trend")
		return
	}
	fmt.Println()
	for _, l := range lines {
		fmt.Println(l)
	}
}

func showHistory(session *dashboard.Session) {
	entries := session.LastSearches(10)
	if len(entries) == 0 {
		fmt.Println("No searches yet")
		return
	}
	fmt.Println()
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %s  %.1f%s %s\n", i+1, e.City,
			e.Timestamp.Format("15:04:05"),
			e.Current.Temperature, e.Current.Units.TempSuffix(), e.Current.Condition)
	}
}

func saveReport(session *dashboard.Session) {
	path, err := session.SaveLastReport(time.Now())
	if err != nil {
		fmt.Printf("Could not save report: %v\n", err)
		return
	}
	fmt.Printf("Report saved to %s\n", path)
}

func fetchContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func printFetchError(err error) {
	fmt.Printf("Fetch failed: %v\n", err)
}

func runServer(cfg *config.AppConfig, provider weather.Provider, cache *store.MemoryStore) {
	sched := scheduler.New(cfg.Cities, cfg.RefreshInterval, provider, cache)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Backend{Provider: provider, Cache: cache})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
