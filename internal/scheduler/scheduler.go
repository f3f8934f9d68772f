package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/NishantDas0079/weather-dashboard/internal/store"
	"github.com/NishantDas0079/weather-dashboard/internal/weather"
)

// Scheduler keeps the snapshot cache warm for the configured cities while
// the dashboard runs in serve mode.
type Scheduler struct {
	scheduler *gocron.Scheduler
	provider  weather.Provider
	cache     *store.MemoryStore
	cities    []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, provider weather.Provider, cache *store.MemoryStore) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		provider:  provider,
		cache:     cache,
		cities:    cities,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler.
// The first refresh runs immediately.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(s.refreshAll)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refreshAll() {
	log.Println("scheduler: refreshing weather snapshots")

	var wg sync.WaitGroup
	for _, city := range s.cities {
		city := city
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			cw, err := s.provider.FetchCurrent(ctx, city)
			if err != nil {
				log.Printf("scheduler: current fetch failed for %s: %v", city, err)
			} else {
				s.cache.SaveCurrent(city, cw)
			}

			bundle, err := s.provider.FetchForecast(ctx, city, weather.DefaultForecastCount)
			if err != nil {
				log.Printf("scheduler: forecast fetch failed for %s: %v", city, err)
			} else {
				s.cache.SaveForecast(city, bundle)
			}
		}()
	}
	wg.Wait()

	log.Println("scheduler: refresh complete")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
