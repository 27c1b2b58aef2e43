// Package wire provides dependency injection for the tally application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/tally/internal/adapters/cli"
	"github.com/example/tally/internal/adapters/sqlite"
	"github.com/example/tally/internal/app"
	"github.com/example/tally/internal/config"
	"github.com/example/tally/internal/db"
	"github.com/example/tally/internal/ports/primary"
)

var (
	cfg             *config.Config
	database        *sql.DB
	entryService    primary.EntryService
	reviewService   primary.ReviewService
	calendarService primary.CalendarService
	userService     primary.UserService
	once            sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// DB returns the shared database handle.
func DB() *sql.DB {
	once.Do(initServices)
	return database
}

// EntryService returns the singleton EntryService instance.
func EntryService() primary.EntryService {
	once.Do(initServices)
	return entryService
}

// ReviewService returns the singleton ReviewService instance.
func ReviewService() primary.ReviewService {
	once.Do(initServices)
	return reviewService
}

// CalendarService returns the singleton CalendarService instance.
func CalendarService() primary.CalendarService {
	once.Do(initServices)
	return calendarService
}

// UserService returns the singleton UserService instance.
func UserService() primary.UserService {
	once.Do(initServices)
	return userService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	path := cfg.DBPath
	if path == "" {
		path, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err = db.Open(path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.SeedDefaultAdmin(database); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	entryRepo := sqlite.NewEntryRepository(database)
	closedDayRepo := sqlite.NewClosedDayRepository(database)
	periodRepo := sqlite.NewPeriodRepository(database)
	userRepo := sqlite.NewUserRepository(database)

	// Create services (primary ports implementation)
	entryService = app.NewEntryService(entryRepo, closedDayRepo, periodRepo, cfg.DailyCapHours)
	reviewService = app.NewReviewService(entryRepo, userRepo)
	calendarService = app.NewCalendarService(closedDayRepo, periodRepo)
	userService = app.NewUserService(userRepo)
}

// EntryAdapter returns a new EntryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func EntryAdapter() *cliadapter.EntryAdapter {
	return EntryAdapterWithOutput(os.Stdout)
}

// EntryAdapterWithOutput returns a new EntryAdapter writing to the given output.
func EntryAdapterWithOutput(out io.Writer) *cliadapter.EntryAdapter {
	once.Do(initServices)
	return cliadapter.NewEntryAdapter(entryService, out)
}

// ReviewAdapter returns a new ReviewAdapter writing to stdout.
func ReviewAdapter() *cliadapter.ReviewAdapter {
	return ReviewAdapterWithOutput(os.Stdout)
}

// ReviewAdapterWithOutput returns a new ReviewAdapter writing to the given output.
func ReviewAdapterWithOutput(out io.Writer) *cliadapter.ReviewAdapter {
	once.Do(initServices)
	return cliadapter.NewReviewAdapter(reviewService, out)
}

// CalendarAdapter returns a new CalendarAdapter writing to stdout.
func CalendarAdapter() *cliadapter.CalendarAdapter {
	return CalendarAdapterWithOutput(os.Stdout)
}

// CalendarAdapterWithOutput returns a new CalendarAdapter writing to the given output.
func CalendarAdapterWithOutput(out io.Writer) *cliadapter.CalendarAdapter {
	once.Do(initServices)
	return cliadapter.NewCalendarAdapter(calendarService, out)
}

// UserAdapter returns a new UserAdapter writing to stdout.
func UserAdapter() *cliadapter.UserAdapter {
	return UserAdapterWithOutput(os.Stdout)
}

// UserAdapterWithOutput returns a new UserAdapter writing to the given output.
func UserAdapterWithOutput(out io.Writer) *cliadapter.UserAdapter {
	once.Do(initServices)
	return cliadapter.NewUserAdapter(userService, out)
}
