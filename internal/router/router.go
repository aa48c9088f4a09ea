package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-tracker/docs"
	mem "pet-care-tracker/internal/adapters/storage/memory"
	pg "pet-care-tracker/internal/adapters/storage/postgres"
	lite "pet-care-tracker/internal/adapters/storage/sqlite"
	"pet-care-tracker/internal/domain/glucose"
	"pet-care-tracker/internal/domain/mood"
	"pet-care-tracker/internal/domain/pets"
	"pet-care-tracker/internal/domain/routines"
	"pet-care-tracker/internal/domain/walks"
	"pet-care-tracker/internal/middleware"
	"pet-care-tracker/internal/platform/httpjson"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/platform/timezone"
)

type Options struct {
	// Opcional: si viene, se usa esta conexión tal cual (tests, pools armados
	// afuera). Si no: DBDSN => Postgres, SQLitePath => SQLite, nada => memoria.
	DB         *sql.DB
	DBDSN      string
	SQLitePath string

	Clock  *timezone.Clock
	Logger logger.Logger
}

type repos struct {
	pets     pets.Repository
	routines routines.Repository
	glucose  glucose.Repository
	mood     mood.Repository
	walks    walks.Repository
}

func NewRouter(opts Options) http.Handler {
	clock := opts.Clock
	if clock == nil {
		clock = timezone.MustNew(timezone.DefaultZone)
	}

	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{Level: logger.Info})
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httpjson.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Pet Care Tracker API",
			"docs":    "/docs/index.html",
		})
	})

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	st := openRepos(opts, log)

	petsSvc := pets.NewService(st.pets, clock)
	routinesSvc := routines.NewService(st.routines, clock)
	glucoseSvc := glucose.NewService(st.glucose, clock)
	moodSvc := mood.NewService(st.mood, clock)
	walksSvc := walks.NewService(st.walks, clock)

	r.Route("/api", func(api chi.Router) {
		pets.RegisterRoutes(api, petsSvc)
		routines.RegisterRoutes(api, routinesSvc, petsSvc)
		glucose.RegisterRoutes(api, glucoseSvc, petsSvc)
		mood.RegisterRoutes(api, moodSvc, petsSvc)
		walks.RegisterRoutes(api, walksSvc, petsSvc)
	})

	return r
}

func openRepos(opts Options, log logger.Logger) repos {
	db := opts.DB

	if db == nil && opts.DBDSN != "" {
		opened, err := pg.Open(opts.DBDSN)
		if err != nil {
			log.Error("postgres unavailable, falling back", map[string]any{"err": err.Error()})
		} else {
			log.Info("storage: postgres", nil)
			db = opened
		}
	}
	if db != nil {
		return repos{
			pets:     pg.NewPetsRepo(db),
			routines: pg.NewRoutinesRepo(db),
			glucose:  pg.NewGlucoseRepo(db),
			mood:     pg.NewMoodRepo(db),
			walks:    pg.NewWalksRepo(db),
		}
	}

	if opts.SQLitePath != "" {
		sdb, err := lite.Open(opts.SQLitePath)
		if err != nil {
			log.Error("sqlite unavailable, falling back to memory", map[string]any{"err": err.Error()})
		} else {
			log.Info("storage: sqlite", map[string]any{"path": opts.SQLitePath})
			return repos{
				pets:     lite.NewPetsRepo(sdb),
				routines: lite.NewRoutinesRepo(sdb),
				glucose:  lite.NewGlucoseRepo(sdb),
				mood:     lite.NewMoodRepo(sdb),
				walks:    lite.NewWalksRepo(sdb),
			}
		}
	}

	log.Info("storage: in-memory", nil)
	return repos{
		pets:     mem.NewPetRepo(),
		routines: mem.NewRoutinesRepo(),
		glucose:  mem.NewGlucoseRepo(),
		mood:     mem.NewMoodRepo(),
		walks:    mem.NewWalksRepo(),
	}
}
