package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"creator-backend/internal/brand"
	"creator-backend/internal/hooks"
	"creator-backend/internal/ledger"
	"creator-backend/internal/llm"
	"creator-backend/internal/llm/gemini"
	openai "creator-backend/internal/llm/openai"
	"creator-backend/internal/optimizer"
	"creator-backend/internal/pricing"
	"creator-backend/internal/routing"
	"creator-backend/internal/scoring"
	"creator-backend/internal/shared/config"
	"creator-backend/internal/shared/metrics"
	"creator-backend/internal/shared/server/middleware"
	"creator-backend/internal/shared/server/respond"
	"creator-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"GENERATE": {Rate: 2, Burst: 5},
			},
			GroupFor: generateGroup,
		}),
	)

	tunables, err := config.LoadTunables(cfg.TunablesPath)
	if err != nil {
		log.Printf("failed to load tunables, using defaults: %v", err)
		tunables = config.Tunables{}
	}

	// Dependencies
	model := buildPricing(tunables)
	registry := buildRegistry(cfg, model)
	ledgerSvc := buildLedger(cfg, model)
	router := routing.NewRouter(registry, buildAffinity(registry, tunables), cheapThreshold(tunables))
	scorer := scoring.NewScorer(buildLexicon(tunables), buildBands(tunables))
	checker := brand.NewChecker(brand.DefaultToneWords())
	generator := hooks.NewGenerator(router, registry, scorer, ledgerSvc, model)
	opt := optimizer.NewOptimizer(router, registry, scorer, checker, ledgerSvc, model)

	scoreHandler := scoring.NewHandler(scorer)
	brandHandler := brand.NewHandler(checker)
	hooksHandler := hooks.NewHandler(generator)
	optimizeHandler := optimizer.NewHandler(opt)
	usageHandler := ledger.NewHandler(ledgerSvc)
	providersHandler := routing.NewHandler(registry)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true, "providers": registry.Len()})
	})
	scoreHandler.RegisterRoutes(api)
	brandHandler.RegisterRoutes(api)
	hooksHandler.RegisterRoutes(api)
	optimizeHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	providersHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// generateGroup throttles the provider-backed endpoints harder than the
// purely local scoring ones.
func generateGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/api/v1/optimize", "/api/v1/hooks":
		return "GENERATE"
	default:
		return ""
	}
}

func buildPricing(t config.Tunables) *pricing.Model {
	rates := pricing.DefaultRates()
	for raw, rate := range t.Rates {
		provider, err := llm.ParseProvider(raw)
		if err != nil {
			log.Printf("tunables: skipping rate for unknown provider %q", raw)
			continue
		}
		rates[provider] = rate
	}
	return pricing.New(rates)
}

func buildRegistry(cfg config.Config, model *pricing.Model) *routing.Registry {
	registry := routing.NewRegistry()

	register := func(client llm.Client, strengths []string) {
		rate, err := model.Rate(client.Provider())
		if err != nil {
			log.Printf("no rate for provider %s, skipping registration", client.Provider())
			return
		}
		if err := registry.Register(client, rate, strengths); err != nil {
			log.Printf("failed to register provider %s: %v", client.Provider(), err)
		}
	}

	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			log.Printf("openai client unavailable: %v", err)
		} else {
			register(client, []string{"analysis", "complex", "coding"})
		}
	}
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("gemini client unavailable: %v", err)
		} else {
			register(client, []string{"creative", "social", "video-script"})
		}
	}
	// The mock provider is opt-in only; missing credentials never register
	// it implicitly.
	if cfg.EnableMockProvider {
		register(llm.NewMockClient(), nil)
	}
	if registry.Len() == 0 {
		log.Printf("no generation providers configured; set OPENAI_API_KEY, GEMINI_API_KEY, or ENABLE_MOCK_PROVIDER")
	}

	return registry
}

func buildLedger(cfg config.Config, model *pricing.Model) *ledger.Service {
	if cfg.DatabaseURL == "" {
		return ledger.NewService(model)
	}

	ctx := context.Background()
	var sqlDB *sql.DB
	conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
	} else {
		if err := db.RunMigrations(ctx, conn); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			conn = nil
		}
		sqlDB = conn
	}
	if sqlDB == nil {
		return ledger.NewService(model)
	}
	return ledger.NewPostgresService(ledger.NewPGStore(sqlDB), model)
}

func buildAffinity(registry *routing.Registry, t config.Tunables) routing.Affinity {
	affinity := routing.DefaultAffinity(registry)
	for rawTask, rawProvider := range t.Affinity {
		provider, err := llm.ParseProvider(rawProvider)
		if err != nil {
			log.Printf("tunables: skipping affinity for unknown provider %q", rawProvider)
			continue
		}
		affinity[routing.ParseTaskType(rawTask)] = provider
	}
	return affinity
}

func cheapThreshold(t config.Tunables) float64 {
	if t.CheapThresholdUSD > 0 {
		return t.CheapThresholdUSD
	}
	return routing.DefaultCheapThresholdUSD
}

func buildLexicon(t config.Tunables) scoring.Lexicon {
	if t.Lexicon != nil {
		return *t.Lexicon
	}
	return scoring.DefaultLexicon()
}

func buildBands(t config.Tunables) scoring.Bands {
	bands := scoring.DefaultBands()
	for raw, band := range t.Bands {
		bands[scoring.ParsePlatform(raw)] = band
	}
	return bands
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
