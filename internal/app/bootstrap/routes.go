// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/clients/userservice"
	classroomsfeature "github.com/dalemusser/institutionhub/internal/app/features/classrooms"
	healthfeature "github.com/dalemusser/institutionhub/internal/app/features/health"
	institutionsfeature "github.com/dalemusser/institutionhub/internal/app/features/institutions"
	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	classroomstore "github.com/dalemusser/institutionhub/internal/app/store/classrooms"
	institutionstore "github.com/dalemusser/institutionhub/internal/app/store/institutions"
	"github.com/dalemusser/institutionhub/internal/app/system/metrics"
	"github.com/dalemusser/institutionhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// It builds the stores, the user service client and the orchestrator that
// ties them together, then mounts the JSON API under /api/v1 alongside
// /health and /metrics. The router is wrapped in otelhttp so inbound spans
// parent the outbound user service calls.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	users := userservice.New(appCfg.UserServiceURL, appCfg.UserServiceTimeout, logger)
	orch := orchestrator.New(
		institutionstore.New(deps.MongoDatabase),
		classroomstore.New(deps.MongoDatabase),
		users,
		logger,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(corsOptions(appCfg.CORSAllowedOrigins)))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, "institutionhub", logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		if appCfg.WriteRateLimit > 0 {
			// Lives for the process; BuildHandler runs once.
			limiter := ratelimit.New(context.Background(), appCfg.WriteRateLimit, appCfg.WriteRateWindow)
			api.Use(ratelimit.Writes(limiter, logger))
		}

		instHandler := institutionsfeature.NewHandler(orch, logger)
		api.Mount("/institutions", institutionsfeature.Routes(instHandler))

		classHandler := classroomsfeature.NewHandler(orch, logger)
		api.Mount("/classrooms", classroomsfeature.Routes(classHandler))
	})

	return otelhttp.NewHandler(r, "institutionhub"), nil
}

func corsOptions(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}
}
