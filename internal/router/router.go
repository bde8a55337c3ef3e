package router

import (
	"net/http"
	"time"

	mem "petify-api/internal/adapters/storage/memory"
	_ "petify-api/internal/docs"
	"petify-api/internal/domain/adoptions"
	"petify-api/internal/domain/campaigns"
	"petify-api/internal/domain/payments"
	"petify-api/internal/domain/pets"
	"petify-api/internal/domain/users"
	"petify-api/internal/middleware"
	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/auth"
	"petify-api/internal/ports/payment"
	"petify-api/internal/ports/storage"
	"petify-api/internal/ports/tx"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const defaultRequestTimeout = 15 * time.Second

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, stores in-memory.
	Stores *storage.Stores

	// Opcional: sin provider, /create-payment-intent responde 503.
	Payments payment.IntentProvider
	Currency string

	Logger         logger.Logger
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	stores := opts.Stores
	if stores == nil {
		stores = mem.NewStores()
	}
	txm := stores.Tx
	if txm == nil {
		txm = tx.Noop{}
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Timeout(timeout))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo. users es además el Authorizer de todos los demás.
	usersSvc := users.NewService(stores.Users)
	petsSvc := pets.NewService(stores.Pets)
	adoptionsSvc := adoptions.NewService(stores.Adoptions, petsSvc, txm)
	campaignsSvc := campaigns.NewService(stores.Campaigns)
	paymentsSvc := payments.NewService(stores.Payments, campaignsSvc, txm, opts.Payments, opts.Currency)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log.With(map[string]any{"module": "users"}))
	pets.RegisterRoutes(r, petsSvc, usersSvc, log.With(map[string]any{"module": "pets"}))
	adoptions.RegisterRoutes(r, adoptionsSvc, usersSvc, log.With(map[string]any{"module": "adoptions"}))
	campaigns.RegisterRoutes(r, campaignsSvc, usersSvc, log.With(map[string]any{"module": "campaigns"}))
	payments.RegisterRoutes(r, paymentsSvc, usersSvc, log.With(map[string]any{"module": "payments"}))

	return r
}
