package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/account-server/internal/handlers/v1/account"
	"github.com/carson-networks/account-server/internal/handlers/v1/status"
	"github.com/carson-networks/account-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/account-server/internal/logging"
	"github.com/carson-networks/account-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

// Router builds the full HTTP handler. Serve uses it for the real server and
// the API tests mount it on a test server.
func (r *Rest) Router() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, newAPIConfig())
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Service.Account).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)

	return mux
}

// newAPIConfig mirrors huma's default config minus the schema link
// transformer, so response bodies carry only their own fields.
func newAPIConfig() huma.Config {
	registry := huma.NewMapRegistry("#/components/schemas/", huma.DefaultSchemaNamer)

	return huma.Config{
		OpenAPI: &huma.OpenAPI{
			OpenAPI: "3.1.0",
			Info: &huma.Info{
				Title:   "Account Server API",
				Version: "1.0.0",
			},
			Components: &huma.Components{
				Schemas: registry,
			},
		},
		OpenAPIPath:   "/openapi",
		DocsPath:      "/docs",
		Formats:       huma.DefaultFormats,
		DefaultFormat: "application/json",
	}
}

func (r *Rest) Serve() {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
