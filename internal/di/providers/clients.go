package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-client/internal/books"
	"github.com/bookclubapp/bookclub-client/internal/config"
	"github.com/bookclubapp/bookclub-client/internal/gateway"
	"github.com/bookclubapp/bookclub-client/internal/logger"
)

// ProvideGateway provides the backend gateway client.
func ProvideGateway(i do.Injector) (*gateway.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return gateway.New(gateway.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		RPS:     cfg.Backend.RPS,
		Burst:   cfg.Backend.Burst,
	}, log.Logger), nil
}

// ProvideBooksClient provides the book catalog lookup client.
func ProvideBooksClient(i do.Injector) (*books.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := books.New(log.Logger)
	if cfg.Books.BaseURL != "" {
		client = client.WithBaseURL(cfg.Books.BaseURL)
	}
	return client, nil
}
