// Package di provides dependency injection configuration for the BookClub client.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-client/internal/config"
	"github.com/bookclubapp/bookclub-client/internal/di/providers"
	"github.com/bookclubapp/bookclub-client/internal/logger"
	"github.com/bookclubapp/bookclub-client/internal/state"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideStore)

	// Remote clients
	do.Provide(injector, providers.ProvideGateway)
	do.Provide(injector, providers.ProvideBooksClient)

	// Domain state containers
	do.Provide(injector, providers.ProvideSession)
	do.Provide(injector, providers.ProvideNotifications)
	do.Provide(injector, providers.ProvideShelves)
	do.Provide(injector, providers.ProvideTags)
	do.Provide(injector, providers.ProvideUpvotes)
	do.Provide(injector, providers.ProvideUsers)

	return injector
}

// Bootstrap triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	_ = do.MustInvoke[*state.Session](injector)
	_ = do.MustInvoke[*state.Notifications](injector)
	_ = do.MustInvoke[*state.Shelves](injector)
	_ = do.MustInvoke[*state.Tags](injector)
	_ = do.MustInvoke[*state.Upvotes](injector)
	_ = do.MustInvoke[*state.Users](injector)

	return nil
}

// ResetState clears every domain container. Used at logout so data from one
// account never bleeds into the next.
func ResetState(injector *do.RootScope) {
	do.MustInvoke[*state.Notifications](injector).Reset()
	do.MustInvoke[*state.Shelves](injector).Reset()
	do.MustInvoke[*state.Tags](injector).Reset()
	do.MustInvoke[*state.Upvotes](injector).Reset()
	do.MustInvoke[*state.Users](injector).Reset()
}
