package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-client/internal/gateway"
	"github.com/bookclubapp/bookclub-client/internal/logger"
	"github.com/bookclubapp/bookclub-client/internal/state"
)

// ProvideSession provides the session container.
func ProvideSession(i do.Injector) (*state.Session, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	st := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewSession(gw, st.Store, log.Logger), nil
}

// ProvideNotifications provides the notification container.
func ProvideNotifications(i do.Injector) (*state.Notifications, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewNotifications(gw, log.Logger), nil
}

// ProvideShelves provides the shelving container.
func ProvideShelves(i do.Injector) (*state.Shelves, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewShelves(gw, log.Logger), nil
}

// ProvideTags provides the tagging container.
func ProvideTags(i do.Injector) (*state.Tags, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewTags(gw, log.Logger), nil
}

// ProvideUpvotes provides the voting container.
func ProvideUpvotes(i do.Injector) (*state.Upvotes, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewUpvotes(gw, log.Logger), nil
}

// ProvideUsers provides the user directory container.
func ProvideUsers(i do.Injector) (*state.Users, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	log := do.MustInvoke[*logger.Logger](i)
	return state.NewUsers(gw, log.Logger), nil
}
