// Package app wires the salon's services together.
package app

import (
	"github.com/nfrund/salon/internal/config"
	"github.com/samber/do/v2"
)

// Services registers every service provider. Providers are lazy: nothing is
// built until it is first invoked.
var Services = do.Package(
	do.Lazy(newContentStore),
	do.Lazy(newBus),
	do.Lazy(newEmailSender),
	do.Lazy(newContactService),
	do.Lazy(newNotifier),
	do.Lazy(newHub),
	do.Lazy(newLiveReload),
	do.Lazy(newServer),
)

// New creates the injector for cfg.
func New(cfg config.Provider) do.Injector {
	i := do.New(Services)
	do.ProvideValue(i, cfg)
	return i
}
