package app

import (
	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/contact"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/email"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/livereload"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// newContentStore loads the catalog from CONTENT_PATH, or the embedded
// default catalog when no path is configured.
func newContentStore(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	if path := cfg.GetContentPath(); path != "" {
		return content.NewStore(afero.NewOsFs(), path)
	}
	return content.NewStore(content.DefaultFS(), content.DefaultPath)
}

func newBus(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newEmailSender(i do.Injector) (domain.EmailSender, error) {
	return email.NewEmailService(do.MustInvoke[config.Provider](i))
}

func newContactService(i do.Injector) (*contact.Service, error) {
	return contact.NewService(do.MustInvoke[*pubsub.WatermillBridge](i)), nil
}

// newNotifier sends contact messages to CONTACT_INBOX, falling back to the
// email address published in the current catalog. Emails link back to
// APP_BASE_URL.
func newNotifier(i do.Injector) (*contact.Notifier, error) {
	cfg := do.MustInvoke[config.Provider](i)
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	sender, err := do.Invoke[domain.EmailSender](i)
	if err != nil {
		return nil, err
	}

	inbox := func() string {
		if addr := cfg.GetContactInbox(); addr != "" {
			return addr
		}
		if entry, ok := store.Catalog().ContactOf(domain.ContactEmail); ok {
			return entry.Text
		}
		return ""
	}
	return contact.NewNotifier(sender, inbox, cfg.GetAppBaseURL()), nil
}

func newHub(do.Injector) (*hub.Hub, error) {
	return hub.NewHub(), nil
}

func newLiveReload(i do.Injector) (*livereload.Handler, error) {
	return livereload.NewHandler(do.MustInvoke[*hub.Hub](i)), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	store, err := do.Invoke[*content.Store](i)
	if err != nil {
		return nil, err
	}
	notifier, err := do.Invoke[*contact.Notifier](i)
	if err != nil {
		return nil, err
	}
	s := server.New(server.Dependencies{
		Config:     do.MustInvoke[config.Provider](i),
		Content:    store,
		Bus:        do.MustInvoke[*pubsub.WatermillBridge](i),
		Contact:    do.MustInvoke[*contact.Service](i),
		Notifier:   notifier,
		Hub:        do.MustInvoke[*hub.Hub](i),
		LiveReload: do.MustInvoke[*livereload.Handler](i),
	})
	s.RegisterRoutes()
	return s, nil
}
