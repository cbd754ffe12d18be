package lightbox

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/sessions"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/gallery"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
)

const (
	selectionSessionName = "purvazinjardephotography"
	selectionKeyName     = "selection"
)

/*
NewSelectionSession builds the cookie session a visitor's selection is
kept in. The cookie is scoped to the whole site so the close and key
endpoints see the selection made under /photos.
*/
func NewSelectionSession(secret string) sessions.Session[*models.Selection] {
	gob.Register(&models.Selection{})

	cookieStore := sessions.NewCookieStore(
		secret,
		sessions.WithHttpOnly(true),
		sessions.WithSameSite(http.SameSiteLaxMode),
	)

	cookieStore.Options.Path = "/"
	return sessions.NewSessionWrapper[*models.Selection](cookieStore, selectionSessionName, selectionKeyName)
}

type SelectionStoreConfig struct {
	PhotoService   services.PhotoServicer
	SessionService sessions.Session[*models.Selection]
}

/*
SelectionStore carries a visitor's selection between the requests of one
page session. Each request gets its own view controller, rehydrated from
the cookie and written back once the event has been handled.
*/
type SelectionStore struct {
	photoService   services.PhotoServicer
	sessionService sessions.Session[*models.Selection]
}

func NewSelectionStore(config SelectionStoreConfig) SelectionStore {
	return SelectionStore{
		photoService:   config.PhotoService,
		sessionService: config.SessionService,
	}
}

/*
Mount returns a view controller in the closed state, as on a fresh page
load.
*/
func (s SelectionStore) Mount() *gallery.ViewController {
	return gallery.NewViewController(gallery.ViewControllerConfig{
		PhotoService: s.photoService,
	})
}

/*
Load returns a view controller holding the visitor's current selection.
A missing or unreadable session yields a closed controller.
*/
func (s SelectionStore) Load(r *http.Request) *gallery.ViewController {
	vc := s.Mount()

	if selection, err := s.sessionService.Get(r); err == nil && selection != nil {
		vc.Restore(selection.URL)
	}

	return vc
}

func (s SelectionStore) Save(w http.ResponseWriter, r *http.Request, vc *gallery.ViewController) {
	var (
		err error
	)

	if err = s.sessionService.Set(r, &models.Selection{URL: vc.Selected()}); err != nil {
		slog.Error("error setting selection session", "error", err)
		return
	}

	if err = s.sessionService.Save(w, r); err != nil {
		slog.Error("error saving selection session", "error", err)
	}
}
