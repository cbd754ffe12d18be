package lightbox

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/viewmodels"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/gallery"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/keyevents"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
)

const (
	lightboxPage = "pages/lightbox"
)

type LightboxHandlers interface {
	CloseAction(w http.ResponseWriter, r *http.Request)
	KeyAction(w http.ResponseWriter, r *http.Request)
	SelectAction(w http.ResponseWriter, r *http.Request)
}

type LightboxControllerConfig struct {
	Renderer       rendering.TemplateRenderer
	SelectionStore SelectionStore
}

type LightboxController struct {
	renderer       rendering.TemplateRenderer
	selectionStore SelectionStore
}

func NewLightboxController(config LightboxControllerConfig) LightboxController {
	return LightboxController{
		renderer:       config.Renderer,
		selectionStore: config.SelectionStore,
	}
}

/*
GET /photos/{filename}
*/
func (c LightboxController) SelectAction(w http.ResponseWriter, r *http.Request) {
	var (
		err error
	)

	filename := httphelpers.GetFromRequest[string](r, "filename")
	vc := c.selectionStore.Load(r)

	if err = vc.SelectItem(filename); err != nil {
		if errors.Is(err, models.ErrPhotoNotFound) {
			httphelpers.WriteText(w, http.StatusNotFound, "photo not found")
			return
		}

		slog.Error("error selecting photo", "error", err, "filename", filename)
		httphelpers.TextInternalServerError(w, "Error selecting photo")
		return
	}

	c.selectionStore.Save(w, r, vc)

	if !httphelpers.IsHtmx(r) {
		http.Redirect(w, r, "/?photo="+url.QueryEscape(filename), http.StatusFound)
		return
	}

	c.render(w, r, vc)
}

/*
POST /gallery/close
*/
func (c LightboxController) CloseAction(w http.ResponseWriter, r *http.Request) {
	vc := c.selectionStore.Load(r)
	vc.ClearSelection()
	c.selectionStore.Save(w, r, vc)

	if !httphelpers.IsHtmx(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	c.render(w, r, vc)
}

/*
POST /gallery/keys
*/
func (c LightboxController) KeyAction(w http.ResponseWriter, r *http.Request) {
	key := httphelpers.GetFromRequest[string](r, "key")
	vc := c.selectionStore.Load(r)

	c.dispatchKey(vc, key)
	c.selectionStore.Save(w, r, vc)
	c.render(w, r, vc)
}

/*
dispatchKey gives each request its own dispatcher. A visitor's key press
must only reach that visitor's controller, so the registry lives for the
request and the controller is released before the response is written.
*/
func (c LightboxController) dispatchKey(vc *gallery.ViewController, key string) {
	dispatcher := keyevents.NewDispatcher()

	release := vc.Activate(dispatcher)
	defer release()

	handled := dispatcher.Dispatch(key)
	slog.Debug("key event dispatched", "key", key, "handlers", handled, "state", vc.State().String())
}

func (c LightboxController) render(w http.ResponseWriter, r *http.Request, vc *gallery.ViewController) {
	viewData := viewmodels.NewLightbox(vc, httphelpers.IsHtmx(r))
	c.renderer.Render(lightboxPage, viewData, w)
}
