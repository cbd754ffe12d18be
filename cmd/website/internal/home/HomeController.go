package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/configuration"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/lightbox"
	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/viewmodels"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	Config         *configuration.Config
	PhotoService   services.PhotoServicer
	Renderer       rendering.TemplateRenderer
	SelectionStore lightbox.SelectionStore
}

type HomeController struct {
	config         *configuration.Config
	photoService   services.PhotoServicer
	renderer       rendering.TemplateRenderer
	selectionStore lightbox.SelectionStore
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		config:         config.Config,
		photoService:   config.PhotoService,
		renderer:       config.Renderer,
		selectionStore: config.SelectionStore,
	}
}

/*
GET /

Loading the page mounts the gallery with nothing enlarged. A "photo" query
parameter opens that photo straight away.
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"
	isHtmx := httphelpers.IsHtmx(r)

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			Message:            "",
			IsHtmx:             isHtmx,
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		SiteTitle:    c.config.SiteTitle,
		SiteSubtitle: c.config.SiteSubtitle,
		Photos:       []viewmodels.GalleryPhoto{},
	}

	vc := c.selectionStore.Mount()

	if photo := httphelpers.GetFromRequest[string](r, "photo"); photo != "" {
		if err := vc.SelectItem(photo); err != nil {
			slog.Warn("ignoring deep link to unknown photo", "photo", photo, "error", err)
			viewData.IsWarning = true
			viewData.Message = "That photo could not be found."
		}
	}

	c.selectionStore.Save(w, r, vc)

	for _, photo := range vc.VisibleItems() {
		viewData.Photos = append(viewData.Photos, viewmodels.GalleryPhoto{
			DisplayURL: c.photoService.DisplayURL(photo),
			FileName:   photo.Filename,
			Label:      photo.Label,
			Title:      photo.Title,
		})
	}

	viewData.Lightbox = viewmodels.NewLightbox(vc, isHtmx)
	c.renderer.Render(pageName, viewData, w)
}
