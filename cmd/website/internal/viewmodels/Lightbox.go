package viewmodels

import (
	"github.com/purvazinjarde/purvazinjardephotography/pkg/gallery"
)

/*
Lightbox is the enlarged photo overlay. When IsOpen is false the overlay
container renders empty.
*/
type Lightbox struct {
	BaseViewModel
	IsOpen     bool
	DisplayURL string
	FileName   string
	Label      string
	Title      string
	Location   string
}

func NewLightbox(vc *gallery.ViewController, isHtmx bool) Lightbox {
	result := Lightbox{
		BaseViewModel: BaseViewModel{
			IsHtmx: isHtmx,
		},
	}

	photo, ok := vc.ResolveSelection()

	if !ok {
		return result
	}

	result.IsOpen = true
	result.DisplayURL = vc.Selected()
	result.FileName = photo.Filename
	result.Label = photo.Label
	result.Title = photo.Title
	result.Location = photo.Location

	return result
}
