package gallery

import (
	"fmt"
	"log/slog"

	"github.com/purvazinjarde/purvazinjardephotography/pkg/keyevents"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/services"
)

type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}

	return "closed"
}

type ViewControllerConfig struct {
	PhotoService services.PhotoServicer
}

/*
ViewController owns which photo, if any, is enlarged. The selection is a
display URL and is resolved back to a record by lookup each time it is
needed, so no reference to a record is ever held.

A ViewController is not safe for concurrent use. Create one per event.
*/
type ViewController struct {
	photoService services.PhotoServicer
	selected     string
}

func NewViewController(config ViewControllerConfig) *ViewController {
	return &ViewController{
		photoService: config.PhotoService,
	}
}

func (vc *ViewController) VisibleItems() []models.Photo {
	return vc.photoService.Gallery()
}

/*
SelectItem enlarges the photo with the given filename. An unknown filename
leaves the selection untouched.
*/
func (vc *ViewController) SelectItem(filename string) error {
	photo, ok := vc.photoService.FindByFilename(filename)

	if !ok {
		return fmt.Errorf("cannot select '%s': %w", filename, models.ErrPhotoNotFound)
	}

	vc.selected = vc.photoService.DisplayURL(photo)
	return nil
}

func (vc *ViewController) ClearSelection() {
	vc.selected = ""
}

/*
Restore sets the stored selection without validating it.
*/
func (vc *ViewController) Restore(url string) {
	vc.selected = url
}

func (vc *ViewController) Selected() string {
	return vc.selected
}

func (vc *ViewController) State() State {
	if vc.selected == "" {
		return StateClosed
	}

	return StateOpen
}

/*
ResolveSelection searches the full photo list, not only the gallery, for
the record whose display URL equals the selection. A selection that does
not resolve is logged and reported as not found.
*/
func (vc *ViewController) ResolveSelection() (models.Photo, bool) {
	if vc.selected == "" {
		return models.Photo{}, false
	}

	photo, ok := vc.photoService.FindByDisplayURL(vc.selected)

	if !ok {
		slog.Warn("selected photo does not match any record", "selected", vc.selected)
		return models.Photo{}, false
	}

	return photo, true
}

func (vc *ViewController) HandleKey(key string) {
	if key == keyevents.KeyEscape {
		vc.ClearSelection()
	}
}

/*
Activate subscribes the controller to key events. The returned release
function must be deferred by the caller.
*/
func (vc *ViewController) Activate(dispatcher *keyevents.Dispatcher) func() {
	return dispatcher.Subscribe(vc.HandleKey)
}
