package viewmodels

type HomePage struct {
	BaseViewModel
	SiteTitle    string
	SiteSubtitle string
	Photos       []GalleryPhoto
	Lightbox     Lightbox
}

type GalleryPhoto struct {
	DisplayURL string
	FileName   string
	Label      string
	Title      string
}
