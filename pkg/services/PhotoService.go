package services

import (
	"github.com/adampresley/adamgokit/slices"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
)

type PhotoServicer interface {
	All() []models.Photo
	DisplayURL(photo models.Photo) string
	FindByDisplayURL(url string) (models.Photo, bool)
	FindByFilename(filename string) (models.Photo, bool)
	Gallery() []models.Photo
}

type PhotoServiceConfig struct {
	BaseURL string
	Photos  []models.Photo
}

type PhotoService struct {
	baseURL string
	photos  []models.Photo
}

func NewPhotoService(config PhotoServiceConfig) PhotoService {
	photos := make([]models.Photo, len(config.Photos))
	copy(photos, config.Photos)

	return PhotoService{
		baseURL: config.BaseURL,
		photos:  photos,
	}
}

/*
DisplayURL derives the address of a photo from the configured base URL.
Both the selection write path and resolution must go through here.
*/
func DisplayURL(baseURL string, photo models.Photo) string {
	return baseURL + "/" + photo.Filename
}

func (s PhotoService) All() []models.Photo {
	result := make([]models.Photo, len(s.photos))
	copy(result, s.photos)
	return result
}

func (s PhotoService) DisplayURL(photo models.Photo) string {
	return DisplayURL(s.baseURL, photo)
}

func (s PhotoService) FindByDisplayURL(url string) (models.Photo, bool) {
	photo, index := slices.FindWithIndex(s.photos, func(p models.Photo) bool {
		return s.DisplayURL(p) == url
	})

	return photo, index > -1
}

func (s PhotoService) FindByFilename(filename string) (models.Photo, bool) {
	photo, index := slices.FindWithIndex(s.photos, func(p models.Photo) bool {
		return p.Filename == filename
	})

	return photo, index > -1
}

func (s PhotoService) Gallery() []models.Photo {
	return slices.Filter(s.photos, func(p models.Photo) bool {
		return p.IsGallery
	})
}

/*
DuplicateFilenames returns each filename that appears more than once, in
the order its second occurrence is found.
*/
func DuplicateFilenames(photos []models.Photo) []string {
	seen := map[string]int{}
	result := []string{}

	for _, photo := range photos {
		seen[photo.Filename]++

		if seen[photo.Filename] == 2 {
			result = append(result, photo.Filename)
		}
	}

	return result
}
