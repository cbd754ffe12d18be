package services

import (
	"testing"

	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoService(t *testing.T) {
	photos := []models.Photo{
		{Filename: "a.jpg", Label: "A", IsGallery: true},
		{Filename: "b.jpg", Label: "B", IsGallery: false},
		{Filename: "c.jpg", Label: "C", IsGallery: true},
	}

	service := NewPhotoService(PhotoServiceConfig{
		BaseURL: "https://cdn.example.com/photos",
		Photos:  photos,
	})

	t.Run("display URL joins base and filename", func(t *testing.T) {
		assert.Equal(t, "https://cdn.example.com/photos/b.jpg", service.DisplayURL(photos[1]))
		assert.Equal(t, "/a.jpg", DisplayURL("", photos[0]))
	})

	t.Run("gallery keeps source order", func(t *testing.T) {
		got := service.Gallery()

		require.Len(t, got, 2)
		assert.Equal(t, "a.jpg", got[0].Filename)
		assert.Equal(t, "c.jpg", got[1].Filename)
	})

	t.Run("gallery of a catalog without gallery photos is empty, not nil", func(t *testing.T) {
		s := NewPhotoService(PhotoServiceConfig{
			BaseURL: "b",
			Photos:  []models.Photo{{Filename: "x.jpg", IsGallery: false}},
		})

		got := s.Gallery()

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("find returns the first of duplicate filenames", func(t *testing.T) {
		s := NewPhotoService(PhotoServiceConfig{
			BaseURL: "b",
			Photos: []models.Photo{
				{Filename: "x.jpg", Label: "first"},
				{Filename: "x.jpg", Label: "second"},
			},
		})

		byName, ok := s.FindByFilename("x.jpg")
		require.True(t, ok)
		assert.Equal(t, "first", byName.Label)

		byURL, ok := s.FindByDisplayURL("b/x.jpg")
		require.True(t, ok)
		assert.Equal(t, "first", byURL.Label)
	})

	t.Run("find by display URL searches every record", func(t *testing.T) {
		got, ok := service.FindByDisplayURL("https://cdn.example.com/photos/b.jpg")

		require.True(t, ok)
		assert.Equal(t, "B", got.Label)

		_, ok = service.FindByDisplayURL("https://cdn.example.com/photos/z.jpg")
		assert.False(t, ok)

		_, ok = service.FindByDisplayURL("b.jpg")
		assert.False(t, ok)
	})

	t.Run("find by filename", func(t *testing.T) {
		got, ok := service.FindByFilename("c.jpg")

		require.True(t, ok)
		assert.Equal(t, "C", got.Label)

		_, ok = service.FindByFilename("")
		assert.False(t, ok)
	})

	t.Run("source list changes do not leak in", func(t *testing.T) {
		source := []models.Photo{{Filename: "x.jpg", IsGallery: true}}
		s := NewPhotoService(PhotoServiceConfig{BaseURL: "b", Photos: source})

		source[0].Filename = "changed.jpg"
		all := s.All()
		all[0].Label = "changed"

		assert.Equal(t, "x.jpg", s.All()[0].Filename)
		assert.Equal(t, "", s.All()[0].Label)
	})
}

func TestDuplicateFilenames(t *testing.T) {
	photos := []models.Photo{
		{Filename: "a.jpg"},
		{Filename: "b.jpg"},
		{Filename: "a.jpg"},
		{Filename: "a.jpg"},
		{Filename: "c.jpg"},
		{Filename: "b.jpg"},
	}

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, DuplicateFilenames(photos))
	assert.Empty(t, DuplicateFilenames(photos[:2]))
}
