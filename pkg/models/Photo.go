package models

import (
	"fmt"
)

var (
	ErrPhotoNotFound = fmt.Errorf("photo not found")
)

/*
Photo is a single metadata entry describing one photograph. Records are
loaded once at startup and never modified.
*/
type Photo struct {
	ID        uint   `json:"-" yaml:"-" db:"id"`
	Filename  string `json:"filename" yaml:"filename" db:"filename"`
	Label     string `json:"label" yaml:"label" db:"label"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty" db:"title"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty" db:"location"`
	IsGallery bool   `json:"isGallery" yaml:"isGallery" db:"is_gallery"`
}
