package models

/*
Selection is the enlarged-photo state for one visitor's page session.
URL holds a display URL, or is empty when nothing is selected.
*/
type Selection struct {
	URL string
}
