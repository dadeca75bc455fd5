package model

import "github.com/google/uuid"

// NewID returns a durable identifier for a new list entry.
func NewID() string {
	return uuid.NewString()
}

// AssignIDs gives every id-carrying list entry without an id a fresh one.
// Existing ids are never rewritten. Returns the number of ids assigned.
func AssignIDs(d *Document) int {
	n := 0
	for i := range d.Header.NavItems {
		if d.Header.NavItems[i].ID == "" {
			d.Header.NavItems[i].ID = NewID()
			n++
		}
	}
	for i := range d.Services.Items {
		if d.Services.Items[i].ID == "" {
			d.Services.Items[i].ID = NewID()
			n++
		}
	}
	for i := range d.About.Features {
		if d.About.Features[i].ID == "" {
			d.About.Features[i].ID = NewID()
			n++
		}
	}
	for i := range d.Footer.SocialMedia {
		if d.Footer.SocialMedia[i].ID == "" {
			d.Footer.SocialMedia[i].ID = NewID()
			n++
		}
	}
	return n
}
