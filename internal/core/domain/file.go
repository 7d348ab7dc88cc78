package domain

import "time"

// StoredFile is the metadata record for an uploaded blob. Path is the
// location of the blob inside the configured upload directory.
type StoredFile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Path        string    `json:"-"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
