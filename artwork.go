package vivid

import (
	"strings"
	"time"
)

// Artwork is a finished generation: the drawn surface plus the request that
// produced it. Storage and display belong to the caller (typically a
// gallery); the core only produces the record.
type Artwork struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Request   Request   `json:"request"`
	Style     Style     `json:"-"`
	Surface   *Pixmap   `json:"-"`
}

// FileName returns the suggested save name: the lower-cased style name with
// spaces replaced by hyphens, plus a short unique suffix from the artwork ID.
func (a *Artwork) FileName() string {
	name := strings.ToLower(strings.ReplaceAll(a.Style.Name(), " ", "-"))
	suffix := a.ID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return name + "-" + suffix + ".png"
}
