package table

// Row is anything the tabular view can order and page through.
type Row interface {
	RowID() int
	// SortValue returns the value of the named column, or nil for unknown keys.
	SortValue(key Key) any
}

// Record columns
const (
	KeyID          Key = "id"
	KeyTitle       Key = "title"
	KeyImage       Key = "image"
	KeyCountry     Key = "country"
	KeyPhone       Key = "phone"
	KeyDescription Key = "description"
)

// PlaceholderImage is shown for services created without an uploaded image.
const PlaceholderImage = "/placeholder.svg?height=50&width=50"

// Record is one service row of the services table.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Description string `json:"description"`

	// RemoteID is the id the admin API assigned once the row was persisted.
	RemoteID string `json:"remote_id,omitempty"`
}

func (r Record) RowID() int {
	return r.ID
}

func (r Record) SortValue(key Key) any {

	switch key {
	case KeyID:
		return r.ID
	case KeyTitle:
		return r.Title
	case KeyImage:
		return r.Image
	case KeyCountry:
		return r.Country
	case KeyPhone:
		return r.Phone
	case KeyDescription:
		return r.Description
	default:
		return nil
	}
}

// ShortDescription is the truncated description rendered in the table cell.
func (r Record) ShortDescription() string {

	runes := []rune(r.Description)
	if len(runes) <= 50 {
		return r.Description
	}

	return string(runes[:50]) + "..."
}
