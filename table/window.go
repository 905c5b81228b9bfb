package table

import (
	"encoding/json"
	"strconv"
)

const EllipsisMarker = "..."

// PageToken is one control of the page-number window: a page button or an ellipsis.
type PageToken struct {
	Page     int
	Ellipsis bool
}

func PageNumber(page int) PageToken {
	return PageToken{Page: page}
}

func Ellipsis() PageToken {
	return PageToken{Ellipsis: true}
}

func (t PageToken) String() string {

	if t.Ellipsis {
		return EllipsisMarker
	}

	return strconv.Itoa(t.Page)
}

func (t PageToken) MarshalJSON() ([]byte, error) {

	if t.Ellipsis {
		return json.Marshal(EllipsisMarker)
	}

	return json.Marshal(t.Page)
}

func (t *PageToken) UnmarshalJSON(b []byte) error {

	var marker string
	if err := json.Unmarshal(b, &marker); err == nil {
		*t = Ellipsis()
		return nil
	}

	var page int
	if err := json.Unmarshal(b, &page); err != nil {
		return err
	}

	*t = PageNumber(page)
	return nil
}

// PageWindow lists the page controls to render. The layout is fixed per position
// (first, second, middle, second to last, last) rather than a neighbour count.
func PageWindow(currentPage, totalPages int) []PageToken {

	if totalPages <= 3 {

		window := make([]PageToken, 0, max(totalPages, 0))
		for page := 1; page <= totalPages; page++ {
			window = append(window, PageNumber(page))
		}

		return window
	}

	switch currentPage {
	case 1:
		return []PageToken{PageNumber(1), PageNumber(2), Ellipsis(), PageNumber(totalPages)}
	case totalPages:
		return []PageToken{PageNumber(1), Ellipsis(), PageNumber(totalPages - 1), PageNumber(totalPages)}
	case 2:
		return []PageToken{PageNumber(1), PageNumber(2), PageNumber(3), Ellipsis(), PageNumber(totalPages)}
	case totalPages - 1:
		return []PageToken{PageNumber(1), Ellipsis(), PageNumber(totalPages - 1), PageNumber(totalPages)}
	default:
		return []PageToken{PageNumber(1), Ellipsis(), PageNumber(currentPage), Ellipsis(), PageNumber(totalPages)}
	}
}
