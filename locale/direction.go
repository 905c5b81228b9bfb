package locale

type TextDirection string

const (
	LeftToRight TextDirection = "ltr"
	RightToLeft TextDirection = "rtl"
)

type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

const (
	ChevronLeft  = "chevron-left"
	ChevronRight = "chevron-right"
)

// Chevrons names the icons of the previous and next page buttons.
type Chevrons struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

func Direction(l Locale) TextDirection {

	if l == Arabic {
		return RightToLeft
	}

	return LeftToRight
}

// SidebarSide docks the sidebar on the reading-start side.
func SidebarSide(l Locale) Side {

	if Direction(l) == RightToLeft {
		return SideRight
	}

	return SideLeft
}

// ChevronsFor swaps the navigation icons under right-to-left text.
func ChevronsFor(l Locale) Chevrons {

	if Direction(l) == RightToLeft {
		return Chevrons{Prev: ChevronRight, Next: ChevronLeft}
	}

	return Chevrons{Prev: ChevronLeft, Next: ChevronRight}
}
