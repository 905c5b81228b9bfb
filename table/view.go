package table

import (
	"slices"

	"github.com/AsmaaWasel/Dashboard/errors"
)

// PageView is everything needed to render one page of the table.
type PageView[R Row] struct {
	Rows         []R         `json:"rows"`
	CurrentPage  int         `json:"current_page"`
	RowsPerPage  int         `json:"rows_per_page"`
	TotalPages   int         `json:"total_pages"`
	TotalEntries int         `json:"total_entries"`
	StartEntry   int         `json:"start_entry"`
	EndEntry     int         `json:"end_entry"`
	Window       []PageToken `json:"window"`
	Sort         *SortSpec   `json:"sort,omitempty"`
	CanPrev      bool        `json:"can_prev"`
	CanNext      bool        `json:"can_next"`
}

// View holds a collection together with its sort and page state. It is not safe
// for concurrent use; callers serialize events on it.
type View[R Row] struct {
	rows  []R
	sort  *SortSpec
	state PageState

	// nextID only grows, so an id is never handed out twice
	nextID int
}

func NewView[R Row](rows []R, rowsPerPage int) (*View[R], error) {

	if !IsValidRowsPerPage(rowsPerPage) {
		return nil, errors.RowsPerPageInvalidError.New(rowsPerPage)
	}

	view := &View[R]{
		rows:   slices.Clone(rows),
		state:  PageState{CurrentPage: 1, RowsPerPage: rowsPerPage},
		nextID: 1,
	}
	view.advanceNextID()

	return view, nil
}

func (v *View[R]) State() PageState {
	return v.state
}

func (v *View[R]) SortSpec() *SortSpec {

	if v.sort == nil {
		return nil
	}

	spec := *v.sort
	return &spec
}

func (v *View[R]) TotalPages() int {
	return TotalPages(len(v.rows), v.state.RowsPerPage)
}

// ToggleSort applies a click on the header of key.
func (v *View[R]) ToggleSort(key Key) {
	v.sort = v.sort.Toggle(key)
}

func (v *View[R]) ClearSort() {
	v.sort = nil
}

// SetRowsPerPage changes the page size and goes back to the first page.
func (v *View[R]) SetRowsPerPage(rowsPerPage int) error {

	if !IsValidRowsPerPage(rowsPerPage) {
		return errors.RowsPerPageInvalidError.New(rowsPerPage)
	}

	v.state.RowsPerPage = rowsPerPage
	v.state.CurrentPage = 1

	return nil
}

// SetPage moves to page, clamped to the existing pages.
func (v *View[R]) SetPage(page int) {
	v.state.CurrentPage = ClampPage(page, v.TotalPages())
}

func (v *View[R]) NextPage() {
	v.SetPage(v.state.CurrentPage + 1)
}

func (v *View[R]) PrevPage() {
	v.SetPage(v.state.CurrentPage - 1)
}

func (v *View[R]) Page() PageView[R] {

	sorted := Sort(v.rows, v.sort)
	totalPages := v.TotalPages()
	currentPage := v.state.CurrentPage
	rowsPerPage := v.state.RowsPerPage

	start := (currentPage - 1) * rowsPerPage
	startEntry := 0
	if len(sorted) > 0 {
		startEntry = start + 1
	}

	return PageView[R]{
		Rows:         Paginate(sorted, currentPage, rowsPerPage),
		CurrentPage:  currentPage,
		RowsPerPage:  rowsPerPage,
		TotalPages:   totalPages,
		TotalEntries: len(sorted),
		StartEntry:   startEntry,
		EndEntry:     min(start+rowsPerPage, len(sorted)),
		Window:       PageWindow(currentPage, totalPages),
		Sort:         v.SortSpec(),
		CanPrev:      currentPage > 1,
		CanNext:      currentPage < totalPages,
	}
}

// Rows returns the collection in insertion order.
func (v *View[R]) Rows() []R {
	return slices.Clone(v.rows)
}

func (v *View[R]) Len() int {
	return len(v.rows)
}

func (v *View[R]) Get(id int) (R, bool) {

	index := v.indexOf(id)
	if index < 0 {
		var zero R
		return zero, false
	}

	return v.rows[index], true
}

// Find returns the first row, in insertion order, that match accepts.
func (v *View[R]) Find(match func(R) bool) (R, bool) {

	index := slices.IndexFunc(v.rows, match)
	if index < 0 {
		var zero R
		return zero, false
	}

	return v.rows[index], true
}

// Replace swaps the whole collection, e.g. after a fresh fetch.
func (v *View[R]) Replace(rows []R) {

	v.rows = slices.Clone(rows)
	v.advanceNextID()
	v.clamp()
}

// NextID is the id the next Add assigns. It never goes back, even after the
// row holding the highest id is deleted.
func (v *View[R]) NextID() int {
	return v.nextID
}

// Add appends the row built for a freshly assigned id.
func (v *View[R]) Add(build func(id int) R) R {

	row := build(v.nextID)
	v.rows = append(v.rows, row)
	v.advanceNextID()
	v.clamp()

	return row
}

// Edit applies a change to the row with id. apply must keep the row id.
func (v *View[R]) Edit(id int, apply func(row *R)) (R, error) {

	index := v.indexOf(id)
	if index < 0 {
		var zero R
		return zero, errors.ObjectIDNotFoundError.New(id)
	}

	edited := v.rows[index]
	apply(&edited)
	v.rows[index] = edited

	return edited, nil
}

func (v *View[R]) Delete(id int) (R, error) {

	index := v.indexOf(id)
	if index < 0 {
		var zero R
		return zero, errors.ObjectIDNotFoundError.New(id)
	}

	deleted := v.rows[index]
	v.rows = slices.Delete(v.rows, index, index+1)
	v.clamp()

	return deleted, nil
}

func (v *View[R]) indexOf(id int) int {

	return slices.IndexFunc(v.rows, func(row R) bool {
		return row.RowID() == id
	})
}

func (v *View[R]) advanceNextID() {

	for _, row := range v.rows {
		v.nextID = max(v.nextID, row.RowID()+1)
	}
}

func (v *View[R]) clamp() {
	v.state.CurrentPage = ClampPage(v.state.CurrentPage, v.TotalPages())
}
