package table

import "slices"

const DefaultRowsPerPage = 5

// RowsPerPageOptions are the page sizes the rows-per-page selector offers.
var RowsPerPageOptions = []int{5, 10, 20, 50}

func IsValidRowsPerPage(rowsPerPage int) bool {
	return slices.Contains(RowsPerPageOptions, rowsPerPage)
}

// PageState is the pagination half of the view state.
type PageState struct {
	CurrentPage int `json:"current_page"`
	RowsPerPage int `json:"rows_per_page"`
}

// TotalPages is ceil(count / rowsPerPage), 0 for an empty collection.
func TotalPages(count, rowsPerPage int) int {

	if count <= 0 || rowsPerPage <= 0 {
		return 0
	}

	totalPages := count / rowsPerPage
	if count%rowsPerPage > 0 {
		totalPages++
	}

	return totalPages
}

// ClampPage keeps currentPage within [1, max(1, totalPages)].
func ClampPage(currentPage, totalPages int) int {
	return min(max(currentPage, 1), max(totalPages, 1))
}

// Paginate returns rows [(currentPage-1)*rowsPerPage, currentPage*rowsPerPage)
// clipped to the collection. Out of range pages give an empty slice.
func Paginate[R Row](rows []R, currentPage, rowsPerPage int) []R {

	if currentPage < 1 || rowsPerPage < 1 {
		return []R{}
	}

	start := (currentPage - 1) * rowsPerPage
	if start >= len(rows) {
		return []R{}
	}

	end := min(start+rowsPerPage, len(rows))

	return slices.Clone(rows[start:end])
}
