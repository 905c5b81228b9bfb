package errors

const (
	RowsPerPageInvalidErrorCode = 300_001
)

// RowsPerPageInvalidError indicates a page size outside of the selectable sizes
var RowsPerPageInvalidError = new(RowsPerPageInvalidErrorCode, "RowsPerPageInvalid", "Rows per page %d is not one of 5, 10, 20, 50")
