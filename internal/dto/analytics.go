package dto

// ReportQuery selects the dashboard or statistics report. A malformed
// anchorDate is not a validation failure: the report comes back empty with
// its error_message set.
type ReportQuery struct {
	AnchorDate string `query:"anchorDate" validate:"omitempty,max=32"`
}

type ItemInsightQuery struct {
	ItemName string `query:"itemName" validate:"required,item_name"`
}
