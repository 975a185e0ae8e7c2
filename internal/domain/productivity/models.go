package productivity

import "time"

// Record is one service execution row from the productivity workbook.
// Date always resolves to a (year, month) bucket; rows with an
// unparsable date are dropped at the ingest boundary.
type Record struct {
	Site        string
	SiteType    string
	ServiceType string
	Date        time.Time

	Actual   float64 // measured productivity per m²
	Budgeted float64 // budgeted productivity per m²
}
