package workforce

// Category is the employment category derived from the raw marker column.
type Category string

const (
	CategoryDirect    Category = "DIRECT"
	CategoryIndirect  Category = "INDIRECT"
	CategoryUndefined Category = "UNDEFINED"
)

// Record is one payroll/production row for one employee in one period.
// All amounts are already coerced at the ingest boundary: a missing or
// unparsable value arrives as 0, never as NaN.
type Record struct {
	Site     string
	Name     string
	Role     string
	Category Category

	Production       float64
	ProductionBonus  float64
	OvertimeWeekday  float64
	OvertimeSaturday float64
	PaidRest         float64
	NetPay           float64
	Advance          float64

	Earnings   map[string]float64
	Deductions map[string]float64
}

// TotalNet is the total net remuneration. Advance can be negative.
func (r Record) TotalNet() float64 {
	return r.NetPay + r.Advance
}

// ThirdParty is an aggregate headcount row for outsourced labor.
// There is no per-employee detail for this category.
type ThirdParty struct {
	Site     string
	Company  string
	Quantity int
}
