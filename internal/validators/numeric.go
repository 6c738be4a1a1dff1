package validators

import (
	"fmt"

	"github.com/MKhiriev/go-green-pledge/models"
	"github.com/shopspring/decimal"
)

// column describes the numeric(precision, scale) column a decimal field is stored in.
type column struct {
	precision int32
	scale     int32
}

var (
	coordinateColumn = column{precision: 10, scale: 7}
	areaColumn       = column{precision: 10, scale: 2}
	treesColumn      = column{precision: 12, scale: 0}
	co2Column        = column{precision: 12, scale: 2}
	amountColumn     = column{precision: 10, scale: 2}
	treesCountColumn = column{precision: 10, scale: 0}
)

var (
	maxLatitude  = decimal.NewFromInt(90)
	maxLongitude = decimal.NewFromInt(180)
)

// parseColumn parses raw and checks that it fits col without rounding.
// On failure the violation is recorded and ok is false.
func parseColumn(errs *violations, field string, raw models.NumericString, col column) (d decimal.Decimal, ok bool) {
	d, err := raw.Decimal()
	if err != nil {
		errs.add(field, err)
		return d, false
	}

	if models.Scale(d) > col.scale {
		if col.scale == 0 {
			errs.add(field, ErrNotInteger)
		} else {
			errs.add(field, fmt.Errorf("%w: at most %d", ErrTooManyDecimals, col.scale))
		}
		return d, false
	}

	limit := decimal.New(1, col.precision-col.scale)
	if d.Abs().GreaterThanOrEqual(limit) {
		errs.add(field, fmt.Errorf("%w: must be below %s", ErrTooLarge, limit.String()))
		return d, false
	}

	return d, true
}

func checkRange(errs *violations, field string, d, bound decimal.Decimal) {
	if d.LessThan(bound.Neg()) || d.GreaterThan(bound) {
		errs.add(field, fmt.Errorf("%w: must be between %s and %s", ErrOutOfRange, bound.Neg().String(), bound.String()))
	}
}

func checkNonNegative(errs *violations, field string, d decimal.Decimal) {
	if d.IsNegative() {
		errs.add(field, ErrNegative)
	}
}
