package datemanip

import (
	"math"

	"github.com/spf13/cast"

	"github.com/username/datemanip/pkg/dateutil"
)

// maxQuantity bounds modification quantities so unit arithmetic cannot overflow
const maxQuantity = math.MaxInt32

// IsValidTimezone reports whether name is a known IANA timezone identifier
func IsValidTimezone(name string) bool {
	_, err := dateutil.LoadLocation(name)
	return err == nil
}

// IsPositiveInteger reports whether value is numeric, greater than zero and integral.
// Integer types, floats and numeric strings ("7", "7.0") are accepted; 2.5, 0, -1,
// booleans and non-numeric strings are not.
func IsPositiveInteger(value any) bool {
	_, ok := positiveInteger(value)
	return ok
}

func positiveInteger(value any) (int, bool) {
	switch value.(type) {
	case nil, bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f <= 0 || f != math.Round(f) || f > maxQuantity {
		return 0, false
	}
	return int(f), true
}
