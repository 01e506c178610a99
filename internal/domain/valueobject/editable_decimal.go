package valueobject

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrBlankDecimal = errors.New("decimal value is blank")
	ErrNotANumber   = errors.New("decimal value is not a number")
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	inputNoise     = regexp.MustCompile(`[^0-9.,]`)
)

// EditableDecimal is a numeric field edited as text (paid rate, advances,
// mileage adjustments). It keeps the raw text so a blank field stays blank
// and owns every clean/parse/format rule for those fields.
type EditableDecimal struct {
	raw string
}

func NewEditableDecimal(raw string) EditableDecimal {
	return EditableDecimal{raw: raw}
}

// FromInput keeps digits and decimal separators only.
func FromInput(input string) EditableDecimal {
	return EditableDecimal{raw: inputNoise.ReplaceAllString(input, "")}
}

func FromFloat(v float64) EditableDecimal {
	return EditableDecimal{raw: FormatJSNumber(v)}
}

func (d EditableDecimal) Raw() string {
	return d.raw
}

func (d EditableDecimal) IsBlank() bool {
	return strings.TrimSpace(d.raw) == ""
}

// Float coerces the value the way the dashboard forms always did: the first
// comma becomes a decimal point, blank is 0 and anything else is NaN.
func (d EditableDecimal) Float() float64 {
	return JSNumber(strings.Replace(d.raw, ",", ".", 1))
}

func (d EditableDecimal) Parse() (float64, error) {
	if d.raw == "" {
		return 0, ErrBlankDecimal
	}
	v := d.Float()
	if math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// Fixed2 is the two-decimal wire form, "0.00" when the value does not parse.
func (d EditableDecimal) Fixed2() string {
	v, err := d.Parse()
	if err != nil {
		return "0.00"
	}
	return ToFixed(v, 2)
}

func (d EditableDecimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.raw)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (d *EditableDecimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		d.raw = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d.raw = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	d.raw = n.String()
	return nil
}

// JSNumber converts text to a number with JavaScript Number() rules for
// decimal literals: surrounding whitespace is ignored, blank is 0 and any
// other non-literal is NaN.
func JSNumber(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// FormatJSNumber renders a number the way JavaScript String() does for the
// magnitudes handled here.
func FormatJSNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ToFixed reproduces Number.prototype.toFixed: the exact binary value is
// rounded half away from zero and a negative input keeps its sign even when
// it rounds to zero.
func ToFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return FormatJSNumber(v)
	}
	exact := strconv.FormatFloat(v, 'f', 1074, 64)
	out := decimal.RequireFromString(exact).Round(places).StringFixed(places)
	if v < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// Round2 is Number(v.toFixed(2)).
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return JSNumber(ToFixed(v, 2))
}

// Money2 is the display guard for amounts: non-finite values show as 0.00.
func Money2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return ToFixed(v, 2)
}
