package stats

import "strconv"

// Kind identifies the type of a statistic value. The set is closed:
// every field in a statistic set schema declares one of these kinds.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindSizeKB
	KindPercent
	KindString
	KindVersion
	KindNotAvailable
)

// StatValue is a tagged scalar holding one statistic. The zero value is
// not meaningful; construct values with the helpers below. NotAvailable
// marks a field that could not be retrieved, which is distinct from a
// field whose value is zero.
type StatValue struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// NotAvailable is the sentinel for a field that could not be retrieved.
var NotAvailable = StatValue{kind: KindNotAvailable}

// Integer creates an integer-count value.
func Integer(v int64) StatValue {
	return StatValue{kind: KindInteger, i: v}
}

// Float creates a floating-count value.
func Float(v float64) StatValue {
	return StatValue{kind: KindFloat, f: v}
}

// SizeKB creates a size value measured in kilobytes.
func SizeKB(v int64) StatValue {
	return StatValue{kind: KindSizeKB, i: v}
}

// Percent creates a percentage value.
func Percent(v int64) StatValue {
	return StatValue{kind: KindPercent, i: v}
}

// Text creates a plain string value.
func Text(v string) StatValue {
	return StatValue{kind: KindString, s: v}
}

// Version creates a version-number value.
func Version(v string) StatValue {
	return StatValue{kind: KindVersion, s: v}
}

// Kind returns the value's kind tag.
func (v StatValue) Kind() Kind {
	return v.kind
}

// IsNotAvailable reports whether the value is the NotAvailable sentinel.
func (v StatValue) IsNotAvailable() bool {
	return v.kind == KindNotAvailable
}

// Int64 returns the numeric payload of an integer, size or percent value.
func (v StatValue) Int64() int64 {
	return v.i
}

// Float64 returns the payload of a floating-count value.
func (v StatValue) Float64() float64 {
	return v.f
}

// NotAvailableText is the display form of the NotAvailable sentinel.
const NotAvailableText = "N/A"

// String renders the value in its raw (non unit-scaled) form, as used
// by the nested dump.
func (v StatValue) String() string {
	switch v.kind {
	case KindInteger, KindSizeKB:
		return strconv.FormatInt(v.i, 10)
	case KindPercent:
		return strconv.FormatInt(v.i, 10) + "%"
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString, KindVersion:
		return v.s
	default:
		return NotAvailableText
	}
}

// Field is one named statistic inside a record.
type Field struct {
	Name  string
	Value StatValue
}

// StatRecord is an ordered name to value mapping. Field order is fixed
// by the statistic set's schema and is preserved by both renderers.
// Records are immutable once the fetch that built them returns.
type StatRecord struct {
	fields []Field
}

// NewStatRecord builds a record from fields already in schema order.
func NewStatRecord(fields []Field) StatRecord {
	return StatRecord{fields: fields}
}

// Fields returns the record's fields in schema order.
func (r StatRecord) Fields() []Field {
	return r.fields
}

// Get returns the named field's value, or NotAvailable if the record
// has no such field.
func (r StatRecord) Get(name string) StatValue {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return NotAvailable
}

// Sample pairs one fetched record with the device it came from and the
// statistic set it belongs to. Read-only after creation.
type Sample struct {
	Device string
	Set    SetType
	Record StatRecord
}

// DeviceSampleBundle holds all samples gathered for one device, one per
// requested statistic set, in request order.
type DeviceSampleBundle struct {
	Device  string
	Samples []Sample
}
