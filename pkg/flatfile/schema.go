package flatfile

import "fmt"

// Field is one (name, width) pair of a record layout.
type Field struct {
	Name  string
	Width int
}

// Schema is the ordered field layout of one record type. The total record
// width is the sum of all field widths; there are no delimiters.
type Schema struct {
	name   string
	fields []Field
	total  int
}

func NewSchema(name string, fields ...Field) Schema {
	total := 0
	for _, f := range fields {
		total += f.Width
	}
	return Schema{name: name, fields: fields, total: total}
}

func (s Schema) Name() string    { return s.name }
func (s Schema) TotalWidth() int { return s.total }

// Encode formats one value per schema field, in order, and concatenates.
// The caller must supply exactly one value per field; a record whose final
// length disagrees with the declared total width means the schema and its
// field widths have drifted apart, which is a programming error surfaced
// as *SchemaError rather than a silently corrupted file.
func (s Schema) Encode(values ...string) (string, error) {
	if len(values) != len(s.fields) {
		return "", &SchemaError{Schema: s.name, Expected: len(s.fields), Actual: len(values), Fields: true}
	}
	var b []byte
	for i, f := range s.fields {
		b = append(b, Format(values[i], f.Width)...)
	}
	if len(b) != s.total {
		return "", &SchemaError{Schema: s.name, Expected: s.total, Actual: len(b)}
	}
	return string(b), nil
}

// Decoder walks a record's fields in schema order. The line is padded to
// the total width up front so short or malformed lines decode to blank
// fields instead of erroring.
type Decoder struct {
	schema Schema
	line   string
	pos    int
	field  int
}

func (s Schema) NewDecoder(line string) *Decoder {
	return &Decoder{schema: s, line: Format(line, s.total)}
}

// Next returns the next field's value with trailing padding stripped.
func (d *Decoder) Next() string {
	f := d.schema.fields[d.field]
	v := Unformat(d.line, d.pos, f.Width)
	d.pos += f.Width
	d.field++
	return v
}

// NextRaw returns the next field with its padding intact. Callers that
// stitch fields back together across records (message chunks) need the raw
// bytes so a boundary falling on a legitimate space is not corrupted.
func (d *Decoder) NextRaw() string {
	f := d.schema.fields[d.field]
	v := d.line[d.pos : d.pos+f.Width]
	d.pos += f.Width
	d.field++
	return v
}

// NextInt returns the next field parsed as a decimal, 0 when blank or bad.
func (d *Decoder) NextInt() int {
	f := d.schema.fields[d.field]
	v := UnformatInt(d.line, d.pos, f.Width)
	d.pos += f.Width
	d.field++
	return v
}

// SchemaError reports a record layout that is internally inconsistent:
// encode produced a line whose length does not match the declared total
// width (or was handed the wrong number of values).
type SchemaError struct {
	Schema   string
	Expected int
	Actual   int
	Fields   bool
}

func (e *SchemaError) Error() string {
	if e.Fields {
		return fmt.Sprintf("flatfile: %s schema has %d fields, got %d values", e.Schema, e.Expected, e.Actual)
	}
	return fmt.Sprintf("flatfile: %s record is %d bytes, schema declares %d", e.Schema, e.Actual, e.Expected)
}
