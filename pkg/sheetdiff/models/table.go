package models

// Record is one data row of a table: header name to cell text, in header order.
type Record struct {
	headers []string
	values  map[string]string
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set stores value under header. An existing header keeps its position
// and takes the new value.
func (r *Record) Set(header, value string) {
	if _, ok := r.values[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.values[header] = value
}

// Get returns the value stored under header.
func (r *Record) Get(header string) (string, bool) {
	v, ok := r.values[header]
	return v, ok
}

// Headers returns the header names in insertion order.
func (r *Record) Headers() []string {
	return r.headers
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.headers)
}

// Table maps row keys to records, preserving the order rows were added.
type Table struct {
	keys []string
	rows map[string]*Record
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{rows: make(map[string]*Record)}
}

// Set stores rec under key. A duplicate key replaces the earlier record
// but keeps the earlier position.
func (t *Table) Set(key string, rec *Record) {
	if _, ok := t.rows[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.rows[key] = rec
}

// Get returns the record stored under key.
func (t *Table) Get(key string) (*Record, bool) {
	rec, ok := t.rows[key]
	return rec, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// Keys returns the row keys in insertion order.
func (t *Table) Keys() []string {
	return t.keys
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.keys)
}
