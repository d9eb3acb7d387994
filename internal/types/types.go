package types

import "time"

// Field is a single label/value pair as it appears in a tester report.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Fields is an insertion-ordered label -> value map.
// Re-setting a label overwrites its value but keeps its original position.
type Fields struct {
	order  []string
	values map[string]string
}

// NewFields returns an empty Fields.
func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

// Set stores value under label, appending label if it is new.
func (f *Fields) Set(label, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[label]; !ok {
		f.order = append(f.order, label)
	}
	f.values[label] = value
}

// Get returns the value stored under label.
func (f *Fields) Get(label string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[label]
	return v, ok
}

// Has reports whether label is present.
func (f *Fields) Has(label string) bool {
	_, ok := f.Get(label)
	return ok
}

// Delete removes label and its position.
func (f *Fields) Delete(label string) {
	if f == nil {
		return
	}
	if _, ok := f.values[label]; !ok {
		return
	}
	delete(f.values, label)
	for i, k := range f.order {
		if k == label {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of labels.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.order)
}

// Labels returns the labels in insertion order.
func (f *Fields) Labels() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Entries returns all pairs in insertion order.
func (f *Fields) Entries() []Field {
	if f == nil {
		return nil
	}
	out := make([]Field, 0, len(f.order))
	for _, k := range f.order {
		out = append(out, Field{Label: k, Value: f.values[k]})
	}
	return out
}

// Settings holds the static run configuration recorded in a report
// (expert, symbol, period, deposit, leverage, ...).
type Settings = Fields

// Statistics holds the computed performance and risk metrics of a report.
type Statistics = Fields

// Table is one of the row tables of a report (Orders or Deals).
type Table struct {
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// IsEmpty reports whether the table has nothing to render.
func (t Table) IsEmpty() bool {
	return len(t.Headers) == 0 || len(t.Rows) == 0
}

// ParsedReport is everything the extractor recovers from one report.
type ParsedReport struct {
	Settings   *Settings
	Statistics *Statistics
	Orders     Table
	Deals      Table
	// Probes holds loosely matched values for labels whose markup does not
	// follow the label/value cell layout. Only used for sanity checks.
	Probes *Fields
}

// Bucket is a named thematic group of statistics used for presentation.
type Bucket struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Metrics []Field `json:"metrics"`
}

// GroupedStatistics is the ordered list of buckets produced by the classifier.
type GroupedStatistics struct {
	Buckets []Bucket `json:"buckets"`
}

// Bucket returns the bucket with the given key, if any.
func (g GroupedStatistics) Bucket(key string) (Bucket, bool) {
	for _, b := range g.Buckets {
		if b.Key == key {
			return b, true
		}
	}
	return Bucket{}, false
}

// Document is the input of a renderer: everything that ends up in the
// generated file.
type Document struct {
	Settings    *Settings
	Statistics  GroupedStatistics
	Orders      Table
	Deals       Table
	GeneratedAt time.Time
}

// Summary is what a conversion run reports back to its caller.
type Summary struct {
	Metrics     int    `json:"metrics"`
	Deals       int    `json:"deals"`
	Orders      int    `json:"orders"`
	OutputPath  string `json:"output_path"`
	Encoding    string `json:"encoding"`
	EmptyReport bool   `json:"empty_report"`
}
