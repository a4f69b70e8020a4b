package repository

// Default adapter configuration constants.
const (
	defaultEncoding   = "gbk"
	defaultSheet      = "features"
	defaultTable      = "features"
	defaultSampleSize = 10
)

// Columns names the input headers read by CSVSource.
type Columns struct {
	Year  string
	NOC   string
	Sport string
	Event string
	Name  string
	Medal string
	Host  string
}

// DefaultColumns returns the headers of the summer Olympics athlete table.
func DefaultColumns() Columns {
	return Columns{
		Year:  "Year",
		NOC:   "NOC",
		Sport: "code",
		Event: "Event",
		Name:  "Name",
		Medal: "Medal",
		Host:  "东道国",
	}
}

// SourceOption applies a configuration option to the CSVSource.
type SourceOption func(*CSVSource)

// WithInputEncoding sets the text encoding of the input file.
func WithInputEncoding(name string) SourceOption {
	return func(s *CSVSource) {
		if name != "" {
			s.encoding = name
		}
	}
}

// WithColumns overrides the input header names. Empty names keep their default.
func WithColumns(c Columns) SourceOption {
	return func(s *CSVSource) {
		s.columns = mergeColumns(s.columns, c)
	}
}

func mergeColumns(base, over Columns) Columns {
	pick := func(def, v string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Columns{
		Year:  pick(base.Year, over.Year),
		NOC:   pick(base.NOC, over.NOC),
		Sport: pick(base.Sport, over.Sport),
		Event: pick(base.Event, over.Event),
		Name:  pick(base.Name, over.Name),
		Medal: pick(base.Medal, over.Medal),
		Host:  pick(base.Host, over.Host),
	}
}

// WithSampleSize sets how many rows are kept in Profile.Sample.
func WithSampleSize(n int) SourceOption {
	return func(s *CSVSource) {
		if n >= 0 {
			s.sampleSize = n
		}
	}
}

// sinkSettings holds the options shared by every Sink.
type sinkSettings struct {
	encoding string
	sheet    string
	table    string
	runID    string
}

// SinkOption applies a configuration option to a Sink.
type SinkOption func(*sinkSettings)

// WithOutputEncoding sets the text encoding of CSV output.
func WithOutputEncoding(name string) SinkOption {
	return func(s *sinkSettings) {
		if name != "" {
			s.encoding = name
		}
	}
}

// WithSheet sets the XLSX worksheet name.
func WithSheet(name string) SinkOption {
	return func(s *sinkSettings) {
		if name != "" {
			s.sheet = name
		}
	}
}

// WithTable sets the SQLite feature table name.
func WithTable(name string) SinkOption {
	return func(s *sinkSettings) {
		if name != "" {
			s.table = name
		}
	}
}

// WithRunID tags SQLite output with the run that produced it.
func WithRunID(id string) SinkOption {
	return func(s *sinkSettings) {
		s.runID = id
	}
}
