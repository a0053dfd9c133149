package sdk

// Severity represents the severity level of a finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding represents a rule violation or issue found in a file
type Finding struct {
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Fixable  bool     `json:"fixable"`
}

// Rule defines the interface that all line rules must implement.
// Rules are pure text matchers over a single line; they carry no state
// and never look at neighboring lines.
type Rule interface {
	Name() string
	Description() string
	Message() string
	Match(line string) bool
}
