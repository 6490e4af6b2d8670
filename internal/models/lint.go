package models

// FindingClass tells how a matched line is reported
type FindingClass string

const (
	FindingGood    FindingClass = "good"
	FindingIssue   FindingClass = "issue"
	FindingError   FindingClass = "error"
	FindingWarning FindingClass = "warning"
)

// Finding is one matched line in a scanned source file.
// Line is 0 for synthetic file-level findings.
type Finding struct {
	Rule    string       `json:"rule"`
	Class   FindingClass `json:"-"`
	Line    int          `json:"line"`
	Snippet string       `json:"snippet,omitempty"`
	Message string       `json:"message,omitempty"`
}

// MotionFileReport partitions the findings of one file
type MotionFileReport struct {
	File     string    `json:"file"`
	Good     []Finding `json:"good"`
	Issues   []Finding `json:"issues"`
	Warnings []Finding `json:"warnings"`
}

// MotionSummary aggregates a motion-preference scan
type MotionSummary struct {
	FilesScanned  int `json:"filesScanned"`
	GoodPractices int `json:"goodPractices"`
	Issues        int `json:"issues"`
	Warnings      int `json:"warnings"`
}

// MotionReport is the machine-readable motion scan result
type MotionReport struct {
	Summary MotionSummary      `json:"summary"`
	Files   []MotionFileReport `json:"files"`
}

// A11yFileReport partitions the findings of one file
type A11yFileReport struct {
	File     string    `json:"file"`
	Good     []Finding `json:"good"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// A11ySummary aggregates an accessibility scan
type A11ySummary struct {
	FilesScanned  int `json:"filesScanned"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	GoodPractices int `json:"goodPractices"`
}

// A11yReport is the machine-readable accessibility scan result
type A11yReport struct {
	Summary A11ySummary      `json:"summary"`
	Files   []A11yFileReport `json:"files"`
}
