// Package review defines the result-record model produced by the review
// pipeline. Every field an upstream payload may omit is optional here;
// defaulting happens in the accessors, never at decode time.
package review

import "fmt"

// Status values emitted by the automated review pipeline. Anything else
// (including an absent value) is treated as pending.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Result is a single reviewed check item.
type Result struct {
	Result           string            `json:"result,omitempty"`
	UserOverride     bool              `json:"userOverride,omitempty"`
	CheckList        *CheckItem        `json:"checkList,omitempty"`
	ConfidenceScore  *float64          `json:"confidenceScore,omitempty"`
	Explanation      string            `json:"explanation,omitempty"`
	ExtractedText    string            `json:"extractedText,omitempty"`
	SourceReferences []SourceReference `json:"sourceReferences,omitempty"`
	UserComment      string            `json:"userComment,omitempty"`
}

// CheckItem describes the rule a result was checked against.
type CheckItem struct {
	Name        string `json:"name,omitempty"`
	ParentName  string `json:"parentName,omitempty"`
	Description string `json:"description,omitempty"`
}

// SourceReference points at the document location supporting a result.
type SourceReference struct {
	Filename   string `json:"filename,omitempty"`
	PageNumber int    `json:"pageNumber,omitempty"`
}

// Bundle is the data payload handed to the prompt expander.
type Bundle struct {
	AllResults []Result `json:"allResults,omitempty"`
}

// Results returns the result sequence, empty when the bundle is nil or the
// field was absent.
func (b *Bundle) Results() []Result {
	if b == nil {
		return nil
	}
	return b.AllResults
}

// StatusLabel maps the raw pipeline status onto its display label.
func (r Result) StatusLabel() string {
	switch r.Result {
	case StatusPass:
		return "Pass"
	case StatusFail:
		return "Fail"
	default:
		return "Pending"
	}
}

// CheckName returns the check-list name, "Unknown" when unset.
func (r Result) CheckName() string {
	if r.CheckList == nil || r.CheckList.Name == "" {
		return "Unknown"
	}
	return r.CheckList.Name
}

// ParentName returns the parent category name, empty when unset.
func (r Result) ParentName() string {
	if r.CheckList == nil {
		return ""
	}
	return r.CheckList.ParentName
}

// Rule returns the check-list description, empty when unset.
func (r Result) Rule() string {
	if r.CheckList == nil {
		return ""
	}
	return r.CheckList.Description
}

// ConfidencePercent reports the confidence score as a whole percentage,
// truncated toward zero. A score of exactly 0 is a real value and reports
// (0, true); ok is false only when the score is absent.
func (r Result) ConfidencePercent() (pct int, ok bool) {
	if r.ConfidenceScore == nil {
		return 0, false
	}
	return int(*r.ConfidenceScore * 100), true
}

// Label renders the reference for display: "file.pdf (p.3)" when a page
// number is present, just the filename otherwise.
func (ref SourceReference) Label() string {
	name := ref.Filename
	if name == "" {
		name = "Unknown"
	}
	if ref.PageNumber != 0 {
		return fmt.Sprintf("%s (p.%d)", name, ref.PageNumber)
	}
	return name
}
