// Package types defines shared data types for tshl.
package types

// Position represents a location in a source file.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Range represents a span in a source file.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Span is a highlighted region of source text.
type Span struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Capture   string `json:"capture"`
	Text      string `json:"text"`
	Range     Range  `json:"range"`
}

// FileJob represents a file to be processed.
type FileJob struct {
	AbsPath     string `json:"abs_path"`
	DisplayPath string `json:"path"`
	Language    string `json:"language"`
}
