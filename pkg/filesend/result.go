package filesend

import (
	"iter"

	"github.com/google/uuid"
)

// FileSendResult is the outcome for one input file. Error is empty when the
// file was sent.
type FileSendResult struct {
	ID    uuid.UUID
	File  FileContent
	Error string
}

func newFileSendResult(file FileContent, errMsg string) FileSendResult {
	return FileSendResult{ID: uuid.New(), File: file, Error: errMsg}
}

func (r FileSendResult) IsSuccess() bool {
	return r.Error == ""
}

// Report is a drained batch.
type Report struct {
	Sent    int
	Failed  int
	Results []FileSendResult
}

// Summarize consumes results, running the batch, and counts the outcomes.
func Summarize(results iter.Seq[FileSendResult]) Report {
	var report Report
	for r := range results {
		if r.IsSuccess() {
			report.Sent++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, r)
	}
	return report
}
