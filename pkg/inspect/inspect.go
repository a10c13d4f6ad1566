// Package inspect is what pathcheck does with an input once it may be used:
// it opens the input, then summarises it from the open handle.
package inspect

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jesseduffield/pathcheck/pkg/i18n"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/jesseduffield/pathcheck/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spkg/bom"
)

// Report summarises one input
type Report struct {
	// Input is the argument as it was given
	Input string
	// Path is the resolved path that was opened
	Path string
	Kind string
	Size int64
	// Entries is only set for directories
	Entries int
	// Lines is only set for regular files, and is -1 when line counting is off
	Lines int

	isDir bool
}

// Inspector opens inputs through a validator and reports on them
type Inspector struct {
	Log        *logrus.Entry
	Validator  *inputs.Validator
	Tr         *i18n.TranslationSet
	Kind       inputs.Kind
	CountLines bool
}

// NewInspector returns an inspector expecting every input to be of the given kind
func NewInspector(log *logrus.Entry, validator *inputs.Validator, tr *i18n.TranslationSet, kind inputs.Kind, countLines bool) *Inspector {
	return &Inspector{
		Log:        log,
		Validator:  validator,
		Tr:         tr,
		Kind:       kind,
		CountLines: countLines,
	}
}

// Inspect opens the input and summarises it. If snapshot is non-nil it must be
// the result of prechecking the same input, and the open fails if the path no
// longer refers to the object the precheck saw.
func (i *Inspector) Inspect(input string, snapshot *inputs.Snapshot) (*Report, error) {
	var handle *inputs.Handle
	var err error
	if snapshot != nil {
		handle, err = i.Validator.OpenSnapshot(snapshot, i.Kind)
	} else {
		handle, err = i.Validator.Open(input, i.Kind)
	}
	if err != nil {
		return nil, err
	}
	defer handle.Close()

	report := &Report{
		Input: input,
		Path:  handle.Path,
		Kind:  inputs.KindOf(handle.Info),
		Size:  handle.Info.Size(),
		Lines: -1,
		isDir: handle.Info.IsDir(),
	}

	switch {
	case handle.Info.IsDir():
		entries, err := handle.ReadDir(-1)
		if err != nil {
			return nil, inputs.NewPathError(inputs.OpList, input, err)
		}
		report.Entries = len(entries)
	case handle.Info.Mode().IsRegular() && i.CountLines:
		lines, err := countLines(handle)
		if err != nil {
			return nil, inputs.NewPathError(inputs.OpRead, input, err)
		}
		report.Lines = lines
	}

	i.Log.WithFields(logrus.Fields{
		"input":   input,
		"path":    report.Path,
		"kind":    report.Kind,
		"size":    report.Size,
		"entries": report.Entries,
		"lines":   report.Lines,
	}).Info(i.Tr.InspectionDone)

	return report, nil
}

// countLines counts newline-terminated lines, plus a final unterminated one.
// A leading UTF-8 byte order mark is not content, so a file holding only a BOM
// has no lines.
func countLines(reader io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	var last byte = '\n'
	source := bom.NewReader(reader)
	for {
		n, err := source.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}

// GetDisplayStrings returns the row for this report in the summary table
func (r *Report) GetDisplayStrings(tr *i18n.TranslationSet) []string {
	size := tr.NoDetail
	detail := tr.NoDetail
	if r.isDir {
		detail = fmt.Sprintf(tr.EntriesDetail, r.Entries)
	} else {
		size = utils.FormatBinaryBytes(r.Size)
		if r.Lines >= 0 {
			detail = fmt.Sprintf(tr.LinesDetail, r.Lines)
		}
	}
	return []string{r.Input, r.Kind, size, detail}
}
