package types

// Row is a cursor row resolved against a line count. A row either points at
// an existing line or at the append position past the last line.
type Row struct {
	index   int
	pastEnd bool
}

// OnLine returns a row pointing at line i.
func OnLine(i int) Row { return Row{index: i} }

// PastEnd returns the append row.
func PastEnd() Row { return Row{pastEnd: true} }

// ResolveRow maps a plain row number onto a Row for a document with
// lineCount lines.
func ResolveRow(y, lineCount int) Row {
	if y >= lineCount {
		return PastEnd()
	}
	return OnLine(y)
}

// Line returns the line index and true, or false for the append row.
func (r Row) Line() (int, bool) {
	if r.pastEnd {
		return 0, false
	}
	return r.index, true
}

// IsPastEnd reports whether r is the append row.
func (r Row) IsPastEnd() bool { return r.pastEnd }

