package state

// Row is one notification as shown by the terminal picker. Index is the
// position in the list handed to the picker and survives filtering.
type Row struct {
	Index  int
	Title  string
	Body   string
	Urgent bool
	Low    bool
}

// Level holds the picker's rows, filter and viewport.
type Level struct {
	Full           []Row
	Items          []Row
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level over rows with the cursor on the first row.
func NewLevel(rows []Row) *Level {
	l := &Level{
		Full:       cloneRows(rows),
		LastCursor: -1,
	}
	l.applyFilter()
	return l
}

// Selected returns the row under the cursor.
func (l *Level) Selected() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Row{}, false
	}
	return l.Items[l.Cursor], true
}

// SelectIndex moves the cursor to the row with the given original index,
// clamping to the visible rows when it is gone.
func (l *Level) SelectIndex(index int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return
	}
	for i, row := range l.Items {
		if row.Index == index {
			l.Cursor = i
			return
		}
	}
	if index >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
		return
	}
	if index < 0 {
		index = 0
	}
	l.Cursor = index
}

func cloneRows(rows []Row) []Row {
	if len(rows) == 0 {
		return nil
	}
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
