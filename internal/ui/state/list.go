package state

// SelectableList tracks the selected index over a list whose length is only
// known when the owner renders or mutates it. The index is always 0 for an
// empty list and never exceeds n-1 otherwise.
type SelectableList struct {
	Index          int
	ViewportOffset int
}

// Up moves the selection one row towards the top.
func (l *SelectableList) Up() bool {
	if l.Index <= 0 {
		l.Index = 0
		return false
	}
	l.Index--
	return true
}

// Down moves the selection one row towards the bottom of an n-item list.
func (l *SelectableList) Down(n int) bool {
	if n <= 0 {
		l.Index = 0
		return false
	}
	old := l.Index
	l.Clamp(n)
	if l.Index < n-1 {
		l.Index++
	}
	return l.Index != old
}

// Home selects the first row.
func (l *SelectableList) Home() bool {
	old := l.Index
	l.Index = 0
	return old != l.Index
}

// End selects the last row of an n-item list.
func (l *SelectableList) End(n int) bool {
	old := l.Index
	if n <= 0 {
		l.Index = 0
	} else {
		l.Index = n - 1
	}
	return old != l.Index
}

// Clamp pulls the index back inside [0, n-1] after the list shrank, e.g. when
// the last item was deleted.
func (l *SelectableList) Clamp(n int) {
	if n <= 0 {
		l.Index = 0
		l.ViewportOffset = 0
		return
	}
	if l.Index < 0 {
		l.Index = 0
	}
	if l.Index >= n {
		l.Index = n - 1
	}
	if l.ViewportOffset > l.Index {
		l.ViewportOffset = l.Index
	}
}

// Valid reports whether the index may dereference an n-item list.
func (l *SelectableList) Valid(n int) bool {
	return n > 0 && l.Index >= 0 && l.Index < n
}

// EnsureVisible adjusts the viewport offset so the selection stays within the
// maxVisible rows drawn for an n-item list.
func (l *SelectableList) EnsureVisible(n, maxVisible int) {
	l.Clamp(n)
	if n == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Index < l.ViewportOffset {
		l.ViewportOffset = l.Index
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Index > upper {
		l.ViewportOffset = l.Index - maxVisible + 1
	}
}
