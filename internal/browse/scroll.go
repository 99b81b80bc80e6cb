package browse

// ScrollMode selects a cursor movement.
type ScrollMode int

const (
	// ScrollFirst resets the cursor to the top of the view.
	ScrollFirst ScrollMode = iota
	// ScrollLast jumps to the final row.
	ScrollLast
	// ScrollNext moves down one row, wrapping to the top past the end.
	ScrollNext
	// ScrollPrev moves up one row; at the top it jumps to the final row.
	ScrollPrev
	// ScrollNextPage pages down, first snapping the selection to the
	// bottom of the visible window.
	ScrollNextPage
	// ScrollPrevPage pages up, first snapping the selection to the top of
	// the visible window.
	ScrollPrevPage
)

// Scroll moves the cursor. pageSize is the number of visible rows the
// display collaborator reports; the selection is kept inside the window
// [first, first+pageSize) and first only moves when the selection would
// leave it.
func (v *View) Scroll(mode ScrollMode, pageSize int) {
	if mode == ScrollFirst {
		v.first = 0
		v.selected = 0
		return
	}
	n := len(v.rows)
	if n == 0 || pageSize <= 0 {
		return
	}

	switch {
	case mode == ScrollLast || (mode == ScrollPrev && v.selected <= 0):
		v.selected = n - 1
		v.first = v.selected - pageSize + 1
		if v.first < 0 {
			v.first = 0
		}

	case mode == ScrollNext:
		if v.selected+1 < n {
			v.selected++
			if v.selected > v.first+pageSize-1 {
				v.first = v.selected - pageSize + 1
			}
		} else {
			// Wrap to the top.
			v.first = 0
			v.selected = 0
		}

	case mode == ScrollPrev:
		v.selected--
		if v.selected < v.first {
			v.first = v.selected
		}

	case mode == ScrollNextPage:
		if v.selected < v.first+pageSize-1 {
			v.selected = v.first + pageSize - 1
			if v.selected >= n {
				v.selected = n - 1
			}
		} else {
			v.selected += pageSize
			v.first += pageSize
			if v.selected >= n {
				v.selected = n - 1
				v.first = v.selected - pageSize + 1
				if v.first < 0 {
					v.first = 0
				}
			} else if v.first+pageSize > n {
				v.first = n - pageSize
			}
		}

	case mode == ScrollPrevPage:
		if v.selected != v.first {
			v.selected = v.first
		} else {
			v.first -= pageSize
			if v.first < 0 {
				v.first = 0
			}
			v.selected = v.first
		}
	}
}
