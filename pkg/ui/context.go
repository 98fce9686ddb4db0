package ui

// WidgetID identifies an interactive element. Zero is no widget.
type WidgetID uint32

// NoWidget is the zero widget id
const NoWidget WidgetID = 0

// Context is the hot/active widget state shared across frames.
// Hot is the widget under the cursor; Active is the widget the confirm button went down on.
type Context struct {
	Hot    WidgetID
	Active WidgetID
}

// Clickable runs the press/release protocol for id and returns true on the frame it is clicked.
// A click is a press of A while id is hot followed by a release of A while id is still hot.
func (c *Context) Clickable(in Input, id WidgetID) bool {
	if in.Pressed(A) && c.Hot == id {
		c.Active = id
	}

	if in.Released(A) && c.Active == id {
		c.Active = NoWidget
		return c.Hot == id
	}

	return false
}

// MoveHot moves the hot widget through count widgets starting at first,
// using prev/next as the direction buttons. It returns the hot offset.
func (c *Context) MoveHot(in Input, first WidgetID, count int, prev, next Button) int {
	if count <= 0 {
		return 0
	}

	offset := int(c.Hot) - int(first)
	if offset < 0 || offset >= count {
		offset = 0
	}

	if in.Pressed(prev) {
		offset = (offset + count - 1) % count
	}

	if in.Pressed(next) {
		offset = (offset + 1) % count
	}

	hot := first + WidgetID(offset)
	if hot != c.Hot {
		// moving away cancels a press in progress
		c.Active = NoWidget
	}

	c.Hot = hot
	return offset
}

// Reset clears the hot and active widgets
func (c *Context) Reset() {
	c.Hot = NoWidget
	c.Active = NoWidget
}
