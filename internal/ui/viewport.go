package ui

// Viewport returns the first maze column (or row) to draw so that focus sits
// in the middle of a view of the given size. Mazes that fit are not scrolled,
// and the view never scrolls past either edge.
func Viewport(view, size, focus int) int {
	if view <= 0 || size <= view {
		return 0
	}
	offset := focus - view/2
	if offset < 0 {
		return 0
	}
	if offset > size-view {
		return size - view
	}
	return offset
}
