package toolkit

// Walk visits root and its descendants in pre-order. Returning false from fn
// skips the widget's children.
func Walk(root Widget, fn func(w Widget, depth int) bool) {
	walk(root, 0, fn)
}

func walk(w Widget, depth int, fn func(Widget, int) bool) {
	if w == nil || !fn(w, depth) {
		return
	}
	if c, ok := w.(Container); ok {
		for _, child := range c.Children() {
			walk(child, depth+1, fn)
		}
	}
}

// Find returns the first widget under root (root included) whose id is id.
func Find(root Widget, id string) Widget {
	if id == "" {
		return nil
	}
	var found Widget
	Walk(root, func(w Widget, _ int) bool {
		if found != nil {
			return false
		}
		if w.ID() == id {
			found = w
			return false
		}
		return true
	})
	return found
}

// Lookup finds the widget with the given id and asserts its concrete type.
//
//	inc, ok := toolkit.Lookup[*toolkit.Button](win, "inc")
func Lookup[T Widget](root Widget, id string) (T, bool) {
	var zero T
	w := Find(root, id)
	if w == nil {
		return zero, false
	}
	t, ok := w.(T)
	return t, ok
}
