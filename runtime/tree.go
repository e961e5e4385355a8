package runtime

// Bindable widgets receive app services when attached to a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when detached.
type Unbindable interface {
	Unbind()
}

// Lifecycle is implemented by widgets that need mount/unmount hooks.
type Lifecycle interface {
	Mount()
	Unmount()
}

// BindTree binds root and its descendants, parents first.
// Zero services bind nothing.
func BindTree(root Widget, services Services) {
	if services.isZero() {
		return
	}
	walkDown(root, func(w Widget) {
		if b, ok := w.(Bindable); ok {
			b.Bind(services)
		}
	})
}

// UnbindTree unbinds root and its descendants, children first.
func UnbindTree(root Widget) {
	walkUp(root, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

// MountTree mounts root and its descendants, parents first.
func MountTree(root Widget) {
	walkDown(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
	})
}

// UnmountTree unmounts root and its descendants, children first.
func UnmountTree(root Widget) {
	walkUp(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
	})
}

func walkDown(w Widget, visit func(Widget)) {
	if w == nil {
		return
	}
	visit(w)
	for _, child := range children(w) {
		walkDown(child, visit)
	}
}

func walkUp(w Widget, visit func(Widget)) {
	if w == nil {
		return
	}
	for _, child := range children(w) {
		walkUp(child, visit)
	}
	visit(w)
}

func children(w Widget) []Widget {
	if p, ok := w.(ChildProvider); ok {
		return p.ChildWidgets()
	}
	return nil
}
