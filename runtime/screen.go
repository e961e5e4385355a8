package runtime

// Layer is one widget tree in the screen's stack.
type Layer struct {
	Root  Widget
	Modal bool // blocks input to layers below
}

// Screen owns the layer stack and the render buffer.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	services      Services
}

// NewScreen creates a screen with the given dimensions.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
	}
}

// SetServices configures app services for bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions and re-lays out every layer.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
	bounds := Rect{0, 0, w, h}
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(bounds)
		}
	}
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot replaces the base layer's root, unmounting the previous one.
func (s *Screen) SetRoot(root Widget) {
	var old Widget
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{Root: root})
	} else {
		old = s.layers[0].Root
		s.layers[0].Root = root
	}
	if old != nil {
		s.detach(old)
	}
	if root != nil {
		s.attach(root)
	}
}

// Root returns the base layer's root widget.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds a layer on top of the stack.
func (s *Screen) PushLayer(root Widget, modal bool) {
	if root == nil {
		return
	}
	s.layers = append(s.layers, &Layer{Root: root, Modal: modal})
	s.attach(root)
	s.buffer.MarkAllDirty()
}

// PopLayer removes the top layer. The base layer cannot be popped.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	if top.Root != nil {
		s.detach(top.Root)
	}
	s.buffer.MarkAllDirty()
	return true
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

func (s *Screen) attach(root Widget) {
	BindTree(root, s.services)
	root.Layout(Rect{0, 0, s.width, s.height})
	MountTree(root)
}

func (s *Screen) detach(root Widget) {
	UnmountTree(root)
	UnbindTree(root)
}

// Render draws all layers bottom to top.
func (s *Screen) Render() {
	ctx := RenderContext{
		Buffer: s.buffer,
		Bounds: Rect{0, 0, s.width, s.height},
	}
	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx.Focused = i == len(s.layers)-1
		layer.Root.Render(ctx)
	}
}

// HandleMessage offers msg to layers from the top down.
// A modal layer stops the message from reaching layers beneath it.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}
		result := layer.Root.HandleMessage(msg)
		for _, cmd := range result.Commands {
			s.handleCommand(cmd)
		}
		if result.Handled {
			return result
		}
		if layer.Modal {
			break
		}
	}
	return Unhandled()
}

func (s *Screen) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case PopOverlay:
		s.PopLayer()
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
	}
	// Other commands bubble up to App
}
