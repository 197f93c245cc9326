package game

// inputSource turns polled cursor positions and layout sizes into pointer
// move and resize events. Only changes are reported.
type inputSource struct {
	moveHandlers   []func(x, y float64)
	resizeHandlers []func(width, height int)

	lastX, lastY int
	seen         bool

	width, height int
}

func newInputSource(width, height int) *inputSource {
	return &inputSource{width: width, height: height}
}

func (s *inputSource) OnPointerMove(fn func(x, y float64)) {
	s.moveHandlers = append(s.moveHandlers, fn)
}

func (s *inputSource) OnResize(fn func(width, height int)) {
	s.resizeHandlers = append(s.resizeHandlers, fn)
}

// pointer reports the cursor position sampled this tick. The first sample
// only establishes a baseline; a move is emitted once the cursor changes.
func (s *inputSource) pointer(x, y int) {
	if !s.seen {
		s.seen = true
		s.lastX, s.lastY = x, y
		return
	}
	if x == s.lastX && y == s.lastY {
		return
	}
	s.lastX, s.lastY = x, y
	for _, fn := range s.moveHandlers {
		fn(float64(x), float64(y))
	}
}

func (s *inputSource) resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	for _, fn := range s.resizeHandlers {
		fn(width, height)
	}
}
