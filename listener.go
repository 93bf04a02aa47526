package motion

type listenerKind uint8

const (
	listenScroll listenerKind = iota
	listenResize
	listenFrame
)

type viewportHandler struct {
	id      uint32
	owner   *Scope
	fn      func(Viewport)
	removed bool
}

type frameHandler struct {
	id      uint32
	owner   *Scope
	fn      func(dt float32)
	removed bool
}

type listenerRegistry struct {
	scroll   []*viewportHandler
	resize   []*viewportHandler
	frame    []*frameHandler
	nextID   uint32
	vpBuf    []*viewportHandler
	frameBuf []*frameHandler
}

// ListenerHandle allows removing a scroll, resize, or frame listener.
type ListenerHandle struct {
	id   uint32
	reg  *listenerRegistry
	kind listenerKind
}

// Remove unregisters the listener so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case listenScroll:
		h.reg.scroll = removeViewportHandler(h.reg.scroll, h.id)
	case listenResize:
		h.reg.resize = removeViewportHandler(h.reg.resize, h.id)
	case listenFrame:
		h.reg.frame = removeFrameHandler(h.reg.frame, h.id)
	}
}

func removeViewportHandler(s []*viewportHandler, id uint32) []*viewportHandler {
	for i := range s {
		if s[i].id == id {
			s[i].removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removeFrameHandler(s []*frameHandler, id uint32) []*frameHandler {
	for i := range s {
		if s[i].id == id {
			s[i].removed = true
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *listenerRegistry) addViewport(kind listenerKind, owner *Scope, fn func(Viewport)) ListenerHandle {
	r.nextID++
	h := &viewportHandler{id: r.nextID, owner: owner, fn: fn}
	if kind == listenResize {
		r.resize = append(r.resize, h)
	} else {
		r.scroll = append(r.scroll, h)
	}
	return ListenerHandle{id: h.id, reg: r, kind: kind}
}

func (r *listenerRegistry) addFrame(owner *Scope, fn func(dt float32)) ListenerHandle {
	r.nextID++
	h := &frameHandler{id: r.nextID, owner: owner, fn: fn}
	r.frame = append(r.frame, h)
	return ListenerHandle{id: h.id, reg: r, kind: listenFrame}
}

// removeOwned drops every listener registered by owner.
func (r *listenerRegistry) removeOwned(owner *Scope) {
	r.scroll = removeOwnedViewport(r.scroll, owner)
	r.resize = removeOwnedViewport(r.resize, owner)
	j := 0
	for _, h := range r.frame {
		if h.owner == owner {
			h.removed = true
			continue
		}
		r.frame[j] = h
		j++
	}
	for k := j; k < len(r.frame); k++ {
		r.frame[k] = nil
	}
	r.frame = r.frame[:j]
}

func removeOwnedViewport(s []*viewportHandler, owner *Scope) []*viewportHandler {
	j := 0
	for _, h := range s {
		if h.owner == owner {
			h.removed = true
			continue
		}
		s[j] = h
		j++
	}
	for k := j; k < len(s); k++ {
		s[k] = nil
	}
	return s[:j]
}

// dispatchViewport calls every live handler in list with vp. Handlers removed
// by an earlier handler in the same dispatch are skipped.
func (r *listenerRegistry) dispatchViewport(list []*viewportHandler, vp Viewport) {
	if len(list) == 0 {
		return
	}
	r.vpBuf = append(r.vpBuf[:0], list...)
	for _, h := range r.vpBuf {
		if h.removed {
			continue
		}
		h.fn(vp)
	}
	clear(r.vpBuf)
}

func (r *listenerRegistry) dispatchFrame(dt float32) {
	if len(r.frame) == 0 {
		return
	}
	r.frameBuf = append(r.frameBuf[:0], r.frame...)
	for _, h := range r.frameBuf {
		if h.removed {
			continue
		}
		h.fn(dt)
	}
	clear(r.frameBuf)
}

func (r *listenerRegistry) count() int {
	return len(r.scroll) + len(r.resize) + len(r.frame)
}
