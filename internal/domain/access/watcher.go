package access

import (
	"sync"

	"draftdesk/internal/domain/entity"
)

// RoleChange is published whenever a session change alters the derived role.
type RoleChange struct {
	Principal *entity.Principal
	IsAdmin   bool
	Roles     entity.Roles
}

// Watcher is the explicit observer form of role derivation: it listens for
// session changes and republishes its own derived-value change event,
// instead of consumers re-deriving the role ad hoc.
type Watcher struct {
	resolver *Resolver

	mu      sync.Mutex
	nextID  int
	subs    map[int]func(RoleChange)
	current *RoleChange
}

// NewWatcher builds a Watcher over the given resolver.
func NewWatcher(resolver *Resolver) *Watcher {
	return &Watcher{
		resolver: resolver,
		subs:     make(map[int]func(RoleChange)),
	}
}

// OnSessionChange recomputes the derived role for the new principal (nil on
// sign-out) and notifies subscribers when it changed.
func (w *Watcher) OnSessionChange(p *entity.Principal) {
	change := RoleChange{
		Principal: p,
		IsAdmin:   w.resolver.IsAdmin(p),
		Roles:     w.resolver.RolesFor(p),
	}

	w.mu.Lock()
	if w.current != nil && sameDerivation(*w.current, change) {
		w.mu.Unlock()

		return
	}
	w.current = &change
	listeners := make([]func(RoleChange), 0, len(w.subs))
	for _, fn := range w.subs {
		listeners = append(listeners, fn)
	}
	w.mu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (w *Watcher) Subscribe(fn func(RoleChange)) func() {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

func sameDerivation(a, b RoleChange) bool {
	if a.IsAdmin != b.IsAdmin {
		return false
	}
	aUID, bUID := "", ""
	if a.Principal != nil {
		aUID = a.Principal.UID
	}
	if b.Principal != nil {
		bUID = b.Principal.UID
	}

	return aUID == bUID
}
