package errors

import "sync"

// ErrorHook receives every EnhancedError when it is built.
// Hooks must be fast and must not build new enhanced errors.
type ErrorHook func(ee *EnhancedError)

var (
	hooks   []ErrorHook
	hooksMu sync.RWMutex
)

// AddErrorHook registers a hook called from Build.
func AddErrorHook(hook ErrorHook) {
	if hook == nil {
		return
	}
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = append(hooks, hook)
}

// ClearErrorHooks removes all registered hooks.
func ClearErrorHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	hooks = nil
}

func runHooks(ee *EnhancedError) {
	hooksMu.RLock()
	registered := hooks
	hooksMu.RUnlock()

	for _, hook := range registered {
		hook(ee)
	}
}
