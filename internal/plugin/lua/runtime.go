package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/markstorm/internal/engine/format"
	"github.com/dshills/markstorm/internal/plugin"
)

// Runtime wraps a sandboxed Lua state that can register toolbar actions.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes access
// from Go; Lua execution itself is single-threaded.
type Runtime struct {
	mu sync.Mutex

	L        *lua.LState
	registry *plugin.Registry
	closed   bool
}

// NewRuntime creates a sandboxed runtime bound to an action registry.
func NewRuntime(registry *plugin.Registry) (*Runtime, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	rt := &Runtime{
		L:        L,
		registry: registry,
	}
	rt.installModule()

	return rt, nil
}

// openSafeLibraries opens only safe Lua standard libraries. io, os, debug
// and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// installModule registers the markstorm global table.
func (r *Runtime) installModule() {
	mod := r.L.NewTable()

	r.L.SetField(mod, "register_wrap", r.L.NewFunction(r.luaRegisterWrap))
	r.L.SetField(mod, "register_line_prefix", r.L.NewFunction(r.luaRegisterLinePrefix))
	r.L.SetField(mod, "wrapped", r.L.NewFunction(luaWrapped))

	r.L.SetGlobal("markstorm", mod)
}

// luaRegisterWrap implements markstorm.register_wrap(name, marker).
func (r *Runtime) luaRegisterWrap(L *lua.LState) int {
	name := L.CheckString(1)
	marker := L.CheckString(2)

	err := r.registry.Register(plugin.CustomAction{
		Name:   name,
		Kind:   plugin.KindWrap,
		Marker: marker,
	})
	if err != nil {
		L.RaiseError("register_wrap: %v", err)
	}
	return 0
}

// luaRegisterLinePrefix implements markstorm.register_line_prefix(name, prefix).
func (r *Runtime) luaRegisterLinePrefix(L *lua.LState) int {
	name := L.CheckString(1)
	prefix := L.CheckString(2)

	err := r.registry.Register(plugin.CustomAction{
		Name:   name,
		Kind:   plugin.KindLinePrefix,
		Marker: prefix,
	})
	if err != nil {
		L.RaiseError("register_line_prefix: %v", err)
	}
	return 0
}

// luaWrapped implements markstorm.wrapped(text, start, end, marker).
// Offsets are zero-based byte offsets, matching the host API.
func luaWrapped(L *lua.LState) int {
	text := L.CheckString(1)
	start := L.CheckInt(2)
	end := L.CheckInt(3)
	marker := L.CheckString(4)

	L.Push(lua.LBool(format.Wrapped(text, start, end, marker)))
	return 1
}

// DoString executes Lua source. Execution is synchronous.
func (r *Runtime) DoString(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	return r.doWithRecovery(func() error {
		return r.L.DoString(code)
	})
}

// DoFile executes a Lua script file. Execution is synchronous.
func (r *Runtime) DoFile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRuntimeClosed
	}
	return r.doWithRecovery(func() error {
		return r.L.DoFile(path)
	})
}

// LoadScripts executes each script in order, stopping at the first failure.
func (r *Runtime) LoadScripts(paths []string) error {
	for _, path := range paths {
		if err := r.DoFile(path); err != nil {
			return fmt.Errorf("loading plugin %s: %w", path, err)
		}
	}
	return nil
}

// doWithRecovery executes fn converting Lua panics to errors.
func (r *Runtime) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}

// Close releases the Lua state. It is safe to call more than once.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
