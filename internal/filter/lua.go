// Package filter evaluates user-supplied Lua predicates against generated
// words.
package filter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ErrTimeout is returned when a predicate runs past its time budget.
var ErrTimeout = errors.New("filter timeout")

// Candidate is what a predicate sees: the word and its syllable budget.
type Candidate struct {
	Word      string
	Syllables int
}

// Lua is a compiled predicate bound to one sandboxed interpreter. It is not
// safe for concurrent use.
type Lua struct {
	code    string
	timeout time.Duration
	state   *lua.LState
	fn      *lua.LFunction
}

// New compiles code into a predicate. An expression without "return" is
// wrapped as "return (<code>)". A zero timeout disables the time limit.
func New(code string, timeout time.Duration) (*Lua, error) {
	src := wrapPredicate(code)
	L := newSandbox()
	fn, err := L.LoadString(src)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("filter: compile: %v", err)
	}
	return &Lua{code: code, timeout: timeout, state: L, fn: fn}, nil
}

// Code returns the predicate as the user wrote it.
func (f *Lua) Code() string { return f.code }

// Accept runs the predicate for c. A nil filter accepts everything.
func (f *Lua) Accept(ctx context.Context, c Candidate) (bool, error) {
	if f == nil {
		return true, nil
	}
	L := f.state
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	L.SetContext(ctx)
	defer L.RemoveContext()
	L.SetTop(0)

	L.SetGlobal("word", lua.LString(c.Word))
	L.SetGlobal("syllables", lua.LNumber(c.Syllables))

	L.Push(f.fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) && f.timeout > 0 {
				return false, fmt.Errorf("%w after %s", ErrTimeout, f.timeout)
			}
			return false, ctxErr
		}
		return false, fmt.Errorf("filter: %v", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	b, ok := ret.(lua.LBool)
	if !ok {
		return false, fmt.Errorf("filter: predicate returned %s, expected boolean", ret.Type().String())
	}
	return bool(b), nil
}

// Close releases the interpreter.
func (f *Lua) Close() {
	if f != nil && f.state != nil {
		f.state.Close()
	}
}

func wrapPredicate(code string) string {
	if strings.Contains(code, "return") {
		return code
	}
	return "return (" + code + ")"
}

func newSandbox() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.StringLibName, lua.OpenString},
		{lua.TabLibName, lua.OpenTable},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	// Predicates must be a function of the word alone.
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("random", lua.LNil)
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
	return L
}
