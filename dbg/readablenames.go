package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Converts pointers into random readable names, so that log lines about
// several converters are easy to tell apart. Names are generated lazily and
// never forgotten, so don't name an unbounded number of objects.
//
// Converters are shared between goroutines, so the memo is locked.

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
)

func init() {
	// Names depend on the order they're asked for, so make them
	// nondeterministic to discourage comparing names between runs.
	petname.NonDeterministicMode()
}

// Name must be given a pointer (or other nillable value).
func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	memo[obj] = r
	return r
}

// Labeled is Name followed by a bracketed label, e.g. "BraveOtter[×2]". The
// label describes the object's current state, so it isn't memoized.
func Labeled(obj interface{}, format string, args ...interface{}) string {
	return fmt.Sprintf("%s[%s]", Name(obj), fmt.Sprintf(format, args...))
}
