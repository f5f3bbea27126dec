// Package dbg turns arbitrary values into readable names for debug output.
package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are generated lazily and memoized for the life of the process, so
// the memo only grows while debug output is being produced. The same name
// does not refer to the same thing between runs.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	petname.NonDeterministicMode()
}

// Name returns a stable, readable name for obj. obj must be comparable.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
