// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.


package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// the separator between key and value in a command line preference. a
// preferences string contains any number of key/value pairs separated by
// semi-colons
//
//	cpu.clock::1662607; controller.turbo::false
const (
	commandLineKeySep  = "::"
	commandLinePairSep = ";"
)

// preferences specified on the command line take priority over preferences
// loaded from disk. each push creates a new group and only the top group is
// consulted
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a preferences string and adds it as a new
// group. Malformed key/value pairs are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)
	for _, pair := range strings.Split(prefs, commandLinePairSep) {
		key, value, ok := strings.Cut(pair, commandLineKeySep)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		group[key] = strings.TrimSpace(value)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, group)
}

// PopCommandLineStack removes the top group from the stack. The preferences
// in the group that were never consumed by GetCommandLinePref() are returned
// as a preferences string, sorted by key. An empty stack returns the empty
// string.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	group := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s%s%s", k, commandLineKeySep, group[k])
	}
	return strings.Join(pairs, commandLinePairSep+" ")
}

// GetCommandLinePref returns the value for the key from the top group. The
// value is consumed and will not be returned a second time.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	group := commandLine.stack[len(commandLine.stack)-1]
	v, ok := group[key]
	if !ok {
		return false, nil
	}
	delete(group, key)
	return true, v
}
