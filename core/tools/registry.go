package tools

import (
	"sort"

	"github.com/pkg/errors"
)

type ToolFunc func(args map[string]interface{}) (string, error)

var registry = make(map[string]ToolFunc)

func Register(name string, fn ToolFunc) {
	registry[name] = fn
}

func Execute(name string, args map[string]interface{}) (string, error) {
	fn, ok := registry[name]
	if !ok {
		return "", errors.Errorf("tool %s not found", name)
	}

	return fn(args)
}

// List returns registered tool names in sorted order.
func List() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ClearRegistry removes every registered tool.
func ClearRegistry() {
	registry = make(map[string]ToolFunc)
}

// RegisterDefaults (re)installs the built-in tools.
func RegisterDefaults() {
	Register("factorial", factorial)
	Register("calc", calc)
}

func init() {
	RegisterDefaults()
}
