// Package yamlflag provides a command line flag that accepts a YAML document.
package yamlflag

import (
	"encoding/json"
	"flag"
	"os"
	"reflect"

	"github.com/ghodss/yaml"
)

// New creates a flag.Value that recognizes a YAML document.
//
// The YAML document can be specified directly on the command line:
//   --flag="key: value"
// Or it can be read from a file, when the flag value starts with '@':
//   --flag=@file.yaml
//
// value must be a pointer to a struct with JSON field tags.
// Panics if value is not a pointer.
func New(value any) flag.Getter {
	if val := reflect.ValueOf(value); val.Kind() != reflect.Ptr {
		panic(val.Kind())
	}
	return &yamlFlagValue{value}
}

type yamlFlagValue struct {
	Value any
}

func (v *yamlFlagValue) Get() any {
	return v.Value
}

func (v *yamlFlagValue) Set(s string) error {
	doc := []byte(s)
	if len(s) >= 1 && s[0] == '@' {
		file, e := os.ReadFile(s[1:])
		if e != nil {
			return e
		}
		doc = file
	}
	return yaml.Unmarshal(doc, v.Value)
}

func (v *yamlFlagValue) String() string {
	if v == nil || v.Value == nil {
		return ""
	}
	j, _ := json.Marshal(v.Value)
	return string(j)
}
