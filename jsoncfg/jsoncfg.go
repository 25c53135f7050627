// Package jsoncfg provides JSON configuration file helpers.
package jsoncfg

import (
	"encoding/json"
	"os"
)

// Open loads the JSON file at path into v.
// Unknown fields in the file are rejected.
func Open(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	d := json.NewDecoder(f)
	d.DisallowUnknownFields()
	return d.Decode(v)
}

// Save saves v to the JSON file at path, overwriting any existing content.
func Save(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	e := json.NewEncoder(f)
	e.SetIndent("", "    ")
	return e.Encode(v)
}
