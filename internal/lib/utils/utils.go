// Package utils contains small helper functions used across the project.
package utils

import (
	"encoding/json"
	"fmt"
)

// PrintJSON pretty-prints v as indented JSON to stdout.
func PrintJSON(v any) {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		fmt.Println("Error marshalling the JSON:", err)
		return
	}

	fmt.Println(string(out))
}
