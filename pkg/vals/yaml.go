package vals

import (
	"io"

	"gopkg.in/yaml.v3"

	"src.pgsn.dev/pkg/term"
)

// WriteYAML writes the Go value of a data term to w as a YAML document.
func WriteYAML(w io.Writer, t term.Term) error {
	v, err := FromTerm(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
