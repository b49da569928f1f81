package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Encode writes v to w in format f. An indent of zero selects the compact
// form of JSON and the flow style of YAML. Text output is the value's
// default formatting and ignores indent.
func (f Format) Encode(ctx context.Context, w io.Writer, indent int, v any) error {
	switch f {
	case FormatJSON:
		return encodeJSON(w, indent, v)
	case FormatYAML:
		return encodeYAML(ctx, w, indent, v)
	case FormatText, "":
		_, err := fmt.Fprintln(w, v)

		return err
	default:
		return fmt.Errorf("unsupported format %q", string(f))
	}
}

func encodeJSON(w io.Writer, indent int, v any) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func encodeYAML(ctx context.Context, w io.Writer, indent int, v any) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
