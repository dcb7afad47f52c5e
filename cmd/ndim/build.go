package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/ndim/builder"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errUnknownType = errors.New("unknown element type")

// buildOptions collects the build command flags.
type buildOptions struct {
	elemType string
	fill     string
	ones     bool
	format   string
}

func runBuild(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args)
	if err != nil {
		return err
	}

	logger.Debug("building container",
		zap.Stringer("shape", shape),
		zap.String("type", opts.elemType),
		zap.Int("elements", shape.NumElements()),
	)

	container, err := buildContainer(shape, opts)
	if err != nil {
		return fmt.Errorf("build %v: %w", shape, err)
	}
	return render(cmd.OutOrStdout(), container, opts.format)
}

// parseShape converts command-line extents into a Shape. Range checking is
// left to the builders so the CLI reports the same errors as the library.
func parseShape(args []string) (builder.Shape, error) {
	shape := make(builder.Shape, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("extent %d: %q is not an integer", i, arg)
		}
		shape[i] = n
	}
	return shape, nil
}

func buildContainer(shape builder.Shape, o buildOptions) (any, error) {
	switch o.elemType {
	case "int":
		return buildTyped(shape, o, strconv.Atoi)
	case "int64":
		return buildTyped(shape, o, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case "float32":
		return buildTyped(shape, o, func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		})
	case "float64":
		return buildTyped(shape, o, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, o.elemType)
	}
}

func buildTyped[T builder.Numeric](shape builder.Shape, o buildOptions, parse func(string) (T, error)) (any, error) {
	switch {
	case o.ones:
		return builder.NewFull(shape, T(1))
	case o.fill != "":
		v, err := parse(o.fill)
		if err != nil {
			return nil, fmt.Errorf("fill value %q: %w", o.fill, err)
		}
		return builder.NewFull(shape, v)
	default:
		return builder.New[T](shape)
	}
}

func render(w io.Writer, container any, format string) error {
	switch format {
	case "json":
		data, err := json.Marshal(container)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(container); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
