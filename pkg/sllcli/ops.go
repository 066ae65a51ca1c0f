package sllcli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"src.sll.sh/pkg/errutil"
	"src.sll.sh/pkg/list"
)

// An op is one step of the op script.
type op struct {
	desc  string
	apply func(l *list.List[any], out io.Writer)
}

// Parses the op script. All problems are reported together.
func parseOps(args []string) ([]op, error) {
	var ops []op
	var errs []error
	for i := 0; i < len(args); i++ {
		name := args[i]
		switch name {
		case "append", "prepend", "remove-at":
			if i+1 >= len(args) {
				errs = append(errs, fmt.Errorf("%s: missing argument", name))
				continue
			}
			i++
			o, err := parseOpWithArg(name, args[i])
			if err != nil {
				errs = append(errs, err)
				continue
			}
			ops = append(ops, o)
		case "first", "last":
			ops = append(ops, endOp(name))
		case "size":
			ops = append(ops, op{"size", func(l *list.List[any], out io.Writer) {
				fmt.Fprintf(out, "size: %d\n", l.Len())
			}})
		default:
			errs = append(errs, fmt.Errorf("unknown op %q", name))
		}
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return ops, nil
}

func parseOpWithArg(name, arg string) (op, error) {
	desc := name + " " + arg
	if name == "remove-at" {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return op{}, fmt.Errorf("remove-at: bad index %q", arg)
		}
		return op{desc, func(l *list.List[any], _ io.Writer) { l.RemoveAt(i) }}, nil
	}
	v, err := parseValue(arg)
	if err != nil {
		return op{}, fmt.Errorf("%s: bad value %q: %w", name, arg, err)
	}
	if name == "append" {
		return op{desc, func(l *list.List[any], _ io.Writer) { l.Append(v) }}, nil
	}
	return op{desc, func(l *list.List[any], _ io.Writer) { l.Prepend(v) }}, nil
}

func endOp(name string) op {
	return op{name, func(l *list.List[any], out io.Writer) {
		var v any
		var ok bool
		if name == "first" {
			v, ok = l.First()
		} else {
			v, ok = l.Last()
		}
		if ok {
			fmt.Fprintf(out, "%s: %s\n", name, flow(v))
		} else {
			fmt.Fprintf(out, "%s: <none>\n", name)
		}
	}}
}

// Parses a command-line argument as a YAML value, so that "3" becomes an int
// and "foo" a string.
func parseValue(s string) (any, error) {
	var v any
	err := yaml.Unmarshal([]byte(s), &v)
	return v, err
}

// Formats v as single-line YAML.
func flow(v any) string {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	setFlowStyle(&n)
	b, err := yaml.Marshal(&n)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSuffix(string(b), "\n")
}

func setFlowStyle(n *yaml.Node) {
	if n.Kind == yaml.SequenceNode || n.Kind == yaml.MappingNode {
		n.Style |= yaml.FlowStyle
	}
	for _, child := range n.Content {
		setFlowStyle(child)
	}
}
