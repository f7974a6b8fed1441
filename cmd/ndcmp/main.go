package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ndkit/ndarray"
)

func main() {
	var (
		aVals       = flag.String("a", "", "Left operand values (comma-separated)")
		bVals       = flag.String("b", "", "Right operand values (comma-separated)")
		aShape      = flag.String("ashape", "", "Left shape (comma-separated dims, default 1-d)")
		bShape      = flag.String("bshape", "", "Right shape (comma-separated dims, default 1-d)")
		dtName      = flag.String("dtype", "float64", "Element type (float64, int64, S<width>)")
		opName      = flag.String("op", "eq", "Operator (eq, ne, lt, le, gt, ge)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Log library warnings to stderr")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			ndarray.SetLogger(logger)
		}
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *aVals == "" || *bVals == "" {
		fmt.Fprintln(os.Stderr, "Usage: ndcmp -a 1,2,3 -b 2,2,2 [-op lt] [-dtype float64]")
		fmt.Fprintln(os.Stderr, "       ndcmp -a 0,1,2 -ashape 3,1 -b 0,1,2,3 -bshape 1,4 -op eq")
		fmt.Fprintln(os.Stderr, "       ndcmp -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*dtName, *aVals, *aShape, *bVals, *bShape, *opName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dtName, aVals, aShape, bVals, bShape, opName string) error {
	a, err := buildArray(dtName, aVals, aShape)
	if err != nil {
		return fmt.Errorf("operand a: %w", err)
	}
	b, err := buildArray(dtName, bVals, bShape)
	if err != nil {
		return fmt.Errorf("operand b: %w", err)
	}
	op, err := parseOp(opName)
	if err != nil {
		return err
	}

	res, err := ndarray.RichCompare(a, b, op, ndarray.WithDefaultAscending())
	if err != nil {
		return err
	}
	mask, ok := res.Comparable()
	if !ok {
		return fmt.Errorf("operands of dtype %s are not comparable", dtName)
	}

	opts := formatOptions()
	fmt.Printf("a      = %s\n", ndarray.Format(a, opts))
	fmt.Printf("b      = %s\n", ndarray.Format(b, opts))
	fmt.Printf("a %s b = %s\n", op, ndarray.Format(mask, opts))
	return nil
}

// formatOptions tightens summarization on narrow terminals.
func formatOptions() ndarray.FormatOptions {
	opts := ndarray.DefaultFormatOptions
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		opts.Threshold = w
	}
	return opts
}

func buildArray(dtName, vals, shapeStr string) (*ndarray.Array, error) {
	parts := splitList(vals)
	shape, err := parseShape(shapeStr, len(parts))
	if err != nil {
		return nil, err
	}

	switch {
	case dtName == "float64":
		fs := make([]float64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", p, err)
			}
			fs[i] = v
		}
		return ndarray.FromFloat64s(fs, shape...)

	case dtName == "int64":
		is := make([]int64, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", p, err)
			}
			is[i] = v
		}
		return ndarray.FromInt64s(is, shape...)

	case strings.HasPrefix(dtName, "S"):
		width, err := strconv.Atoi(dtName[1:])
		if err != nil {
			return nil, fmt.Errorf("string dtype %q: %w", dtName, err)
		}
		return ndarray.FromStrings(width, parts, shape...)

	default:
		return nil, fmt.Errorf("unsupported dtype %q", dtName)
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseShape(s string, n int) ([]int, error) {
	if s == "" {
		return []int{n}, nil
	}
	parts := splitList(s)
	shape := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("shape dim %q: %w", p, err)
		}
		shape[i] = d
	}
	return shape, nil
}

func parseOp(s string) (ndarray.Op, error) {
	switch strings.ToLower(s) {
	case "eq", "==":
		return ndarray.OpEQ, nil
	case "ne", "!=":
		return ndarray.OpNE, nil
	case "lt", "<":
		return ndarray.OpLT, nil
	case "le", "<=":
		return ndarray.OpLE, nil
	case "gt", ">":
		return ndarray.OpGT, nil
	case "ge", ">=":
		return ndarray.OpGE, nil
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}
