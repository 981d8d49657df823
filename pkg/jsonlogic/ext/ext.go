// Package ext provides optional operators that are not part of JsonLogic.
//
// Register adds them to an engine:
//
//	engine := jsonlogic.New()
//	if err := ext.Register(engine); err != nil {
//	    log.Fatal(err)
//	}
//
//	engine.Apply(`{"jq": [".items | length"]}`, data)
//	engine.Apply(`{"regex_match": ["^a+$", {"var": "name"}]}`, data)
//
// Compiled jq programs and regular expressions are cached per Register call.
package ext

import (
	"fmt"
	"regexp"

	"github.com/itchyny/gojq"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/registry"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Operator names registered by Register.
const (
	OpJQ         = "jq"
	OpRegexMatch = "regex_match"
)

// Register adds the jq and regex_match operators to e.
func Register(e *jsonlogic.Engine) error {
	x := &extensions{
		engine:   e,
		queries:  registry.New[string, *gojq.Code](),
		patterns: registry.New[string, *regexp.Regexp](),
	}
	if err := e.AddOperation(OpJQ, x.jq); err != nil {
		return err
	}
	return e.AddOperation(OpRegexMatch, x.regexMatch)
}

type extensions struct {
	engine   *jsonlogic.Engine
	queries  *registry.Registry[string, *gojq.Code]
	patterns *registry.Registry[string, *regexp.Regexp]
}

// jq runs {"jq": [filter, input]}. The input defaults to the data context.
// No output yields null, one output is returned as is and several outputs
// are collected into a list.
func (x *extensions) jq(args value.List, data value.Value) (value.Value, error) {
	operands, err := x.evaluate(args, data)
	if err != nil {
		return nil, err
	}
	if len(operands) == 0 {
		return nil, fmt.Errorf("missing jq filter")
	}

	filter, ok := operands[0].(value.String)
	if !ok || filter == "" {
		return nil, fmt.Errorf("jq filter must be a non-empty string, got %s", operands[0].Kind())
	}
	code, err := x.queries.GetOrCreate(string(filter), func() (*gojq.Code, error) {
		return compileJQ(string(filter))
	})
	if err != nil {
		return nil, err
	}

	input := data
	if len(operands) > 1 {
		input = operands[1]
	}

	var results value.List
	iter := code.Run(value.ToGo(input))
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := out.(error); isErr {
			return nil, fmt.Errorf("jq %q: %w", filter, err)
		}
		v, err := value.FromGo(out)
		if err != nil {
			return nil, fmt.Errorf("jq %q: %w", filter, err)
		}
		results = append(results, v)
	}

	switch len(results) {
	case 0:
		return value.Null{}, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// regexMatch runs {"regex_match": [pattern, subject]} and reports whether
// the subject's string form matches.
func (x *extensions) regexMatch(args value.List, data value.Value) (value.Value, error) {
	operands, err := x.evaluate(args, data)
	if err != nil {
		return nil, err
	}
	if len(operands) < 2 {
		return value.Bool(false), nil
	}

	pattern := value.Text(operands[0])
	re, err := x.patterns.GetOrCreate(pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile(pattern)
	})
	if err != nil {
		return nil, fmt.Errorf("regex %q: %w", pattern, err)
	}
	return value.Bool(re.MatchString(value.Text(operands[1]))), nil
}

// evaluate evaluates raw operands against data.
func (x *extensions) evaluate(args value.List, data value.Value) (value.List, error) {
	out := make(value.List, len(args))
	for i, a := range args {
		v, err := x.engine.Evaluate(a, data)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func compileJQ(filter string) (*gojq.Code, error) {
	query, err := gojq.Parse(filter)
	if err != nil {
		return nil, fmt.Errorf("jq parse error in %q: %w", filter, err)
	}
	// An empty environment keeps $ENV out of rules.
	code, err := gojq.Compile(query, gojq.WithEnvironLoader(func() []string { return nil }))
	if err != nil {
		return nil, fmt.Errorf("jq compile error in %q: %w", filter, err)
	}
	return code, nil
}
