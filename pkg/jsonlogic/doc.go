/*
Package jsonlogic evaluates JsonLogic rules against JSON data.

# Overview

A rule is a JSON value. Anything that is not an object evaluates to
itself, an empty object evaluates to the whole data context, and an
object with keys applies the operator named by its first key to the
operands held under that key:

	{"if": [{">=": [{"var": "age"}, 18]}, "adult", "minor"]}

The engine ships the standard comparison, logic, arithmetic, string and
list operators plus the array operators map, filter, all, none, some and
reduce, which evaluate a sub-rule once per list element.

# Basic Usage

	engine := jsonlogic.New()

	out, err := engine.Apply(`{"==": [{"var": "a"}, 1]}`, `{"a": 1}`)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(out) // true

Apply accepts JSON text, value.Value or plain Go values for both logic
and data and returns the result as JSON text. ApplyValue works on values
directly.

# Safe and Strict Modes

By default an engine runs in safe mode: any failure, including an
unknown operator or an error returned by a custom operator, yields false.
Strict mode returns the failure:

	_, err := engine.Apply(`{"nope": [1]}`, nil, jsonlogic.Strict())
	errors.Is(err, jsonlogic.ErrUnimplementedOperator) // true

# Custom Operators

Custom operators receive their operands unevaluated and take priority
over built-ins of the same name:

	engine.AddOperation("double", func(args value.List, data value.Value) (value.Value, error) {
	    v, err := engine.Evaluate(args[0], data)
	    if err != nil {
	        return nil, err
	    }
	    return value.Number(2 * value.AsDouble(v)), nil
	})

Panics inside a custom operator are recovered and reported as *PanicError.

# Observability

WithLogger, WithMetrics and WithSpanManager attach slog logging and
OpenTelemetry metrics and tracing. See the observability package.

# Configuration and Stored Rules

NewFromSettings builds an engine from config.Settings, and OpenRuleStore
loads the rules listed there into a rulestore.Store for use with
ApplyRule.
*/
package jsonlogic
