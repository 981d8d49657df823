/*
Package value defines the dynamic value model used by jsonlogic.

# Overview

Every value that flows through rule evaluation is one of six variants:

	Null     JSON null
	Bool     JSON true / false
	Number   JSON number (float64)
	String   JSON string
	List     ordered JSON array
	*Map     JSON object with insertion-ordered string keys

Operators pattern-match on these variants with a type switch. A nil
Value is treated as Null everywhere (see Normalize).

# Coercion

The loose coercion rules shared by all operators live here:

	Truthy(v)        boolean context
	AsDouble(v)      numeric context; unparseable strings become 0
	Unquote(s)       strips one layer of surrounding double quotes
	Text(v)          string context (whole numbers print without ".0")

# Comparison

Compare implements loose equality and ordering (numbers and numeric
strings mix freely, booleans compare by truthiness). CompareStrict only
lets numbers equal numbers and strings equal strings:

	value.Compare(value.Number(1), value.String("1"))       // 0
	value.CompareStrict(value.Number(1), value.String("1")) // value.NotEqual

# Go interop

FromGo and ToGo convert between Values and plain Go values such as
map[string]any and []any.
*/
package value
