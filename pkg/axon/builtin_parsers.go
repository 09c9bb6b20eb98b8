package axon

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// ParamParser converts a raw path parameter into its typed value
type ParamParser func(paramValue string) (any, error)

// BuiltinParsers contains the parsers for the built-in route parameter types
var BuiltinParsers = map[string]ParamParser{
	"int": func(v string) (any, error) {
		return strconv.Atoi(v)
	},
	"string": func(v string) (any, error) {
		return v, nil
	},
	"float64": func(v string) (any, error) {
		return strconv.ParseFloat(v, 64)
	},
	"uuid.UUID": func(v string) (any, error) {
		return uuid.Parse(v)
	},
}

// ParserAliases maps convenient aliases to their full type names
var ParserAliases = map[string]string{
	"UUID":   "uuid.UUID",
	"float":  "float64",
	"double": "float64",
}

// ResolveTypeAlias resolves a type alias to its actual type name
func ResolveTypeAlias(typeName string) string {
	if actualType, isAlias := ParserAliases[typeName]; isAlias {
		return actualType
	}
	return typeName
}

// GetBuiltinParser returns a built-in parser by type name, checking aliases first
func GetBuiltinParser(typeName string) (ParamParser, bool) {
	parser, exists := BuiltinParsers[ResolveTypeAlias(typeName)]
	return parser, exists
}

// IsBuiltinType checks if a type is a built-in type, including aliases
func IsBuiltinType(typeName string) bool {
	_, exists := GetBuiltinParser(typeName)
	return exists
}

// paramKey is the context key under which typed parameter values are stored
func paramKey(name string) string {
	return "axon.param." + name
}

// TypedParams returns a middleware that parses every typed parameter declared in
// path. A value that does not parse answers 404, the same as an unmatched route.
func TypedParams(path AxonPath) MiddlewareFunc {
	params := path.Params()
	return func(next HandlerFunc) HandlerFunc {
		return func(c RequestContext) error {
			for name, typ := range params {
				parser, ok := GetBuiltinParser(typ)
				if !ok {
					return ErrInternalServerError(fmt.Sprintf("no parser for parameter type %q", typ))
				}
				v, err := parser(c.Param(name))
				if err != nil {
					return ErrNotFound(fmt.Sprintf("invalid %s parameter %q", typ, name))
				}
				c.Set(paramKey(name), v)
			}
			return next(c)
		}
	}
}

// ParamInt returns the int path parameter name, preferring the value parsed by TypedParams.
func ParamInt(c RequestContext, name string) (int, error) {
	if v, ok := c.Get(paramKey(name)).(int); ok {
		return v, nil
	}
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, ErrNotFound(fmt.Sprintf("invalid int parameter %q", name))
	}
	return id, nil
}

// ParamUUID returns the uuid path parameter name, preferring the value parsed by TypedParams.
func ParamUUID(c RequestContext, name string) (uuid.UUID, error) {
	if v, ok := c.Get(paramKey(name)).(uuid.UUID); ok {
		return v, nil
	}
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, ErrNotFound(fmt.Sprintf("invalid uuid parameter %q", name))
	}
	return id, nil
}
