package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/toyz/usermvc/pkg/axon"
)

// RouteAnnotation is the parse tree of a route declaration:
//
//	//axon::route GET /users/{id:int}/edit -Name=Edit -Middleware=RequestID,Logging
//
// The leading "//axon::route" is optional.
type RouteAnnotation struct {
	Prefix  bool      `parser:"( @Comment 'axon' Separator 'route' )?"`
	Method  string    `parser:"@Ident"`
	Path    string    `parser:"@Path"`
	Options []*Option `parser:"@@*"`
}

// Option is a -Key or -Key=Value[,Value...] parameter
type Option struct {
	Key    string   `parser:"'-' @Ident"`
	Values []string `parser:"( '=' @( Ident | Path | String ) ( ',' @( Ident | Path | String ) )* )?"`
}

// ParsedRoute is a validated route declaration
type ParsedRoute struct {
	Method      string
	Path        axon.AxonPath
	Name        string
	Middlewares []string
}

var httpMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true,
	"DELETE": true, "HEAD": true, "OPTIONS": true,
}

var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//`},
	{Name: "Separator", Pattern: `::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Path", Pattern: `/[^\s,]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[-=,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var routeParser = participle.MustBuild[RouteAnnotation](
	participle.Lexer(routeLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// ParseRoute parses and validates a route declaration
func ParseRoute(decl string) (*ParsedRoute, error) {
	ann, err := routeParser.ParseString("", strings.TrimSpace(decl))
	if err != nil {
		return nil, fmt.Errorf("failed to parse route %q: %w", decl, err)
	}

	method := strings.ToUpper(ann.Method)
	if !httpMethods[method] {
		return nil, fmt.Errorf("invalid HTTP method %q in route %q", ann.Method, decl)
	}

	path := axon.NewAxonPath(ann.Path)
	if err := path.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route %q: %w", decl, err)
	}

	parsed := &ParsedRoute{Method: method, Path: path}
	for _, opt := range ann.Options {
		switch opt.Key {
		case "Name":
			if len(opt.Values) != 1 {
				return nil, fmt.Errorf("-Name takes exactly one value in route %q", decl)
			}
			parsed.Name = opt.Values[0]
		case "Middleware":
			if len(opt.Values) == 0 {
				return nil, fmt.Errorf("-Middleware requires at least one value in route %q", decl)
			}
			parsed.Middlewares = append(parsed.Middlewares, opt.Values...)
		default:
			return nil, fmt.Errorf("unknown parameter -%s in route %q", opt.Key, decl)
		}
	}
	return parsed, nil
}

// Route parses decl and binds it to action
func Route(decl string, action axon.Action) (axon.Route, error) {
	parsed, err := ParseRoute(decl)
	if err != nil {
		return axon.Route{}, err
	}
	return axon.Route{
		Method:      parsed.Method,
		Path:        parsed.Path,
		Name:        parsed.Name,
		Middlewares: parsed.Middlewares,
		Action:      action,
	}, nil
}

// MustRoute is Route for static route tables; it panics on a malformed declaration
func MustRoute(decl string, action axon.Action) axon.Route {
	route, err := Route(decl, action)
	if err != nil {
		panic(err)
	}
	return route
}
