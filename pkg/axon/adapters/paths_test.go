package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/toyz/usermvc/pkg/axon"
)

func TestConvertAxonPath(t *testing.T) {
	tests := []struct {
		axon  string
		echo  string
		gin   string
		fiber string
	}{
		{axon: "/", echo: "/", gin: "/", fiber: "/"},
		{axon: "/users", echo: "/users", gin: "/users", fiber: "/users"},
		{axon: "/users/{id:int}", echo: "/users/:id", gin: "/users/:id", fiber: "/users/:id"},
		{axon: "/users/{id:int}/edit", echo: "/users/:id/edit", gin: "/users/:id/edit", fiber: "/users/:id/edit"},
		{axon: "/static/{*}", echo: "/static/*", gin: "/static/*path", fiber: "/static/*"},
	}

	for _, tt := range tests {
		path := axon.NewAxonPath(tt.axon)
		if got := convertAxonPathToEcho(path); got != tt.echo {
			t.Errorf("echo: %s converted to %s, expected %s", tt.axon, got, tt.echo)
		}
		if got := convertAxonPathToGin(path); got != tt.gin {
			t.Errorf("gin: %s converted to %s, expected %s", tt.axon, got, tt.gin)
		}
		if got := convertAxonPathToFiber(path); got != tt.fiber {
			t.Errorf("fiber: %s converted to %s, expected %s", tt.axon, got, tt.fiber)
		}
	}
}

func TestGinAdapter_StopBeforeStart(t *testing.T) {
	adapter := NewDefaultGinAdapter()
	if err := adapter.Stop(context.Background()); err != nil {
		t.Errorf("Expected nil error stopping an unstarted server, got %v", err)
	}
}

func TestGinAdapter_WildcardPath(t *testing.T) {
	adapter := NewDefaultGinAdapter()
	var got string
	adapter.RegisterRoute("GET", axon.NewAxonPath("/files/{*}"), func(c axon.RequestContext) error {
		got = c.Param("*")
		return c.Response().NoContent(204)
	})

	resp := serveHandler(t, adapter, newRequest("GET", "/files/a/b.txt"))
	if resp.StatusCode != 204 {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
	if got != "a/b.txt" {
		t.Errorf("Expected wildcard 'a/b.txt', got '%s'", got)
	}
}

func TestFiberAdapter_WildcardPath(t *testing.T) {
	adapter := NewDefaultFiberAdapter()
	var got string
	adapter.RegisterRoute("GET", axon.NewAxonPath("/files/{*}"), func(c axon.RequestContext) error {
		got = c.Param("*")
		return c.Response().NoContent(204)
	})

	resp := serveFiber(t, adapter, newRequest("GET", "/files/a/b.txt"))
	if resp.StatusCode != 204 {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
	if got != "a/b.txt" {
		t.Errorf("Expected wildcard 'a/b.txt', got '%s'", got)
	}
}

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
