package handler_test

import (
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/backend/internal/handler"
	"github.com/pkordes/trip-planner/backend/openapi"
)

// documentOperations returns every "METHOD /path" declared in openapi.yaml.
func documentOperations(t *testing.T) []string {
	t.Helper()

	var doc struct {
		Paths map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(openapi.Document, &doc))

	methods := []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	var out []string
	for path, item := range doc.Paths {
		for key := range item {
			if m := strings.ToUpper(key); slices.Contains(methods, m) {
				out = append(out, m+" "+path)
			}
		}
	}
	slices.Sort(out)
	return out
}

// routerOperations returns every "METHOD /path" registered by handler.Routes,
// except the route that serves the document itself.
func routerOperations(t *testing.T) []string {
	t.Helper()

	routes, ok := handler.Routes(handler.NewHealthHandler()).(chi.Routes)
	require.True(t, ok, "Routes should return a chi router")

	var out []string
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != "/" {
			route = strings.TrimSuffix(route, "/")
		}
		if route == "/openapi.yaml" {
			return nil
		}
		out = append(out, method+" "+route)
		return nil
	})
	require.NoError(t, err)
	slices.Sort(out)
	return out
}

// TestOpenAPIDocument_MatchesRoutes keeps openapi.yaml and the router in
// step: every route is documented and every documented operation is served.
func TestOpenAPIDocument_MatchesRoutes(t *testing.T) {
	assert.Equal(t, documentOperations(t), routerOperations(t))
}
