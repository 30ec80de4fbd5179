package servers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	for _, path := range []string{
		"/api/v1/coverage",
		"/api/v1/coverage/refresh",
		"/api/v1/dashboard",
		"/api/v1/orders",
		"/api/v1/orders/escalations",
		"/api/v1/orders/{id}",
		"/api/v1/orders/{id}/actions",
		"/api/v1/orders/{id}/transitions",
		"/api/v1/orders/{id}/items",
		"/api/v1/drivers/{id}/status",
		"/api/v1/drivers/{id}/zones/{zoneId}",
		"/api/v1/drivers/{id}/inventory/{productId}",
		"/api/v1/zones/{id}",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
