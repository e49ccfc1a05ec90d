package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// getJSON requests path and decodes the body into out, returning the status code
func getJSON(t *testing.T, env *TestEnv, path string, out interface{}) int {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err, "Should be able to make a request to %s", path)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode == http.StatusOK && out != nil {
		require.NoError(t, json.Unmarshal(body, out), "Response should be valid JSON: %s", body)
	}
	return resp.StatusCode
}

func postRefresh(t *testing.T, env *TestEnv) int {
	resp, err := http.Post(env.ServerBaseURL+"/api/v1/refresh", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}
