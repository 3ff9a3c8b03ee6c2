package builtins

import (
	"io"
	"net/http"
	"time"

	"patlang/types"
)

// ============================================================================
// std.http NAMESPACE
// ============================================================================

// httpClient bounds how long one get() call can stall the evaluation
// thread; scripts get no timeout or cancellation surface of their own
var httpClient = &http.Client{Timeout: 10 * time.Second}

// maxResponseSize caps how much of a response body get() returns
const maxResponseSize = 1 << 20

// RegisterHTTPBuiltins registers the std.http namespace
func (r *Registry) RegisterHTTPBuiltins() {
	r.RegisterDangerous("std.http", "get", Exactly(1), builtinHTTPGet)
}

// builtinHTTPGet implements get(url)
// Returns the response body as a string
func builtinHTTPGet(ctx *types.EvalContext, args []types.Value) types.Result {
	url, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return types.Abortf("failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return types.Abortf("failed to read response from %s: %v", url, err)
	}
	return types.Ok(types.NewStr(string(body)))
}
