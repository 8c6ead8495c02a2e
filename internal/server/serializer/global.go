package serializer

// Envelope serialize the given render to the general API response format.
// The single-record fetch endpoint intentionally bypasses it and renders
// the bare record.
func Envelope(render interface{}) interface{} {
	return map[string]interface{}{
		"success": true,
		"data":    render,
	}
}
