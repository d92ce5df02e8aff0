// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Automatic HTTP request tracing with normalized span names
//   - W3C Trace Context propagation across service boundaries
//   - Trace ID surfaced to clients via the X-Trace-Id response header
//
// Example usage:
//
//	import "travel-journal/internal/observability/tracing"
//
//	func main() {
//	    shutdown, err := tracing.Init(ctx, "travel-journal", version)
//	    if err != nil {
//	        // handle
//	    }
//	    defer shutdown(ctx)
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
