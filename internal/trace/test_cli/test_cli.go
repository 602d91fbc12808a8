// test_cli runs a tabulate command under a parent span, the way a
// wrapping service would, so that trace propagation through
// DD_TRACE_ID and DD_SPAN_ID can be verified end to end.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/tabulatehq/tabulate/internal/trace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

func main() {
	tracer.Start(
		tracer.WithService("tabulate_wrapper"),
	)
	defer tracer.Stop()

	span := tracer.StartSpan("tabulate_wrapper")
	defer span.Finish()
	var traceID string
	var spanID string
	if w3Cctx, ok := span.Context().(ddtrace.SpanContextW3C); ok {
		traceID = trace.GetHexTraceID(w3Cctx)
		spanID = trace.GetHexSpanID(w3Cctx)
	}

	cmd := exec.Command("tabulate", os.Args[1:]...)
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "TABULATE_TRACE=1")
	cmd.Env = append(cmd.Env, fmt.Sprintf("DD_TRACE_ID=%s", traceID))
	cmd.Env = append(cmd.Env, fmt.Sprintf("DD_SPAN_ID=%s", spanID))

	stdout, err := cmd.Output()

	if err != nil {
		fmt.Println(err.Error())
		return
	}

	// Print the output
	fmt.Println(string(stdout))
}
