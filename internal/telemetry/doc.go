// Package telemetry wires structured logging (zerolog) and Prometheus
// metrics for the crucible CLI. The search packages themselves never log;
// they expose hooks that the metrics here attach to.
package telemetry
