// Package metrics exposes Prometheus collectors for the group lifecycle and the RPC layer.
package metrics

import (
	"context"
	"errors"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	groupOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripmate_group_operations_total",
			Help: "Group lifecycle operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	invitationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripmate_invitation_notifications_total",
			Help: "Invitation notifications appended to invitee profiles.",
		},
		[]string{"result"},
	)
	codeCollisionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tripmate_group_code_collisions_total",
			Help: "Generated group codes rejected because they were already in use.",
		},
	)
	rpcHandledTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripmate_rpc_handled_total",
			Help: "Total number of RPCs handled by the server.",
		},
		[]string{"service", "method", "code"},
	)
	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripmate_rpc_duration_seconds",
			Help:    "RPC latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method"},
	)
)

func init() {
	prometheus.MustRegister(
		groupOperationsTotal,
		invitationsTotal,
		codeCollisionsTotal,
		rpcHandledTotal,
		rpcDuration,
	)
}

// ObserveGroupOperation counts one create/join/invite with its outcome label.
func ObserveGroupOperation(operation, outcome string) {
	groupOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveInvitation counts one notification append.
func ObserveInvitation(err error) {
	result := "delivered"
	if err != nil {
		result = "failed"
	}
	invitationsTotal.WithLabelValues(result).Inc()
}

func IncCodeCollision() {
	codeCollisionsTotal.Inc()
}

// RPCInterceptor records the count and latency of every unary RPC.
func RPCInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			service, method := splitProcedure(req.Spec().Procedure)
			code := "ok"
			if err != nil {
				code = connect.CodeUnknown.String()
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
				}
			}
			rpcHandledTotal.WithLabelValues(service, method, code).Inc()
			rpcDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

func splitProcedure(procedure string) (string, string) {
	parts := strings.Split(procedure, "/")
	if len(parts) < 3 {
		return "unknown", "unknown"
	}
	return parts[1], parts[2]
}
