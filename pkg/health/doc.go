// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers 200 with a small JSON document, matching
// the contract uptime monitors of the portfolio site already poll:
//
//	{"status":"OK","message":"Server is running"}
//
// [ReadinessHandler] runs named [Checks] in parallel and answers 503 when any
// of them fails:
//
//	r.Get("/health", health.LivenessHandler("Server is running"))
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "email": delivery.Healthcheck(),
//	}, health.WithLogger(log)))
//
// Both handlers are plain http.HandlerFunc values and work with any router.
package health
