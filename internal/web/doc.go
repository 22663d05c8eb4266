// Package web is a small HTTP application layer on top of chi.
//
// Handlers implement Handler and declare routes on a Router. Route handlers
// and middleware use HandlerFunc, which receives a Context and returns an
// error; a returned error goes to the app's ErrorHandler unless a response
// was already written.
//
//	app := web.New(
//	    web.WithMiddleware(middlewares.CORS(), middlewares.Recover()),
//	    web.WithHandlers(handler),
//	    web.WithErrorHandler(errorHandler),
//	    web.WithHealthChecks(web.WithLivenessPath("/health")),
//	)
//	err := app.Run(":3001", web.Logger(log))
//
// Context embeds context.Context, so it can be passed directly to code that
// expects a standard context. Values stored with Set are visible to every
// later middleware and handler in the chain.
//
// Run listens, serves and waits for SIGINT, SIGTERM or cancellation of the
// context given with WithContext. Shutdown drains in-flight requests, then
// runs shutdown hooks in registration order, all bounded by ShutdownTimeout.
package web
