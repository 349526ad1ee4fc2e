// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run binds the listener first, so a bad address fails synchronously and
// Addr reports the real port when ":0" is used. It then serves until the
// context is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called.
//
// Shutdown cancels the base context of every in-flight request before
// draining them, so long-lived event streams return instead of holding the
// process until the shutdown deadline. Closers registered with WithCloser
// (the form registry in formd) run after the server stopped accepting
// requests.
//
// Usage:
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Mount("/forms", handler.Handle())
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithCloser(registry),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown and
// closer errors with ErrShutdown. Use errors.Is to tell them apart.
package httpserver
