// Package httpserver runs an http.Handler with configurable timeouts,
// graceful shutdown and slog logging.
//
// Run binds the listener first, so WithAddr("127.0.0.1:0") works and Addr
// reports the chosen port once Ready is closed. Cancelling the context passed
// to Run triggers Shutdown with the configured deadline; signal handling is
// left to the caller (signal.NotifyContext in main).
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness or readiness probes depending on whether
// checks are supplied.
//
// Run joins listener errors with ErrStart; Shutdown joins shutdown errors
// with ErrShutdown.
package httpserver
