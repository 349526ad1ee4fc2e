// Package logger builds *slog.Logger values for formkit services.
//
// New takes functional options for format, level, output and static
// attributes. NewFromConfig reads the same choices from a Config that is
// normally filled from APP_ENV, APP_NAME, LOG_LEVEL and LOG_FORMAT.
//
// Every logger wraps its handler with NewContextHandler, so records logged
// with a context pick up attributes from two places:
//
//   - attributes stored with ContextWithAttrs, typically by HTTP middleware
//     or by a handler once it has resolved a form id;
//   - ContextExtractor callbacks registered with WithContextExtractors or
//     WithContextValue.
//
// Usage:
//
//	log, err := logger.NewFromConfig(cfg.Log,
//	    logger.WithContextExtractors(formhttp.RequestIDExtractor()),
//	)
//	if err != nil {
//	    return err
//	}
//
//	ctx = logger.ContextWithAttrs(ctx, logger.FormID(id))
//	log.InfoContext(ctx, "field validated",
//	    logger.Field("email"),
//	    logger.ValidationMessage(msg),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed without a
// nil check. Discard is the default for types that accept an optional
// logger.
package logger
