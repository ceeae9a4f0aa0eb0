package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
)

// RequestLoggerMiddleware logs one line per request. Handler errors and
// panics are sent to the error handler here, so the logged status is the one
// the client receives. It returns nil once the response is written, so
// middleware that wraps it sees no error. NewServer installs it after Recover
// and AppendMiddlewares (which wrap it) and before CORS and validators, whose
// errors it logs.
func RequestLoggerMiddleware(log *zap.Logger) MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next HandlerFunc) HandlerFunc {
		return func(c Context) error {
			start := time.Now()
			err := callRecovering(next, c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}
			var p *panicError
			switch {
			case errors.As(err, &p):
				log.Error("http request", append(fields, zap.Any("panic", p.value), zap.ByteString("stack", p.stack))...)
			case err != nil:
				log.Warn("http request", append(fields, zap.Error(err))...)
			default:
				log.Info("http request", fields...)
			}
			return nil
		}
	}
}

type panicError struct {
	value any
	stack []byte
}

func (p *panicError) Error() string { return fmt.Sprintf("panic: %v", p.value) }

// callRecovering runs next, turning a panic into a *panicError.
// http.ErrAbortHandler keeps propagating so net/http can abort the response.
func callRecovering(next HandlerFunc, c Context) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, http.ErrAbortHandler) {
			panic(r)
		}
		err = &panicError{value: r, stack: debug.Stack()}
	}()
	return next(c)
}
