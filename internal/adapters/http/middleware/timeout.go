package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
)

// Timeout returns middleware that enforces a request deadline. If the handler
// does not complete within the given duration, a 504 "Request timed out"
// envelope is written. The context passed to the handler carries the
// deadline, so store calls made by the handler stop at the same moment.
//
// The handler runs in a separate goroutine and writes into a buffer; the
// writer's mutex ensures exactly one of the handler or the timeout path
// reaches the client. A panic in the handler is re-raised on the serving
// goroutine so Recovery still sees it.
//
// The handler routes on its own copy of the chi route context. chi returns
// the original to its pool as soon as the mux returns, which on the timeout
// path happens while the handler may still be running.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rctx := chi.RouteContext(ctx)
			var owned *chi.Context
			if rctx != nil {
				owned = cloneRouteContext(rctx)
				ctx = context.WithValue(ctx, chi.RouteCtxKey, owned)
			}

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})
			panicChan := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicChan:
				panic(p)
			case <-done:
				if owned != nil {
					copyRouteResult(rctx, owned)
				}
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.wroteHeader {
					dto.WriteErrorResponse(w, r,
						dto.NewStatusError(http.StatusGatewayTimeout, dto.MsgTimeout))
				}
			}
		})
	}
}

// cloneRouteContext copies the routing state into a context that no pool
// owns.
func cloneRouteContext(src *chi.Context) *chi.Context {
	dst := chi.NewRouteContext()
	dst.Routes = src.Routes
	dst.RoutePath = src.RoutePath
	dst.RouteMethod = src.RouteMethod
	dst.URLParams.Keys = append(dst.URLParams.Keys, src.URLParams.Keys...)
	dst.URLParams.Values = append(dst.URLParams.Values, src.URLParams.Values...)
	dst.RoutePatterns = append(dst.RoutePatterns, src.RoutePatterns...)
	return dst
}

// copyRouteResult hands the matched route back to the outer context so
// middleware above Timeout can read the pattern and params. Only called once
// the handler goroutine has finished.
func copyRouteResult(dst, src *chi.Context) {
	dst.URLParams.Keys = append(dst.URLParams.Keys[:0], src.URLParams.Keys...)
	dst.URLParams.Values = append(dst.URLParams.Values[:0], src.URLParams.Values...)
	dst.RoutePatterns = append(dst.RoutePatterns[:0], src.RoutePatterns...)
}

// timeoutWriter buffers the response so that the timeout path can safely
// write a 504 if the handler hasn't finished. All writes are guarded by a
// mutex shared between the handler goroutine and the timeout select.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the underlying writer. Must be
// called with tw.mu held.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
