package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type accessLogMiddleware struct {
	handler http.Handler
	log     *logger
}

func (a *accessLogMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	wrapped := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
	started := time.Now()

	a.handler.ServeHTTP(wrapped, req)

	status := wrapped.Status()
	if status == 0 {
		status = http.StatusOK
	}

	a.log.Access(req, status, wrapped.BytesWritten(), time.Since(started))
}
