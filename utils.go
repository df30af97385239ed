package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/9seconds/echoip/echolib"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeNewHTTPClient() echolib.HTTPClient {
	httpClient := &http.Client{
		Timeout: echolib.DefaultHTTPTimeout,
	}

	return echolib.NewHTTPClient(httpClient,
		"echoip/"+version,
		echolib.DefaultRateLimitInterval,
		echolib.DefaultRateLimitBurst)
}
