package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/echoip/echolib"
	"github.com/9seconds/echoip/providers"
)

const shutdownTimeout = 5 * time.Second

var version = "dev"

var (
	app = kingpin.New(
		"echoip",
		"Tells you your IP address and where it is")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("ECHOIP_DEBUG").
		Bool()
	port = app.Flag("port", "Port to listen on.").
		Short('p').
		Envar("PORT").
		Default("10000").
		Uint16()
	limitsMinute = app.Flag("limits-minute", "Max requests per minute for a client.").
			Envar("LIMITS_MINUTE").
			Default("60").
			Uint64()
	limitsHour = app.Flag("limits-hour", "Max requests per hour for a client.").
			Envar("LIMITS_HOUR").
			Default("1000").
			Uint64()
	limitsDay = app.Flag("limits-day", "Max requests per day for a client.").
			Envar("LIMITS_DAY").
			Default("5000").
			Uint64()
)

func init() {
	app.Version(version)
	app.HelpFlag.Short('h')
}

func main() {
	// .env is optional, real environment wins over it.
	godotenv.Load() // nolint: errcheck

	kingpin.MustParse(app.Parse(os.Args[1:]))

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log := newLogger(os.Stderr)

	conf := config{
		Port:         *port,
		LimitsMinute: *limitsMinute,
		LimitsHour:   *limitsHour,
		LimitsDay:    *limitsDay,
	}

	if err := conf.Validate(); err != nil {
		log.serverLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	limiter, err := echolib.NewRateLimiter(conf.GetRateLimits(), echolib.DefaultRateLimiterCapacity)
	if err != nil {
		log.serverLog.Fatal().Err(err).Msg("Cannot create a rate limiter")
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	provider := providers.NewIPAPI(makeNewHTTPClient(), providers.DefaultIPAPIBaseURL)
	srv := &http.Server{
		Addr: conf.GetListen(),
		Handler: &accessLogMiddleware{
			handler: echolib.NewHTTPHandler(provider, limiter, log),
			log:     log,
		},
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	limits := limiter.Limits()
	limitNames := make([]string, 0, len(limits))

	for _, v := range limits {
		limitNames = append(limitNames, v.String())
	}

	log.serverLog.Info().
		Str("listen", conf.GetListen()).
		Strs("limits", limitNames).
		Msg("Start server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.serverLog.Fatal().Err(err).Msg("Server has stopped")
	}
}
