package main

import (
	"net"
	"strconv"
	"time"

	"github.com/juju/errors"

	"github.com/9seconds/echoip/echolib"
)

const DefaultBindHost = "0.0.0.0"

type config struct {
	Port         uint16
	LimitsMinute uint64
	LimitsHour   uint64
	LimitsDay    uint64
}

func (c config) GetListen() string {
	return net.JoinHostPort(DefaultBindHost, strconv.Itoa(int(c.Port)))
}

func (c config) GetRateLimits() []echolib.RateLimit {
	return []echolib.RateLimit{
		{Limit: c.LimitsMinute, Period: time.Minute},
		{Limit: c.LimitsHour, Period: time.Hour},
		{Limit: c.LimitsDay, Period: 24 * time.Hour},
	}
}

func (c config) Validate() error {
	if c.Port == 0 {
		return errors.NotValidf("port 0")
	}

	limits := []struct {
		name  string
		value uint64
	}{
		{"per minute", c.LimitsMinute},
		{"per hour", c.LimitsHour},
		{"per day", c.LimitsDay},
	}

	for _, v := range limits {
		if v.value == 0 {
			return errors.Annotatef(errors.NotValidf("limit 0"), "Incorrect limit %s", v.name)
		}
	}

	return nil
}
