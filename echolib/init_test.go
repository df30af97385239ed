package echolib_test

import (
	"context"

	"github.com/9seconds/echoip/echolib"
	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context, ip string) (echolib.Record, error) {
	args := m.Called(ctx, ip)
	record, _ := args.Get(0).(echolib.Record)

	return record, args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(ip, name string, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) RateLimitExceeded(key string, limit echolib.RateLimit) {
	m.Called(key, limit)
}
