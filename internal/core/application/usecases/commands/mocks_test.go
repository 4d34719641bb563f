package commands_test

import (
	"context"
	"io"
	"log/slog"

	"courierquote/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockQuoteRequestSender struct {
	mock.Mock
}

func (m *MockQuoteRequestSender) Send(ctx context.Context, req ports.QuoteRequest) (ports.QuoteRequestReceipt, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.QuoteRequestReceipt), args.Error(1)
}

type MockTownDirectoryReloader struct {
	mock.Mock
}

func (m *MockTownDirectoryReloader) Reload(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
