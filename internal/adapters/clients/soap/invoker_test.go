package soap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// recordingFactory keeps every client it hands out so tests can inspect
// how the invoker released them.
type recordingFactory struct {
	cfg     Config
	clients []*Client
}

func (f *recordingFactory) NewClient() *Client {
	client := NewClient(f.cfg)
	f.clients = append(f.clients, client)

	return client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestInvoker(t *testing.T, factory Factory, mapFault FaultMapper) *Invoker {
	t.Helper()

	inv, err := NewInvoker(InvokerConfig{
		Factory:     factory,
		ServiceName: "order-service",
		MapFault:    mapFault,
		Logger:      discardLogger(),
	})
	require.NoError(t, err)

	return inv
}

func callEcho(ctx context.Context, client *Client, req *echoRequest) (*echoResponse, error) {
	var resp echoResponse
	if err := client.Call(ctx, "Echo", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func TestNewInvoker_RequiresFactory(t *testing.T) {
	_, err := NewInvoker(InvokerConfig{ServiceName: "order-service"})

	assert.Error(t, err)
}

func TestNewInvoker_RequiresServiceName(t *testing.T) {
	_, err := NewInvoker(InvokerConfig{Factory: NewClientFactory(Config{})})

	assert.Error(t, err)
}

func TestInvoke_Success_ClosesClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(echoResponseBody))
	}))
	defer server.Close()

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, nil)

	resp, err := Invoke(context.Background(), inv, "Echo", &echoRequest{Value: "ping"}, callEcho)

	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Value)

	require.Len(t, factory.clients, 1)
	assert.Equal(t, StateClosed, factory.clients[0].State())
	assert.False(t, factory.clients[0].Aborted(), "healthy client must be closed, not aborted")
}

func TestInvoke_Fault_MappedAndClientClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(faultResponseBody))
	}))
	defer server.Close()

	mapFault := func(fault *Fault) error {
		return domain.NewValidationError("", fault.Message)
	}

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, mapFault)

	_, err := Invoke(context.Background(), inv, "Echo", &echoRequest{}, callEcho)

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "Quantity must be greater than 0")

	// The fault travelled over a working channel.
	require.Len(t, factory.clients, 1)
	assert.False(t, factory.clients[0].Aborted())
}

func TestInvoke_Fault_DefaultMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(faultResponseBody))
	}))
	defer server.Close()

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, nil)

	_, err := Invoke(context.Background(), inv, "Echo", &echoRequest{}, callEcho)

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))
}

func TestInvoke_TransportError_AbortsClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, nil)

	_, err := Invoke(context.Background(), inv, "Echo", &echoRequest{}, callEcho)

	require.Error(t, err)
	assert.True(t, domain.IsUpstream(err))

	require.Len(t, factory.clients, 1)
	assert.True(t, factory.clients[0].Aborted(), "faulted client must be aborted")
}

func TestInvoke_Timeout_MappedToTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(echoResponseBody))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.SendTimeout = 50 * time.Millisecond

	factory := &recordingFactory{cfg: cfg}
	inv := newTestInvoker(t, factory, nil)

	_, err := Invoke(context.Background(), inv, "Echo", &echoRequest{}, callEcho)

	require.Error(t, err)
	assert.True(t, domain.IsTimeout(err))

	var timeoutErr *domain.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "Echo", timeoutErr.Operation)

	require.Len(t, factory.clients, 1)
	assert.True(t, factory.clients[0].Aborted())
}

func TestInvoke_ContextCancelled_MappedToTimeoutError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		_, _ = w.Write([]byte(echoResponseBody))
	}))
	defer server.Close()

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Invoke(ctx, inv, "Echo", &echoRequest{}, callEcho)

	require.Error(t, err)
	assert.True(t, domain.IsTimeout(err))
}

func TestInvoker_Ping_ReleasesClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	factory := &recordingFactory{cfg: testConfig(server.URL)}
	inv := newTestInvoker(t, factory, nil)

	require.NoError(t, inv.Ping(context.Background()))

	require.Len(t, factory.clients, 1)
	assert.Equal(t, StateClosed, factory.clients[0].State())
}
