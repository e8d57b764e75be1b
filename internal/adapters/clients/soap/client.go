package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	// defaultMaxMessageSize caps response bodies when not configured.
	defaultMaxMessageSize = 64 << 20

	// defaultOpenTimeout bounds connection establishment.
	defaultOpenTimeout = time.Minute

	// defaultSendTimeout bounds a full request/response exchange.
	defaultSendTimeout = time.Minute

	// defaultReceiveTimeout bounds the wait for response headers.
	defaultReceiveTimeout = 10 * time.Minute

	contentTypeXML = "text/xml; charset=utf-8"
)

// State is the lifecycle state of a Client.
type State int32

// Client lifecycle states. A client starts Created, moves to Opened on
// first use, and terminates in Closed or Faulted.
const (
	StateCreated State = iota
	StateOpened
	StateClosed
	StateFaulted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateOpened:
		return "opened"
	case StateClosed:
		return "closed"
	case StateFaulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Config configures a Client.
type Config struct {
	// Endpoint is the backend service URL.
	Endpoint string

	// ActionBase prefixes operation names to form the SOAPAction header,
	// e.g. "http://tempuri.org/IOrderService".
	ActionBase string

	// MaxMessageSize caps the response body in bytes.
	MaxMessageSize int64

	// OpenTimeout bounds connection establishment.
	OpenTimeout time.Duration

	// SendTimeout bounds the full request/response exchange.
	SendTimeout time.Duration

	// ReceiveTimeout bounds the wait for response headers.
	ReceiveTimeout time.Duration
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = defaultMaxMessageSize
	}

	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultOpenTimeout
	}

	if c.SendTimeout <= 0 {
		c.SendTimeout = defaultSendTimeout
	}

	if c.ReceiveTimeout <= 0 {
		c.ReceiveTimeout = defaultReceiveTimeout
	}

	return c
}

// Client performs SOAP calls against a single endpoint. A Client serves
// exactly one invocation and is then closed or aborted; it is never
// shared between requests or reused after release.
type Client struct {
	endpoint       string
	actionBase     string
	maxMessageSize int64
	http           *http.Client
	transport      *http.Transport

	state   atomic.Int32
	aborted atomic.Bool
}

// NewClient creates a client in the Created state with its own
// transport. Connections belong to this client alone and die with it.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.OpenTimeout,
		}).DialContext,
		ResponseHeaderTimeout: cfg.ReceiveTimeout,
		MaxIdleConnsPerHost:   1,
	}

	return &Client{
		endpoint:       cfg.Endpoint,
		actionBase:     cfg.ActionBase,
		maxMessageSize: cfg.MaxMessageSize,
		http: &http.Client{
			Timeout:   cfg.SendTimeout,
			Transport: transport,
		},
		transport: transport,
	}
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	return State(c.state.Load())
}

// Aborted reports whether the client was released via Abort.
func (c *Client) Aborted() bool {
	return c.aborted.Load()
}

// fault moves the client to the Faulted state. A faulted client rejects
// further calls and must be aborted, not closed.
func (c *Client) fault() {
	c.state.Store(int32(StateFaulted))
}

// Call dispatches one operation: it wraps payload in a SOAP 1.1
// envelope, POSTs it with the operation's SOAPAction, and unmarshals
// the response body element into result.
//
// A backend Fault is returned as the error without faulting the client;
// the channel itself worked. Transport and decoding failures fault the
// client so release aborts it instead of attempting a graceful close.
func (c *Client) Call(ctx context.Context, operation string, payload, result any) error {
	switch c.State() {
	case StateClosed, StateFaulted:
		return fmt.Errorf("client is %s", c.State())
	case StateCreated, StateOpened:
	}

	c.state.Store(int32(StateOpened))

	body, err := encodeEnvelope(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeXML)
	req.Header.Set("SOAPAction", fmt.Sprintf("%q", c.actionBase+"/"+operation))

	resp, err := c.http.Do(req)
	if err != nil {
		c.fault()
		return fmt.Errorf("calling %s: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxMessageSize+1))
	if err != nil {
		c.fault()
		return fmt.Errorf("reading %s response: %w", operation, err)
	}

	if int64(len(data)) > c.maxMessageSize {
		c.fault()
		return fmt.Errorf("%s response exceeds message size limit (%d bytes)", operation, c.maxMessageSize)
	}

	env, err := decodeEnvelope(data)
	if err != nil {
		c.fault()
		return fmt.Errorf("%s: %w", operation, err)
	}

	// Faults usually ride on HTTP 500, so check the body first.
	if env.Body.Fault != nil {
		return env.Body.Fault
	}

	if resp.StatusCode != http.StatusOK {
		c.fault()
		return fmt.Errorf("%s: unexpected HTTP status %d", operation, resp.StatusCode)
	}

	if result != nil {
		if err := decodeResult(env, result); err != nil {
			c.fault()
			return fmt.Errorf("%s: %w", operation, err)
		}
	}

	return nil
}

// Ping verifies the endpoint is reachable by fetching its service
// description. Used by health checks; it does not dispatch an operation.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?wsdl", nil)
	if err != nil {
		return fmt.Errorf("building ping request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.fault()
		return fmt.Errorf("pinging backend: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxMessageSize))

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend unhealthy: HTTP status %d", resp.StatusCode)
	}

	return nil
}

// Close releases the client gracefully. Closing a faulted client is an
// error; callers must Abort it instead.
func (c *Client) Close() error {
	switch c.State() {
	case StateFaulted:
		return fmt.Errorf("cannot close a %s client", StateFaulted)
	case StateClosed:
		return nil
	case StateCreated, StateOpened:
	}

	c.transport.CloseIdleConnections()
	c.state.Store(int32(StateClosed))

	return nil
}

// Abort releases the client unconditionally. It never fails and is safe
// to call in any state, including after Close.
func (c *Client) Abort() {
	c.transport.CloseIdleConnections()
	c.aborted.Store(true)
	c.state.Store(int32(StateClosed))
}
