package environment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/dora-network/batch-exchange-utils/metrics"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is an error object returned by the node. It is never retried.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("json-rpc error %d: %s", e.Code, e.Message)
}

// HTTPRPC is a JSON-RPC 2.0 client over HTTP. Transport failures and 5xx responses are retried
// with exponential backoff until the configured timeout.
type HTTPRPC struct {
	url             string
	client          *http.Client
	timeout         time.Duration
	log             zerolog.Logger
	instrumentation *metrics.Instrumentation
	nextID          atomic.Uint64
}

type RPCOption func(*HTTPRPC)

func WithHTTPClient(client *http.Client) RPCOption {
	return func(r *HTTPRPC) {
		r.client = client
	}
}

// WithRetryTimeout bounds the total time spent retrying one call.
func WithRetryTimeout(timeout time.Duration) RPCOption {
	return func(r *HTTPRPC) {
		r.timeout = timeout
	}
}

func WithRPCLogger(logger zerolog.Logger) RPCOption {
	return func(r *HTTPRPC) {
		r.log = logger
	}
}

// WithRPCInstrumentation records call latency per method.
func WithRPCInstrumentation(instrumentation *metrics.Instrumentation) RPCOption {
	return func(r *HTTPRPC) {
		r.instrumentation = instrumentation
	}
}

func NewHTTPRPC(url string, opts ...RPCOption) *HTTPRPC {
	r := &HTTPRPC{
		url:     url,
		client:  &http.Client{Timeout: 30 * time.Second},
		timeout: 10 * time.Second,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Call invokes method with positional params and returns the raw result.
func (r *HTTPRPC) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      r.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	start := time.Now()
	defer r.observe(method, start)

	var result json.RawMessage
	attempt := 0
	op := func() error {
		attempt++
		res, err := r.do(ctx, body)
		if err != nil {
			r.log.Debug().Err(err).Str("method", method).Int("attempt", attempt).Msg("json-rpc call failed")
			return err
		}
		if res.Error != nil {
			return backoff.Permanent(res.Error)
		}
		result = res.Result
		return nil
	}

	strategy := backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(r.timeout))
	if err := backoff.Retry(op, backoff.WithContext(strategy, ctx)); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

func (r *HTTPRPC) do(ctx context.Context, body []byte) (*rpcResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, payload))
	}

	var res rpcResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid json-rpc response: %w", err))
	}
	return &res, nil
}

func (r *HTTPRPC) observe(method string, start time.Time) {
	if r.instrumentation == nil {
		return
	}
	if h, ok := r.instrumentation.HistogramVecs[metrics.InstrumentationTypeNetworkRequestDuration]; ok {
		h.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}
