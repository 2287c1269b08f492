// Package mturk is the typed remote layer for the Mechanical Turk
// requester API (2017-01-17 JSON protocol). It owns the wire shapes and
// the narrow invoke contract everything above it consumes; the tabular
// and collect packages never talk to the network directly.
package mturk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"turkdata/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("mturk")

const (
	ProductionEndpoint = "https://mturk-requester.us-east-1.amazonaws.com"
	SandboxEndpoint    = "https://mturk-requester-sandbox.us-east-1.amazonaws.com"

	targetPrefix = "MTurkRequesterServiceV20170117"
)

// Invoker is the narrow call contract into the remote layer. Client
// implements it; tests substitute fakes.
type Invoker interface {
	Invoke(ctx context.Context, operation string, in, out any) error
}

// RemoteError is a rejection from the remote side: throttling, not-found,
// validation, fault.
type RemoteError struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("mturk: %s failed: %s (%s, http %d)", e.Operation, e.Message, e.Code, e.StatusCode)
}

// Transient reports whether retrying the call may succeed.
func (e *RemoteError) Transient() bool {
	if e.StatusCode >= 500 {
		return true
	}
	return strings.Contains(e.Code, "Throttl") || strings.Contains(e.Code, "ServiceFault")
}

// IsTransient reports whether err may resolve on retry. Network-level
// failures (no response at all) count as transient; remote rejections are
// classified by their error code.
func IsTransient(err error) bool {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Transient()
	}
	return err != nil
}

type ClientOptions struct {
	// EndpointURL defaults to ProductionEndpoint.
	EndpointURL string
	// Authorize is applied to every outgoing request. Request signing is
	// owned by the caller, not this layer.
	Authorize func(req *resty.Request) error
	Timeout   time.Duration
}

type Client struct {
	http      *resty.Client
	authorize func(req *resty.Request) error
}

func NewClient(opts ClientOptions) (*Client, error) {
	endpoint := opts.EndpointURL
	if endpoint == "" {
		endpoint = ProductionEndpoint
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetTimeout(timeout)
	client.SetHeader("content-type", "application/x-amz-json-1.1")

	telemetry.InstrumentResty(client, "mturk/http")

	return &Client{
		http:      client,
		authorize: opts.Authorize,
	}, nil
}

type remoteErrorBody struct {
	Type          string `json:"__type"`
	Message       string `json:"Message"`
	LowerMessage  string `json:"message"`
	TurkErrorCode string `json:"TurkErrorCode"`
}

// Invoke posts one operation to the remote API and decodes the response
// into out. It implements Invoker.
func (c *Client) Invoke(ctx context.Context, operation string, in, out any) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("invoke:%s", operation))
	defer span.End()

	span.SetAttributes(attribute.KeyValue{
		Key:   "custom.operation",
		Value: attribute.StringValue(operation),
	})

	body, err := json.Marshal(in)
	if err != nil {
		span.SetStatus(codes.Error, "failed to serialize request")
		return err
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("x-amz-target", fmt.Sprintf("%s.%s", targetPrefix, operation)).
		SetBody(body)
	if c.authorize != nil {
		err = c.authorize(req)
		if err != nil {
			span.SetStatus(codes.Error, "failed to authorize request")
			return err
		}
	}

	res, err := req.Post("/")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return err
	}

	if res.StatusCode() != 200 {
		var errbody remoteErrorBody
		// a decode failure here just leaves the code/message empty, the
		// status code is the load-bearing part
		_ = json.Unmarshal(res.Body(), &errbody)
		message := errbody.Message
		if message == "" {
			message = errbody.LowerMessage
		}
		code := errbody.TurkErrorCode
		if code == "" {
			code = errbody.Type
		}
		remote := &RemoteError{
			Operation:  operation,
			StatusCode: res.StatusCode(),
			Code:       code,
			Message:    message,
		}
		span.SetStatus(codes.Error, remote.Error())
		return remote
	}

	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse json response")
		return err
	}
	return nil
}

func invoke[In, Out any](ctx context.Context, inv Invoker, operation string, in In) (Out, error) {
	var out Out
	err := inv.Invoke(ctx, operation, in, &out)
	return out, err
}
