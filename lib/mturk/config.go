package mturk

import (
	"turkdata/lib/configutil"

	"github.com/go-resty/resty/v2"
)

// ClientConfig is the on-disk client configuration, read from mturk.json5.
type ClientConfig struct {
	// Endpoint defaults to ProductionEndpoint when empty; point it at
	// SandboxEndpoint for test batches.
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

const configName = "mturk.json5"

// ReadClientConfig walks up from the working directory looking for
// mturk.json5 (plus an optional mturk.local.json5 overlay). Returns
// os.ErrNotExist when no config is present.
func ReadClientConfig() (ClientConfig, error) {
	return configutil.ReadRecursively[ClientConfig](configName)
}

// NewClientFromConfig builds a client for the configured endpoint.
// authorize receives the configured credentials on every request; request
// signing stays with the caller. Pass nil when no signing is needed.
func NewClientFromConfig(authorize func(cfg ClientConfig, req *resty.Request) error) (*Client, error) {
	cfg, err := ReadClientConfig()
	if err != nil {
		return nil, err
	}

	opts := ClientOptions{EndpointURL: cfg.Endpoint}
	if authorize != nil {
		opts.Authorize = func(req *resty.Request) error {
			return authorize(cfg, req)
		}
	}
	return NewClient(opts)
}
