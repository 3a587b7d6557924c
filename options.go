package governance

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartcontractkit/interchain-governance/sdk"
	"github.com/smartcontractkit/interchain-governance/sdk/evm"
	"github.com/smartcontractkit/interchain-governance/store"
	"github.com/smartcontractkit/interchain-governance/types"
)

// EventHandler is called with every event of a committed call, in emission order. Handlers run
// after the call released the governance, so they may call back into it.
type EventHandler func(ctx context.Context, event types.Event)

type Option func(*options)

type options struct {
	address    common.Address
	clock      sdk.Clock
	encoder    sdk.Encoder
	gateway    sdk.Gateway
	store      store.Store
	registerer prometheus.Registerer
	handlers   []EventHandler
}

func defaultOptions() options {
	return options{
		clock:   sdk.SystemClock,
		encoder: evm.NewEncoder(),
	}
}

// WithAddress sets the address of the governance itself. The gateway checks inbound calls were
// addressed to it.
func WithAddress(address common.Address) Option {
	return func(opts *options) {
		opts.address = address
	}
}

// WithClock overrides the wall clock.
func WithClock(clock sdk.Clock) Option {
	return func(opts *options) {
		opts.clock = clock
	}
}

// WithEncoder overrides the EVM encoder used to hash proposals and operations and to decode
// remote commands.
func WithEncoder(encoder sdk.Encoder) Option {
	return func(opts *options) {
		opts.encoder = encoder
	}
}

// WithGateway sets the gateway that must approve calls made through Execute.
func WithGateway(gateway sdk.Gateway) Option {
	return func(opts *options) {
		opts.gateway = gateway
	}
}

// WithStore persists the state after every committed call. When the store already holds a
// snapshot the governance resumes from it.
func WithStore(s store.Store) Option {
	return func(opts *options) {
		opts.store = s
	}
}

// WithRegisterer registers the governance metrics. Use one registerer per governance instance.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(opts *options) {
		opts.registerer = registerer
	}
}

// WithEventHandler adds a handler for committed events.
func WithEventHandler(handler EventHandler) Option {
	return func(opts *options) {
		opts.handlers = append(opts.handlers, handler)
	}
}
