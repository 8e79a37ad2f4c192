// Package plugin provides the entry point for flatlint ruleset plugins.
//
// The descriptor's plugin handles (flatlint.PluginRef) resolve to
// binaries served through this package. Plugins call Serve from main()
// to register their RuleSet; the host launches the binary and talks to
// it over go-plugin's net/rpc protocol.
//
// This file contains shared configuration used by both the host and
// plugins for establishing communication via hashicorp/go-plugin.

package plugin

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// ProtocolVersion is the plugin protocol version.
// Increment this when making breaking changes to the plugin interface.
const ProtocolVersion = 1

// MagicCookieKey is the environment variable name for the magic cookie.
const MagicCookieKey = "FLATLINT_PLUGIN_MAGIC_COOKIE"

// MagicCookieValue is the expected value of the magic cookie.
// This prevents plugins from being executed directly (outside of flatlint).
const MagicCookieValue = "flatlint-plugin-v1"

// Handshake is the HandshakeConfig used to configure go-plugin.
// The host and plugin must agree on these values to communicate.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  ProtocolVersion,
	MagicCookieKey:   MagicCookieKey,
	MagicCookieValue: MagicCookieValue,
}

// PluginName is the name used to identify the RuleSet plugin.
const PluginName = "ruleset"

// PluginMap is the map of plugins we can dispense.
// Used by both the host and plugin.
var PluginMap = map[string]plugin.Plugin{
	PluginName: &RuleSetPlugin{},
}

// Ensure RuleSetPlugin implements plugin.Plugin.
var _ plugin.Plugin = (*RuleSetPlugin)(nil)

// RuleSetPlugin is the go-plugin glue for the RuleSet service.
// This is used by both the host (to create a client) and the plugin
// (to create a server).
type RuleSetPlugin struct {
	// Impl is the concrete implementation of the RuleSet interface.
	// Only used when serving (plugin side).
	Impl flatlint.RuleSet
}

// Server is called on the plugin side to create the RPC server.
func (p *RuleSetPlugin) Server(_ *plugin.MuxBroker) (interface{}, error) {
	return NewRuleSetServer(p.Impl), nil
}

// Client is called on the host side to create the RPC client.
func (p *RuleSetPlugin) Client(_ *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RuleSetClient{client: c}, nil
}
