// Package plugin provides the entry point for flatlint ruleset plugins.
//
// This file contains the host side: launching a plugin binary from a
// descriptor handle and dispensing its ruleset.

package plugin

import (
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// NewClient launches the plugin binary a descriptor handle points at
// and returns the managed client. The caller owns the client and must
// Kill it when done. A nil logger disables logging.
//
// Example host side:
//
//	client := plugin.NewClient(ref.Source, logger)
//	defer client.Kill()
//	ruleset, err := plugin.Dispense(client)
func NewClient(path string, logger hclog.Logger) *plugin.Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap,
		Cmd:             exec.Command(path),
		Logger:          logger,
	})
}

// Dispense connects to a launched plugin and returns its ruleset.
func Dispense(client *plugin.Client) (*RuleSetClient, error) {
	protocol, err := client.Client()
	if err != nil {
		return nil, fmt.Errorf("connect to plugin: %w", err)
	}
	raw, err := protocol.Dispense(PluginName)
	if err != nil {
		return nil, fmt.Errorf("dispense %q: %w", PluginName, err)
	}
	ruleset, ok := raw.(*RuleSetClient)
	if !ok {
		return nil, fmt.Errorf("dispense %q: unexpected type %T", PluginName, raw)
	}
	return ruleset, nil
}

// DispenseRuleSet is like Dispense but typed to the flatlint.RuleSet
// interface for hosts that only need the configuration surface.
func DispenseRuleSet(client *plugin.Client) (flatlint.RuleSet, error) {
	return Dispense(client)
}
