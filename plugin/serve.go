// Package plugin provides the entry point for flatlint ruleset plugins.
//
// Plugins use this package to register their RuleSet with the flatlint
// host. The Serve function is called from main() and handles all
// communication with the host process via HashiCorp's go-plugin library.
//
// Example plugin main.go:
//
//	package main
//
//	import (
//	    "github.com/flatlint/flatlint-plugin-sdk/flatlint"
//	    "github.com/flatlint/flatlint-plugin-sdk/plugin"
//	)
//
//	func main() {
//	    plugin.Serve(&plugin.ServeOpts{
//	        RuleSet: &ImportRuleSet{
//	            BuiltinRuleSet: flatlint.BuiltinRuleSet{
//	                Name:    "import",
//	                Version: "0.1.0",
//	                Rules:   rules.Rules,
//	            },
//	        },
//	    })
//	}

package plugin

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/flatlint/flatlint-plugin-sdk/flatlint"
)

// ServeOpts contains options for serving the plugin.
type ServeOpts struct {
	// RuleSet is the plugin's rule set implementation.
	RuleSet flatlint.RuleSet
}

// Serve starts the plugin server.
//
// This function registers the plugin's RuleSet and handles communication
// with the flatlint host process. It should be called from the plugin's
// main() function.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of flatlint), the plugin will print a message and exit.
//
// Communication uses HashiCorp's go-plugin library, which provides:
// - Magic cookie handshake to prevent direct execution
// - Protocol versioning for compatibility
// - Multiplexed net/rpc over a local connection
func Serve(opts *ServeOpts) {
	if opts == nil || opts.RuleSet == nil {
		// Nothing to serve
		return
	}

	// Validate the RuleSet is usable (fail fast on misconfiguration)
	_ = opts.RuleSet.RuleSetName()
	_ = opts.RuleSet.RuleSetVersion()
	_ = opts.RuleSet.RuleNames()

	// Check if we're being invoked by flatlint (via magic cookie)
	// If not, print a helpful message and exit
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(opts.RuleSet)
		return
	}

	// Create a logger for the plugin
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "plugin",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	// Create the plugin map with our implementation
	pluginMap := map[string]plugin.Plugin{
		PluginName: &RuleSetPlugin{Impl: opts.RuleSet},
	}

	// Serve the plugin
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         pluginMap,
		Logger:          logger,
	})
}

// printDirectInvocationMessage prints a helpful message when the plugin
// is invoked directly instead of via flatlint.
func printDirectInvocationMessage(rs flatlint.RuleSet) {
	// Use simple writes since we don't want to pull in extra dependencies
	os.Stderr.WriteString("This is a flatlint plugin.\n\n")
	os.Stderr.WriteString("Plugin: " + rs.RuleSetName() + "\n")
	os.Stderr.WriteString("Version: " + rs.RuleSetVersion() + "\n")
	os.Stderr.WriteString("Rules:\n")
	for _, name := range rs.RuleNames() {
		os.Stderr.WriteString("  - " + name + "\n")
	}
	os.Stderr.WriteString("\nTo use this plugin, run it via flatlint:\n")
	os.Stderr.WriteString("  flatlint [options]\n\n")
	os.Stderr.WriteString("For more information, see: https://github.com/flatlint/flatlint\n")
}
