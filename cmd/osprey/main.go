// Osprey is a caching reverse proxy for a third-party game-statistics API,
// with a panel-listing endpoint aggregating a hosting control panel.
//
// It shields clients from upstream rate limits by caching responses with a
// configurable TTL, validates region and identifier parameters before
// forwarding, and exposes status and Prometheus metrics endpoints.
//
// Usage:
//
//	# Start the server with the default configuration file
//	osprey run
//
//	# Start with a custom configuration file
//	osprey run --config /etc/osprey/config.yaml
//
//	# Validate a configuration file without starting
//	osprey validate --config /etc/osprey/config.yaml
//
//	# Show version information
//	osprey version
package main

func main() {
	Execute()
}
