// Package config provides configuration loading, merging, and validation
// facilities for the server and the command-line client.
//
// Configuration is assembled from multiple sources, from lowest to highest
// priority (a higher source overrides non-zero fields of a lower one):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
