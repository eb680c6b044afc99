// Package payclient provides the main entry point for creating Paykit API
// clients.
package payclient
