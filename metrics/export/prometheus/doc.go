// Package prometheus renders boardclient metrics in Prometheus text
// exposition format without importing the Prometheus client library.
package prometheus
