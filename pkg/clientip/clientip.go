package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order by GetIP.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// GetIP returns the client address announced by a reverse proxy, falling
// back to the connection address. Only call it when every request passes
// through a proxy that overwrites these headers; otherwise use RemoteIP.
// Each header yields its rightmost valid entry, the one appended by the
// nearest proxy. Entries to its left are client-supplied and can be forged.
func GetIP(r *http.Request) string {
	for _, name := range proxyHeaders {
		if ip := lastValidIP(r.Header.Values(name)); ip != "" {
			return ip
		}
	}
	return RemoteIP(r)
}

// lastValidIP scans comma-separated header values from the right.
func lastValidIP(values []string) string {
	for i := len(values) - 1; i >= 0; i-- {
		entries := strings.Split(values[i], ",")
		for j := len(entries) - 1; j >= 0; j-- {
			if ip := parseIP(entries[j]); ip != "" {
				return ip
			}
		}
	}
	return ""
}

// RemoteIP returns the normalized address of the TCP peer, or an empty
// string when RemoteAddr holds no valid IP.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
