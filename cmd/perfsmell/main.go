// Package main provides the perfsmell CLI and API server.
//
// perfsmell fetches a web page and reports a heuristic performance smell
// score built from render-blocking scripts, inline script weight, missing
// lazy loading and oversized image hints.
//
// Usage:
//
//	perfsmell serve
//	perfsmell analyze https://example.com
//	perfsmell mcp
package main

func main() {
	Execute()
}
