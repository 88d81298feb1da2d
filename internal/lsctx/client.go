// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsctx

import (
	"fmt"
	"net/http"
	"net/http/httputil"
)

// DumpTransport prints cloud API traffic to Stderr according to the
// verbosity level.
type DumpTransport struct {
	transport http.RoundTripper
	ctx       *Context
}

func (t *DumpTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Verbosity level=1: log request
	if t.ctx.Verbosity() >= 1 {
		fmt.Fprintf(t.ctx.Stderr, "*************************** <Request uri=%q> **********************************\n", req.URL.RequestURI())
		requestDump, err := httputil.DumpRequestOut(req, t.ctx.Verbosity() >= 2)
		if err != nil {
			return nil, err
		}
		fmt.Fprint(t.ctx.Stderr, string(requestDump))
		if len(requestDump) > 0 && requestDump[len(requestDump)-1] != '\n' {
			fmt.Fprintln(t.ctx.Stderr)
		}
		fmt.Fprintf(t.ctx.Stderr, "*************************** </Request uri=%q> **********************************\n", req.URL.RequestURI())
	}

	response, err := t.transport.RoundTrip(req)

	// Verbosity level=2: log response
	if t.ctx.Verbosity() >= 2 && response != nil {
		fmt.Fprintf(t.ctx.Stderr, "*************************** <Response uri=%q> **********************************\n", req.URL.RequestURI())
		responseDump, errDump := httputil.DumpResponse(response, true)
		if errDump != nil {
			return nil, errDump
		}
		fmt.Fprint(t.ctx.Stderr, string(responseDump))
		if len(responseDump) > 0 && responseDump[len(responseDump)-1] != '\n' {
			fmt.Fprintln(t.ctx.Stderr)
		}
		fmt.Fprintf(t.ctx.Stderr, "*************************** </Response uri=%q> **********************************\n", req.URL.RequestURI())
	}

	return response, err
}

func (c *Context) httpTransportWrapper(roundTripper http.RoundTripper) *DumpTransport {
	t := &DumpTransport{
		transport: roundTripper,
		ctx:       c,
	}
	if roundTripper == nil {
		t.transport = http.DefaultTransport
	}
	return t
}

// HTTPClient is the client handed to the cloud SDK.
func (c *Context) HTTPClient() *http.Client {
	return &http.Client{Transport: c.httpTransportWrapper(nil)}
}
