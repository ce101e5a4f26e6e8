// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/FlamoDynamo/demo-0002-algolib/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a server that can be started
type Listener interface {
	Serve() error
	Close() error
}

// convert "*:PORT" and "[IPv6]:PORT" forms and return the network for each address
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("empty listen address")
			return nil, nil, fault.ErrInvalidIPAddress
		}

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			// assume that this will listen on tcp4 and tcp6
			addresses[i] = net.JoinHostPort("::", port)
			networks[i] = "tcp"
			continue
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}
		addresses[i] = listen

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIPAddress
			log.Errorf("listen address: %q  error: %s", listen, err)
			return nil, nil, err
		}
	}

	return networks, addresses, nil
}
