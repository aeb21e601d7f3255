package internal

import (
	"net"

	"github.com/sqlc-dev/pqtype"
)

var loopbackIpNet = net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(32, 32)}

// GetServerIpNet returns the first non-loopback IPv4 address of an
// interface that is up, or 127.0.0.1/32 when there is none.
func GetServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}, nil
			}
		}
	}

	return loopbackIpNet, nil
}

func ToPqtypeInet(ipNet net.IPNet) pqtype.Inet {
	return pqtype.Inet{IPNet: ipNet, Valid: true}
}
