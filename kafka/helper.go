package kafka

import (
	"net"
	"os"
	"strings"
)

// ConsumerGroup names the consumer group of one instance of component. Every host gets its own
// group so that each instance reads the full snapshot stream. The host is identified by the
// HOSTNAME variable, the OS hostname or its hardware addresses, in that order.
func ConsumerGroup(component string) string {
	if host := hostID(); host != "" {
		return host + "-" + component
	}
	return component
}

func hostID() string {
	if h := os.Getenv("HOSTNAME"); h != "" {
		return h
	}
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	macs, err := hardwareAddrs()
	if err != nil {
		return ""
	}
	return strings.Join(macs, ":")
}

func hardwareAddrs() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	var addrs []string
	for _, iface := range ifaces {
		if a := iface.HardwareAddr.String(); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs, nil
}
