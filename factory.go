package main

import (
	"fmt"
	"strings"
)

var connectorFactories = []ConnectorFactory{
	&SFTPConnectorFactory{},
	&FTPConnectorFactory{},
	// add more
}

func getConnectorFactory(protocol string) ConnectorFactory {
	protocol = strings.ToLower(protocol)
	for _, factory := range connectorFactories {
		if factory.Accept(protocol) {
			return factory
		}
	}
	return nil
}

func dialConnector(item Item) (Connector, error) {
	factory := getConnectorFactory(item.Protocol)
	if factory == nil {
		return nil, fmt.Errorf("no connector available for protocol: %s", item.Protocol)
	}
	return factory.Create(item)
}
