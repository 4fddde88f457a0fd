package bus

import (
	"strings"

	"parking-monitor/internal/domain/parking"
)

const (
	// TopicHeader carries the logical topic next to the routing key.
	TopicHeader = "topic"

	topicPrefix      = "/parking_lot/"
	routingKeyPrefix = "parking_lot."
	// AllSpacesKey subscribes to every space, the equivalent of /parking_lot/+.
	AllSpacesKey = routingKeyPrefix + "*"
)

// RoutingKey maps a topic such as /parking_lot/A1 to the AMQP key parking_lot.A1.
func RoutingKey(topic string) string {
	return strings.ReplaceAll(strings.Trim(topic, "/"), "/", ".")
}

// TopicFromRoutingKey reverses RoutingKey.
func TopicFromRoutingKey(key string) string {
	return "/" + strings.ReplaceAll(key, ".", "/")
}

// SpaceFromTopic extracts the space id from a /parking_lot/{id} topic.
func SpaceFromTopic(topic string) (parking.SpaceID, bool) {
	id, ok := strings.CutPrefix(topic, topicPrefix)
	if !ok {
		return "", false
	}
	space, err := parking.ParseSpaceID(id)
	if err != nil {
		return "", false
	}
	return space, true
}
