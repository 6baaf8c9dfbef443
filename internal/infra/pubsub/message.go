package pubsub

import (
	"encoding/json"

	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/entity"

	"github.com/pkg/errors"
)

// PushMessage is the body of a Pub/Sub push request. The local publisher
// produces the same envelope so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attributes returns the message attributes for event published to topic.
func Attributes(topic string, event *entity.ContractEvent) map[string]string {
	attributes := map[string]string{
		constants.EventAttributeTopic:      topic,
		constants.EventAttributeType:       string(event.Type),
		constants.EventAttributeEventID:    event.ID.String(),
		constants.EventAttributeContractID: event.ContractID.String(),
	}
	if event.RequestID != "" {
		attributes[constants.EventAttributeRequestID] = event.RequestID
	}

	return attributes
}

func encodeEvent(event *entity.ContractEvent) ([]byte, error) {
	if event == nil {
		return nil, errors.New("event is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode contract event")
	}

	return data, nil
}
