package firestore

import (
	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"

	"github.com/go-viper/mapstructure/v2"
)

// decodeUserDevices reads a raw document. The devices field is a map keyed by
// device ID. Documents written by older clients hold an array instead, whose
// deviceId values were user-agent strings shared between machines; each entry
// gets a new ID from ids and only repeated tokens are dropped.
func decodeUserDevices(userID string, data map[string]any, ids service.IDGenerator) (*entity.UserDevices, error) {
	doc := entity.NewUserDevices(userID)
	if uid, ok := data[userIDField].(string); ok && uid != "" {
		doc.UserID = uid
	}

	switch raw := data[devicesField].(type) {
	case nil:
	case map[string]any:
		for key, value := range raw {
			device, err := decodeDevice(value)
			if err != nil {
				return nil, errors.Wrapf(err, "device %s", key)
			}
			if device.DeviceID == "" {
				device.DeviceID = key
			}
			doc.Devices[key] = device
		}
	case []any:
		for i, value := range raw {
			device, err := decodeDevice(value)
			if err != nil {
				return nil, errors.Wrapf(err, "device at index %d", i)
			}
			if device.FCMToken != "" {
				if _, found := doc.FindByToken(device.FCMToken); found {
					continue
				}
			}
			device.DeviceID = ids.Generate()
			doc.Devices[device.DeviceID] = device
		}
	default:
		return nil, errors.Errorf("unexpected devices field type %T", raw)
	}

	return doc, nil
}

func decodeDevice(value any) (entity.Device, error) {
	var device entity.Device

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "firestore",
		WeaklyTypedInput: true,
		Result:           &device,
	})
	if err != nil {
		return device, errors.WithStack(err)
	}
	if err := decoder.Decode(value); err != nil {
		return device, errors.Wrap(err, "failed to decode device")
	}

	return device, nil
}
