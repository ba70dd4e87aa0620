package firestore

import (
	"fmt"
	"testing"

	"devicestore/internal/domain/entity"
	mockSvc "devicestore/internal/mocks/service"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSequentialIDs(t *testing.T) *mockSvc.MockIDGenerator {
	ids := mockSvc.NewMockIDGenerator(t)
	n := 0
	ids.EXPECT().Generate().RunAndReturn(func() string {
		n++

		return fmt.Sprintf("new-%d", n)
	}).Maybe()

	return ids
}

func TestDecodeUserDevices(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		want    map[string]entity.Device
		wantErr bool
	}{
		{
			name: "missing devices field reads as empty",
			data: map[string]any{"userId": "u1"},
			want: map[string]entity.Device{},
		},
		{
			name: "map keyed by device id",
			data: map[string]any{
				"userId": "u1",
				"devices": map[string]any{
					"d1": map[string]any{
						"deviceId":  "d1",
						"fcmToken":  "T1",
						"name":      "Chrome",
						"os":        "Linux",
						"type":      "Web",
						"userAgent": "Mozilla/5.0",
					},
				},
			},
			want: map[string]entity.Device{
				"d1": {DeviceID: "d1", FCMToken: "T1", Name: "Chrome", OS: "Linux", Type: entity.DeviceTypeWeb, UserAgent: "Mozilla/5.0"},
			},
		},
		{
			name: "map entry without deviceId takes its key",
			data: map[string]any{
				"devices": map[string]any{
					"d2": map[string]any{"fcmToken": "T2", "type": "Android"},
				},
			},
			want: map[string]entity.Device{
				"d2": {DeviceID: "d2", FCMToken: "T2", Type: entity.DeviceTypeAndroid},
			},
		},
		{
			name: "legacy array entries get fresh ids",
			data: map[string]any{
				"devices": []any{
					map[string]any{"deviceId": "Mozilla/5.0", "fcmToken": "LAPTOP", "type": "Web"},
					map[string]any{"deviceId": "Mozilla/5.0", "fcmToken": "DESKTOP", "type": "Web"},
					map[string]any{"fcmToken": "T3", "type": "iOS"},
				},
			},
			want: map[string]entity.Device{
				"new-1": {DeviceID: "new-1", FCMToken: "LAPTOP", Type: entity.DeviceTypeWeb},
				"new-2": {DeviceID: "new-2", FCMToken: "DESKTOP", Type: entity.DeviceTypeWeb},
				"new-3": {DeviceID: "new-3", FCMToken: "T3", Type: entity.DeviceTypeIOS},
			},
		},
		{
			name: "legacy array drops repeated tokens",
			data: map[string]any{
				"devices": []any{
					map[string]any{"deviceId": "a", "fcmToken": "T1", "name": "first"},
					map[string]any{"deviceId": "b", "fcmToken": "T1", "name": "second"},
				},
			},
			want: map[string]entity.Device{
				"new-1": {DeviceID: "new-1", FCMToken: "T1", Name: "first"},
			},
		},
		{
			name:    "unexpected shape",
			data:    map[string]any{"devices": "broken"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := decodeUserDevices("u1", tt.data, newSequentialIDs(t))
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "u1", doc.UserID)
			assert.Equal(t, tt.want, doc.Devices)
		})
	}
}

func TestDocumentUpdates(t *testing.T) {
	devices := map[string]entity.Device{"d1": {DeviceID: "d1", FCMToken: "T1"}}

	assert.Equal(t, []firestore.Update{
		{Path: "userId", Value: "u1"},
		{Path: "devices", Value: devices},
	}, documentUpdates("u1", devices))

	assert.Equal(t, []firestore.Update{
		{Path: "userId", Value: "u1"},
		{Path: "devices", Value: map[string]entity.Device{}},
	}, documentUpdates("u1", nil))
}
