// Package entity contains the core business objects of the project.
package entity

// DeviceType tags the platform a device registration belongs to.
type DeviceType string

const (
	DeviceTypeAndroid DeviceType = "Android"
	DeviceTypeIOS     DeviceType = "iOS"
	DeviceTypeWeb     DeviceType = "Web"
)

// Valid reports whether t is one of the known device types.
func (t DeviceType) Valid() bool {
	switch t {
	case DeviceTypeAndroid, DeviceTypeIOS, DeviceTypeWeb:
		return true
	default:
		return false
	}
}

// Device is one physical device or browser registered for push notifications.
type Device struct {
	DeviceID  string     `json:"deviceId" firestore:"deviceId"`                       // Locally minted identifier, never reused for another token.
	FCMToken  string     `json:"fcmToken" firestore:"fcmToken"`                       // Current push token, unique within a user's devices.
	Name      string     `json:"name" firestore:"name"`                               // Browser or app name, informational only.
	OS        string     `json:"os" firestore:"os"`                                   // Operating system, informational only.
	Type      DeviceType `json:"type" firestore:"type"`                               // Platform tag.
	UserAgent string     `json:"userAgent,omitempty" firestore:"userAgent,omitempty"` // Raw user agent, optional.
}

// UserDevices is the per-user document holding every registered device keyed by DeviceID.
type UserDevices struct {
	UserID  string            `json:"userId" firestore:"userId"`
	Devices map[string]Device `json:"devices" firestore:"devices"`
}

// NewUserDevices returns an empty, well-formed document for userID.
func NewUserDevices(userID string) *UserDevices {
	return &UserDevices{
		UserID:  userID,
		Devices: make(map[string]Device),
	}
}

// FindByToken returns the device ID holding token, if any.
func (u *UserDevices) FindByToken(token string) (string, bool) {
	for deviceID, device := range u.Devices {
		if device.FCMToken == token {
			return deviceID, true
		}
	}

	return "", false
}

// DeviceFingerprint describes the local device when minting a new registration.
type DeviceFingerprint struct {
	Name      string
	OS        string
	UserAgent string
}
