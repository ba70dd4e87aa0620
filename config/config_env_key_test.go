package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"registry": map[string]any{
			"collectionPath": "user-devices",
			"maxAttempts":    5,
		},
		"messaging": map[string]any{
			"permissionGranted": true,
			"pubsub": map[string]any{
				"subscriptionId": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REGISTRY_COLLECTIONPATH", want: "registry.collectionPath"},
		{envKey: "MESSAGING_PERMISSIONGRANTED", want: "messaging.permissionGranted"},
		{envKey: "MESSAGING_PUBSUB_SUBSCRIPTIONID", want: "messaging.pubsub.subscriptionId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
