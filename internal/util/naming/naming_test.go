package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	cluster := "orders-db"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "SubnetGroup",
			got:      SubnetGroup(cluster),
			expected: "orders-db-subnets",
		},
		{
			name:     "SecurityGroup",
			got:      SecurityGroup(cluster),
			expected: "orders-db-default",
		},
		{
			name:     "Secret",
			got:      Secret(cluster),
			expected: "orders-db-credentials",
		},
		{
			name:     "SingleUserRotation",
			got:      SingleUserRotation(cluster),
			expected: "orders-db-rotation-single-user",
		},
		{
			name:     "MultiUserRotation",
			got:      MultiUserRotation(cluster, "reporting"),
			expected: "orders-db-rotation-reporting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}
