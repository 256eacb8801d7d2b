package meta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_ResolveURL(t *testing.T) {
	svc := New(nil, "/opt/roomplan/config")

	testCases := []struct {
		description string
		location    string
		expect      string
	}{
		{
			description: "relative location joins base",
			location:    "requests.csv",
			expect:      "/opt/roomplan/config/requests.csv",
		},
		{
			description: "absolute path stays",
			location:    "/tmp/requests.csv",
			expect:      "/tmp/requests.csv",
		},
		{
			description: "URL with scheme stays",
			location:    "s3://bucket/requests.csv",
			expect:      "s3://bucket/requests.csv",
		},
	}

	for _, testCase := range testCases {
		assert.Equalf(t, testCase.expect, svc.ResolveURL(testCase.location), testCase.description)
	}

	// without a base URL everything stays as supplied
	assert.Equal(t, "requests.csv", New(nil, "").ResolveURL("requests.csv"))
}

func TestService_Download(t *testing.T) {
	t.Setenv("ROOMPLAN_TEST_NAME", "Alice")
	location := filepath.Join(t.TempDir(), "requests.csv")
	assert.NoError(t, os.WriteFile(location, []byte("2024-01-01;2024-01-02;${env.ROOMPLAN_TEST_NAME}\n"), 0644))

	data, err := New(nil, "").Download(context.Background(), location)
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01;2024-01-02;Alice\n", string(data))
}

func TestService_DownloadMissing(t *testing.T) {
	_, err := New(nil, "").Download(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestService_Load(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(location, []byte("rooms: 3\nvendor: memory\n"), 0644))

	target := &struct {
		Rooms  int    `yaml:"rooms"`
		Vendor string `yaml:"vendor"`
	}{}
	assert.NoError(t, New(nil, "").Load(context.Background(), location, target))
	assert.Equal(t, 3, target.Rooms)
	assert.Equal(t, "memory", target.Vendor)
}

func TestService_LoadMalformed(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(location, []byte(":\n\t- broken"), 0644))

	target := map[string]interface{}{}
	assert.Error(t, New(nil, "").Load(context.Background(), location, &target))
}
