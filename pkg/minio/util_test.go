package minio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig_AppendsDefaultPort(t *testing.T) {
	cfg := Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Region: "us-east-1"}
	assert.NoError(t, validateConfig(&cfg))
	assert.Equal(t, "localhost:9000", cfg.Endpoint)
}

func TestValidateBucketName(t *testing.T) {
	tcs := map[string]bool{
		"mission-reports": true,
		"ab":              false,
		"Upper":           false,
		"double--hyphen":  false,
		"-leading":        false,
	}
	for name, ok := range tcs {
		t.Run(name, func(t *testing.T) {
			err := validateBucketName(name)
			if ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePresignedURLRequest(t *testing.T) {
	req := &PresignedURLRequest{BucketName: "exports", ObjectName: "a.xlsx", Expiry: 8 * 24 * time.Hour}
	assert.Error(t, validatePresignedURLRequest(req))

	req.Expiry = time.Hour
	assert.NoError(t, validatePresignedURLRequest(req))
}
