package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"
)

func HashDataYAML(cfg any) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
