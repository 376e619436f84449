package config

import (
	"fmt"
	"os"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

func LoadEnvironment() (Environment, error) {
	env := os.Getenv(ENV_PREFIX + "_ENV")

	switch env {
	case string(EnvDevelopment):
		return EnvDevelopment, nil
	case string(EnvProduction), "":
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("invalid %s_ENV: %q", ENV_PREFIX, env)
	}
}

func (e Environment) IsDevelopment() bool {
	return e == EnvDevelopment
}
