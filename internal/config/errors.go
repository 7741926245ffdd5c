package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound  = goerr.New("configuration file not found")
	ErrInvalidConfig   = goerr.New("invalid configuration")
	ErrUnknownCategory = goerr.New("unknown category")
	ErrInvalidColor    = goerr.New("invalid color")
	ErrInvalidRotate   = goerr.New("invalid rotate interval")
)
