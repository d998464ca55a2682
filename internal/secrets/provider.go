// Package secrets resolves database and cache credentials from the process
// environment or from Azure Key Vault.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// SecretSource names a credential backend
type SecretSource string

const (
	SourceEnvironment SecretSource = "environment"
	SourceVault       SecretSource = "vault"
	// SourceAuto picks the environment for local work and the vault for deployed stages
	SourceAuto SecretSource = "auto"
)

// ErrSecretNotFound is returned when the backend has no value for a name
var ErrSecretNotFound = errors.New("secret not found")

type backend interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

type envBackend struct{}

func (envBackend) GetSecret(_ context.Context, name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: environment variable %s", ErrSecretNotFound, name)
	}
	return value, nil
}

// Provider resolves credentials for the database and the results cache
type Provider struct {
	source  SecretSource
	backend backend
	logger  *zap.Logger
}

// ProviderConfig selects and tunes the backend
type ProviderConfig struct {
	Source       SecretSource
	VaultName    string
	Environment  string
	CacheEnabled bool
	CacheTTL     time.Duration
}

// NewProvider builds a provider for the resolved source
func NewProvider(cfg *ProviderConfig, logger *zap.Logger) (*Provider, error) {
	source := resolveSource(cfg.Source, cfg.Environment)

	var b backend
	switch source {
	case SourceEnvironment:
		b = envBackend{}
	case SourceVault:
		if cfg.VaultName == "" {
			return nil, errors.New("secrets: a vault name is needed for the vault source")
		}
		vault, err := NewVaultClient(&VaultConfig{
			VaultName:    cfg.VaultName,
			CacheEnabled: cfg.CacheEnabled,
			CacheTTL:     cfg.CacheTTL,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("secrets: vault client: %w", err)
		}
		b = vault
	default:
		return nil, fmt.Errorf("secrets: unsupported source %q", source)
	}

	logger.Info("secrets provider ready",
		zap.String("source", string(source)),
		zap.String("environment", cfg.Environment),
	)
	return &Provider{source: source, backend: b, logger: logger}, nil
}

// newVaultProvider wraps an existing vault client
func newVaultProvider(vault *VaultClient, logger *zap.Logger) *Provider {
	return &Provider{source: SourceVault, backend: vault, logger: logger}
}

func resolveSource(source SecretSource, environment string) SecretSource {
	if source != "" && source != SourceAuto {
		return source
	}
	if isLocalEnvironment(environment) {
		return SourceEnvironment
	}
	return SourceVault
}

func isLocalEnvironment(environment string) bool {
	switch environment {
	case "", "development", "local", "test":
		return true
	}
	return false
}

// GetSecret looks a name up in the configured backend. With the environment
// source the name is the variable name.
func (p *Provider) GetSecret(ctx context.Context, secretName string) (string, error) {
	return p.backend.GetSecret(ctx, secretName)
}

// GetSecretOrEnv returns envName when it is set and falls back to secretName
// in the backend otherwise
func (p *Provider) GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error) {
	if value := os.Getenv(envName); value != "" {
		p.logger.Debug("secret overridden by environment", zap.String("env_name", envName))
		return value, nil
	}
	return p.GetSecret(ctx, secretName)
}

// Source reports the backend in use
func (p *Provider) Source() SecretSource {
	return p.source
}
