package config

import (
	"context"
	"fmt"

	"github.com/de-tools/sales-pulse/pkg/store/analytics"
	"gopkg.in/ini.v1"
)

// Registry reads endpoint profiles from an ini file, one section per
// profile (host, token, optional timeout).
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetConfig(ctx context.Context, profile string) (*analytics.Config, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetConfig(_ context.Context, profile string) (*analytics.Config, error) {
	section := cr.cfg.Section(profile)
	if section == nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	endpoint := section.Key("endpoint").String()
	if endpoint == "" {
		return nil, fmt.Errorf("profile %s has no endpoint", profile)
	}

	return &analytics.Config{
		Endpoint: endpoint,
		Token:    section.Key("token").String(),
		Timeout:  section.Key("timeout").MustDuration(0),
	}, nil
}
