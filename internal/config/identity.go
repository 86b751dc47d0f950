package config

const defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"

type IdentityConfig struct {
	Key     string `yaml:"api-key"`
	Domain  string `yaml:"auth-domain"`
	Project string `yaml:"project-id"`
	BaseURL string `yaml:"endpoint"`
}

func (s *IdentityConfig) setDefaults() {
	if s.BaseURL == "" {
		s.BaseURL = defaultIdentityEndpoint
	}
}

func (s *IdentityConfig) APIKey() string {
	return s.Key
}

func (s *IdentityConfig) AuthDomain() string {
	return s.Domain
}

func (s *IdentityConfig) ProjectID() string {
	return s.Project
}

func (s *IdentityConfig) Endpoint() string {
	return s.BaseURL
}
