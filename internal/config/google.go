package config

type GoogleConfig struct {
	ID       string `yaml:"client-id"`
	Secret   string `yaml:"client-secret"`
	Redirect string `yaml:"redirect-url"`
}

func (s *GoogleConfig) ClientID() string {
	return s.ID
}

func (s *GoogleConfig) ClientSecret() string {
	return s.Secret
}

func (s *GoogleConfig) RedirectURL() string {
	return s.Redirect
}
