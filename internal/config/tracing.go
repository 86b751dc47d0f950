package config

type TracingConfig struct {
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent-host-port"`
	Off     bool   `yaml:"disabled"`
}

func (s *TracingConfig) ServiceName() string {
	if s.Service == "" {
		return "expense-tracker"
	}
	return s.Service
}

func (s *TracingConfig) AgentHostPort() string {
	return s.Agent
}

func (s *TracingConfig) Disabled() bool {
	return s.Off
}
