package config

type MemcachedConfig struct {
	Servers []string `yaml:"hosts"`
}

// Hosts are memcached servers as host:port.
func (s *MemcachedConfig) Hosts() []string {
	return s.Servers
}
