package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
}

func (s *MemcachedConfig) Enabled() bool {
	return len(s.NodeHosts) > 0
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}
