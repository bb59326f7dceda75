package config

type OpsConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *OpsConfig) setDefaults() {
	if s.ListenAddr == "" {
		s.ListenAddr = ":8080"
	}
}

func (s *OpsConfig) Addr() string {
	return s.ListenAddr
}

type TracingConfig struct {
	On          bool   `yaml:"enabled"`
	Service     string `yaml:"service-name"`
	AgentHostPt string `yaml:"agent"`
}

func (s *TracingConfig) setDefaults() {
	if s.Service == "" {
		s.Service = "ledger-bot"
	}
	if s.AgentHostPt == "" {
		s.AgentHostPt = "localhost:6831"
	}
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

func (s *TracingConfig) AgentHostPort() string {
	return s.AgentHostPt
}
