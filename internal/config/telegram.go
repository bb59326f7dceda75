package config

type TelegramConfig struct {
	ApiToken       string `yaml:"token"`
	DebugMode      bool   `yaml:"debug"`
	PollingTimeout int    `yaml:"polling-timeout-seconds"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) Debug() bool {
	return t.DebugMode
}

func (t *TelegramConfig) PollingTimeoutSeconds() int {
	if t.PollingTimeout <= 0 {
		return 60
	}
	return t.PollingTimeout
}
