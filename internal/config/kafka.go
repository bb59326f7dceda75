package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	RecTopic   string   `yaml:"records-topic"`
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) RecordsTopic() string {
	if s.RecTopic == "" {
		return "ledger-records"
	}
	return s.RecTopic
}
