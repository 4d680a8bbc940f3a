package kafka

// Auth holds SASL/PLAIN credentials. Both fields must be set for authentication to be used.
type Auth struct {
	Username string `mapstructure:"username" json:"username,omitempty"`
	Password string `mapstructure:"password" json:"password,omitempty"`
}

type Config struct {
	// A list of Kafka brokers in the form of "host:port"
	Brokers []string `mapstructure:"brokers" json:"brokers"`
	// OrdersTopic carries encoded order snapshots keyed by batch id.
	OrdersTopic string `mapstructure:"orders_topic" json:"orders_topic"`
	// CommitmentsTopic carries the roots built over those snapshots.
	CommitmentsTopic string `mapstructure:"commitments_topic" json:"commitments_topic"`
	Authentication   Auth   `mapstructure:"authentication" json:"authentication"`
}

func DefaultConfig() Config {
	return Config{
		Brokers:          nil,
		OrdersTopic:      DefaultOrdersTopic,
		CommitmentsTopic: DefaultCommitmentsTopic,
	}
}
