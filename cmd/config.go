package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	WeightTolerance    float64
	DimensionTolerance float64
	RequireSealedBags  bool

	KafkaHost          string
	KafkaTrackingTopic string
}
