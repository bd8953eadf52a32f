package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	EasyShipBaseURL      string
	EasyShipToken        string
	SessionMaxAgeMinutes string
	SessionSweepSchedule string
}
