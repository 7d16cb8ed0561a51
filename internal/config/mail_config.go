package config

type Mail struct{}

var _ MailConfig = Mail{}

func (Mail) GetAWSRegion() string {
	return GetEnv("AWS_REGION", "us-east-1")
}

func (Mail) GetSupportSender() string {
	return GetEnv("SUPPORT_SENDER", "AutoLens Support <support@autolens.net>")
}

func (Mail) GetSupportRecipient() string {
	return GetEnv("SUPPORT_RECIPIENT", "support@autolens.net")
}
