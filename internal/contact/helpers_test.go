package contact

import "github.com/gogetwell/website/internal/config"

func mailgunConfig(domain, key, from string) config.EmailConfig {
	return config.EmailConfig{
		MailgunDomain: domain,
		MailgunAPIKey: key,
		FromEmail:     from,
		FromName:      "gogetwell.ai",
	}
}
