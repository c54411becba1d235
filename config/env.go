package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// environment holds the defaults taken from environment variables. Lower case
// proxy variables win over their upper case spelling.
type environment struct {
	NNTPServer string `env:"NNTP_SERVER"`

	HTTPProxy       string `env:"http_proxy"`
	HTTPProxyUpper  string `env:"HTTP_PROXY"`
	HTTPSProxy      string `env:"https_proxy"`
	HTTPSProxyUpper string `env:"HTTPS_PROXY"`
	FTPProxy        string `env:"ftp_proxy"`
	FTPProxyUpper   string `env:"FTP_PROXY"`
	NoProxy         string `env:"no_proxy"`
	NoProxyUpper    string `env:"NO_PROXY"`
}

func loadEnvironment() (environment, error) {
	var result environment

	err := env.Parse(&result)
	if err != nil {
		return environment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return result, nil
}

// proxies returns the proxy settings keyed by scheme, e.g. "http" or "no".
func (e environment) proxies() map[string]string {
	result := make(map[string]string)

	for scheme, values := range map[string][2]string{
		"http":  {e.HTTPProxy, e.HTTPProxyUpper},
		"https": {e.HTTPSProxy, e.HTTPSProxyUpper},
		"ftp":   {e.FTPProxy, e.FTPProxyUpper},
		"no":    {e.NoProxy, e.NoProxyUpper},
	} {
		for _, value := range values {
			if value != "" {
				result[scheme] = value

				break
			}
		}
	}

	return result
}
