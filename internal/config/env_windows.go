//go:build windows

package config

func mapEnvKey(key string) string {
	switch key {
	case "HOSTNAME":
		return "COMPUTERNAME"
	case "HOME":
		return "USERPROFILE"
	}
	return key
}
