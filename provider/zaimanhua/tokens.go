package zaimanhua

import (
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/zaisan-cli/zaisan/api"
	"github.com/zaisan-cli/zaisan/auth"
	"github.com/zaisan-cli/zaisan/key"
	"github.com/zaisan-cli/zaisan/log"
)

// accountTokens bridges the keyring-backed account state into the API client.
//
// A token is only handed out while enhanced mode is enabled, so regular
// searches stay anonymous. Refresh re-logs-in with the stored credentials,
// persisting the minted token for subsequent sessions.
type accountTokens struct {
	client *api.Client
}

func (t *accountTokens) Token() mo.Option[string] {
	if !viper.GetBool(key.AccountEnhancedMode) {
		return mo.None[string]()
	}
	return auth.Token()
}

func (t *accountTokens) Refresh() mo.Option[string] {
	credentials, ok := auth.Credentials().Get()
	if !ok {
		log.Debug("token refresh requested but no credentials are stored")
		return mo.None[string]()
	}

	token, err := t.client.Login(credentials[0], credentials[1])
	if err != nil || token == "" {
		log.Warnf("token refresh failed: %v", err)
		return mo.None[string]()
	}

	if err := auth.SetToken(token); err != nil {
		log.Warnf("failed to persist refreshed token: %v", err)
	}
	return mo.Some(token)
}
