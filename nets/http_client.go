package nets

import (
	"net/http"
	"time"

	"github.com/reusee/leta/configs"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	loader configs.Loader,
) HTTPClient {
	timeout := time.Minute
	if str := configs.First[string](loader, "fetch_timeout"); str != "" {
		if d, err := time.ParseDuration(str); err == nil {
			timeout = d
		}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
