package letalang

import (
	"fmt"
	"io"

	"github.com/reusee/leta/logs"
	"github.com/reusee/leta/nets"
)

// FetchFunc is the fetch(url) native, doing an HTTP GET through the
// proxy-aware client and returning the body as a string.
type FetchFunc *NativeFunc

func (Module) FetchFunc(
	client nets.HTTPClient,
	logger logs.Logger,
) FetchFunc {
	return &NativeFunc{
		FuncName:  "fetch",
		NumParams: 1,
		Func: func(in *Interp, args []Value) (Value, error) {
			url, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("fetch expects a url string, got %s", TypeName(args[0]))
			}
			logger.Info("fetch", "url", url)
			resp, err := client.Get(url)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}
			return string(body), nil
		},
	}
}
