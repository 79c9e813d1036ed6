package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/leta/configs"
	"github.com/reusee/leta/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
