package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/leta/debugs"
	"github.com/reusee/leta/letalang"
)

type Module struct {
	dscope.Module
	Lang   letalang.Module
	Debugs debugs.Module
}
