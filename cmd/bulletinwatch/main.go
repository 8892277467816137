package main

import (
	"bulletinwatch/cmd/bulletinwatch/commands"
	"bulletinwatch/lib/serviceutil"
	"bulletinwatch/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(ctx, "bulletinwatch")
	commands.ExecuteContext(ctx)
}
