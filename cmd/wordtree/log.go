package main

// Logf logs a progress message, shown only with the verbose flag
func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	if rcc.log == nil {
		return
	}
	rcc.log.Sugar().Debugf(format, a...)
}
